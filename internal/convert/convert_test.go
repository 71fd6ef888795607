// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"report.pdf", true},
		{"slides.PPTX", true},
		{"sheet.xlsx", true},
		{"notes.txt", true},
		{"archive.tar.gz", false},
		{"binary.exe", false},
		{"no-extension", false},
		{"trailing-dot.", false},
		{".txt", true}, // hidden-file style name still names a type
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Supported(tt.filename); got != tt.want {
				t.Errorf("Supported(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"report.PDF", "pdf"},
		{"archive.tar.gz", "gz"},
		{"plain", ""},
		{"dot.", ""},
	}
	for _, tt := range tests {
		if got := Extension(tt.filename); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestAllowedTypesOrder(t *testing.T) {
	// The joined list is part of the error-message contract.
	want := "doc, docx, ppt, pptx, pdf, xls, xlsx, odt, ods, odp, txt"
	if got := strings.Join(AllowedTypes(), ", "); got != want {
		t.Errorf("AllowedTypes() joined = %q, want %q", got, want)
	}
}
