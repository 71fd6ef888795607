// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements document-to-Markdown conversion with pluggable
// markitdown backends: the markitdown binary on PATH, or the markitdown
// container image.
package convert

import (
	"strings"
)

// Converter transforms a staged document into Markdown text.
type Converter interface {
	// Convert reads the document at path and returns the Markdown content.
	Convert(path string) (string, error)
}

// allowedExtensions lists the document types the service accepts, in the
// order they appear in error messages.
var allowedExtensions = []string{
	"doc", "docx", "ppt", "pptx", "pdf", "xls", "xlsx", "odt", "ods", "odp", "txt",
}

var allowedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		set[ext] = struct{}{}
	}
	return set
}()

// Extension returns the lower-cased part of filename after the last dot, or
// "" when the filename has no dot.
func Extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Supported reports whether filename carries an allow-listed extension.
// A filename without a dot is never supported.
func Supported(filename string) bool {
	if !strings.ContainsRune(filename, '.') {
		return false
	}
	_, ok := allowedSet[Extension(filename)]
	return ok
}

// AllowedTypes returns the accepted extensions in message order. The caller
// must not modify the returned slice.
func AllowedTypes() []string {
	return allowedExtensions
}
