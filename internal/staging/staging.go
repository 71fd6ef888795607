// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package staging manages the temporary on-disk copy of an upload for the
// duration of one conversion request. Each request owns exactly one
// uniquely named artifact; Remove must run on every exit path after Stage
// succeeds.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is a staged upload on disk.
type Artifact struct {
	path string
}

// Path returns the artifact's location on disk.
func (a *Artifact) Path() string {
	return a.path
}

// Stage writes content to a fresh uniquely named file in dir (the system
// temporary directory when dir is empty). The file keeps the upload's
// extension so converters can detect the format. On any failure the partial
// file is removed before returning.
func Stage(dir, filename string, content []byte) (*Artifact, error) {
	pattern := "upload-*" + suffix(filename)

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("creating staging file: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing staging file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("closing staging file %s: %w", path, err)
	}

	return &Artifact{path: path}, nil
}

// Remove deletes the staged file. A file that is already gone is not an
// error; any other failure is returned so the caller can log it.
func (a *Artifact) Remove() error {
	if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing staging file %s: %w", a.path, err)
	}
	return nil
}

// suffix extracts a safe extension (with dot) from a client-supplied
// filename. Path separators and temp-pattern wildcards are rejected rather
// than sanitized; the artifact works without a suffix.
func suffix(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if strings.ContainsAny(ext, "*/\\") {
		return ""
	}
	return ext
}
