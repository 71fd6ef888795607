// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const binMarkitdown = "markitdown"

// runner abstracts command execution for testing.
type runner interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osRunner is the production runner backed by os/exec. Output captures
// stdout; on failure stderr is folded into the returned error so the
// markitdown diagnostic survives.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) { return exec.LookPath(file) }

func (osRunner) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

var defaultRunner runner = osRunner{}

// CommandConverter runs the markitdown binary installed on PATH against the
// staged file.
type CommandConverter struct {
	run runner
}

// NewCommandConverter verifies the markitdown binary is on PATH and returns
// a converter that invokes it per request.
func NewCommandConverter() (*CommandConverter, error) {
	return newCommandConverter(defaultRunner)
}

func newCommandConverter(r runner) (*CommandConverter, error) {
	if _, err := r.LookPath(binMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown binary not found on PATH: %w", err)
	}
	return &CommandConverter{run: r}, nil
}

// Convert runs markitdown on the file at path and returns its stdout.
func (c *CommandConverter) Convert(path string) (string, error) {
	out, err := c.run.Output(binMarkitdown, path)
	if err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", path, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", path)
	}
	return string(out), nil
}
