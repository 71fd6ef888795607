// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container locates a container engine (docker or podman) and runs
// the markitdown image with stdin/stdout piping for the container-based
// conversion backend.
package container

import (
	"fmt"
	"io"
	"os/exec"
)

// Runtime runs conversion containers.
type Runtime interface {
	// Name returns the engine binary name ("docker" or "podman").
	Name() string

	// ImageExists returns nil when the named image is present locally.
	ImageExists(image string) error

	// Run starts a disposable container from image with extra command-line
	// args, wiring stdin and stdout to the given reader and writer. It
	// blocks until the container exits.
	Run(image string, args []string, stdin io.Reader, stdout io.Writer) error
}

// commander abstracts process execution so engine behavior is testable
// without docker installed.
type commander interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

type osCommander struct{}

func (osCommander) LookPath(file string) (string, error) { return exec.LookPath(file) }

func (osCommander) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osCommander) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// engine is a Runtime backed by a docker-compatible CLI. Docker and podman
// differ only in the binary name and the image-presence subcommand.
type engine struct {
	bin string
	cmd commander
}

func (e *engine) Name() string { return e.bin }

// available reports whether the engine binary is on PATH and its daemon (or
// podman equivalent) answers an info call.
func (e *engine) available() bool {
	if _, err := e.cmd.LookPath(e.bin); err != nil {
		return false
	}
	return e.cmd.RunSilent(e.bin, "info") == nil
}

func (e *engine) imageCheckArgs(image string) []string {
	if e.bin == "podman" {
		return []string{"image", "exists", image}
	}
	return []string{"image", "inspect", image}
}

func (e *engine) ImageExists(image string) error {
	if err := e.cmd.RunSilent(e.bin, e.imageCheckArgs(image)...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, e.bin, err)
	}
	return nil
}

func (e *engine) Run(image string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmdline := append([]string{"run", "--rm", "-i", image}, args...)
	if err := e.cmd.RunPiped(e.bin, cmdline, stdin, stdout); err != nil {
		return fmt.Errorf("running %s container %s: %w", e.bin, image, err)
	}
	return nil
}

var defaultCommander commander = osCommander{}

// DetectRuntime returns the first working engine, preferring docker over
// podman. It fails when neither responds.
func DetectRuntime() (Runtime, error) {
	return detectRuntime(defaultCommander)
}

func detectRuntime(cmd commander) (Runtime, error) {
	for _, bin := range []string{"docker", "podman"} {
		e := &engine{bin: bin, cmd: cmd}
		if e.available() {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither docker nor podman found or operational")
}
