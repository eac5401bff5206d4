// Package cargo shells out to the cargo build tool: it loads the workspace
// inventory from `cargo metadata` and refreshes the lockfile with
// `cargo fetch`.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	slogcontext "github.com/veqryn/slog-context"
)

var (
	// ErrMetadataUnavailable reports that the workspace inventory could not
	// be loaded: cargo is missing, the directory is not a cargo project, or
	// the metadata output could not be decoded.
	ErrMetadataUnavailable = errors.New("cargo metadata unavailable")

	// ErrFetchFailed reports that the lockfile refresh did not complete.
	ErrFetchFailed = errors.New("cargo fetch failed")
)

// Fetch refreshes Cargo.lock for the project at dir. Cargo's own progress
// output passes through to the console.
func Fetch(ctx context.Context, dir string) error {
	if err := run(ctx, dir, "fetch"); err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}

// IsInstalled returns true if cargo is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("cargo")
	return err == nil
}

// run executes a cargo command, passing its output through.
func run(ctx context.Context, dir string, args ...string) error {
	slogcontext.FromCtx(ctx).Debug("running cargo", "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cargo %s: %v", strings.Join(args, " "), err)
	}
	return nil
}

// output executes a cargo command and returns its stdout.
// Stderr is captured and included in the error message on failure.
func output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	slogcontext.FromCtx(ctx).Debug("running cargo", "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("cargo %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
