package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateWorkspaceRepo creates a git repository holding a two-member cargo
// workspace (crates/alpha and crates/beta), commits it, and tags the commit
// v0.1.0. Returns the repository root.
func CreateWorkspaceRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Canonicalize so paths resolved by git and cargo compare equal on
	// systems where the temp dir sits behind a symlink.
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	run(t, dir, "git", "init", "-b", "main")
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test")

	WriteFile(t, dir, "Cargo.toml", `[workspace]
resolver = "2"
members = ["crates/alpha", "crates/beta"]
`)
	WriteFile(t, dir, filepath.Join("crates", "alpha", "Cargo.toml"), `[package]
name = "alpha"
version = "0.1.0"
edition = "2021"
`)
	WriteFile(t, dir, filepath.Join("crates", "alpha", "src", "lib.rs"), "pub fn alpha() {}\n")
	WriteFile(t, dir, filepath.Join("crates", "beta", "Cargo.toml"), `[package]
name = "beta"
version = "0.1.0"
edition = "2021"
`)
	WriteFile(t, dir, filepath.Join("crates", "beta", "src", "lib.rs"), "pub fn beta() {}\n")

	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", "initial workspace")
	run(t, dir, "git", "tag", "v0.1.0")
	return dir
}

// CommitFile writes content to relPath inside the repository and commits it.
func CommitFile(t *testing.T, dir, relPath, content, message string) {
	t.Helper()
	WriteFile(t, dir, relPath, content)
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", message)
}

// Tag creates a git tag at the current head.
func Tag(t *testing.T, dir, name string) {
	t.Helper()
	run(t, dir, "git", "tag", name)
}

// WriteFile writes content to relPath under dir, creating parent
// directories as needed.
func WriteFile(t *testing.T, dir, relPath, content string) {
	t.Helper()
	path := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// RequireCargo skips the test when no cargo binary is on the PATH.
func RequireCargo(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("cargo"); err != nil {
		t.Skip("cargo not installed")
	}
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
