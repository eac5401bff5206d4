package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	slogcontext "github.com/veqryn/slog-context"
)

// ErrUnavailable reports that the change history could not be queried:
// git is not installed, the directory is not inside a repository, or a
// revision (such as the old tag) does not exist.
var ErrUnavailable = errors.New("git history unavailable")

// Toplevel returns the absolute path of the repository root containing dir.
func Toplevel(ctx context.Context, dir string) (string, error) {
	out, err := output(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(strings.TrimSpace(out)), nil
}

// ChangedFiles returns the absolute paths of files that differ between the
// given revision and HEAD. Files deleted since the revision are included;
// callers match them against package directories like any other change.
func ChangedFiles(ctx context.Context, toplevel, since string) ([]string, error) {
	out, err := output(ctx, toplevel, "diff", "--name-only", since, "HEAD")
	if err != nil {
		return nil, err
	}
	return absPaths(toplevel, out), nil
}

// TrackedFiles returns the absolute paths of all files tracked in the
// repository at toplevel. Used as the change set when no baseline revision
// is available.
func TrackedFiles(ctx context.Context, toplevel string) ([]string, error) {
	out, err := output(ctx, toplevel, "ls-files")
	if err != nil {
		return nil, err
	}
	return absPaths(toplevel, out), nil
}

// absPaths resolves newline-separated repository-relative paths against
// toplevel. Git prints forward slashes regardless of platform.
func absPaths(toplevel, out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, filepath.Join(toplevel, filepath.FromSlash(line)))
	}
	return paths
}

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// output executes a git command and returns its stdout.
// Stderr is captured and included in the error message on failure.
func output(ctx context.Context, dir string, args ...string) (string, error) {
	slogcontext.FromCtx(ctx).Debug("running git", "args", args, "dir", dir)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: git %s: %v: %s", ErrUnavailable, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
