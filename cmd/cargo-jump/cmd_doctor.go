package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taoky/cargo-jump/internal/cargo"
	"github.com/taoky/cargo-jump/internal/git"
	"github.com/taoky/cargo-jump/internal/jump"
	"github.com/taoky/cargo-jump/internal/manifest"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	ok := true

	// Check git.
	_, _ = fmt.Fprint(out, "Checking git... ")
	gitOK := git.IsInstalled()
	if gitOK {
		_, _ = fmt.Fprintln(out, "OK")
	} else {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  git is required. Install it from https://git-scm.com/")
		ok = false
	}

	if gitOK {
		_, _ = fmt.Fprint(out, "Checking git version... ")
		if vout, err := exec.Command("git", "version").Output(); err != nil {
			_, _ = fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			_, _ = fmt.Fprintln(out, strings.TrimSpace(string(vout)))
		}
	}

	// Check cargo.
	_, _ = fmt.Fprint(out, "Checking cargo... ")
	cargoOK := cargo.IsInstalled()
	if cargoOK {
		_, _ = fmt.Fprintln(out, "OK")
	} else {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  cargo is required. Install it from https://rustup.rs/")
		ok = false
	}

	if cargoOK {
		_, _ = fmt.Fprint(out, "Checking cargo version... ")
		if vout, err := exec.Command("cargo", "--version").Output(); err != nil {
			_, _ = fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			_, _ = fmt.Fprintln(out, strings.TrimSpace(string(vout)))
		}
	}

	// Check the repository and workspace around dir.
	var toplevel string
	if gitOK {
		_, _ = fmt.Fprint(out, "Checking repository... ")
		top, err := git.Toplevel(ctx, dir)
		if err != nil {
			_, _ = fmt.Fprintln(out, "NOT A GIT REPOSITORY")
			ok = false
		} else {
			toplevel = top
			_, _ = fmt.Fprintln(out, top)
		}
	}

	var ws *jump.Workspace
	if cargoOK {
		_, _ = fmt.Fprint(out, "Checking workspace... ")
		loaded, err := cargoInventory{dir: dir}.Load(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(out, "FAILED (%v)\n", err)
			ok = false
		} else {
			ws = loaded
			_, _ = fmt.Fprintf(out, "%s (%d packages)\n", ws.Root, len(ws.Packages))
		}
	}

	if toplevel != "" && ws != nil {
		_, _ = fmt.Fprint(out, "Checking workspace location... ")
		if jump.Within(toplevel, ws.Root) {
			_, _ = fmt.Fprintln(out, "inside the repository")
		} else {
			_, _ = fmt.Fprintf(out, "OUTSIDE the repository (%s is not under %s)\n", ws.Root, toplevel)
			ok = false
		}
	}

	if ws != nil {
		for _, p := range ws.Packages {
			_, _ = fmt.Fprintf(out, "  Checking %s... ", p.Name)
			if _, err := manifest.Load(p.ManifestPath); err != nil {
				_, _ = fmt.Fprintf(out, "FAILED (%v)\n", err)
				ok = false
			} else {
				_, _ = fmt.Fprintln(out, "OK")
			}
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
