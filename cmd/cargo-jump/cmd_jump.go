package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/term"

	"github.com/taoky/cargo-jump/internal/jump"
)

func newJumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jump <new-version>",
		Short: "Set the version of every package changed since the old tag",
		Args:  cobra.ExactArgs(1),
		RunE:  runJump,
	}
	cmd.Flags().String("old-tag", "", "Baseline revision; when omitted every tracked file counts as changed")
	cmd.Flags().Bool("dry-run", false, "Show what would happen without making changes")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	cmd.Flags().StringSlice("only", nil, "Bump only these package names")
	cmd.Flags().StringSlice("skip", nil, "Skip these package names")
	return cmd
}

func runJump(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	oldTag, _ := cmd.Flags().GetString("old-tag")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	only, _ := cmd.Flags().GetStringSlice("only")
	skip, _ := cmd.Flags().GetStringSlice("skip")

	newVersion := args[0]
	ctx := cmd.Context()

	runner := newRunner(dir)
	plan, err := runner.Plan(ctx, jump.PlanOptions{OldTag: oldTag, Only: only, Skip: skip})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(plan.Affected) == 0 {
		slogcontext.FromCtx(ctx).Info("no packages affected")
		_, _ = fmt.Fprintln(out, "No affected packages.")
		return nil
	}

	for _, p := range plan.Affected {
		if dryRun {
			_, _ = fmt.Fprintf(out, "[dry-run] %s: %s -> %s\n", p.Name, p.Version, newVersion)
		} else {
			_, _ = fmt.Fprintf(out, "%s: %s -> %s\n", p.Name, p.Version, newVersion)
		}
	}

	if !dryRun && !yes && isInteractive() {
		confirmed, err := promptConfirm(fmt.Sprintf("Set %d package(s) to %s?", len(plan.Affected), newVersion))
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	result, err := runner.Apply(ctx, plan, jump.ApplyOptions{NewVersion: newVersion, DryRun: dryRun})
	if err != nil {
		return err
	}

	if dryRun {
		_, _ = fmt.Fprintln(out, "Dry run: no files were modified.")
		return nil
	}
	if result.Refreshed {
		_, _ = fmt.Fprintln(out, "Lockfile refreshed.")
	}
	_, _ = fmt.Fprintf(out, "Updated %d package(s) to %s.\n", len(plan.Affected), newVersion)
	return nil
}

// isInteractive reports whether stdin is a terminal, so the confirmation
// prompt never blocks scripted runs.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
