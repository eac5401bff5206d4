package main

import (
	"github.com/spf13/cobra"

	"github.com/taoky/cargo-jump/internal/jump"
)

func newAffectedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affected",
		Short: "List packages changed since the old tag without writing anything",
		RunE:  runAffected,
	}
	cmd.Flags().String("old-tag", "", "Baseline revision; when omitted every tracked file counts as changed")
	cmd.Flags().String("output", "table", "Output format: table, json, yaml")
	return cmd
}

func runAffected(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	oldTag, _ := cmd.Flags().GetString("old-tag")
	format, _ := cmd.Flags().GetString("output")

	plan, err := newRunner(dir).Plan(cmd.Context(), jump.PlanOptions{OldTag: oldTag})
	if err != nil {
		return err
	}

	return renderPackages(cmd.OutOrStdout(), format, plan.Affected)
}
