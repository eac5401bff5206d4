package main

import (
	"github.com/spf13/cobra"
)

func newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the workspace member packages",
		RunE:  runPackages,
	}
	cmd.Flags().String("output", "table", "Output format: table, json, yaml")
	return cmd
}

func runPackages(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	format, _ := cmd.Flags().GetString("output")

	ws, err := cargoInventory{dir: dir}.Load(cmd.Context())
	if err != nil {
		return err
	}

	return renderPackages(cmd.OutOrStdout(), format, ws.Packages)
}
