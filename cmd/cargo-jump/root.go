package main

import (
	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/taoky/cargo-jump/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cargo-jump",
		Short:   "Bump the version of workspace packages changed since a git tag",
		Version: version,
		// Errors surface exactly once, at the boundary in main.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.NewLogger(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(slogcontext.NewCtx(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().String("dir", ".", "Directory to run discovery from")
	logging.RegisterFlags(cmd)

	cmd.AddCommand(
		newJumpCmd(),
		newAffectedCmd(),
		newPackagesCmd(),
		newDoctorCmd(),
	)

	return cmd
}
