package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbosity int
	var assumeYes bool

	ctx := newCommandContext(&configFlag, &verbosity, &assumeYes)

	rootCmd := &cobra.Command{
		Use:           "kd",
		Short:         "Document Korean dramas: shows, characters and how they relate",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(logging.WithCommand(cmd.Context(), commandPath(cmd)))
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			_, err := ctx.ensureLogger(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Save without asking for confirmation")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newUpdateCommand(ctx))
	rootCmd.AddCommand(newRelateCommand(ctx))
	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))

	return rootCmd
}

// commandPath drops the binary name: "kd add show" becomes "add show".
func commandPath(cmd *cobra.Command) string {
	path := cmd.CommandPath()
	if root := cmd.Root(); root != nil && root != cmd {
		if trimmed, ok := strings.CutPrefix(path, root.Name()+" "); ok {
			return trimmed
		}
	}
	return path
}
