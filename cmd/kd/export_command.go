package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/config"
	"github.com/spenweb/kd/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag, outFlag, showFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON, YAML or a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			target := strings.TrimSpace(outFlag)
			if target == "" {
				target = export.DefaultFileName(format, showFlag)
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			current, err := loadCollection(ctx, cmd)
			if err != nil {
				return err
			}
			n, err := export.New(ctx.loggerFor(cmd)).Export(cmd.Context(), current, export.Request{
				Format: format,
				Path:   target,
				Show:   strings.TrimSpace(showFlag),
			})
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			noun := "shows"
			if n == 1 {
				noun = "show"
			}
			printStatus(cmd.OutOrStdout(), statusOK, "Exported %d %s to %s", n, noun, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json, yaml or sqlite")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file (defaults to kd-catalog.<ext> in the current directory)")
	cmd.Flags().StringVarP(&showFlag, "show", "s", "", "Export only this show")
	return cmd
}
