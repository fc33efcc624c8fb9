package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/catalog"
	"github.com/spenweb/kd/internal/logging"
	"github.com/spenweb/kd/internal/textutil"
)

func newAddShowCommand(ctx *commandContext) *cobra.Command {
	var name string
	var releaseYear int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Add a show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			current, err := st.Load()
			if err != nil {
				return fmt.Errorf("unable to load shows: %w", err)
			}

			p := newPrompter(cmd, ctx)
			name = textutil.NormalizeName(name)
			if name == "" {
				name, err = p.text(textPrompt{label: "Show's title:", flag: "name", choices: current.ShowNames()})
				if err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("release-year") {
				releaseYear, err = p.year("Show's release year:", "release-year", 0)
				if err != nil {
					return err
				}
			}

			show := catalog.NewShow(name, releaseYear)
			out := cmd.OutOrStdout()
			if _, exists := current.ShowByName(show.Name); exists {
				printStatus(out, statusWarn, "a show named %q already exists; lookups by name will only find one of them", show.Name)
			}
			ok, err := p.confirm(show.String())
			if err != nil {
				return err
			}
			if !ok {
				printStatus(out, statusInfo, "Nothing saved")
				return nil
			}

			err = st.Update(cmd.Context(), func(c *catalog.Collection) error {
				c.Add(show)
				return nil
			})
			if err != nil {
				return fmt.Errorf("unable to save show collection: %w", err)
			}
			ctx.loggerFor(cmd).Info("show added",
				logging.String(logging.FieldShow, show.Name),
				logging.String("show_id", show.ID))
			printStatus(out, statusOK, "Saved show: %s", show.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of show")
	cmd.Flags().IntVarP(&releaseYear, "release-year", "r", 0, "Release year of show")
	return cmd
}

func newUpdateShowCommand(ctx *commandContext) *cobra.Command {
	var oldName string
	var newName string
	var releaseYear int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Rename a show or change its release year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			current, err := st.Load()
			if err != nil {
				return fmt.Errorf("unable to load shows: %w", err)
			}

			p := newPrompter(cmd, ctx)
			oldName, err = askExisting(p, oldName, textPrompt{
				label: "Show's old title:", flag: "old-name", choices: current.ShowNames(), mustPick: true,
			})
			if err != nil {
				return err
			}
			existing, err := current.Show(oldName)
			if err != nil {
				return err
			}

			newName = textutil.NormalizeName(newName)
			if newName == "" {
				newName, err = p.text(textPrompt{label: "Show's new title:", flag: "name", initial: existing.Name})
				if err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("release-year") {
				releaseYear, err = p.year("Show's release year:", "release-year", existing.ReleaseYear)
				if err != nil {
					return err
				}
			}

			edited := catalog.Show{Name: newName, ReleaseYear: releaseYear}
			out := cmd.OutOrStdout()
			ok, err := p.confirm(edited.String())
			if err != nil {
				return err
			}
			if !ok {
				printStatus(out, statusInfo, "Nothing saved")
				return nil
			}

			var saved catalog.Show
			err = st.Update(cmd.Context(), func(c *catalog.Collection) error {
				var err error
				saved, err = c.Update(oldName, edited)
				return err
			})
			if err != nil {
				return fmt.Errorf("unable to update show: %w", err)
			}
			ctx.loggerFor(cmd).Info("show updated",
				logging.String(logging.FieldShow, saved.Name),
				logging.String("previous_name", oldName))
			printStatus(out, statusOK, "Saved show: %s", saved.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&oldName, "old-name", "o", "", "Current name of the show")
	cmd.Flags().StringVarP(&newName, "name", "n", "", "New name of the show")
	cmd.Flags().IntVarP(&releaseYear, "release-year", "r", 0, "Release year of show")
	return cmd
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info [show]",
		Short: "Show a show with all of its characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			current, err := st.Load()
			if err != nil {
				return fmt.Errorf("unable to load shows: %w", err)
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			name, err = askExisting(newPrompter(cmd, ctx), name, textPrompt{
				label: "Show name:", choices: current.ShowNames(), mustPick: true,
			})
			if err != nil {
				return err
			}
			show, err := current.Show(name)
			if err != nil {
				return fmt.Errorf("couldn't find show by that name: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), show.MoreInfo())
			return nil
		},
	}
}

// askExisting returns the flag value when set, otherwise prompts for a name
// that should already exist. A value that names a choice verbatim is kept
// as typed; anything else is normalized.
func askExisting(p *prompter, value string, q textPrompt) (string, error) {
	for _, candidate := range []string{value, strings.TrimSpace(value)} {
		if candidate != "" && slices.Contains(q.choices, candidate) {
			return candidate, nil
		}
	}
	if value = textutil.NormalizeName(value); value != "" {
		return value, nil
	}
	return p.text(q)
}
