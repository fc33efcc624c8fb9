package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/catalog"
	"github.com/spenweb/kd/internal/logging"
	"github.com/spenweb/kd/internal/textutil"
)

type characterFlags struct {
	show   string
	name   string
	role   string
	gender string
}

func newAddCharacterCommand(ctx *commandContext) *cobra.Command {
	var flags characterFlags

	cmd := &cobra.Command{
		Use:   "character",
		Short: "Add a character to a show",
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
			showName, err := askExisting(p, flags.show, textPrompt{
				label: "Show's title:", flag: "show", choices: current.ShowNames(), mustPick: true,
			})
			if err != nil {
				return err
			}
			if _, err := current.Show(showName); err != nil {
				return err
			}

			name := textutil.NormalizeName(flags.name)
			if name == "" {
				if name, err = p.text(textPrompt{label: "Character name:", flag: "name"}); err != nil {
					return err
				}
			}
			role := textutil.NormalizeName(flags.role)
			if role == "" {
				if role, err = p.choose("Role:", "role", catalog.Roles, ""); err != nil {
					return err
				}
			}
			gender := textutil.NormalizeName(flags.gender)
			if gender == "" {
				if gender, err = p.choose("Gender:", "gender", catalog.Genders, ""); err != nil {
					return err
				}
			}

			character := catalog.NewCharacter(name, role, gender)
			out := cmd.OutOrStdout()
			ok, err := p.confirm(character.String())
			if err != nil {
				return err
			}
			if !ok {
				printStatus(out, statusInfo, "Nothing saved")
				return nil
			}

			var added catalog.Character
			err = st.Update(cmd.Context(), func(c *catalog.Collection) error {
				var err error
				added, err = c.AddCharacter(showName, character)
				return err
			})
			if err != nil {
				return err
			}
			ctx.loggerFor(cmd).Info("character added",
				logging.String(logging.FieldShow, showName),
				logging.String(logging.FieldCharacter, added.Name))
			printStatus(out, statusOK, "Added new character: %s", added)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.show, "show", "s", "", "Show the character appears in")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Name of character")
	cmd.Flags().StringVarP(&flags.role, "role", "r", "", "Role of character (protagonist, antagonist, comic-relief, ...)")
	cmd.Flags().StringVarP(&flags.gender, "gender", "g", "", "Gender of character (female, male, other, ...)")
	return cmd
}

func newUpdateCharacterCommand(ctx *commandContext) *cobra.Command {
	var flags characterFlags
	var oldName string

	cmd := &cobra.Command{
		Use:   "character",
		Short: "Edit a character of a show",
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
			showName, err := askExisting(p, flags.show, textPrompt{
				label: "Show's title:", flag: "show", choices: current.ShowNames(), mustPick: true,
			})
			if err != nil {
				return err
			}
			show, err := current.Show(showName)
			if err != nil {
				return err
			}

			oldName, err = askExisting(p, oldName, textPrompt{
				label: "Character's old name:", flag: "old-name", choices: characterNames(show), mustPick: true,
			})
			if err != nil {
				return err
			}
			existing, ok := show.CharacterByName(oldName)
			if !ok {
				return fmt.Errorf("unable to find character %q in %s", oldName, show.Name)
			}

			name := textutil.NormalizeName(flags.name)
			if name == "" {
				if name, err = p.text(textPrompt{label: "Character's new name:", flag: "name", initial: existing.Name}); err != nil {
					return err
				}
			}
			role := textutil.NormalizeName(flags.role)
			if role == "" {
				if role, err = p.choose("Role:", "role", catalog.Roles, existing.Role); err != nil {
					return err
				}
			}
			gender := textutil.NormalizeName(flags.gender)
			if gender == "" {
				if gender, err = p.choose("Gender:", "gender", catalog.Genders, existing.Gender); err != nil {
					return err
				}
			}

			edited := catalog.Character{Name: name, Role: role, Gender: gender}
			out := cmd.OutOrStdout()
			confirmed, err := p.confirm(edited.String())
			if err != nil {
				return err
			}
			if !confirmed {
				printStatus(out, statusInfo, "Nothing saved")
				return nil
			}

			var updated catalog.Character
			err = st.Update(cmd.Context(), func(c *catalog.Collection) error {
				var err error
				updated, err = c.UpdateCharacter(showName, oldName, edited)
				return err
			})
			if err != nil {
				return err
			}
			ctx.loggerFor(cmd).Info("character updated",
				logging.String(logging.FieldShow, showName),
				logging.String(logging.FieldCharacter, updated.Name),
				logging.String("previous_name", oldName))
			printStatus(out, statusOK, "Updated character: %s", updated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.show, "show", "s", "", "Show the character appears in")
	cmd.Flags().StringVarP(&oldName, "old-name", "o", "", "Current name of the character")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "New name of the character")
	cmd.Flags().StringVarP(&flags.role, "role", "r", "", "Role of character")
	cmd.Flags().StringVarP(&flags.gender, "gender", "g", "", "Gender of character")
	return cmd
}

func characterNames(show *catalog.Show) []string {
	characters := show.Characters()
	names := make([]string, 0, len(characters))
	for _, c := range characters {
		names = append(names, c.Name)
	}
	return names
}

func newAddActorCommand() *cobra.Command {
	var name string
	var birthYear int

	cmd := &cobra.Command{
		Use:         "actor",
		Short:       "Record an actor (printed only, actors are not stored)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			actor := catalog.NewActor(textutil.NormalizeName(name), birthYear)
			printStatus(cmd.OutOrStdout(), statusOK, "Added new actor: %s", actor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of actor")
	cmd.Flags().IntVarP(&birthYear, "birth-year", "b", 0, "Birth year")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birth-year")
	return cmd
}
