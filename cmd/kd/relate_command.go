package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/catalog"
	"github.com/spenweb/kd/internal/logging"
	"github.com/spenweb/kd/internal/textutil"
)

func newRelateCommand(ctx *commandContext) *cobra.Command {
	var showFlag, sourceFlag, targetFlag, kindFlag string

	cmd := &cobra.Command{
		Use:   "relate",
		Short: "Set how one character relates to another",
		Long: "Set the directed relationship from a source character to a target character.\n" +
			"Relating the same pair again replaces the kind; the reverse direction is a separate relationship.",
		Args: cobra.NoArgs,
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
			showName, err := askExisting(p, showFlag, textPrompt{
				label: "Show's title:", flag: "show", choices: current.ShowNames(), mustPick: true,
			})
			if err != nil {
				return err
			}
			show, err := current.Show(showName)
			if err != nil {
				return err
			}
			names := characterNames(show)

			sourceName, err := askExisting(p, sourceFlag, textPrompt{
				label: "Source character:", flag: "source", choices: names, mustPick: true,
			})
			if err != nil {
				return err
			}
			source, ok := show.CharacterByName(sourceName)
			if !ok {
				return &catalog.Error{Kind: catalog.KindCharacterNotFound, Subject: sourceName}
			}
			targetName, err := askExisting(p, targetFlag, textPrompt{
				label: "Target character:", flag: "target", choices: names, mustPick: true,
			})
			if err != nil {
				return err
			}
			target, ok := show.CharacterByName(targetName)
			if !ok {
				return &catalog.Error{Kind: catalog.KindCharacterNotFound, Subject: targetName}
			}

			kind := textutil.NormalizeName(kindFlag)
			if kind == "" {
				var initial string
				if existing, ok := show.FindRelationship(source.ID, target.ID); ok {
					initial = existing.Kind
				}
				if kind, err = p.text(textPrompt{label: "Relationship:", flag: "kind", initial: initial}); err != nil {
					return err
				}
			}

			rendering := fmt.Sprintf("%s -> %s: %s", source.Name, target.Name, kind)
			out := cmd.OutOrStdout()
			confirmed, err := p.confirm(rendering)
			if err != nil {
				return err
			}
			if !confirmed {
				printStatus(out, statusInfo, "Nothing saved")
				return nil
			}

			err = st.Update(cmd.Context(), func(c *catalog.Collection) error {
				_, err := c.SetRelationship(showName, sourceName, targetName, kind)
				return err
			})
			if err != nil {
				return err
			}
			ctx.loggerFor(cmd).Info("relationship set",
				logging.String(logging.FieldShow, showName),
				logging.String("source", source.Name),
				logging.String("target", target.Name),
				logging.String("kind", kind))
			printStatus(out, statusOK, "Saved relationship: %s", rendering)
			return nil
		},
	}

	cmd.Flags().StringVarP(&showFlag, "show", "s", "", "Show both characters appear in")
	cmd.Flags().StringVar(&sourceFlag, "source", "", "Character the relationship starts from")
	cmd.Flags().StringVar(&targetFlag, "target", "", "Character the relationship points to")
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Kind of relationship (e.g. friend, girlfriend)")
	return cmd
}
