package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/catalog"
)

type showSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ReleaseYear   int    `json:"release_year"`
	Characters    int    `json:"characters"`
	Relationships int    `json:"relationships"`
}

type relationshipRow struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List shows, characters or relationships",
	}
	listCmd.AddCommand(newListShowsCommand(ctx))
	listCmd.AddCommand(newListCharactersCommand(ctx))
	listCmd.AddCommand(newListRelationshipsCommand(ctx))
	return listCmd
}

func newListShowsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "shows",
		Short: "List every show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := loadCollection(ctx, cmd)
			if err != nil {
				return err
			}
			shows := current.Shows()
			summaries := make([]showSummary, 0, len(shows))
			for _, show := range shows {
				summaries = append(summaries, showSummary{
					ID:            show.ID,
					Name:          show.Name,
					ReleaseYear:   show.ReleaseYear,
					Characters:    len(show.Characters()),
					Relationships: len(show.Relationships()),
				})
			}
			if asJSON {
				return writeJSON(cmd, summaries)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No shows yet; add one with `kd add show`")
				return nil
			}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{
					s.Name,
					strconv.Itoa(s.ReleaseYear),
					strconv.Itoa(s.Characters),
					strconv.Itoa(s.Relationships),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Show", "Year", "Characters", "Relationships"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newListCharactersCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var showName string
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List the characters of a show in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			show, err := loadShow(ctx, cmd, showName)
			if err != nil {
				return err
			}
			characters := show.Characters()
			if asJSON {
				return writeJSON(cmd, characters)
			}
			if len(characters) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no characters yet\n", show.Name)
				return nil
			}
			rows := make([][]string, 0, len(characters))
			for i, c := range characters {
				rows = append(rows, []string{strconv.Itoa(i + 1), c.Name, c.Role, c.Gender})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Name", "Role", "Gender"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().StringVarP(&showName, "show", "s", "", "Show to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("show")
	return cmd
}

func newListRelationshipsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var showName string
	cmd := &cobra.Command{
		Use:   "relationships",
		Short: "List the relationships between characters of a show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			show, err := loadShow(ctx, cmd, showName)
			if err != nil {
				return err
			}
			relationships := relationshipRows(show)
			if asJSON {
				return writeJSON(cmd, relationships)
			}
			if len(relationships) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no relationships yet\n", show.Name)
				return nil
			}
			rows := make([][]string, 0, len(relationships))
			for _, r := range relationships {
				rows = append(rows, []string{r.Source, r.Target, r.Kind})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Source", "Target", "Kind"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().StringVarP(&showName, "show", "s", "", "Show to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("show")
	return cmd
}

// relationshipRows resolves endpoint ids to character names, falling back to the id.
func relationshipRows(show *catalog.Show) []relationshipRow {
	relationships := show.Relationships()
	rows := make([]relationshipRow, 0, len(relationships))
	for _, r := range relationships {
		row := relationshipRow{ID: r.ID, Source: r.Source, Target: r.Target, Kind: r.Kind}
		if c, ok := show.CharacterByID(r.Source); ok {
			row.Source = c.Name
		}
		if c, ok := show.CharacterByID(r.Target); ok {
			row.Target = c.Name
		}
		rows = append(rows, row)
	}
	return rows
}

func loadCollection(ctx *commandContext, cmd *cobra.Command) (*catalog.Collection, error) {
	st, err := ctx.openStore(cmd)
	if err != nil {
		return nil, err
	}
	current, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("unable to load shows: %w", err)
	}
	return current, nil
}

func loadShow(ctx *commandContext, cmd *cobra.Command, name string) (*catalog.Show, error) {
	current, err := loadCollection(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return current.Show(name)
}
