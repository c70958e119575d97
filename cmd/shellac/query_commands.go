package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"shellac/internal/catalog"
	"shellac/internal/config"
)

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "artists <prefix>",
		Short: "Search artists by name prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *catalog.Store) error {
				artists, err := store.SearchArtists(cmd.Context(), args[0], limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(artists) == 0 {
					fmt.Fprintf(out, "no artists match %q\n", args[0])
					return nil
				}
				rows := make([][]string, 0, len(artists))
				for _, artist := range artists {
					rows = append(rows, []string{strconv.FormatInt(artist.ID, 10), artist.Name})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"ID", "Name"},
					rows,
					[]columnAlignment{alignRight, alignLeft}))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of artists to list")
	return cmd
}

func newMastersCommand(ctx *commandContext) *cobra.Command {
	var filter catalog.MasterFilter

	cmd := &cobra.Command{
		Use:   "masters <artist-id>",
		Short: "List masters credited to an artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artistID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || artistID <= 0 {
				return fmt.Errorf("invalid artist id %q", args[0])
			}
			return ctx.withStore(func(_ *config.Config, store *catalog.Store) error {
				masters, err := store.MastersByArtist(cmd.Context(), artistID, filter)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(masters) == 0 {
					fmt.Fprintf(out, "no masters for artist %d\n", artistID)
					return nil
				}
				rows := make([][]string, 0, len(masters))
				for _, master := range masters {
					rows = append(rows, []string{
						strconv.FormatInt(master.MasterID, 10),
						master.Title,
						master.Format,
						master.ArtistName,
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Master", "Title", "Format", "Artist"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.Country, "country", "", "Only masters with a release from this country")
	cmd.Flags().StringVar(&filter.Format, "format", "", "Only masters with a release in this format")
	cmd.Flags().StringVar(&filter.TitlePrefix, "search", "", "Only masters whose title starts with this prefix")
	return cmd
}

func newCatNoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catno <catalog-number>",
		Short: "Find releases by label catalog number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *catalog.Store) error {
				releases, err := store.ReleasesByCatNo(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(releases) == 0 {
					fmt.Fprintf(out, "no releases match catalog number %q\n", args[0])
					return nil
				}
				rows := make([][]string, 0, len(releases))
				for _, release := range releases {
					rows = append(rows, []string{
						strconv.FormatInt(release.ReleaseID, 10),
						release.Title,
						release.LabelName,
						release.CatNo,
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Release", "Title", "Label", "CatNo"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
				return nil
			})
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <release-id>",
		Short: "Show one release with its imported row counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid release id %q", args[0])
			}
			return ctx.withStore(func(_ *config.Config, store *catalog.Store) error {
				summary, err := store.GetReleaseSummary(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if summary == nil {
					fmt.Fprintf(out, "release %d is not in the catalog\n", id)
					return nil
				}
				fmt.Fprintf(out, "Release %d: %s\n", summary.ID, summary.Title)
				if summary.Released != "" {
					fmt.Fprintf(out, "  Released: %s\n", summary.Released)
				}
				if summary.Country != "" {
					fmt.Fprintf(out, "  Country:  %s\n", summary.Country)
				}
				if summary.MasterID != 0 {
					fmt.Fprintf(out, "  Master:   %d\n", summary.MasterID)
				}
				fmt.Fprintf(out, "  Status:   %s\n", summary.Status)

				rows := [][]string{
					{"artists", strconv.Itoa(summary.Artists)},
					{"labels", strconv.Itoa(summary.Labels)},
					{"formats", strconv.Itoa(summary.Formats)},
					{"identifiers", strconv.Itoa(summary.Identifiers)},
					{"genres", strconv.Itoa(summary.Genres)},
					{"tracks", strconv.Itoa(summary.Tracks)},
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Detail", "Rows"},
					rows,
					[]columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-table row counts for the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				tables := make([]string, 0, len(stats))
				for table := range stats {
					tables = append(tables, table)
				}
				sort.Strings(tables)

				rows := make([][]string, 0, len(tables))
				for _, table := range tables {
					rows = append(rows, []string{table, strconv.FormatInt(stats[table], 10)})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database: %s\n", cfg.DatabasePath())
				fmt.Fprintln(out, renderTable(out,
					[]string{"Table", "Rows"},
					rows,
					[]columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}
