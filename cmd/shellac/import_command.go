package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shellac/internal/catalog"
	"shellac/internal/config"
	"shellac/internal/discogs"
	"shellac/internal/importer"
	"shellac/internal/releasecache"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <release-id>...",
		Short: "Import releases from the upstream catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid release id %q", arg)
				}
				ids = append(ids, id)
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				lock := importer.NewLock(cfg.Paths.DataDir)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer lock.Release()

				logger, err := ctx.logger()
				if err != nil {
					return err
				}
				client, err := discogs.New(cfg.Discogs.BaseURL, cfg.Discogs.UserAgent, logger,
					discogs.WithTimeout(cfg.Discogs.Timeout()))
				if err != nil {
					return err
				}
				cache := releasecache.New(cfg.Paths.CacheDir, logger)
				imp := importer.New(store, importer.NewFetcher(client, cache, logger), logger)

				out := cmd.OutOrStdout()
				var failures int
				for _, id := range ids {
					report, err := imp.Import(cmd.Context(), id, dryRun)
					if err != nil {
						failures++
						if errors.Is(err, importer.ErrFetchFailure) {
							fmt.Fprintf(out, "release %d: no data upstream\n", id)
							continue
						}
						return err
					}
					renderReport(out, id, report)
					failures += len(report.Failed())
				}
				if failures > 0 {
					return fmt.Errorf("%d import step(s) failed", failures)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report inserts without writing to the catalog")
	return cmd
}
