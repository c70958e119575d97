package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellac/internal/config"
	"shellac/internal/releasecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Release cache utilities",
	}

	cacheCmd.AddCommand(newCacheInfoCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func (c *commandContext) openCache() (*config.Config, *releasecache.Cache, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.logger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, releasecache.New(cfg.Paths.CacheDir, logger), nil
}

func newCacheInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cached release count and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			count, err := cache.Count()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache directory: %s\n", cache.Dir())
			fmt.Fprintf(out, "Cached releases: %d\n", count)
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached releases",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			removed, err := cache.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached release(s)\n", removed)
			return nil
		},
	}
}
