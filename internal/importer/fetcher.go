package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"shellac/internal/discogs"
	"shellac/internal/logging"
	"shellac/internal/releasecache"
)

// Fetcher resolves release ids against the on-disk cache first and the
// upstream API second. Upstream responses are written to the cache before
// they are returned, so a release is fetched over the network at most once.
type Fetcher struct {
	client *discogs.Client
	cache  *releasecache.Cache
	logger *slog.Logger
}

// NewFetcher wires a Fetcher from an upstream client and a release cache.
func NewFetcher(client *discogs.Client, cache *releasecache.Cache, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Fetcher{
		client: client,
		cache:  cache,
		logger: logging.NewComponentLogger(logger, "fetcher"),
	}
}

// Fetch returns the release record for id, or (nil, nil) when the upstream
// has no data for it. Corrupt cache entries are surfaced as errors wrapping
// releasecache.ErrCorrupt rather than silently refetched.
func (f *Fetcher) Fetch(ctx context.Context, id int64) (*discogs.Release, error) {
	cached, err := f.cache.Get(id)
	if err != nil {
		return nil, fmt.Errorf("cache lookup for release %d: %w", id, err)
	}
	if cached != nil {
		var release discogs.Release
		if err := json.Unmarshal(cached, &release); err != nil {
			return nil, fmt.Errorf("%w: decode cached release %d: %v", releasecache.ErrCorrupt, id, err)
		}
		return &release, nil
	}

	doc, err := f.client.GetRelease(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	path, err := f.cache.Put(id, doc.Raw)
	if err != nil {
		f.logger.Warn("failed to cache release",
			logging.Int64(logging.FieldReleaseID, id),
			logging.Error(err))
	} else {
		f.logger.Debug("cached release",
			logging.Int64(logging.FieldReleaseID, id),
			logging.String("path", path))
	}
	return &doc.Release, nil
}
