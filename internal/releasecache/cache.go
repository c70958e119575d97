package releasecache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"shellac/internal/logging"
)

// ErrCorrupt marks a cache entry that exists but cannot be deserialized.
var ErrCorrupt = errors.New("corrupt cache entry")

// Cache stores one serialized release document per external id.
type Cache struct {
	dir    string
	logger *slog.Logger
}

// New creates a cache rooted at dir. The directory is created lazily on the
// first Put.
func New(dir string, logger *slog.Logger) *Cache {
	return &Cache{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "releasecache"),
	}
}

// Path returns the deterministic location for an id's cache entry.
func (c *Cache) Path(id int64) string {
	return filepath.Join(c.dir, strconv.FormatInt(id, 10)+".json")
}

// Get returns the cached payload for id. A missing entry yields (nil, nil).
// An entry that is not valid JSON yields ErrCorrupt wrapped with the path.
func (c *Cache) Get(id int64) ([]byte, error) {
	path := c.Path(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, path)
	}

	c.logger.Debug("cache hit",
		logging.Int64(logging.FieldReleaseID, id),
		logging.Int("bytes", len(data)))
	return data, nil
}

// Put writes the payload for id atomically and returns the entry's location.
func (c *Cache) Put(id int64, data []byte) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}

	path := c.Path(id)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename temp file: %w", err)
	}

	c.logger.Debug("cached release",
		logging.Int64(logging.FieldReleaseID, id),
		logging.String("path", path))
	return path, nil
}

// Count returns the number of cache entries on disk.
func (c *Cache) Count() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache directory: %w", err)
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			count++
		}
	}
	return count, nil
}

// Clear removes every cache entry and returns how many were deleted.
func (c *Cache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache directory: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove cache entry: %w", err)
		}
		removed++
	}
	return removed, nil
}

// Dir returns the cache root directory.
func (c *Cache) Dir() string {
	return c.dir
}
