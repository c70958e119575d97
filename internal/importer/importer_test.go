package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"shellac/internal/catalog"
	"shellac/internal/config"
	"shellac/internal/discogs"
	"shellac/internal/releasecache"
)

const canonicalPayload = `{
  "id": 100,
  "title": "T",
  "master_id": 50,
  "year": 2000,
  "artists": [{"id": 1, "name": "A"}],
  "labels": [{"id": 9, "name": "L", "catno": "xl-785"}],
  "formats": [{"name": "Vinyl", "qty": 1, "descriptions": ["LP"]}],
  "identifiers": [{"type": "Barcode", "value": "123", "description": "d"}],
  "genres": ["Rock"],
  "tracklist": [{"position": "A1", "type_": "track", "title": "S1", "duration": "3:00"}]
}`

type testHarness struct {
	store    *catalog.Store
	cache    *releasecache.Cache
	importer *Importer
	requests *atomic.Int64
}

func newTestHarness(t *testing.T, handler http.HandlerFunc) *testHarness {
	t.Helper()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	base := t.TempDir()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")

	store, err := catalog.Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client, err := discogs.New(server.URL, "shellac-test/1.0", nil, discogs.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("discogs.New failed: %v", err)
	}
	cache := releasecache.New(cfg.Paths.CacheDir, nil)
	fetcher := NewFetcher(client, cache, nil)

	return &testHarness{
		store:    store,
		cache:    cache,
		importer: New(store, fetcher, nil),
		requests: &requests,
	}
}

func serveCanonical(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/releases/100" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, canonicalPayload)
}

func tableCounts(t *testing.T, store *catalog.Store) map[string]int64 {
	t.Helper()
	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	return stats
}

func TestImportCanonicalRelease(t *testing.T) {
	h := newTestHarness(t, serveCanonical)
	ctx := context.Background()

	report, err := h.importer.Import(ctx, 100, false)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if failed := report.Failed(); len(failed) != 0 {
		t.Fatalf("failed outcomes: %+v", failed)
	}
	if report.Release.Title != "T" {
		t.Errorf("release title = %q, want T", report.Release.Title)
	}

	counts := tableCounts(t, h.store)
	for table, count := range counts {
		if count != 1 {
			t.Errorf("table %s has %d rows, want 1", table, count)
		}
	}
	if len(counts) != 11 {
		t.Errorf("stats covers %d tables, want 11", len(counts))
	}

	releases, err := h.store.ReleasesByCatNo(ctx, "XL 785")
	if err != nil {
		t.Fatalf("ReleasesByCatNo failed: %v", err)
	}
	if len(releases) != 1 || releases[0].NormalizedCatNo != "XL785" {
		t.Errorf("catno lookup = %+v, want one row with normalized_catno XL785", releases)
	}

	summary, err := h.store.GetReleaseSummary(ctx, 100)
	if err != nil {
		t.Fatalf("GetReleaseSummary failed: %v", err)
	}
	if summary.Tracks != 1 {
		t.Errorf("summary tracks = %d, want 1", summary.Tracks)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	h := newTestHarness(t, serveCanonical)
	ctx := context.Background()

	first, err := h.importer.Import(ctx, 100, false)
	if err != nil {
		t.Fatalf("first Import failed: %v", err)
	}
	if first.Inserted() != 11 {
		t.Errorf("first run inserted %d rows, want 11", first.Inserted())
	}

	second, err := h.importer.Import(ctx, 100, false)
	if err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if second.Inserted() != 0 {
		t.Errorf("second run inserted %d rows, want 0", second.Inserted())
	}
	for table, count := range tableCounts(t, h.store) {
		if count != 1 {
			t.Errorf("table %s has %d rows after reimport, want 1", table, count)
		}
	}
}

func TestImportServesSecondRunFromCache(t *testing.T) {
	h := newTestHarness(t, serveCanonical)
	ctx := context.Background()

	if _, err := h.importer.Import(ctx, 100, false); err != nil {
		t.Fatalf("first Import failed: %v", err)
	}
	if _, err := h.importer.Import(ctx, 100, false); err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if got := h.requests.Load(); got != 1 {
		t.Errorf("upstream requests = %d, want 1", got)
	}

	cached, err := h.cache.Get(100)
	if err != nil {
		t.Fatalf("cache Get failed: %v", err)
	}
	if string(cached) != canonicalPayload {
		t.Errorf("cached payload differs from upstream response")
	}
}

func TestImportFetchFailureWritesNothing(t *testing.T) {
	h := newTestHarness(t, serveCanonical)

	_, err := h.importer.Import(context.Background(), 999, false)
	if !errors.Is(err, ErrFetchFailure) {
		t.Fatalf("err = %v, want ErrFetchFailure", err)
	}
	for table, count := range tableCounts(t, h.store) {
		if count != 0 {
			t.Errorf("table %s has %d rows after failed fetch, want 0", table, count)
		}
	}
}

func TestImportDryRunLeavesStoreEmpty(t *testing.T) {
	h := newTestHarness(t, serveCanonical)
	ctx := context.Background()

	report, err := h.importer.Import(ctx, 100, true)
	if err != nil {
		t.Fatalf("dry-run Import failed: %v", err)
	}
	if !report.DryRun {
		t.Error("report not marked dry run")
	}
	if report.Inserted() != 11 {
		t.Errorf("dry run would insert %d rows, want 11", report.Inserted())
	}
	for _, outcome := range report.Outcomes {
		if outcome.Statement == "" {
			t.Errorf("table %s outcome missing statement", outcome.Table)
		}
	}
	for table, count := range tableCounts(t, h.store) {
		if count != 0 {
			t.Errorf("table %s has %d rows after dry run, want 0", table, count)
		}
	}
}

func TestImportSurfacesCorruptCache(t *testing.T) {
	h := newTestHarness(t, serveCanonical)

	path := h.cache.Path(100)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir cache dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"id": 100`), 0o644); err != nil {
		t.Fatalf("plant corrupt entry: %v", err)
	}

	_, err := h.importer.Import(context.Background(), 100, false)
	if !errors.Is(err, releasecache.ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

func TestLockExcludesConcurrentImports(t *testing.T) {
	dir := t.TempDir()

	first := NewLock(dir)
	if err := first.Acquire(); err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	defer first.Release()

	second := NewLock(dir)
	if err := second.Acquire(); !errors.Is(err, ErrLocked) {
		t.Errorf("second Acquire err = %v, want ErrLocked", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if err := second.Acquire(); err != nil {
		t.Errorf("Acquire after release failed: %v", err)
	}
	_ = second.Release()
}
