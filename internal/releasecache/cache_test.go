package releasecache

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	cache := New(filepath.Join(t.TempDir(), "releases"), nil)

	payload := []byte(`{"id": 100, "title": "T"}`)
	path, err := cache.Put(100, payload)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if filepath.Base(path) != "100.json" {
		t.Errorf("unexpected entry name: %q", path)
	}

	got, err := cache.Get(100)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload not byte-identical: got %q want %q", got, payload)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	cache := New(t.TempDir(), nil)
	got, err := cache.Get(42)
	if err != nil {
		t.Fatalf("miss must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil payload on miss, got %q", got)
	}
}

func TestGetCorruptEntrySurfaced(t *testing.T) {
	dir := t.TempDir()
	cache := New(dir, nil)
	if err := os.WriteFile(filepath.Join(dir, "7.json"), []byte("{truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := cache.Get(7)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestPutOverwritesExisting(t *testing.T) {
	cache := New(t.TempDir(), nil)
	if _, err := cache.Put(5, []byte(`{"v": 1}`)); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Put(5, []byte(`{"v": 2}`)); err != nil {
		t.Fatal(err)
	}
	got, err := cache.Get(5)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"v": 2}` {
		t.Errorf("last write must win, got %q", got)
	}
}

func TestCountAndClear(t *testing.T) {
	cache := New(t.TempDir(), nil)
	for id := int64(1); id <= 3; id++ {
		if _, err := cache.Put(id, []byte(`{}`)); err != nil {
			t.Fatal(err)
		}
	}

	count, err := cache.Count()
	if err != nil || count != 3 {
		t.Fatalf("Count = %d, %v; want 3", count, err)
	}

	removed, err := cache.Clear()
	if err != nil || removed != 3 {
		t.Fatalf("Clear = %d, %v; want 3", removed, err)
	}

	count, err = cache.Count()
	if err != nil || count != 0 {
		t.Fatalf("Count after clear = %d, %v; want 0", count, err)
	}
}

func TestCountOnMissingDirectory(t *testing.T) {
	cache := New(filepath.Join(t.TempDir(), "never-created"), nil)
	count, err := cache.Count()
	if err != nil || count != 0 {
		t.Fatalf("Count = %d, %v; want 0 on missing dir", count, err)
	}
}
