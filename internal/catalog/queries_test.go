package catalog

import (
	"context"
	"testing"
)

func seedCatalog(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	ensures := []struct {
		spec TableSpec
		rows []Row
	}{
		{ArtistTable, []Row{
			{int64(1), "Beyoncé", FoldName("Beyoncé")},
			{int64(2), "Taylor Swift", FoldName("Taylor Swift")},
		}},
		{MasterTable, []Row{
			{int64(50), "Folklore", 2020, int64(100), "Burntable"},
		}},
		{ReleaseTable, []Row{
			{int64(100), "Folklore", "2020-08-07", "US", "", "Burntable", int64(50), "Accepted", 2020},
			{int64(101), "Folklore", "2020-11-20", "UK", "", "Burntable", int64(50), "Accepted", 2020},
		}},
		{MasterArtistTable, []Row{
			{int64(50), int64(2), "Taylor Swift"},
		}},
		{ReleaseFormatTable, []Row{
			{int64(100), "Vinyl", "2", "LP Album"},
			{int64(101), "CD", "1", "Album"},
		}},
		{ReleaseLabelTable, []Row{
			{int64(100), int64(9), "Republic Records", "xl-785", NormalizeCatNo("xl-785")},
		}},
	}
	for _, e := range ensures {
		if outcome := store.Ensure(ctx, e.spec, e.rows, false); outcome.Err != nil {
			t.Fatalf("seed %s: %v", e.spec.Table, outcome.Err)
		}
	}
}

func TestSearchArtistsFoldsDiacritics(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	artists, err := store.SearchArtists(context.Background(), "beyonce", 20)
	if err != nil {
		t.Fatalf("SearchArtists failed: %v", err)
	}
	if len(artists) != 1 || artists[0].Name != "Beyoncé" {
		t.Fatalf("expected Beyoncé, got %+v", artists)
	}
}

func TestSearchArtistsPrefixOnly(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	artists, err := store.SearchArtists(context.Background(), "Tay", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(artists) != 1 || artists[0].ID != 2 {
		t.Fatalf("expected Taylor Swift only, got %+v", artists)
	}

	artists, err = store.SearchArtists(context.Background(), "wift", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(artists) != 0 {
		t.Fatalf("substring must not match prefix search, got %+v", artists)
	}
}

func TestArtistByName(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	artist, err := store.ArtistByName(context.Background(), "taylor swift")
	if err != nil {
		t.Fatal(err)
	}
	if artist == nil || artist.ID != 2 {
		t.Fatalf("expected id 2, got %+v", artist)
	}

	missing, err := store.ArtistByName(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown artist, got %+v", missing)
	}
}

func TestMastersByArtistFilters(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)
	ctx := context.Background()

	all, err := store.MastersByArtist(ctx, 2, MasterFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].MasterID != 50 || all[0].ArtistName != "Taylor Swift" {
		t.Fatalf("unexpected masters: %+v", all)
	}

	vinylUS, err := store.MastersByArtist(ctx, 2, MasterFilter{Country: "US", Format: "Vinyl"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vinylUS) != 1 || vinylUS[0].Format != "Vinyl" {
		t.Fatalf("country+format filter broken: %+v", vinylUS)
	}

	none, err := store.MastersByArtist(ctx, 2, MasterFilter{Country: "US", Format: "CD"})
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no US CD masters, got %+v", none)
	}

	titled, err := store.MastersByArtist(ctx, 2, MasterFilter{TitlePrefix: "Folk"})
	if err != nil {
		t.Fatal(err)
	}
	if len(titled) != 1 {
		t.Fatalf("title prefix filter broken: %+v", titled)
	}
}

func TestReleasesByCatNoNormalizesInput(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	// Stored catno is "xl-785"; lookup input differs in case and punctuation.
	releases, err := store.ReleasesByCatNo(context.Background(), "XL 785")
	if err != nil {
		t.Fatal(err)
	}
	if len(releases) != 1 {
		t.Fatalf("expected one release, got %+v", releases)
	}
	got := releases[0]
	if got.ReleaseID != 100 || got.NormalizedCatNo != "XL785" || got.Title != "Folklore" {
		t.Errorf("unexpected lookup row: %+v", got)
	}
}

func TestGetReleaseSummary(t *testing.T) {
	store := newTestStore(t)
	seedCatalog(t, store)

	summary, err := store.GetReleaseSummary(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}
	if summary == nil {
		t.Fatal("expected summary for release 100")
	}
	if summary.Title != "Folklore" || summary.MasterID != 50 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.Labels != 1 || summary.Formats != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}

	missing, err := store.GetReleaseSummary(context.Background(), 404)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown release, got %+v", missing)
	}
}
