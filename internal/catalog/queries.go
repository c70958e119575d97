package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Artist is one artist row.
type Artist struct {
	ID   int64
	Name string
}

// MasterSummary is one row of the masters-by-artist listing.
type MasterSummary struct {
	MasterID   int64
	Title      string
	Format     string
	ArtistID   int64
	ArtistName string
}

// MasterFilter narrows the masters-by-artist listing.
type MasterFilter struct {
	Country     string
	Format      string
	TitlePrefix string
}

// LabeledRelease is one row of the catalog-number lookup.
type LabeledRelease struct {
	ReleaseID       int64
	Title           string
	LabelID         int64
	LabelName       string
	CatNo           string
	NormalizedCatNo string
}

// ReleaseSummary aggregates one release with its per-table row counts.
type ReleaseSummary struct {
	ID          int64
	Title       string
	Released    string
	Country     string
	MasterID    int64
	Status      string
	ReleaseYear int
	Artists     int
	Labels      int
	Formats     int
	Identifiers int
	Genres      int
	Tracks      int
}

const mastersLimit = 50

// SearchArtists finds artists whose folded name starts with the folded
// prefix, up to limit rows.
func (s *Store) SearchArtists(ctx context.Context, prefix string, limit int) ([]Artist, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := escapeLike(FoldName(prefix)) + "%"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM artist WHERE name_folded LIKE ? ESCAPE '\' ORDER BY name LIMIT ?`,
		pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// ArtistByName returns the artist exactly matching the folded name, or nil.
func (s *Store) ArtistByName(ctx context.Context, name string) (*Artist, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM artist WHERE name_folded = ? LIMIT 1`, FoldName(name))
	var a Artist
	if err := row.Scan(&a.ID, &a.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("artist by name: %w", err)
	}
	return &a, nil
}

// MastersByArtist lists masters credited to an artist, one row per master,
// optionally filtered by release country, format name, and title prefix.
func (s *Store) MastersByArtist(ctx context.Context, artistID int64, filter MasterFilter) ([]MasterSummary, error) {
	query := `SELECT r.master_id, m.title, rf.name, ma.artist_id, a.name
		FROM master_artist ma
		INNER JOIN master m ON ma.master_id = m.id
		INNER JOIN "release" r ON r.master_id = m.id
		INNER JOIN release_format rf ON r.id = rf.release_id
		INNER JOIN artist a ON a.id = ma.artist_id
		WHERE ma.artist_id = ?`
	args := []any{artistID}

	if prefix := strings.TrimSpace(filter.TitlePrefix); prefix != "" {
		query += ` AND m.title LIKE ? ESCAPE '\'`
		args = append(args, escapeLike(prefix)+"%")
	}
	if format := strings.TrimSpace(filter.Format); format != "" {
		query += ` AND rf.name = ?`
		args = append(args, format)
	}
	if country := strings.TrimSpace(filter.Country); country != "" {
		query += ` AND r.country = ?`
		args = append(args, country)
	}

	query += fmt.Sprintf(` GROUP BY r.master_id LIMIT %d`, mastersLimit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("masters by artist: %w", err)
	}
	defer rows.Close()

	var masters []MasterSummary
	for rows.Next() {
		var m MasterSummary
		if err := rows.Scan(&m.MasterID, &m.Title, &m.Format, &m.ArtistID, &m.ArtistName); err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, rows.Err()
}

// ReleasesByCatNo looks up release/label rows by catalog number. The input is
// normalized with the same function the importer uses to derive
// normalized_catno.
func (s *Store) ReleasesByCatNo(ctx context.Context, catno string) ([]LabeledRelease, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rl.release_id, COALESCE(r.title, ''), rl.label_id, rl.label_name, rl.catno, rl.normalized_catno
		FROM release_label rl
		LEFT JOIN "release" r ON r.id = rl.release_id
		WHERE rl.normalized_catno = ?`,
		NormalizeCatNo(catno))
	if err != nil {
		return nil, fmt.Errorf("releases by catno: %w", err)
	}
	defer rows.Close()

	var releases []LabeledRelease
	for rows.Next() {
		var lr LabeledRelease
		if err := rows.Scan(&lr.ReleaseID, &lr.Title, &lr.LabelID, &lr.LabelName, &lr.CatNo, &lr.NormalizedCatNo); err != nil {
			return nil, err
		}
		releases = append(releases, lr)
	}
	return releases, rows.Err()
}

// GetReleaseSummary fetches one release row plus its per-table row counts.
// Returns nil when the release is not in the catalog.
func (s *Store) GetReleaseSummary(ctx context.Context, id int64) (*ReleaseSummary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(released, ''), COALESCE(country, ''),
			COALESCE(master_id, 0), COALESCE(status, ''), COALESCE(release_year, 0)
		FROM "release" WHERE id = ?`, id)

	summary := &ReleaseSummary{}
	err := row.Scan(&summary.ID, &summary.Title, &summary.Released, &summary.Country,
		&summary.MasterID, &summary.Status, &summary.ReleaseYear)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get release: %w", err)
	}

	counts := []struct {
		table string
		dest  *int
	}{
		{"release_artist", &summary.Artists},
		{"release_label", &summary.Labels},
		{"release_format", &summary.Formats},
		{"release_identifier", &summary.Identifiers},
		{"release_genre", &summary.Genres},
		{"release_track", &summary.Tracks},
	}
	for _, c := range counts {
		query := `SELECT COUNT(1) FROM ` + quoteIdent(c.table) + ` WHERE release_id = ?`
		if err := s.db.QueryRowContext(ctx, query, id).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return summary, nil
}

// Stats returns row counts for every catalog table.
func (s *Store) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64, len(Tables))
	for _, spec := range Tables {
		var count int64
		query := `SELECT COUNT(1) FROM ` + quoteIdent(spec.Table)
		if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", spec.Table, err)
		}
		stats[spec.Table] = count
	}
	return stats, nil
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
