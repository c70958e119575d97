package discogs

import "encoding/json"

// Release is the canonical record for one catalog release as returned by the
// upstream API. Fields mirror the upstream JSON; only the subset the import
// pipeline consumes is declared.
type Release struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Released string `json:"released"`
	Country  string `json:"country"`
	Year     int    `json:"year"`
	MasterID int64  `json:"master_id"`

	Artists     []ArtistRef  `json:"artists"`
	Labels      []LabelRef   `json:"labels"`
	Formats     []Format     `json:"formats"`
	Identifiers []Identifier `json:"identifiers"`
	Genres      []string     `json:"genres"`
	Tracklist   []Track      `json:"tracklist"`
}

// ArtistRef is one credited artist on a release.
type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LabelRef is one label entry with its catalog number.
type LabelRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

// Format describes one physical format entry (a box set may declare several).
// Qty is a json.Number because the upstream API has shipped it both as a
// string and as a bare number.
type Format struct {
	Name         string      `json:"name"`
	Qty          json.Number `json:"qty"`
	Descriptions []string    `json:"descriptions"`
}

// Identifier is a barcode, matrix number, or similar release identifier.
type Identifier struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Track is one tracklist entry. Entries with an empty position or a type
// other than "track" (headings, index tracks) are not importable.
type Track struct {
	Position string `json:"position"`
	Type     string `json:"type_"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Document pairs a decoded release with the verbatim upstream payload, so the
// cache can persist exactly what the API returned.
type Document struct {
	Release Release
	Raw     []byte
}
