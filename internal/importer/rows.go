package importer

import (
	"sort"
	"strings"

	"shellac/internal/catalog"
	"shellac/internal/discogs"
)

// Values assigned to every imported row regardless of upstream content.
const (
	importDataQuality = "Burntable"
	importStatus      = "Accepted"
)

// defaultFormatDescription is used when a format entry carries no
// descriptions at all.
const defaultFormatDescription = "LP"

func artistRows(release *discogs.Release) []catalog.Row {
	rows := make([]catalog.Row, 0, len(release.Artists))
	for _, artist := range release.Artists {
		rows = append(rows, catalog.Row{artist.ID, artist.Name, catalog.FoldName(artist.Name)})
	}
	return rows
}

func masterRows(release *discogs.Release) []catalog.Row {
	if release.MasterID == 0 {
		return nil
	}
	return []catalog.Row{
		{release.MasterID, release.Title, release.Year, release.ID, importDataQuality},
	}
}

func releaseRows(release *discogs.Release) []catalog.Row {
	var masterID any
	if release.MasterID != 0 {
		masterID = release.MasterID
	}
	return []catalog.Row{
		{release.ID, release.Title, release.Released, release.Country, "", importDataQuality, masterID, importStatus, release.Year},
	}
}

func releaseArtistRows(release *discogs.Release) []catalog.Row {
	rows := make([]catalog.Row, 0, len(release.Artists))
	for _, artist := range release.Artists {
		rows = append(rows, catalog.Row{release.ID, artist.ID, artist.Name, 1})
	}
	return rows
}

func masterArtistRows(release *discogs.Release) []catalog.Row {
	if release.MasterID == 0 {
		return nil
	}
	rows := make([]catalog.Row, 0, len(release.Artists))
	for _, artist := range release.Artists {
		rows = append(rows, catalog.Row{release.MasterID, artist.ID, artist.Name})
	}
	return rows
}

// labelRows covers only the first label entry; pressing-plant and reissue
// labels beyond it are not cataloged.
func labelRows(release *discogs.Release) []catalog.Row {
	if len(release.Labels) == 0 {
		return nil
	}
	label := release.Labels[0]
	return []catalog.Row{{label.ID, label.Name}}
}

func releaseLabelRows(release *discogs.Release) []catalog.Row {
	if len(release.Labels) == 0 {
		return nil
	}
	label := release.Labels[0]
	if label.CatNo == "" {
		return nil
	}
	return []catalog.Row{
		{release.ID, label.ID, label.Name, label.CatNo, catalog.NormalizeCatNo(label.CatNo)},
	}
}

func formatRows(release *discogs.Release) []catalog.Row {
	rows := make([]catalog.Row, 0, len(release.Formats))
	for _, format := range release.Formats {
		descriptions := defaultFormatDescription
		if format.Descriptions != nil {
			descriptions = strings.Join(format.Descriptions, " ")
		}
		rows = append(rows, catalog.Row{release.ID, format.Name, format.Qty.String(), descriptions})
	}
	return rows
}

func identifierRows(release *discogs.Release) []catalog.Row {
	rows := make([]catalog.Row, 0, len(release.Identifiers))
	for _, identifier := range release.Identifiers {
		rows = append(rows, catalog.Row{release.ID, identifier.Type, identifier.Value, identifier.Description})
	}
	return rows
}

func genreRows(release *discogs.Release) []catalog.Row {
	rows := make([]catalog.Row, 0, len(release.Genres))
	for _, genre := range release.Genres {
		rows = append(rows, catalog.Row{release.ID, genre})
	}
	return rows
}

// trackRows keeps real tracks only (non-empty position, type "track"),
// orders them by their raw position string, and numbers the survivors 1..N.
func trackRows(release *discogs.Release) []catalog.Row {
	tracks := make([]discogs.Track, 0, len(release.Tracklist))
	for _, track := range release.Tracklist {
		if track.Position == "" || track.Type != "track" {
			continue
		}
		tracks = append(tracks, track)
	}
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Position < tracks[j].Position
	})
	rows := make([]catalog.Row, 0, len(tracks))
	for i, track := range tracks {
		rows = append(rows, catalog.Row{release.ID, i + 1, track.Title, track.Position, track.Duration})
	}
	return rows
}
