package catalog

// Table descriptors for the ten catalog tables. Column order here is the
// insert order; surrogate ids on the join tables are assigned by SQLite and
// never appear in a descriptor.
var (
	ArtistTable = TableSpec{
		Table:   "artist",
		Columns: []string{"id", "name", "name_folded"},
		Keys:    []string{"id"},
	}

	MasterTable = TableSpec{
		Table:   "master",
		Columns: []string{"id", "title", "year", "main_release", "data_quality"},
		Keys:    []string{"id"},
	}

	ReleaseTable = TableSpec{
		Table:   "release",
		Columns: []string{"id", "title", "released", "country", "notes", "data_quality", "master_id", "status", "release_year"},
		Keys:    []string{"id"},
	}

	ReleaseArtistTable = TableSpec{
		Table:   "release_artist",
		Columns: []string{"release_id", "artist_id", "artist_name", "extra"},
		Keys:    []string{"release_id", "artist_id"},
	}

	MasterArtistTable = TableSpec{
		Table:   "master_artist",
		Columns: []string{"master_id", "artist_id", "artist_name"},
		Keys:    []string{"master_id", "artist_id"},
	}

	LabelTable = TableSpec{
		Table:   "label",
		Columns: []string{"id", "name"},
		Keys:    []string{"id"},
	}

	ReleaseLabelTable = TableSpec{
		Table:   "release_label",
		Columns: []string{"release_id", "label_id", "label_name", "catno", "normalized_catno"},
		Keys:    []string{"release_id", "label_id"},
	}

	ReleaseFormatTable = TableSpec{
		Table:   "release_format",
		Columns: []string{"release_id", "name", "qty", "descriptions"},
		Keys:    []string{"release_id", "name"},
	}

	ReleaseIdentifierTable = TableSpec{
		Table:   "release_identifier",
		Columns: []string{"release_id", "type", "value", "description"},
		Keys:    []string{"release_id", "type"},
	}

	ReleaseGenreTable = TableSpec{
		Table:   "release_genre",
		Columns: []string{"release_id", "genre"},
		Keys:    []string{"release_id", "genre"},
	}

	ReleaseTrackTable = TableSpec{
		Table:   "release_track",
		Columns: []string{"release_id", "sequence", "title", "position", "duration"},
		Keys:    []string{"release_id", "title"},
	}
)

// Tables lists every catalog table descriptor in dependency order.
var Tables = []TableSpec{
	ArtistTable,
	MasterTable,
	ReleaseTable,
	ReleaseArtistTable,
	MasterArtistTable,
	LabelTable,
	ReleaseLabelTable,
	ReleaseFormatTable,
	ReleaseIdentifierTable,
	ReleaseGenreTable,
	ReleaseTrackTable,
}
