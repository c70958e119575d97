package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"shellac/internal/catalog"
	"shellac/internal/discogs"
	"shellac/internal/logging"
)

// ErrFetchFailure marks an import whose release could not be obtained at
// all, either because the upstream has no data for the id or the response
// was unusable. Nothing is written to the catalog in that case.
var ErrFetchFailure = errors.New("fetch failure")

// Importer turns one upstream release into rows across the catalog tables.
type Importer struct {
	store   *catalog.Store
	fetcher *Fetcher
	logger  *slog.Logger
}

// New wires an Importer from an open catalog store and a fetcher.
func New(store *catalog.Store, fetcher *Fetcher, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{
		store:   store,
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "importer"),
	}
}

// Report describes one import run: the decoded release and the per-table
// outcomes in the order the tables were ensured.
type Report struct {
	Release  *discogs.Release
	Outcomes []catalog.Outcome
	DryRun   bool
}

// Inserted sums the rows inserted (or, under dry run, that would be
// inserted) across all tables.
func (r *Report) Inserted() int {
	total := 0
	for _, outcome := range r.Outcomes {
		total += outcome.Inserted
	}
	return total
}

// Failed returns the outcomes whose ensure step failed.
func (r *Report) Failed() []catalog.Outcome {
	var failed []catalog.Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Import fetches release id and ensures its rows across every catalog table
// in dependency order. A table whose ensure fails is recorded in the report
// and the remaining tables still run; only a fetch that yields no release
// fails the run. Under dry run the report lists the inserts that would
// happen and the store is left untouched.
func (i *Importer) Import(ctx context.Context, id int64, dryRun bool) (*Report, error) {
	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = WithRequestID(ctx, requestID)
	}
	logger := i.logger.With(
		logging.String(logging.FieldCorrelationID, requestID),
		logging.Int64(logging.FieldReleaseID, id))

	release, err := i.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if release == nil {
		return nil, fmt.Errorf("%w: release %d", ErrFetchFailure, id)
	}
	logger.Info("importing release",
		logging.String("title", release.Title),
		logging.Bool("dry_run", dryRun))

	report := &Report{Release: release, DryRun: dryRun}
	ensure := func(spec catalog.TableSpec, rows []catalog.Row) {
		if len(rows) == 0 {
			return
		}
		outcome := i.store.Ensure(ctx, spec, rows, dryRun)
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Err != nil {
			logger.Warn("table import failed",
				logging.String(logging.FieldTable, spec.Table),
				logging.Error(outcome.Err))
		}
	}

	ensure(catalog.ArtistTable, artistRows(release))
	ensure(catalog.MasterTable, masterRows(release))
	ensure(catalog.ReleaseTable, releaseRows(release))
	ensure(catalog.ReleaseArtistTable, releaseArtistRows(release))
	ensure(catalog.MasterArtistTable, masterArtistRows(release))
	ensure(catalog.LabelTable, labelRows(release))
	ensure(catalog.ReleaseLabelTable, releaseLabelRows(release))
	ensure(catalog.ReleaseFormatTable, formatRows(release))
	ensure(catalog.ReleaseIdentifierTable, identifierRows(release))
	ensure(catalog.ReleaseGenreTable, genreRows(release))
	ensure(catalog.ReleaseTrackTable, trackRows(release))

	logger.Info("import finished",
		logging.Int("tables", len(report.Outcomes)),
		logging.Int("inserted", report.Inserted()),
		logging.Int("failed", len(report.Failed())),
		logging.Bool("dry_run", dryRun))
	return report, nil
}
