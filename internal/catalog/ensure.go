package catalog

import (
	"context"
	"fmt"
	"strings"

	"shellac/internal/logging"
)

// TableSpec describes the shape of one catalog table for the ensure engine:
// the table name, its insertable columns in order, and the natural-key
// columns used for deduplication.
type TableSpec struct {
	Table   string
	Columns []string
	Keys    []string
}

// Row holds one candidate row's values, aligned with its TableSpec.Columns.
type Row []any

// Outcome reports what a single Ensure call did (or, in dry-run mode, would
// have done) for one table.
type Outcome struct {
	Table     string
	Statement string
	Args      []any
	Inserted  int
	Skipped   int
	DryRun    bool
	Err       error
}

// keySeparator joins natural-key values for comparison. The unit separator
// keeps composite keys like ("1","23") and ("12","3") distinct.
const keySeparator = "\x1f"

// Ensure inserts the candidate rows not already present in the table under
// its natural key. Existing rows are matched by comparing natural-key value
// tuples; within the batch the first row per key wins. In dry-run mode the
// computed insert statement and parameters are reported and nothing is
// written. A failing insert is logged and reported via Outcome.Err rather
// than returned, so callers can continue with subsequent tables.
func (s *Store) Ensure(ctx context.Context, spec TableSpec, rows []Row, dryRun bool) Outcome {
	outcome := Outcome{Table: spec.Table, DryRun: dryRun}

	if len(rows) == 0 {
		return outcome
	}

	keys := spec.Keys
	if len(keys) == 0 {
		keys = []string{"id"}
	}

	keyIdx := make([]int, len(keys))
	for i, key := range keys {
		idx := -1
		for j, col := range spec.Columns {
			if col == key {
				idx = j
				break
			}
		}
		if idx < 0 {
			outcome.Err = fmt.Errorf("table %s: key column %q not in column list", spec.Table, key)
			return outcome
		}
		keyIdx[i] = idx
	}

	for i, row := range rows {
		if len(row) != len(spec.Columns) {
			outcome.Err = fmt.Errorf("table %s: row %d has %d values, want %d", spec.Table, i, len(row), len(spec.Columns))
			return outcome
		}
	}

	existing, err := s.existingKeys(ctx, spec, keys, keyIdx, rows)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	var toInsert []Row
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		key := rowKey(row, keyIdx)
		if _, ok := existing[key]; ok {
			outcome.Skipped++
			continue
		}
		if _, ok := seen[key]; ok {
			outcome.Skipped++
			continue
		}
		seen[key] = struct{}{}
		toInsert = append(toInsert, row)
	}

	if len(toInsert) == 0 {
		s.logger.Debug("no rows to insert",
			logging.String(logging.FieldTable, spec.Table),
			logging.Int("candidates", len(rows)))
		return outcome
	}

	statement, args := buildInsert(spec, toInsert)
	outcome.Statement = statement
	outcome.Args = args

	if dryRun {
		outcome.Inserted = len(toInsert)
		s.logger.Info("dry run",
			logging.String(logging.FieldTable, spec.Table),
			logging.String("statement", statement),
			logging.Int("rows", len(toInsert)))
		return outcome
	}

	if _, err := s.execWithRetry(ctx, statement, args...); err != nil {
		s.logger.Error("insert failed",
			logging.String(logging.FieldTable, spec.Table),
			logging.String("statement", statement),
			logging.Error(err))
		outcome.Err = fmt.Errorf("insert into %s: %w", spec.Table, err)
		return outcome
	}

	outcome.Inserted = len(toInsert)
	s.logger.Debug("ensured rows",
		logging.String(logging.FieldTable, spec.Table),
		logging.Int("inserted", outcome.Inserted),
		logging.Int("skipped", outcome.Skipped))
	return outcome
}

// existingKeys queries the table for rows whose key-field values intersect
// the candidate set (one IN clause per key field, combined with AND) and
// returns the set of their composite key strings. The per-field filter is
// conservative pre-filtering; exact matching happens on the composite key.
func (s *Store) existingKeys(ctx context.Context, spec TableSpec, keys []string, keyIdx []int, rows []Row) (map[string]struct{}, error) {
	clauses := make([]string, 0, len(keys))
	var args []any
	for i, key := range keys {
		values := distinctValues(rows, keyIdx[i])
		clauses = append(clauses, quoteIdent(key)+" IN ("+makePlaceholders(len(values))+")")
		args = append(args, values...)
	}

	quotedKeys := make([]string, len(keys))
	for i, key := range keys {
		quotedKeys[i] = quoteIdent(key)
	}

	query := "SELECT " + strings.Join(quotedKeys, ", ") +
		" FROM " + quoteIdent(spec.Table) +
		" WHERE " + strings.Join(clauses, " AND ")

	dbRows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query existing %s rows: %w", spec.Table, err)
	}
	defer dbRows.Close()

	existing := make(map[string]struct{})
	scan := make([]any, len(keys))
	ptrs := make([]any, len(keys))
	for i := range scan {
		ptrs[i] = &scan[i]
	}
	for dbRows.Next() {
		if err := dbRows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan existing %s row: %w", spec.Table, err)
		}
		parts := make([]string, len(scan))
		for i, v := range scan {
			parts[i] = keyText(v)
		}
		existing[strings.Join(parts, keySeparator)] = struct{}{}
	}
	return existing, dbRows.Err()
}

func buildInsert(spec TableSpec, rows []Row) (string, []any) {
	quoted := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		quoted[i] = quoteIdent(col)
	}

	rowPlaceholder := "(" + makePlaceholders(len(spec.Columns)) + ")"
	values := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(spec.Columns))
	for i, row := range rows {
		values[i] = rowPlaceholder
		args = append(args, row...)
	}

	statement := "INSERT INTO " + quoteIdent(spec.Table) +
		" (" + strings.Join(quoted, ", ") + ") VALUES " + strings.Join(values, ", ")
	return statement, args
}

func rowKey(row Row, keyIdx []int) string {
	parts := make([]string, len(keyIdx))
	for i, idx := range keyIdx {
		parts[i] = keyText(row[idx])
	}
	return strings.Join(parts, keySeparator)
}

func distinctValues(rows []Row, idx int) []any {
	seen := make(map[string]struct{}, len(rows))
	values := make([]any, 0, len(rows))
	for _, row := range rows {
		text := keyText(row[idx])
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		values = append(values, row[idx])
	}
	return values
}

func keyText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
