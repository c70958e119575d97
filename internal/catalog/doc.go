// Package catalog persists discography metadata in SQLite and exposes the
// idempotent upsert engine the import pipeline is built on.
//
// The Store manages the database connection, schema initialization, and the
// generic Ensure operation: given a table descriptor, a batch of candidate
// rows, and the table's natural key, it inserts only the rows not already
// present. Natural-key deduplication is enforced by Ensure, not by database
// constraints, so schema.sql deliberately carries no UNIQUE indexes on the
// natural keys.
//
// The package also owns the read queries the CLI exposes (artist search,
// masters by artist, catalog-number lookup) and the derived search keys they
// rely on (normalized catalog numbers, folded artist names). Schema changes
// bump the version in schema.go; users clear the database to adopt the new
// schema.
package catalog
