// Package importer drives the import of one upstream release into the
// catalog store.
//
// A Fetcher resolves a release id to its canonical record, serving from the
// on-disk release cache when possible and writing back on upstream success.
// The Importer then decomposes the record into per-table row batches and
// ensures them in foreign-key dependency order: artists before the release
// and join rows, the master before the release that references it. Each
// table's outcome is collected into a Report; a failing table is logged and
// recorded but never aborts the remaining pipeline. Only a fetch that yields
// no record fails the import as a whole.
package importer
