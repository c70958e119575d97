// Package releasecache persists fetched upstream release documents on disk.
//
// Storage is one JSON file per external id, written atomically, holding the
// verbatim upstream payload. Entries never expire: upstream releases are
// treated as immutable once published, so a hit is served unconditionally.
// A file that exists but does not hold valid JSON is reported as ErrCorrupt,
// never silently treated as a miss.
package releasecache
