// Command shellac imports releases from the upstream catalog API into a
// local SQLite database and answers queries against it.
package main
