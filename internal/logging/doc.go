// Package logging assembles the structured slog loggers used across shellac.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers plus context-aware constructors so
// import runs tag every line with the release id and correlation id. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits log lines with the same shape.
package logging
