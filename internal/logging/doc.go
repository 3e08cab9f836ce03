// Package logging assembles structured slog loggers and formatting helpers
// used across recipebox.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so command code can tag log lines
// with the running command, the invocation id, and the recipe being touched.
// A no-op logger is provided for tests and for wiring that cannot fail.
//
// Command output goes to stdout; logs default to stderr so tables and JSON
// stay machine-readable.
package logging
