// Package logging assembles structured slog loggers and formatting helpers used
// across kd.
//
// It owns the console and JSON handlers, maps configured levels and -v counts
// onto slog levels, and exposes small attribute helpers plus a context hook so
// log lines carry the running command. A no-op logger is provided for tests and
// for wiring code that has no logger yet.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape.
package logging
