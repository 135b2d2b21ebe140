// Package logging builds the slog loggers used across lingopipe, with a
// human-readable console handler for interactive use and a JSON handler for
// machine consumption, plus shared attribute helpers and field names.
package logging
