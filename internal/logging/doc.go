// Package logging assembles the structured slog loggers hyprwatch uses
// for diagnostics. Output goes to stderr (optionally fanned out to a
// file) because stdout is reserved for the snapshot stream. The console
// handler favors compact single-line records; the json format exists
// for supervisors that ingest logs.
package logging
