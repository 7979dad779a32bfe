// Package state defines the typed records hyprwatch reconstructs from the
// compositor's query responses and the Loader that fetches them.
//
// Records are point-in-time snapshots: every reload cycle decodes a fresh
// set and nothing is mutated in place or shared across cycles. Field names
// carry the compositor's wire spelling so emitted JSON stays recognizable
// to consumers of the raw protocol; derived fields (exists, shown, active,
// monitorName) are filled in by the enrich package.
//
// The Loader issues one fixed command per entity list and turns malformed
// responses into DecodeError values, which the watch loop treats as a
// skipped cycle rather than a fatal condition.
package state
