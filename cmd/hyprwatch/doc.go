// Package main hosts the hyprwatch CLI entrypoint and command graph.
//
// The Cobra-based command tree selects the watched entity kind,
// validates filter flags before any socket is opened, resolves
// configuration, and wires the watch loop to a JSON or table emitter on
// stdout. Diagnostics go to stderr so the snapshot stream stays
// machine-readable.
package main
