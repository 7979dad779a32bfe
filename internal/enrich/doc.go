// Package enrich computes the attributes the compositor's raw query
// responses do not carry: which workspace is shown or active, which
// monitor a client sits on, and placeholder entries for workspaces that
// are configured but not instantiated. This is where the tool adds its
// value over the raw protocol, and it is deliberately pure so every
// property is unit-testable without sockets.
package enrich
