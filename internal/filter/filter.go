package filter

import (
	"fmt"
	"strconv"
	"strings"

	"hyprwatch/internal/state"
)

// ConfigError reports a filter flag that is invalid for the watched
// entity kind. It is surfaced before any socket is opened.
type ConfigError struct {
	Flag string
	Kind state.Kind
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("--%s cannot be used when watching %s", e.Flag, e.Kind)
}

// Options holds the user-requested predicates. Zero values mean "no
// constraint"; Special distinguishes unset from false via the pointer.
// Predicates compose with logical AND.
type Options struct {
	// Monitor restricts workspaces and clients to one output, matched
	// by exact monitor name.
	Monitor string
	// Workspace restricts clients to one workspace, addressed by
	// numeric id or a name:<value> literal.
	Workspace string
	// Special restricts workspaces to the special (negative id) range
	// or its complement.
	Special *bool
}

// Validate rejects predicate/kind combinations the data model cannot
// satisfy.
func (o Options) Validate(kind state.Kind) error {
	switch kind {
	case state.KindMonitors:
		if o.Monitor != "" {
			return &ConfigError{Flag: "monitor", Kind: kind}
		}
		if o.Workspace != "" {
			return &ConfigError{Flag: "workspace", Kind: kind}
		}
		if o.Special != nil {
			return &ConfigError{Flag: "special", Kind: kind}
		}
	case state.KindWorkspaces:
		if o.Workspace != "" {
			return &ConfigError{Flag: "workspace", Kind: kind}
		}
	case state.KindClients:
		if o.Special != nil {
			return &ConfigError{Flag: "special", Kind: kind}
		}
	}
	return nil
}

// Workspaces returns the subset of workspaces matching the options.
func Workspaces(workspaces []state.Workspace, o Options) []state.Workspace {
	kept := make([]state.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		if o.Monitor != "" && ws.Monitor != o.Monitor {
			continue
		}
		if o.Special != nil && ws.Special() != *o.Special {
			continue
		}
		kept = append(kept, ws)
	}
	return kept
}

// Clients returns the subset of clients matching the options.
func Clients(clients []state.Client, o Options) []state.Client {
	kept := make([]state.Client, 0, len(clients))
	for _, client := range clients {
		if o.Monitor != "" && client.MonitorName != o.Monitor {
			continue
		}
		if o.Workspace != "" && !matchWorkspace(client.Workspace, o.Workspace) {
			continue
		}
		kept = append(kept, client)
	}
	return kept
}

func matchWorkspace(ref state.WorkspaceRef, selector string) bool {
	if name, ok := strings.CutPrefix(selector, "name:"); ok {
		return ref.Name == name
	}
	id, err := strconv.ParseInt(selector, 10, 64)
	if err != nil {
		return false
	}
	return ref.ID == id
}
