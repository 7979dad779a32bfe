package event

import (
	"strings"

	"hyprwatch/internal/state"
)

// Event is one decoded notification from the compositor's event stream.
// The wire format is name>>arg1,arg2,... with no escaping; events
// without a payload carry an empty Args slice.
type Event struct {
	Name string
	Args []string
}

// Decode parses a raw event line. It never fails: unknown names are
// legal (the vocabulary grows with compositor releases) and classify as
// irrelevant.
func Decode(line string) Event {
	name, payload, found := strings.Cut(line, ">>")
	if !found {
		return Event{Name: line}
	}
	if payload == "" {
		return Event{Name: name}
	}
	return Event{Name: name, Args: strings.Split(payload, ",")}
}

// Relevance is the closed set of entity kinds an event can invalidate.
type Relevance uint8

// Irrelevant events trigger no reload for any watcher.
const Irrelevant Relevance = 0

const (
	relevantMonitors Relevance = 1 << iota
	relevantWorkspaces
	relevantClients
)

// Includes reports whether watchers of the given kind must reload.
func (r Relevance) Includes(kind state.Kind) bool {
	switch kind {
	case state.KindMonitors:
		return r&relevantMonitors != 0
	case state.KindWorkspaces:
		return r&relevantWorkspaces != 0
	case state.KindClients:
		return r&relevantClients != 0
	default:
		return false
	}
}

// relevanceByName maps the compositor's event vocabulary to the entity
// kinds whose snapshots it can change. Topology events (monitors
// appearing or vanishing, workspaces moving) fan out to dependent
// kinds: workspace placement feeds the derived monitorName on clients,
// so workspace switches invalidate client snapshots too. Focus changes
// (focusedmon) touch no client field and stay out of the client set.
var relevanceByName = map[string]Relevance{
	"focusedmon":     relevantMonitors | relevantWorkspaces,
	"monitoradded":   relevantMonitors | relevantWorkspaces | relevantClients,
	"monitorremoved": relevantMonitors | relevantWorkspaces | relevantClients,

	"workspace":        relevantWorkspaces | relevantClients,
	"createworkspace":  relevantWorkspaces | relevantClients,
	"destroyworkspace": relevantWorkspaces | relevantClients,
	"moveworkspace":    relevantWorkspaces | relevantClients,
	"activespecial":    relevantWorkspaces,

	"openwindow":         relevantWorkspaces | relevantClients,
	"closewindow":        relevantWorkspaces | relevantClients,
	"movewindow":         relevantWorkspaces | relevantClients,
	"changefloatingmode": relevantClients,
	"fullscreen":         relevantClients,
	"windowtitle":        relevantClients,
	"activewindowv2":     relevantClients,
}

// Classify maps an event to the kinds that must refresh. Events outside
// the known vocabulary are Irrelevant.
func Classify(ev Event) Relevance {
	return relevanceByName[ev.Name]
}
