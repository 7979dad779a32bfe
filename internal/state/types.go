package state

import "fmt"

// Kind selects which compositor entity a command watches.
type Kind string

const (
	KindMonitors   Kind = "monitors"
	KindWorkspaces Kind = "workspaces"
	KindClients    Kind = "clients"
)

// ParseKind converts a subcommand name into a Kind.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindMonitors, KindWorkspaces, KindClients:
		return Kind(name), nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", name)
	}
}

// WorkspaceRef is the id/name pair the compositor embeds wherever it
// references a workspace (monitor active/special slots, client placement).
type WorkspaceRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Monitor is one entry of the compositor's monitor list.
type Monitor struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	X                int          `json:"x"`
	Y                int          `json:"y"`
	RefreshRate      float64      `json:"refreshRate,omitempty"`
	Scale            float64      `json:"scale,omitempty"`
	ActiveWorkspace  WorkspaceRef `json:"activeWorkspace"`
	SpecialWorkspace WorkspaceRef `json:"specialWorkspace"`
	Focused          bool         `json:"focused"`
}

// Workspace is one entry of the compositor's workspace list plus the
// derived fields the enricher fills in. Negative ids denote special
// (scratchpad-style) workspaces.
type Workspace struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Monitor string `json:"monitor"`
	Windows int    `json:"windows"`

	// Derived: Exists is false for workspaces synthesized from
	// configuration rules, Shown marks the workspace currently displayed
	// on its monitor, Active additionally requires that monitor to hold
	// focus.
	Exists bool `json:"exists"`
	Shown  bool `json:"shown"`
	Active bool `json:"active"`
}

// Special reports whether the workspace uses the compositor's special
// (negative) id range.
func (w Workspace) Special() bool { return w.ID < 0 }

// Client is one entry of the compositor's window list. MonitorName is
// derived by the enricher from the workspace placement; it stays empty
// when the workspace cannot be resolved to a monitor.
type Client struct {
	Address     string       `json:"address"`
	Title       string       `json:"title"`
	Class       string       `json:"class"`
	PID         int          `json:"pid,omitempty"`
	Workspace   WorkspaceRef `json:"workspace"`
	At          [2]int       `json:"at"`
	Size        [2]int       `json:"size"`
	Floating    bool         `json:"floating"`
	Fullscreen  int          `json:"fullscreen,omitempty"`
	Monitor     int64        `json:"monitor"`
	MonitorName string       `json:"monitorName"`
}

// ConfiguredWorkspace is a workspace rule declared in the compositor
// configuration. Exactly one of ID or Name is meaningful: rules address
// workspaces either by numeric id (ID > 0) or by name. Monitor is the
// pinned output, when the rule has one.
type ConfiguredWorkspace struct {
	ID      int64
	Name    string
	Monitor string
}
