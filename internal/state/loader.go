package state

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Query commands understood by the compositor's request socket. The j/
// prefix selects JSON responses. These strings are part of the
// compositor's published protocol and must not change.
const (
	CommandMonitors       = "j/monitors"
	CommandWorkspaces     = "j/workspaces"
	CommandClients        = "j/clients"
	CommandWorkspaceRules = "j/workspacerules"
)

// Querier performs one synchronous request/response exchange on the
// compositor's query socket.
type Querier interface {
	Request(command string) ([]byte, error)
}

// DecodeError reports a query response that did not match the expected
// shape. It aborts the current reload cycle but never the process.
type DecodeError struct {
	Command string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Command, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Loader fetches and decodes compositor state over a query channel. It
// issues only the commands the watched entity kind needs; callers own
// the serialization of concurrent use (there is none in the watch loop).
type Loader struct {
	querier Querier
}

// NewLoader returns a Loader bound to the given query channel.
func NewLoader(querier Querier) *Loader {
	return &Loader{querier: querier}
}

// Monitors returns the compositor's current monitor list.
func (l *Loader) Monitors() ([]Monitor, error) {
	var monitors []Monitor
	if err := l.load(CommandMonitors, &monitors); err != nil {
		return nil, err
	}
	return monitors, nil
}

// Workspaces returns the compositor's live workspace list. Derived
// fields are zero; the enricher fills them in.
func (l *Loader) Workspaces() ([]Workspace, error) {
	var workspaces []Workspace
	if err := l.load(CommandWorkspaces, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Clients returns the compositor's current window list.
func (l *Loader) Clients() ([]Client, error) {
	var clients []Client
	if err := l.load(CommandClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// ConfiguredWorkspaces returns the workspace rules declared in the
// compositor configuration, the source for synthesized empty-workspace
// entries.
func (l *Loader) ConfiguredWorkspaces() ([]ConfiguredWorkspace, error) {
	var rules []workspaceRule
	if err := l.load(CommandWorkspaceRules, &rules); err != nil {
		return nil, err
	}

	configured := make([]ConfiguredWorkspace, 0, len(rules))
	for _, rule := range rules {
		cw, err := rule.configured()
		if err != nil {
			return nil, &DecodeError{Command: CommandWorkspaceRules, Err: err}
		}
		configured = append(configured, cw)
	}
	return configured, nil
}

func (l *Loader) load(command string, target any) error {
	payload, err := l.querier.Request(command)
	if err != nil {
		return fmt.Errorf("query %s: %w", command, err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return &DecodeError{Command: command, Err: err}
	}
	return nil
}

// workspaceRule mirrors one entry of the workspace-rules response. The
// workspaceString selector is either a numeric id or a name:<value>
// literal.
type workspaceRule struct {
	WorkspaceString string `json:"workspaceString"`
	Monitor         string `json:"monitor"`
}

func (r workspaceRule) configured() (ConfiguredWorkspace, error) {
	selector := strings.TrimSpace(r.WorkspaceString)
	if selector == "" {
		return ConfiguredWorkspace{}, fmt.Errorf("workspace rule has empty selector")
	}

	cw := ConfiguredWorkspace{Monitor: r.Monitor}
	if name, ok := strings.CutPrefix(selector, "name:"); ok {
		cw.Name = name
		return cw, nil
	}

	id, err := strconv.ParseInt(selector, 10, 64)
	if err != nil {
		return ConfiguredWorkspace{}, fmt.Errorf("workspace rule selector %q is neither an id nor a name", selector)
	}
	cw.ID = id
	cw.Name = selector
	return cw, nil
}
