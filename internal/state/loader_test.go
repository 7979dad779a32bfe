package state_test

import (
	"errors"
	"fmt"
	"testing"

	"hyprwatch/internal/state"
)

// fakeQuerier serves canned responses keyed by command.
type fakeQuerier struct {
	responses map[string]string
	calls     []string
}

func (q *fakeQuerier) Request(command string) ([]byte, error) {
	q.calls = append(q.calls, command)
	payload, ok := q.responses[command]
	if !ok {
		return nil, fmt.Errorf("unexpected command %q", command)
	}
	return []byte(payload), nil
}

func TestLoaderDecodesMonitors(t *testing.T) {
	querier := &fakeQuerier{responses: map[string]string{
		state.CommandMonitors: `[
			{"id":0,"name":"DP-1","width":2560,"height":1440,"x":0,"y":0,
			 "activeWorkspace":{"id":2,"name":"2"},
			 "specialWorkspace":{"id":0,"name":""},
			 "focused":true}
		]`,
	}}
	loader := state.NewLoader(querier)

	monitors, err := loader.Monitors()
	if err != nil {
		t.Fatalf("Monitors returned error: %v", err)
	}
	if len(monitors) != 1 {
		t.Fatalf("expected 1 monitor, got %d", len(monitors))
	}
	monitor := monitors[0]
	if monitor.Name != "DP-1" || monitor.Width != 2560 || !monitor.Focused {
		t.Fatalf("monitor mismatch: %+v", monitor)
	}
	if monitor.ActiveWorkspace.ID != 2 || monitor.ActiveWorkspace.Name != "2" {
		t.Fatalf("active workspace mismatch: %+v", monitor.ActiveWorkspace)
	}
}

func TestLoaderDecodesWorkspacesAndClients(t *testing.T) {
	querier := &fakeQuerier{responses: map[string]string{
		state.CommandWorkspaces: `[
			{"id":2,"name":"2","monitor":"DP-1","windows":3},
			{"id":-98,"name":"special:scratch","monitor":"DP-1","windows":1}
		]`,
		state.CommandClients: `[
			{"address":"0x55d2","title":"vim","class":"Alacritty","pid":4242,
			 "workspace":{"id":2,"name":"2"},
			 "at":[10,20],"size":[800,600],"floating":true,"monitor":0}
		]`,
	}}
	loader := state.NewLoader(querier)

	workspaces, err := loader.Workspaces()
	if err != nil {
		t.Fatalf("Workspaces returned error: %v", err)
	}
	if len(workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(workspaces))
	}
	if !workspaces[1].Special() {
		t.Fatalf("workspace %d should be special", workspaces[1].ID)
	}
	if workspaces[0].Exists || workspaces[0].Shown || workspaces[0].Active {
		t.Fatalf("loader must not set derived fields: %+v", workspaces[0])
	}

	clients, err := loader.Clients()
	if err != nil {
		t.Fatalf("Clients returned error: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	client := clients[0]
	if client.Class != "Alacritty" || !client.Floating || client.At != [2]int{10, 20} {
		t.Fatalf("client mismatch: %+v", client)
	}
	if client.MonitorName != "" {
		t.Fatalf("loader must not resolve monitorName, got %q", client.MonitorName)
	}
}

func TestLoaderDecodesWorkspaceRules(t *testing.T) {
	querier := &fakeQuerier{responses: map[string]string{
		state.CommandWorkspaceRules: `[
			{"workspaceString":"2","monitor":"DP-1"},
			{"workspaceString":"name:web"},
			{"workspaceString":" 3 "}
		]`,
	}}
	loader := state.NewLoader(querier)

	configured, err := loader.ConfiguredWorkspaces()
	if err != nil {
		t.Fatalf("ConfiguredWorkspaces returned error: %v", err)
	}
	want := []state.ConfiguredWorkspace{
		{ID: 2, Name: "2", Monitor: "DP-1"},
		{Name: "web"},
		{ID: 3, Name: "3"},
	}
	if len(configured) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(configured))
	}
	for i, cw := range configured {
		if cw != want[i] {
			t.Fatalf("rule %d mismatch: got %+v want %+v", i, cw, want[i])
		}
	}
}

func TestLoaderMalformedResponseYieldsDecodeError(t *testing.T) {
	querier := &fakeQuerier{responses: map[string]string{
		state.CommandMonitors:       `unknown request`,
		state.CommandWorkspaceRules: `[{"workspaceString":"fourty-two"}]`,
	}}
	loader := state.NewLoader(querier)

	_, err := loader.Monitors()
	var decodeErr *state.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Command != state.CommandMonitors {
		t.Fatalf("DecodeError names wrong command: %q", decodeErr.Command)
	}

	_, err = loader.ConfiguredWorkspaces()
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError for bad selector, got %v", err)
	}
}

func TestLoaderPropagatesTransportFailures(t *testing.T) {
	loader := state.NewLoader(&fakeQuerier{responses: map[string]string{}})

	_, err := loader.Clients()
	if err == nil {
		t.Fatal("expected error from failing querier")
	}
	var decodeErr *state.DecodeError
	if errors.As(err, &decodeErr) {
		t.Fatalf("transport failure must not be a DecodeError: %v", err)
	}
}
