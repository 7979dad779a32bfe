package enrich_test

import (
	"testing"

	"hyprwatch/internal/enrich"
	"hyprwatch/internal/state"
)

func TestEnrichMarksShownAndActiveWorkspaces(t *testing.T) {
	monitors := []state.Monitor{
		{
			ID: 0, Name: "DP-1", Focused: true,
			ActiveWorkspace: state.WorkspaceRef{ID: 2, Name: "2"},
		},
		{
			ID: 1, Name: "HDMI-A-1", Focused: false,
			ActiveWorkspace: state.WorkspaceRef{ID: 5, Name: "5"},
		},
	}
	workspaces := []state.Workspace{
		{ID: 2, Name: "2", Monitor: "DP-1", Windows: 3},
		{ID: 3, Name: "3", Monitor: "DP-1", Windows: 1},
		{ID: 5, Name: "5", Monitor: "HDMI-A-1", Windows: 2},
	}

	snapshot := enrich.Enrich(monitors, workspaces, nil, nil)

	byID := make(map[int64]state.Workspace)
	for _, ws := range snapshot.Workspaces {
		byID[ws.ID] = ws
	}

	if ws := byID[2]; !ws.Exists || !ws.Shown || !ws.Active {
		t.Fatalf("workspace 2 should be exists+shown+active, got %+v", ws)
	}
	if ws := byID[3]; ws.Shown || ws.Active {
		t.Fatalf("workspace 3 is not displayed, got %+v", ws)
	}
	if ws := byID[5]; !ws.Shown || ws.Active {
		t.Fatalf("workspace 5 is shown on an unfocused monitor, got %+v", ws)
	}
}

// Invariants: at most one shown workspace per monitor, at most one
// active workspace system-wide, and active implies shown.
func TestEnrichShownActiveInvariants(t *testing.T) {
	monitors := []state.Monitor{
		{ID: 0, Name: "DP-1", Focused: true, ActiveWorkspace: state.WorkspaceRef{ID: 1, Name: "1"}},
		{ID: 1, Name: "DP-2", Focused: false, ActiveWorkspace: state.WorkspaceRef{ID: 4, Name: "4"}},
	}
	workspaces := []state.Workspace{
		{ID: 1, Name: "1", Monitor: "DP-1"},
		{ID: 2, Name: "2", Monitor: "DP-1"},
		{ID: 3, Name: "3", Monitor: "DP-2"},
		{ID: 4, Name: "4", Monitor: "DP-2"},
	}

	snapshot := enrich.Enrich(monitors, workspaces, nil, nil)

	shownPerMonitor := make(map[string]int)
	activeTotal := 0
	for _, ws := range snapshot.Workspaces {
		if ws.Shown {
			shownPerMonitor[ws.Monitor]++
		}
		if ws.Active {
			activeTotal++
			if !ws.Shown {
				t.Fatalf("workspace %d is active but not shown", ws.ID)
			}
		}
	}
	for monitor, count := range shownPerMonitor {
		if count > 1 {
			t.Fatalf("monitor %s shows %d workspaces", monitor, count)
		}
	}
	if activeTotal > 1 {
		t.Fatalf("%d active workspaces system-wide", activeTotal)
	}
}

func TestEnrichSynthesizesConfiguredWorkspaces(t *testing.T) {
	monitors := []state.Monitor{
		{ID: 0, Name: "DP-1", Focused: true, ActiveWorkspace: state.WorkspaceRef{ID: 2, Name: "2"}},
	}
	workspaces := []state.Workspace{
		{ID: 2, Name: "2", Monitor: "DP-1", Windows: 1},
	}
	configured := []state.ConfiguredWorkspace{
		{ID: 2, Name: "2"},
		{ID: 3, Name: "3"},
	}

	snapshot := enrich.Enrich(monitors, workspaces, nil, configured)

	if len(snapshot.Workspaces) != 2 {
		t.Fatalf("expected 2 workspaces (1 live, 1 synthesized), got %d", len(snapshot.Workspaces))
	}

	live := snapshot.Workspaces[0]
	if live.ID != 2 || !live.Exists || !live.Shown || !live.Active {
		t.Fatalf("live workspace mismatch: %+v", live)
	}

	placeholder := snapshot.Workspaces[1]
	if placeholder.Name != "3" || placeholder.Exists || placeholder.Shown || placeholder.Active {
		t.Fatalf("placeholder mismatch: %+v", placeholder)
	}
	if placeholder.Monitor != "" {
		t.Fatalf("unpinned placeholder should have no monitor, got %q", placeholder.Monitor)
	}
}

func TestEnrichNeverDuplicatesLiveWorkspaceByName(t *testing.T) {
	workspaces := []state.Workspace{
		{ID: 7, Name: "web", Monitor: "DP-1"},
	}
	configured := []state.ConfiguredWorkspace{
		{Name: "web", Monitor: "DP-1"},
		{Name: "mail"},
	}

	snapshot := enrich.Enrich(nil, workspaces, nil, configured)

	names := make(map[string]int)
	for _, ws := range snapshot.Workspaces {
		names[ws.Name]++
	}
	if names["web"] != 1 {
		t.Fatalf("live workspace duplicated: %v", names)
	}
	if names["mail"] != 1 {
		t.Fatalf("configured workspace missing: %v", names)
	}
}

func TestEnrichKeepsPinnedMonitorOnPlaceholder(t *testing.T) {
	configured := []state.ConfiguredWorkspace{
		{ID: 9, Name: "9", Monitor: "HDMI-A-1"},
	}

	snapshot := enrich.Enrich(nil, nil, nil, configured)
	if len(snapshot.Workspaces) != 1 {
		t.Fatalf("expected 1 synthesized workspace, got %d", len(snapshot.Workspaces))
	}
	if ws := snapshot.Workspaces[0]; ws.Monitor != "HDMI-A-1" || ws.Exists {
		t.Fatalf("placeholder mismatch: %+v", ws)
	}
}

func TestEnrichResolvesClientMonitorNames(t *testing.T) {
	monitors := []state.Monitor{
		{ID: 0, Name: "DP-1", Focused: true, ActiveWorkspace: state.WorkspaceRef{ID: 1, Name: "1"}},
	}
	workspaces := []state.Workspace{
		{ID: 1, Name: "1", Monitor: "DP-1"},
		{ID: 2, Name: "2", Monitor: "DP-1"},
	}
	clients := []state.Client{
		{Address: "0x1", Workspace: state.WorkspaceRef{ID: 1, Name: "1"}},
		{Address: "0x2", Workspace: state.WorkspaceRef{ID: 2, Name: "2"}},
		{Address: "0x3", Workspace: state.WorkspaceRef{ID: 42, Name: "gone"}},
	}

	snapshot := enrich.Enrich(monitors, workspaces, clients, nil)

	if got := snapshot.Clients[0].MonitorName; got != "DP-1" {
		t.Fatalf("client on active workspace: monitorName = %q", got)
	}
	if got := snapshot.Clients[1].MonitorName; got != "DP-1" {
		t.Fatalf("client on background workspace: monitorName = %q", got)
	}
	if got := snapshot.Clients[2].MonitorName; got != "" {
		t.Fatalf("unresolvable workspace must yield empty sentinel, got %q", got)
	}
}

func TestEnrichUsesSpecialWorkspaceReference(t *testing.T) {
	monitors := []state.Monitor{
		{
			ID: 0, Name: "DP-1", Focused: true,
			ActiveWorkspace:  state.WorkspaceRef{ID: 1, Name: "1"},
			SpecialWorkspace: state.WorkspaceRef{ID: -98, Name: "special:scratch"},
		},
	}
	clients := []state.Client{
		{Address: "0xa", Workspace: state.WorkspaceRef{ID: -98, Name: "special:scratch"}},
	}

	snapshot := enrich.Enrich(monitors, nil, clients, nil)
	if got := snapshot.Clients[0].MonitorName; got != "DP-1" {
		t.Fatalf("special workspace client should resolve to DP-1, got %q", got)
	}
}
