package enrich

import (
	"strconv"

	"hyprwatch/internal/state"
)

// Snapshot is one cycle's cross-referenced view of compositor state.
// Workspaces carry exists/shown/active, clients carry monitorName; the
// monitor list passes through unchanged.
type Snapshot struct {
	Monitors   []state.Monitor
	Workspaces []state.Workspace
	Clients    []state.Client
}

// Enrich combines raw query results into a Snapshot. It is pure and
// total: no I/O, no failure modes for well-formed inputs. Any of the
// slices may be nil when the watched kind does not need them.
func Enrich(monitors []state.Monitor, workspaces []state.Workspace, clients []state.Client, configured []state.ConfiguredWorkspace) Snapshot {
	byName := monitorsByName(monitors)
	owners := workspaceOwners(monitors, workspaces)

	enriched := make([]state.Workspace, 0, len(workspaces)+len(configured))
	for _, ws := range workspaces {
		ws.Exists = true
		if monitor, ok := byName[ws.Monitor]; ok {
			ws.Shown = monitor.ActiveWorkspace.ID == ws.ID
			ws.Active = ws.Shown && monitor.Focused
		}
		enriched = append(enriched, ws)
	}
	enriched = append(enriched, synthesize(workspaces, configured)...)

	enrichedClients := make([]state.Client, 0, len(clients))
	for _, client := range clients {
		client.MonitorName = owners[client.Workspace.ID]
		enrichedClients = append(enrichedClients, client)
	}

	return Snapshot{Monitors: monitors, Workspaces: enriched, Clients: enrichedClients}
}

func monitorsByName(monitors []state.Monitor) map[string]state.Monitor {
	byName := make(map[string]state.Monitor, len(monitors))
	for _, monitor := range monitors {
		byName[monitor.Name] = monitor
	}
	return byName
}

// workspaceOwners maps workspace ids to the name of the monitor they
// live on. Monitor active/special references are authoritative;
// workspaces not referenced by any monitor (background workspaces)
// resolve through their own monitor field.
func workspaceOwners(monitors []state.Monitor, workspaces []state.Workspace) map[int64]string {
	owners := make(map[int64]string, len(monitors)+len(workspaces))
	for _, monitor := range monitors {
		owners[monitor.ActiveWorkspace.ID] = monitor.Name
		if monitor.SpecialWorkspace.ID != 0 {
			owners[monitor.SpecialWorkspace.ID] = monitor.Name
		}
	}
	for _, ws := range workspaces {
		if _, claimed := owners[ws.ID]; !claimed && ws.Monitor != "" {
			owners[ws.ID] = ws.Monitor
		}
	}
	return owners
}

// synthesize produces placeholder entries for configured workspaces with
// no live counterpart, so consumers see configured-but-empty workspaces
// instead of gaps. Placeholders never shadow a live workspace with the
// same id or name.
func synthesize(live []state.Workspace, configured []state.ConfiguredWorkspace) []state.Workspace {
	liveIDs := make(map[int64]struct{}, len(live))
	liveNames := make(map[string]struct{}, len(live))
	for _, ws := range live {
		liveIDs[ws.ID] = struct{}{}
		liveNames[ws.Name] = struct{}{}
	}

	var placeholders []state.Workspace
	for _, cw := range configured {
		if cw.ID != 0 {
			if _, ok := liveIDs[cw.ID]; ok {
				continue
			}
		}
		name := cw.Name
		if name == "" && cw.ID != 0 {
			name = strconv.FormatInt(cw.ID, 10)
		}
		if _, ok := liveNames[name]; ok {
			continue
		}
		placeholders = append(placeholders, state.Workspace{
			ID:      cw.ID,
			Name:    name,
			Monitor: cw.Monitor,
		})
		liveNames[name] = struct{}{}
		if cw.ID != 0 {
			liveIDs[cw.ID] = struct{}{}
		}
	}
	return placeholders
}
