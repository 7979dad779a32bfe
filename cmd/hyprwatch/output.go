package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"hyprwatch/internal/state"
)

// jsonEmitter writes one JSON document per cycle to out, flushed
// immediately (json.Encoder has no buffering of its own).
type jsonEmitter struct {
	out    io.Writer
	pretty bool
}

func newJSONEmitter(out io.Writer, pretty bool) *jsonEmitter {
	return &jsonEmitter{out: out, pretty: pretty}
}

func (e *jsonEmitter) Emit(_ state.Kind, payload any) error {
	enc := json.NewEncoder(e.out)
	if e.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	return nil
}

// tableEmitter renders one-shot snapshots for human inspection.
type tableEmitter struct {
	out io.Writer
}

func newTableEmitter(out io.Writer) *tableEmitter {
	return &tableEmitter{out: out}
}

func (e *tableEmitter) Emit(kind state.Kind, payload any) error {
	var headers table.Row
	var rows []table.Row

	switch kind {
	case state.KindMonitors:
		monitors, ok := payload.([]state.Monitor)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, kind)
		}
		headers = table.Row{"ID", "NAME", "GEOMETRY", "ACTIVE WS", "FOCUSED"}
		for _, m := range monitors {
			geometry := fmt.Sprintf("%dx%d@%d,%d", m.Width, m.Height, m.X, m.Y)
			rows = append(rows, table.Row{m.ID, m.Name, geometry, m.ActiveWorkspace.Name, yesNo(m.Focused)})
		}
	case state.KindWorkspaces:
		workspaces, ok := payload.([]state.Workspace)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, kind)
		}
		headers = table.Row{"ID", "NAME", "MONITOR", "WINDOWS", "EXISTS", "SHOWN", "ACTIVE"}
		for _, w := range workspaces {
			rows = append(rows, table.Row{w.ID, w.Name, w.Monitor, w.Windows, yesNo(w.Exists), yesNo(w.Shown), yesNo(w.Active)})
		}
	case state.KindClients:
		clients, ok := payload.([]state.Client)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, kind)
		}
		headers = table.Row{"ADDRESS", "CLASS", "TITLE", "WORKSPACE", "MONITOR", "FLOATING"}
		for _, c := range clients {
			workspace := c.Workspace.Name
			if workspace == "" {
				workspace = strconv.FormatInt(c.Workspace.ID, 10)
			}
			rows = append(rows, table.Row{c.Address, c.Class, c.Title, workspace, c.MonitorName, yesNo(c.Floating)})
		}
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(e.out)
	if isTerminal(e.out) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(headers)
	tw.AppendRows(rows)
	tw.Render()
	return nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
