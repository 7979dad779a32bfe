package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"hyprwatch/internal/enrich"
	"hyprwatch/internal/event"
	"hyprwatch/internal/filter"
	"hyprwatch/internal/hypr"
	"hyprwatch/internal/state"
)

// Emitter receives one filtered snapshot per completed cycle. The CLI
// supplies implementations for JSON and table output.
type Emitter interface {
	Emit(kind state.Kind, payload any) error
}

// StartupError reports that a compositor socket could not be reached
// while entering the watch loop. It is always fatal.
type StartupError struct {
	Err error
}

func (e *StartupError) Error() string { return fmt.Sprintf("startup: %v", e.Err) }
func (e *StartupError) Unwrap() error { return e.Err }

// EventChannelError reports that the event stream was lost while
// watching. The process exits so a supervisor can observe the
// compositor going away; there is deliberately no reconnect.
type EventChannelError struct {
	Err error
}

func (e *EventChannelError) Error() string { return fmt.Sprintf("event channel: %v", e.Err) }
func (e *EventChannelError) Unwrap() error { return e.Err }

// Options configures one watch run.
type Options struct {
	Kind state.Kind
	// Once disables the event loop: load, emit, exit.
	Once   bool
	Filter filter.Options
	// RuntimeDir overrides socket discovery when non-empty.
	RuntimeDir string
}

// Watcher drives the load, enrich, filter, emit cycle, triggered once
// at startup and then by relevant compositor events. Everything runs on
// the calling goroutine; the two sockets are the only blocking
// resources and are owned here for the run's lifetime.
type Watcher struct {
	opts    Options
	emitter Emitter
	log     *slog.Logger
}

// New validates the options and returns a Watcher. Filter/kind
// mismatches surface here, before any socket is touched.
func New(opts Options, emitter Emitter, log *slog.Logger) (*Watcher, error) {
	if _, err := state.ParseKind(string(opts.Kind)); err != nil {
		return nil, err
	}
	if err := opts.Filter.Validate(opts.Kind); err != nil {
		return nil, err
	}
	if emitter == nil {
		return nil, errors.New("watcher requires an emitter")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{opts: opts, emitter: emitter, log: log}, nil
}

// Run executes the watch loop until the context is canceled, the event
// stream is lost, or (in once mode) the first snapshot is emitted.
func (w *Watcher) Run(ctx context.Context) error {
	sockets, err := hypr.DiscoverSockets(w.opts.RuntimeDir)
	if err != nil {
		return &StartupError{Err: err}
	}

	query := hypr.NewQueryClient(sockets.Query)
	if err := query.Probe(); err != nil {
		return &StartupError{Err: err}
	}

	var events *hypr.EventConn
	if !w.opts.Once {
		events, err = hypr.DialEvents(sockets.Events)
		if err != nil {
			return &StartupError{Err: err}
		}
		defer events.Close()

		// Unblock the event read when the caller gives up.
		stop := context.AfterFunc(ctx, func() { events.Close() })
		defer stop()
	}

	loader := state.NewLoader(query)
	w.log.Debug("watch started",
		"kind", w.opts.Kind,
		"once", w.opts.Once,
		"query_socket", sockets.Query,
	)

	if err := w.cycle(loader); err != nil {
		if w.opts.Once {
			return err
		}
		// A malformed or failed query aborts the cycle, never the
		// watch: the next relevant event reloads current state.
		w.log.Warn("cycle skipped", "error", err)
	}
	if w.opts.Once {
		return nil
	}

	for {
		line, err := events.ReadLine()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &EventChannelError{Err: err}
		}

		ev := event.Decode(line)
		if !event.Classify(ev).Includes(w.opts.Kind) {
			continue
		}
		w.log.Debug("relevant event", "event", ev.Name)

		if err := w.cycle(loader); err != nil {
			var decodeErr *state.DecodeError
			var transportErr *hypr.TransportError
			if errors.As(err, &decodeErr) || errors.As(err, &transportErr) {
				w.log.Warn("cycle skipped", "error", err)
				continue
			}
			return err
		}
	}
}

// cycle performs one load, enrich, filter, emit pass for the watched
// kind. Only the queries that kind needs are issued.
func (w *Watcher) cycle(loader *state.Loader) error {
	log := w.log.With("cycle_id", uuid.NewString())

	switch w.opts.Kind {
	case state.KindMonitors:
		monitors, err := loader.Monitors()
		if err != nil {
			return err
		}
		log.Debug("snapshot loaded", "monitors", len(monitors))
		return w.emitter.Emit(state.KindMonitors, monitors)

	case state.KindWorkspaces:
		workspaces, err := loader.Workspaces()
		if err != nil {
			return err
		}
		monitors, err := loader.Monitors()
		if err != nil {
			return err
		}
		configured, err := loader.ConfiguredWorkspaces()
		if err != nil {
			return err
		}
		snapshot := enrich.Enrich(monitors, workspaces, nil, configured)
		filtered := filter.Workspaces(snapshot.Workspaces, w.opts.Filter)
		log.Debug("snapshot loaded", "workspaces", len(filtered))
		return w.emitter.Emit(state.KindWorkspaces, filtered)

	case state.KindClients:
		clients, err := loader.Clients()
		if err != nil {
			return err
		}
		monitors, err := loader.Monitors()
		if err != nil {
			return err
		}
		workspaces, err := loader.Workspaces()
		if err != nil {
			return err
		}
		snapshot := enrich.Enrich(monitors, workspaces, clients, nil)
		filtered := filter.Clients(snapshot.Clients, w.opts.Filter)
		log.Debug("snapshot loaded", "clients", len(filtered))
		return w.emitter.Emit(state.KindClients, filtered)

	default:
		return fmt.Errorf("unknown entity kind %q", w.opts.Kind)
	}
}
