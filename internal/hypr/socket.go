package hypr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// InstanceEnv names the environment variable the compositor sets for
// every child process with the signature of the running instance.
const InstanceEnv = "HYPRLAND_INSTANCE_SIGNATURE"

const (
	eventSocketName = ".socket2.sock"
	querySocketName = ".socket.sock"

	dialTimeout = 2 * time.Second
)

// ErrEventStreamClosed reports that the compositor closed the event
// socket, which during a watch happens when the compositor exits.
var ErrEventStreamClosed = errors.New("compositor event stream closed")

// TransportError reports a failed socket operation against one of the
// compositor's IPC endpoints.
type TransportError struct {
	Op   string
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// dialError annotates common dial failures with operator guidance:
// a missing socket usually means the compositor exited or the instance
// signature is stale, a refusal means nothing is serving the path.
func dialError(path string, err error) *TransportError {
	switch {
	case errors.Is(err, unix.ENOENT):
		err = fmt.Errorf("%w (socket not found; is the compositor still running?)", err)
	case errors.Is(err, unix.ECONNREFUSED):
		err = fmt.Errorf("%w (socket exists but refused the connection)", err)
	}
	return &TransportError{Op: "dial", Path: path, Err: err}
}

// Sockets holds the resolved paths of the two compositor IPC endpoints.
type Sockets struct {
	Events string
	Query  string
}

// DiscoverSockets resolves the compositor socket paths from the
// instance signature in the environment. runtimeDir overrides the
// search when non-empty (config escape hatch); otherwise the runtime
// directory is tried first with the historical /tmp location as
// fallback.
func DiscoverSockets(runtimeDir string) (Sockets, error) {
	signature := strings.TrimSpace(os.Getenv(InstanceEnv))
	if signature == "" {
		return Sockets{}, fmt.Errorf("%s is not set; is the compositor running?", InstanceEnv)
	}

	var candidates []string
	if runtimeDir != "" {
		candidates = []string{filepath.Join(runtimeDir, signature)}
	} else {
		if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
			candidates = append(candidates, filepath.Join(xdg, "hypr", signature))
		}
		candidates = append(candidates, filepath.Join("/tmp", "hypr", signature))
	}

	for _, dir := range candidates {
		sockets := Sockets{
			Events: filepath.Join(dir, eventSocketName),
			Query:  filepath.Join(dir, querySocketName),
		}
		if _, err := os.Stat(sockets.Query); err == nil {
			return sockets, nil
		}
	}
	return Sockets{}, fmt.Errorf("no compositor socket directory for instance %s", signature)
}

// EventConn is the push-only event channel. It is owned by a single
// reader for the process lifetime.
type EventConn struct {
	conn   net.Conn
	reader *bufio.Reader
	path   string
}

// DialEvents connects to the event socket.
func DialEvents(path string) (*EventConn, error) {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return nil, dialError(path, err)
	}
	return &EventConn{conn: conn, reader: bufio.NewReader(conn), path: path}, nil
}

// ReadLine blocks until the compositor pushes the next notification and
// returns it without the trailing newline. A closed socket yields
// ErrEventStreamClosed.
func (c *EventConn) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEventStreamClosed
		}
		return "", &TransportError{Op: "read", Path: c.path, Err: err}
	}
	return strings.TrimRight(line, "\n"), nil
}

// Close releases the event socket.
func (c *EventConn) Close() error {
	return c.conn.Close()
}

// QueryClient performs request/response exchanges on the query socket.
// The compositor serves exactly one exchange per connection, so each
// Request dials fresh, writes the command, half-closes, and drains the
// response to EOF. Calls must not overlap; the watch loop is the sole
// caller and is strictly sequential.
type QueryClient struct {
	path string
}

// NewQueryClient returns a client for the query socket at path.
func NewQueryClient(path string) *QueryClient {
	return &QueryClient{path: path}
}

// Probe verifies the query socket accepts connections. The watch loop
// uses it at startup to fail fast before entering the event loop.
func (q *QueryClient) Probe() error {
	conn, err := net.DialTimeout("unix", q.path, dialTimeout)
	if err != nil {
		return dialError(q.path, err)
	}
	return conn.Close()
}

// Request sends one command and returns the full response body.
func (q *QueryClient) Request(command string) ([]byte, error) {
	conn, err := net.DialTimeout("unix", q.path, dialTimeout)
	if err != nil {
		return nil, dialError(q.path, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, &TransportError{Op: "write", Path: q.path, Err: err}
	}
	if unixConn, ok := conn.(*net.UnixConn); ok {
		// Signal end of request so the response read below cannot
		// deadlock against a server that reads to EOF.
		_ = unixConn.CloseWrite()
	}

	payload, err := io.ReadAll(conn)
	if err != nil {
		return nil, &TransportError{Op: "read", Path: q.path, Err: err}
	}
	return payload, nil
}
