package testsupport

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// Signature is the fake instance signature every test compositor uses.
const Signature = "hwtest"

// Compositor emulates the compositor's IPC surface for tests: a query
// socket answering one request per connection and an event socket that
// pushes newline-delimited notifications.
type Compositor struct {
	t testing.TB

	// RuntimeDir is the directory holding <Signature>/.socket*.sock,
	// suitable for the runtime-dir override in socket discovery.
	RuntimeDir string
	QueryPath  string
	EventPath  string

	queryListener net.Listener
	eventListener net.Listener

	mu         sync.Mutex
	responses  map[string]string
	eventConns []net.Conn
	subscribed chan struct{}
	subOnce    sync.Once
}

// NewCompositor starts a fake compositor in a temp directory and
// registers cleanup with t.
func NewCompositor(t testing.TB) *Compositor {
	t.Helper()

	base := t.TempDir()
	dir := filepath.Join(base, Signature)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}

	c := &Compositor{
		t:          t,
		RuntimeDir: base,
		QueryPath:  filepath.Join(dir, ".socket.sock"),
		EventPath:  filepath.Join(dir, ".socket2.sock"),
		responses:  make(map[string]string),
		subscribed: make(chan struct{}),
	}

	var err error
	c.queryListener, err = net.Listen("unix", c.QueryPath)
	if err != nil {
		t.Fatalf("listen on query socket: %v", err)
	}
	c.eventListener, err = net.Listen("unix", c.EventPath)
	if err != nil {
		t.Fatalf("listen on event socket: %v", err)
	}

	go c.acceptQueries()
	go c.acceptEventSubscribers()

	t.Cleanup(c.Close)
	return c
}

// Respond registers the payload returned for a query command.
func (c *Compositor) Respond(command, payload string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[command] = payload
}

// Emit pushes one event line to every connected event subscriber,
// waiting briefly for the first subscriber if none is connected yet.
func (c *Compositor) Emit(line string) {
	c.t.Helper()

	select {
	case <-c.subscribed:
	case <-time.After(5 * time.Second):
		c.t.Fatalf("no event subscriber connected before Emit(%q)", line)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, conn := range c.eventConns {
		if _, err := conn.Write([]byte(line + "\n")); err != nil {
			c.t.Logf("emit to event subscriber: %v", err)
		}
	}
}

// CloseEventConns drops all event subscribers, simulating compositor
// shutdown as seen from the event channel.
func (c *Compositor) CloseEventConns() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, conn := range c.eventConns {
		_ = conn.Close()
	}
	c.eventConns = nil
}

// Close shuts the fake compositor down. Safe to call more than once.
func (c *Compositor) Close() {
	_ = c.queryListener.Close()
	_ = c.eventListener.Close()
	c.CloseEventConns()
}

func (c *Compositor) acceptQueries() {
	for {
		conn, err := c.queryListener.Accept()
		if err != nil {
			return
		}
		go c.serveQuery(conn)
	}
}

func (c *Compositor) serveQuery(conn net.Conn) {
	defer conn.Close()

	request, err := io.ReadAll(conn)
	if err != nil {
		return
	}

	c.mu.Lock()
	payload, ok := c.responses[string(request)]
	c.mu.Unlock()
	if !ok {
		payload = "unknown request"
	}
	_, _ = conn.Write([]byte(payload))
}

func (c *Compositor) acceptEventSubscribers() {
	for {
		conn, err := c.eventListener.Accept()
		if err != nil {
			return
		}
		c.mu.Lock()
		c.eventConns = append(c.eventConns, conn)
		c.mu.Unlock()
		c.subOnce.Do(func() { close(c.subscribed) })
	}
}
