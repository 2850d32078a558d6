// Package ledclient is the producer-facing facade over internal/ipc: the
// boot supervisor, task/progress service, web UI sync command, and
// diagnostics tooling all submit commands through this package rather than
// talking to the wire protocol directly. Built on ipc.Client's raw
// line-JSON request/response transport; the reconnect loop and the
// dial-error classification live in this package.
package ledclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"ledmanager/internal/display"
	"ledmanager/internal/ipc"
	"ledmanager/internal/logging"
)

// ErrTimeout is returned when a command's acknowledgment does not arrive
// within the per-command timeout. The command may still execute
// server-side; this only reports that the client gave up waiting.
var ErrTimeout = errors.New("led client: command timed out")

const (
	dialTimeout     = 2 * time.Second
	commandTimeout  = 2 * time.Second
	maxDialAttempts = 3
)

// Client is a typed client library: lazy
// connection, reconnect-on-broken-pipe up to three attempts, a two-second
// per-command timeout, input validation before send, and a mock-mode flag
// that turns every method into a no-op that logs its arguments.
type Client struct {
	socketPath string
	mock       bool
	logger     *slog.Logger

	conn *ipc.Client
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger attaches a logger used for mock-mode no-op logging and
// reconnect diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMockMode forces every method to become a logged no-op, regardless of
// whether a coordinator socket exists.
func WithMockMode(mock bool) Option {
	return func(c *Client) { c.mock = mock }
}

// New constructs a Client targeting the coordinator socket at socketPath.
// The connection is opened lazily on the first call.
func New(socketPath string, opts ...Option) *Client {
	c := &Client{socketPath: socketPath, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying connection, if any.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// Ack is the typed result surfaced to producers for every command.
type Ack struct {
	Success bool
	Message string
	Error   string
}

// ShowSymbol requests the named status symbol, optionally overriding its
// color and display duration.
func (c *Client) ShowSymbol(name display.Symbol, priority Priority, opts ShowSymbolOptions) (Ack, error) {
	if !display.ValidSymbol(string(name)) {
		return Ack{}, fmt.Errorf("ledclient: unknown symbol %q", name)
	}
	params := ipc.ShowSymbolParams{Symbol: string(name), Duration: opts.Duration.Seconds()}
	if opts.Color != nil {
		params.Color = []int{int(opts.Color.R), int(opts.Color.G), int(opts.Color.B)}
	}
	return c.call("show_symbol", priority, params, "symbol", string(name))
}

// ShowAnimation requests the named looping or finite animation.
func (c *Client) ShowAnimation(name display.AnimationName, priority Priority, opts ShowAnimationOptions) (Ack, error) {
	if !display.ValidAnimation(string(name)) {
		return Ack{}, fmt.Errorf("ledclient: unknown animation %q", name)
	}
	params := ipc.ShowAnimationParams{
		Animation:  string(name),
		Duration:   opts.Duration.Seconds(),
		FrameDelay: opts.FrameDelay.Seconds(),
	}
	return c.call("show_animation", priority, params, "animation", string(name))
}

// ShowProgress requests the legacy single-percentage progress bar. The
// percentage is clamped to 0..100 before it is sent.
func (c *Client) ShowProgress(percentage float64, priority Priority) (Ack, error) {
	clamped := display.ClampPercentage(percentage)
	return c.call("show_progress", priority, ipc.ShowProgressParams{Percentage: clamped}, "percentage", clamped)
}

// ShowLayout requests a hierarchical scene render for payload.
func (c *Client) ShowLayout(payload display.LayoutPayload, priority Priority) (Ack, error) {
	switch payload.Layout {
	case display.LayoutSingleView, display.LayoutSprintView, display.LayoutUserStoryLayout:
	default:
		return Ack{}, fmt.Errorf("ledclient: unknown layout %q", payload.Layout)
	}
	return c.call("show_layout", priority, ipc.ShowLayoutParams{Payload: payload}, "layout", string(payload.Layout))
}

// StopAnimation requests that any currently running animation be stopped.
func (c *Client) StopAnimation() (Ack, error) {
	return c.call("stop_animation", PriorityHigh, struct{}{}, "command", "stop_animation")
}

// Clear blanks the panel and stops any running animation.
func (c *Client) Clear() (Ack, error) {
	return c.call("clear", PriorityMedium, struct{}{}, "command", "clear")
}

// Test runs the coordinator's built-in self-test sequence. The coordinator
// acknowledges only after the whole sequence (tens of seconds) has run, so
// this call returns ErrTimeout once the two-second per-command timeout
// elapses while the sequence keeps running server-side.
func (c *Client) Test() (Ack, error) {
	return c.call("test", PriorityLow, struct{}{}, "command", "test")
}

// Shutdown requests a clean coordinator shutdown.
func (c *Client) Shutdown() (Ack, error) {
	return c.call("shutdown", PriorityHigh, struct{}{}, "command", "shutdown")
}

// ShowSymbolOptions carries the optional fields of a show_symbol request.
type ShowSymbolOptions struct {
	Duration time.Duration
	Color    *display.Color
}

// ShowAnimationOptions carries the optional fields of a show_animation request.
type ShowAnimationOptions struct {
	Duration   time.Duration
	FrameDelay time.Duration
}

// Priority mirrors the wire-level priority strings; it exists in this
// package so producers never import internal/coordinator directly.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (c *Client) call(command string, priority Priority, params any, logKV ...any) (Ack, error) {
	if c.mock {
		args := append([]any{"command", command, "priority", string(priority)}, logKV...)
		c.logger.Info("ledclient mock call", args...)
		return Ack{Success: true, Message: "mock mode: no-op"}, nil
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return Ack{}, fmt.Errorf("ledclient: marshal params: %w", err)
	}
	req := ipc.Request{Command: command, Priority: string(priority), Params: raw}

	var lastErr error
	for attempt := 1; attempt <= maxDialAttempts; attempt++ {
		if err := c.ensureConn(); err != nil {
			lastErr = err
			continue
		}
		resp, err := c.doCall(req)
		if err == nil {
			return Ack{Success: resp.Success, Message: resp.Message, Error: derefError(resp.Error)}, nil
		}
		lastErr = err
		if errors.Is(err, ErrTimeout) {
			// Drop the connection so a late response is not read as the
			// answer to the next command; do not resend this one.
			c.Close()
			return Ack{}, ErrTimeout
		}
		c.logger.Warn("ledclient call failed; reconnecting",
			logging.Int("attempt", attempt), logging.Error(err))
		c.Close()
	}
	if errors.Is(lastErr, syscall.ETIMEDOUT) {
		return Ack{}, ErrTimeout
	}
	return Ack{}, fmt.Errorf("ledclient: %s: %w", command, lastErr)
}

func (c *Client) doCall(req ipc.Request) (ipc.Response, error) {
	if err := c.conn.SetDeadline(time.Now().Add(commandTimeout)); err != nil {
		return ipc.Response{}, err
	}
	resp, err := c.conn.Call(req)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return ipc.Response{}, ErrTimeout
		}
		return ipc.Response{}, err
	}
	return resp, nil
}

func (c *Client) ensureConn() error {
	if c.conn != nil {
		return nil
	}
	conn, err := ipc.Dial(c.socketPath, dialTimeout)
	if err != nil {
		return wrapDialError(err, c.socketPath)
	}
	c.conn = conn
	return nil
}

func wrapDialError(err error, socketPath string) error {
	switch {
	case errors.Is(err, syscall.ENOENT) || os.IsNotExist(err):
		return fmt.Errorf("connect to coordinator: socket %s not found; is ledmanagerd running? %w", socketPath, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connect to coordinator: socket %s refused the connection: %w", socketPath, err)
	default:
		return fmt.Errorf("connect to coordinator: %w", err)
	}
}

func derefError(e *string) string {
	if e == nil {
		return ""
	}
	return *e
}
