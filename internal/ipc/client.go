package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/1broseidon/swaynav/internal/tree"
)

// DefaultTimeout bounds a single request/reply exchange when the caller's
// context carries no deadline.
const DefaultTimeout = 2 * time.Second

// TransportError reports a failure talking to the compositor: connecting,
// writing, reading, or decoding a reply.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ipc %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to sway or i3 over one IPC connection. It is not safe for
// concurrent use.
type Client struct {
	conn    net.Conn
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-exchange timeout used when the context has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Dial connects to the IPC socket at socketPath.
func Dial(ctx context.Context, socketPath string, opts ...Option) (*Client, error) {
	if socketPath == "" {
		return nil, &TransportError{Op: "connect", Err: errors.New("no socket path")}
	}
	c := newClient(nil, opts)

	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, &TransportError{Op: "connect", Err: fmt.Errorf("failed to open socket %s: %w", socketPath, err)}
	}
	c.conn = conn
	c.logger.Debug("connected to compositor", "socket", socketPath)
	return c, nil
}

// NewClient wraps an existing connection.
func NewClient(conn net.Conn, opts ...Option) *Client {
	return newClient(conn, opts)
}

func newClient(conn net.Conn, opts []Option) *Client {
	c := &Client{
		conn:    conn,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// GetTree fetches and decodes the layout tree.
func (c *Client) GetTree(ctx context.Context) (*tree.Node, error) {
	payload, err := c.roundTrip(ctx, MessageGetTree, nil)
	if err != nil {
		return nil, err
	}
	root, err := tree.Decode(payload)
	if err != nil {
		return nil, &TransportError{Op: MessageGetTree.String(), Err: err}
	}
	return root, nil
}

// RunCommand submits a batch of commands separated by ';' and returns one
// result per command in submission order.
func (c *Client) RunCommand(ctx context.Context, batch string) ([]CommandResult, error) {
	payload, err := c.roundTrip(ctx, MessageRunCommand, []byte(batch))
	if err != nil {
		return nil, err
	}
	var results []CommandResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, &TransportError{Op: MessageRunCommand.String(), Err: fmt.Errorf("failed to decode reply: %w", err)}
	}
	return results, nil
}

// GetVersion asks the compositor for its version.
func (c *Client) GetVersion(ctx context.Context) (*VersionData, error) {
	payload, err := c.roundTrip(ctx, MessageGetVersion, nil)
	if err != nil {
		return nil, err
	}
	var v VersionData
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, &TransportError{Op: MessageGetVersion.String(), Err: fmt.Errorf("failed to decode reply: %w", err)}
	}
	return &v, nil
}

// roundTrip sends one message and waits for the matching reply.
func (c *Client) roundTrip(ctx context.Context, typ MessageType, payload []byte) ([]byte, error) {
	if c.conn == nil {
		return nil, &TransportError{Op: typ.String(), Err: errors.New("not connected")}
	}

	deadline, ok := ctx.Deadline()
	if !ok && c.timeout > 0 {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, &TransportError{Op: typ.String(), Err: fmt.Errorf("failed to set deadline: %w", err)}
	}
	// Unblock pending I/O if the context is cancelled mid-exchange.
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	start := time.Now()
	if err := WriteMessage(c.conn, typ, payload); err != nil {
		return nil, c.wrap(ctx, typ, err)
	}
	replyType, reply, err := ReadMessage(c.conn)
	if err != nil {
		return nil, c.wrap(ctx, typ, err)
	}
	if replyType != typ {
		return nil, &TransportError{Op: typ.String(), Err: fmt.Errorf("wrong reply type: expected %s but got %s", typ, replyType)}
	}

	c.logger.Debug("ipc exchange",
		"type", typ.String(),
		"request_bytes", len(payload),
		"reply_bytes", len(reply),
		"elapsed", time.Since(start),
	)
	return reply, nil
}

func (c *Client) wrap(ctx context.Context, typ MessageType, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}
	return &TransportError{Op: typ.String(), Err: err}
}
