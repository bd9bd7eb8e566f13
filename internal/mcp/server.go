package mcp

import (
	"context"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/swaynav/internal/nav"
)

const (
	ServerName    = "swaynav"
	ServerVersion = "0.1.0"
)

// Session is one compositor connection used for a single tool call.
type Session interface {
	nav.Client
	Close() error
}

// Connector opens a compositor connection.
type Connector func(ctx context.Context) (Session, error)

// Server is the MCP server exposing swaynav focus navigation.
type Server struct {
	mcpServer *mcpsdk.Server
	connect   Connector
	logger    *slog.Logger
}

// NewServer creates a new MCP server. Every tool call opens its own
// connection through connect and closes it before returning.
func NewServer(connect Connector, logger *slog.Logger) (*Server, error) {
	if connect == nil {
		return nil, fmt.Errorf("mcp: connector is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		connect: connect,
		logger:  logger,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus",
		Description: "Move keyboard focus in a direction (left, right, up, down) to the physically adjacent window, skipping the hidden siblings of tabbed and stacked containers. Returns the command batch that was sent to the compositor.",
	}, s.handleFocus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "plan",
		Description: "Show the command batch the focus tool would send for a direction without changing focus.",
	}, s.handlePlan)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focused",
		Description: "Describe the focused window and the layouts of the containers enclosing it, nearest first.",
	}, s.handleFocused)
}
