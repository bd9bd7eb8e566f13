package nav

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1broseidon/swaynav/internal/ipc"
	"github.com/1broseidon/swaynav/internal/tree"
)

// Client is the compositor connection the Navigator needs.
type Client interface {
	GetTree(ctx context.Context) (*tree.Node, error)
	RunCommand(ctx context.Context, batch string) ([]ipc.CommandResult, error)
}

// CommandRejectedError reports a command the compositor refused. Commands
// before it in the batch have already been applied.
type CommandRejectedError struct {
	Index      int
	Command    string
	Message    string
	ParseError bool
}

func (e *CommandRejectedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "no error message"
	}
	return fmt.Sprintf("command %d (%q) rejected by compositor: %s", e.Index+1, e.Command, msg)
}

// Outcome describes what Focus did.
type Outcome struct {
	Plan Plan
	// NoFocus is set when the tree has no focused node; nothing was submitted.
	NoFocus bool
	// Submitted is false for dry runs and when NoFocus is set.
	Submitted bool
}

// Navigator performs focus changes against a compositor.
type Navigator struct {
	client Client
	logger *slog.Logger
	dryRun bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithDryRun plans without submitting commands.
func WithDryRun(dryRun bool) Option {
	return func(n *Navigator) {
		n.dryRun = dryRun
	}
}

// NewNavigator creates a Navigator using client for both exchanges.
func NewNavigator(client Client, opts ...Option) *Navigator {
	n := &Navigator{
		client: client,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Focus fetches the layout tree, plans the move in direction d and submits
// it as one batch. Any unsuccessful command result fails the whole call;
// nothing is retried or rolled back.
func (n *Navigator) Focus(ctx context.Context, d Direction) (Outcome, error) {
	root, err := n.client.GetTree(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to fetch layout tree: %w", err)
	}

	plan, ok := PlanFocus(tree.New(root), d)
	if !ok {
		n.logger.Info("no focused node", "direction", string(d))
		return Outcome{NoFocus: true}, nil
	}
	out := Outcome{Plan: plan}

	batch := plan.String()
	n.logger.Debug("planned focus change",
		"direction", string(d),
		"escapes", plan.Escapes,
		"batch", batch,
	)
	if n.dryRun {
		return out, nil
	}

	results, err := n.client.RunCommand(ctx, batch)
	if err != nil {
		return out, fmt.Errorf("failed running navigation command: %w", err)
	}
	out.Submitted = true

	if len(results) != len(plan.Commands) {
		n.logger.Warn("result count does not match batch",
			"commands", len(plan.Commands),
			"results", len(results),
		)
	}
	if err := CheckResults(plan.Commands, results); err != nil {
		return out, err
	}
	return out, nil
}

// CheckResults returns a *CommandRejectedError for the first unsuccessful
// result, or nil when every result succeeded.
func CheckResults(commands []string, results []ipc.CommandResult) error {
	for i, r := range results {
		if r.Success {
			continue
		}
		rejected := &CommandRejectedError{
			Index:   i,
			Message: r.ErrorText(),
		}
		if i < len(commands) {
			rejected.Command = commands[i]
		}
		if r.ParseError != nil {
			rejected.ParseError = *r.ParseError
		}
		return rejected
	}
	return nil
}
