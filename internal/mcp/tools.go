package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/swaynav/internal/nav"
	"github.com/1broseidon/swaynav/internal/tree"
)

func (s *Server) handleFocus(ctx context.Context, _ *mcpsdk.CallToolRequest, args FocusInput) (*mcpsdk.CallToolResult, FocusOutput, error) {
	return s.runFocus(ctx, args, false)
}

func (s *Server) handlePlan(ctx context.Context, _ *mcpsdk.CallToolRequest, args FocusInput) (*mcpsdk.CallToolResult, FocusOutput, error) {
	return s.runFocus(ctx, args, true)
}

func (s *Server) runFocus(ctx context.Context, args FocusInput, dryRun bool) (*mcpsdk.CallToolResult, FocusOutput, error) {
	dir, err := nav.ParseDirection(args.Direction)
	if err != nil {
		return nil, FocusOutput{}, err
	}

	session, err := s.connect(ctx)
	if err != nil {
		return nil, FocusOutput{}, fmt.Errorf("failed to connect to compositor: %w", err)
	}
	defer session.Close()

	n := nav.NewNavigator(session, nav.WithLogger(s.logger), nav.WithDryRun(dryRun))
	outcome, err := n.Focus(ctx, dir)
	if err != nil {
		return nil, FocusOutput{}, err
	}

	out := FocusOutput{
		Direction: string(dir),
		Commands:  outcome.Plan.Commands,
		Batch:     outcome.Plan.String(),
		Escapes:   outcome.Plan.Escapes,
		NoFocus:   outcome.NoFocus,
		Submitted: outcome.Submitted,
	}
	if out.Commands == nil {
		out.Commands = []string{}
	}

	text := out.Batch
	switch {
	case outcome.NoFocus:
		text = "no focused node"
	case outcome.Submitted:
		text = "sent: " + out.Batch
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}, out, nil
}

func (s *Server) handleFocused(ctx context.Context, _ *mcpsdk.CallToolRequest, _ FocusedInput) (*mcpsdk.CallToolResult, FocusedOutput, error) {
	session, err := s.connect(ctx)
	if err != nil {
		return nil, FocusedOutput{}, fmt.Errorf("failed to connect to compositor: %w", err)
	}
	defer session.Close()

	root, err := session.GetTree(ctx)
	if err != nil {
		return nil, FocusedOutput{}, fmt.Errorf("failed to fetch layout tree: %w", err)
	}

	c, ok := tree.FindFocused(tree.New(root))
	if !ok {
		return nil, FocusedOutput{Found: false}, nil
	}
	return nil, describeFocused(c), nil
}

func describeFocused(c tree.Cursor) FocusedOutput {
	node := c.Node()
	out := FocusedOutput{
		Found:    true,
		ID:       node.ID,
		Name:     node.Name,
		Floating: c.IsFloating(),
	}
	if node.AppID != nil {
		out.AppID = *node.AppID
	}
	for _, a := range c.Ancestors() {
		an := a.Node()
		out.Ancestors = append(out.Ancestors, AncestorInfo{
			ID:     an.ID,
			Name:   an.Name,
			Type:   an.Type.String(),
			Layout: an.Layout.String(),
		})
	}
	return out
}
