package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/1broseidon/swaynav/internal/nav"
)

func directionNames() []string {
	names := make([]string, len(nav.Directions))
	for i, d := range nav.Directions {
		names[i] = string(d)
	}
	return names
}

// directionArg validates the single positional direction argument.
func directionArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one direction (left, right, up, down), got %d arguments", len(args))
	}
	_, err := nav.ParseDirection(args[0])
	return err
}

func newFocusCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:       "focus <left|right|up|down>",
		Short:     "Move focus in a direction, escaping tabbed and stacked containers",
		Args:      directionArg,
		ValidArgs: directionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _ := nav.ParseDirection(args[0])
			return failed(a.focus(cmd, d, dryRun))
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the command batch instead of sending it")
	return cmd
}

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "plan <left|right|up|down>",
		Short:     "Print the command batch for a focus move without sending it",
		Args:      directionArg,
		ValidArgs: directionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _ := nav.ParseDirection(args[0])
			return failed(a.focus(cmd, d, true))
		},
	}
}

func (a *app) focus(cmd *cobra.Command, d nav.Direction, dryRun bool) error {
	ctx := cmd.Context()

	client, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	n := nav.NewNavigator(client,
		nav.WithLogger(a.logger),
		nav.WithDryRun(dryRun),
	)
	out, err := n.Focus(ctx, d)
	if err != nil {
		var rejected *nav.CommandRejectedError
		if errors.As(err, &rejected) {
			a.logger.Error("compositor rejected command",
				"command", rejected.Command,
				"parse_error", rejected.ParseError,
			)
		}
		return err
	}

	if out.NoFocus {
		color.New(color.FgYellow).Fprintln(a.stdout, "no focused node; nothing to do")
		return nil
	}
	if dryRun {
		fmt.Fprintln(a.stdout, out.Plan.String())
		return nil
	}
	a.logger.Info("focus moved",
		"direction", string(d),
		"escapes", out.Plan.Escapes,
	)
	return nil
}
