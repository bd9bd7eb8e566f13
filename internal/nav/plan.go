// Package nav plans and performs directional focus changes that skip over
// the hidden siblings of tabbed and stacked containers.
package nav

import (
	"fmt"
	"strings"

	"github.com/1broseidon/swaynav/internal/tree"
)

// Direction is a directional focus move.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// Directions lists every valid direction.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// ParseDirection accepts left, right, up or down, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Directions {
		if d == valid {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid direction %q: must be one of left, right, up, down", s)
}

// Separator joins commands into one RUN_COMMAND batch.
const Separator = "; "

// CommandFocusParent moves focus to the enclosing container.
const CommandFocusParent = "focus parent"

// FocusCommand returns the terminal directional command for d.
func FocusCommand(d Direction) string {
	return "focus " + string(d)
}

// Plan is the ordered list of commands for one focus change: escapes from
// the nearest enclosing container outward, then the directional move.
type Plan struct {
	Direction Direction
	Commands  []string
	// Escapes is the number of "focus parent" commands.
	Escapes int
}

// String joins the commands into a single batch.
func (p Plan) String() string {
	return strings.Join(p.Commands, Separator)
}

// PlanFocus builds the command batch for moving focus in direction d from
// the focused node of t. It returns false when no node is focused, in which
// case nothing should be submitted.
//
// Ancestors are inspected nearest first. Each one whose children are not
// laid out side by side (tabbed, stacked, none) adds a "focus parent"; the
// first split or output ancestor ends the walk.
func PlanFocus(t *tree.Tree, d Direction) (Plan, bool) {
	focused, ok := tree.FindFocused(t)
	if !ok {
		return Plan{}, false
	}
	return PlanFrom(focused, d), true
}

// PlanFrom builds the plan for a cursor already positioned at the focus.
func PlanFrom(focused tree.Cursor, d Direction) Plan {
	p := Plan{Direction: d}
	for _, a := range focused.Ancestors() {
		if a.Node().Layout.Spatial() {
			break
		}
		p.Commands = append(p.Commands, CommandFocusParent)
		p.Escapes++
	}
	p.Commands = append(p.Commands, FocusCommand(d))
	return p
}
