// Package tree models the sway/i3 layout tree returned by GET_TREE and
// provides cursors for walking it without parent back-references.
package tree

import (
	"encoding/json"
	"fmt"
)

// Layout is the arrangement a container applies to its tiling children.
type Layout int

const (
	LayoutNone Layout = iota // views report "none"
	LayoutSplitH
	LayoutSplitV
	LayoutStacked
	LayoutTabbed
	LayoutOutput
	LayoutDockarea // i3 top and bottom dock containers
	LayoutDefault  // split layout in i3 before 4.8
)

var layoutNames = map[Layout]string{
	LayoutNone:     "none",
	LayoutSplitH:   "splith",
	LayoutSplitV:   "splitv",
	LayoutStacked:  "stacked",
	LayoutTabbed:   "tabbed",
	LayoutOutput:   "output",
	LayoutDockarea: "dockarea",
	LayoutDefault:  "default",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Spatial reports whether children of this layout are all visible side by
// side, so a directional focus change already moves between neighbours.
func (l Layout) Spatial() bool {
	switch l {
	case LayoutSplitH, LayoutSplitV, LayoutOutput, LayoutDefault:
		return true
	default:
		return false
	}
}

func (l Layout) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Layout) UnmarshalText(text []byte) error {
	for k, name := range layoutNames {
		if name == string(text) {
			*l = k
			return nil
		}
	}
	return fmt.Errorf("unknown layout %q", string(text))
}

// NodeType is the kind of node in the tree.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeOutput
	NodeWorkspace
	NodeCon
	NodeFloatingCon
	NodeDockarea // i3 only
)

var nodeTypeNames = map[NodeType]string{
	NodeRoot:        "root",
	NodeOutput:      "output",
	NodeWorkspace:   "workspace",
	NodeCon:         "con",
	NodeFloatingCon: "floating_con",
	NodeDockarea:    "dockarea",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *NodeType) UnmarshalText(text []byte) error {
	for k, name := range nodeTypeNames {
		if name == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown node type %q", string(text))
}

// Orientation of a split container.
type Orientation string

const (
	OrientationNone       Orientation = "none"
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// Border style of a container.
type Border string

const (
	BorderNone   Border = "none"
	BorderNormal Border = "normal"
	BorderPixel  Border = "pixel"
	BorderCSD    Border = "csd"
)

// FullscreenMode is sent as an integer: 0 none, 1 workspace, 2 global.
type FullscreenMode int

const (
	FullscreenNone FullscreenMode = iota
	FullscreenWorkspace
	FullscreenGlobal
)

func (m *FullscreenMode) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("fullscreen_mode: %w", err)
	}
	if v < int(FullscreenNone) || v > int(FullscreenGlobal) {
		return fmt.Errorf("fullscreen_mode: unexpected value %d, expecting 0, 1 or 2", v)
	}
	*m = FullscreenMode(v)
	return nil
}

// Rect is a geometry reported by the compositor.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// InhibitorState describes idle inhibitors on a view.
type InhibitorState struct {
	Application string `json:"application"`
	User        string `json:"user"`
}

// Node is one entry of the layout tree as described in sway-ipc(7).
// Fields that only exist on some node kinds are pointers or may be zero.
type Node struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Type               NodeType        `json:"type"`
	Border             Border          `json:"border"`
	CurrentBorderWidth int             `json:"current_border_width"`
	Layout             Layout          `json:"layout"`
	Orientation        Orientation     `json:"orientation"`
	Percent            *float64        `json:"percent"`
	Rect               Rect            `json:"rect"`
	WindowRect         Rect            `json:"window_rect"`
	DecoRect           Rect            `json:"deco_rect"`
	Geometry           Rect            `json:"geometry"`
	Urgent             bool            `json:"urgent"`
	Sticky             bool            `json:"sticky"`
	Marks              []string        `json:"marks"`
	Focused            bool            `json:"focused"`
	Focus              []int64         `json:"focus"`
	Nodes              []Node          `json:"nodes"`
	FloatingNodes      []Node          `json:"floating_nodes"`
	Representation     *string         `json:"representation,omitempty"`
	FullscreenMode     FullscreenMode  `json:"fullscreen_mode"`
	AppID              *string         `json:"app_id,omitempty"`
	PID                *int            `json:"pid,omitempty"`
	Visible            *bool           `json:"visible,omitempty"`
	Shell              *string         `json:"shell,omitempty"`
	InhibitIdle        *bool           `json:"inhibit_idle,omitempty"`
	IdleInhibitors     *InhibitorState `json:"idle_inhibitors,omitempty"`
}

// Decode parses a GET_TREE reply.
func Decode(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode layout tree: %w", err)
	}
	return &root, nil
}

// IsLeaf reports whether the node has neither tiling nor floating children.
func (n *Node) IsLeaf() bool {
	return len(n.Nodes) == 0 && len(n.FloatingNodes) == 0
}
