package mcp

// FocusInput is the input for the focus and plan tools.
type FocusInput struct {
	Direction string `json:"direction" jsonschema:"Direction to move focus: left, right, up or down"`
}

// FocusOutput is the output for the focus and plan tools.
type FocusOutput struct {
	Direction string   `json:"direction"`
	Commands  []string `json:"commands"`
	Batch     string   `json:"batch"`
	Escapes   int      `json:"escapes"`
	NoFocus   bool     `json:"no_focus"`
	Submitted bool     `json:"submitted"`
}

// FocusedInput is the input for the focused tool.
type FocusedInput struct{}

// AncestorInfo describes one container above the focused node.
type AncestorInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type"`
	Layout string `json:"layout"`
}

// FocusedOutput is the output for the focused tool.
type FocusedOutput struct {
	Found     bool           `json:"found"`
	ID        int64          `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	AppID     string         `json:"app_id,omitempty"`
	Floating  bool           `json:"floating"`
	Ancestors []AncestorInfo `json:"ancestors,omitempty"`
}
