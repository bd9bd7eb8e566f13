package tree

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_UnmarshalText(t *testing.T) {
	var got []Layout
	err := json.Unmarshal([]byte(`["none", "splith", "splitv", "stacked", "tabbed", "output", "dockarea", "default"]`), &got)
	require.NoError(t, err)
	assert.Equal(t, []Layout{
		LayoutNone, LayoutSplitH, LayoutSplitV, LayoutStacked,
		LayoutTabbed, LayoutOutput, LayoutDockarea, LayoutDefault,
	}, got)
}

func TestLayout_UnmarshalTextRejectsUnknown(t *testing.T) {
	var l Layout
	err := json.Unmarshal([]byte(`"spiral"`), &l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spiral")
}

func TestLayout_Spatial(t *testing.T) {
	tests := []struct {
		layout Layout
		want   bool
	}{
		{LayoutNone, false},
		{LayoutSplitH, true},
		{LayoutSplitV, true},
		{LayoutStacked, false},
		{LayoutTabbed, false},
		{LayoutOutput, true},
		{LayoutDockarea, false},
		{LayoutDefault, true},
	}
	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.Spatial())
		})
	}
}

func TestNodeType_UnmarshalText(t *testing.T) {
	var got []NodeType
	err := json.Unmarshal([]byte(`["root", "output", "workspace", "con", "floating_con", "dockarea"]`), &got)
	require.NoError(t, err)
	assert.Equal(t, []NodeType{NodeRoot, NodeOutput, NodeWorkspace, NodeCon, NodeFloatingCon, NodeDockarea}, got)
}

func TestFullscreenMode_UnmarshalJSON(t *testing.T) {
	var got []FullscreenMode
	require.NoError(t, json.Unmarshal([]byte(`[0, 1, 2]`), &got))
	assert.Equal(t, []FullscreenMode{FullscreenNone, FullscreenWorkspace, FullscreenGlobal}, got)

	var m FullscreenMode
	assert.Error(t, json.Unmarshal([]byte(`3`), &m))
	assert.Error(t, json.Unmarshal([]byte(`"1"`), &m))
}

func TestDecode_SwayTree(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "sway-tree.json"))
	require.NoError(t, err)

	root, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, NodeRoot, root.Type)
	require.Len(t, root.Nodes, 2)

	ws := root.Nodes[1].Nodes[0]
	assert.Equal(t, NodeWorkspace, ws.Type)
	assert.Equal(t, LayoutSplitH, ws.Layout)
	require.NotNil(t, ws.Representation)
	assert.Equal(t, "H[T[foot foot] firefox]", *ws.Representation)
	require.Len(t, ws.FloatingNodes, 1)
	assert.Equal(t, NodeFloatingCon, ws.FloatingNodes[0].Type)

	tabbed := ws.Nodes[0]
	assert.Equal(t, LayoutTabbed, tabbed.Layout)
	assert.Equal(t, "", tabbed.Name)
	require.NotNil(t, tabbed.Percent)
	assert.InDelta(t, 0.5, *tabbed.Percent, 1e-9)

	view := tabbed.Nodes[1]
	assert.True(t, view.Focused)
	assert.True(t, view.IsLeaf())
	assert.Equal(t, []string{"main"}, view.Marks)
	require.NotNil(t, view.IdleInhibitors)
	assert.Equal(t, "none", view.IdleInhibitors.User)
	require.NotNil(t, view.PID)
	assert.Equal(t, 1202, *view.PID)
	assert.Equal(t, Rect{X: 0, Y: 25, Width: 1280, Height: 1415}, view.Rect)
}

func TestDecode_I3Tree(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "i3-tree.json"))
	require.NoError(t, err)

	root, err := Decode(data)
	require.NoError(t, err)

	output := root.Nodes[0]
	assert.Equal(t, NodeOutput, output.Type)
	require.Len(t, output.Nodes, 3)

	topdock, content, bottomdock := output.Nodes[0], output.Nodes[1], output.Nodes[2]
	assert.Equal(t, NodeDockarea, topdock.Type)
	assert.Equal(t, LayoutDockarea, topdock.Layout)
	assert.Equal(t, "content", content.Name)
	assert.Equal(t, LayoutDockarea, bottomdock.Layout)
	assert.Equal(t, LayoutDefault, bottomdock.Nodes[0].Layout)
	assert.Equal(t, BorderPixel, bottomdock.Nodes[0].Border)

	ws := content.Nodes[0]
	assert.Equal(t, NodeWorkspace, ws.Type)
	assert.Equal(t, LayoutTabbed, ws.Layout)
	assert.Equal(t, FullscreenWorkspace, ws.FullscreenMode)
	assert.Nil(t, ws.Nodes[1].AppID)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"id": 1, "layout": "bogus"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"id": `))
	assert.Error(t, err)
}
