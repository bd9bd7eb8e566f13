package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds
//
//	a
//	└── b
//	    ├── c
//	    ├── d
//	    │   ├── e
//	    │   │   └── f (focused)
//	    │   └── g (floating)
//	    │       └── h (focused)
//	    └── i
//	        └── j
func sampleTree() *Node {
	return &Node{
		Name: "a",
		Nodes: []Node{{
			Name: "b",
			Nodes: []Node{
				{Name: "c"},
				{
					Name: "d",
					Nodes: []Node{{
						Name:  "e",
						Nodes: []Node{{Name: "f", Focused: true}},
					}},
					FloatingNodes: []Node{{
						Name:  "g",
						Nodes: []Node{{Name: "h", Focused: true}},
					}},
				},
				{
					Name:  "i",
					Nodes: []Node{{Name: "j"}},
				},
			},
		}},
	}
}

// walk applies moves in order and fails the test on the first blocked one.
func walk(t *testing.T, c Cursor, moves ...func(Cursor) Move) Cursor {
	t.Helper()
	for i, mv := range moves {
		m := mv(c)
		require.Truef(t, m.Moved, "move %d blocked at %q", i, m.Cursor.Node().Name)
		c = m.Cursor
	}
	return c
}

var (
	descend = Cursor.Descend
	ascend  = Cursor.Ascend
	next    = Cursor.NextSibling
	prev    = Cursor.PrevSibling
)

func names(cs []Cursor) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.Node().Name)
	}
	return b.String()
}

func TestCursor_Descend(t *testing.T) {
	tr := New(sampleTree())
	c := walk(t, tr.Cursor(), descend, descend)
	assert.Equal(t, "c", c.Node().Name)
	assert.Equal(t, 2, c.Depth())
	assert.Equal(t, 0, c.Index())
}

func TestCursor_DescendBlockedAtLeaf(t *testing.T) {
	tr := New(sampleTree())
	c := walk(t, tr.Cursor(), descend, descend)

	m := c.Descend()
	assert.False(t, m.Moved)
	assert.True(t, m.Cursor.Equal(c))
	assert.Equal(t, "c", m.Cursor.Node().Name)
}

func TestCursor_DescendFallsBackToFloating(t *testing.T) {
	tr := New(&Node{
		Name:          "ws",
		FloatingNodes: []Node{{Name: "float"}},
	})
	c, ok := tr.Cursor().Descend().Get()
	require.True(t, ok)
	assert.Equal(t, "float", c.Node().Name)
	assert.True(t, c.IsFloating())
}

func TestCursor_NextSibling(t *testing.T) {
	tr := New(sampleTree())
	c := walk(t, tr.Cursor(), descend, descend, next)
	assert.Equal(t, "d", c.Node().Name)
	assert.Equal(t, 1, c.Index())
}

func TestCursor_PrevSibling(t *testing.T) {
	tr := New(sampleTree())
	c := walk(t, tr.Cursor(), descend, descend, next, prev)
	assert.Equal(t, "c", c.Node().Name)
}

func TestCursor_SiblingBlockedAtEnds(t *testing.T) {
	tr := New(sampleTree())
	first := walk(t, tr.Cursor(), descend, descend)
	last := walk(t, first, next, next)
	require.Equal(t, "i", last.Node().Name)

	m := first.PrevSibling()
	assert.False(t, m.Moved)
	assert.True(t, m.Cursor.Equal(first))

	m = last.NextSibling()
	assert.False(t, m.Moved)
	assert.True(t, m.Cursor.Equal(last))
}

func TestCursor_RootIsBlockedEverywhereButDescend(t *testing.T) {
	root := New(sampleTree()).Cursor()

	for name, mv := range map[string]func(Cursor) Move{
		"ascend": ascend,
		"next":   next,
		"prev":   prev,
	} {
		t.Run(name, func(t *testing.T) {
			m := mv(root)
			assert.False(t, m.Moved)
			assert.True(t, m.Cursor.Equal(root))
		})
	}
	assert.False(t, root.IsFloating())
	assert.Empty(t, root.Ancestors())
}

func TestCursor_NextThenPrevIsIdentity(t *testing.T) {
	tr := New(sampleTree())
	middle := walk(t, tr.Cursor(), descend, descend, next)
	require.Equal(t, "d", middle.Node().Name)

	back := walk(t, middle, next, prev)
	assert.True(t, back.Equal(middle))
	assert.Equal(t, middle.Index(), back.Index())
	assert.Equal(t, names(middle.Ancestors()), names(back.Ancestors()))

	back = walk(t, middle, prev, next)
	assert.True(t, back.Equal(middle))
}

func TestCursor_IsFloating(t *testing.T) {
	tr := New(sampleTree())
	e := walk(t, tr.Cursor(), descend, descend, next, descend)
	assert.Equal(t, "e", e.Node().Name)
	assert.False(t, e.IsFloating())

	g := walk(t, e, next)
	assert.Equal(t, "g", g.Node().Name)
	assert.True(t, g.IsFloating())
	assert.Equal(t, 1, g.Index())

	// Tiling children of a floating container are not floating themselves.
	h := walk(t, g, descend)
	assert.False(t, h.IsFloating())

	// Back across the boundary into the tiling group.
	e2 := walk(t, g, prev)
	assert.True(t, e2.Equal(e))
	assert.False(t, e2.IsFloating())
}

func TestCursor_Ascend(t *testing.T) {
	tr := New(sampleTree())
	g := walk(t, tr.Cursor(), descend, descend, next, descend, next)

	d := walk(t, g, ascend)
	assert.Equal(t, "d", d.Node().Name)
	assert.Equal(t, 1, d.Index())

	// Ascending restores the parent's own position so siblings still work.
	i := walk(t, d, next)
	assert.Equal(t, "i", i.Node().Name)
}

func TestCursor_Ancestors(t *testing.T) {
	tr := New(sampleTree())
	f := walk(t, tr.Cursor(), descend, descend, next, descend, descend)
	require.Equal(t, "f", f.Node().Name)

	anc := f.Ancestors()
	assert.Equal(t, "edba", names(anc))
	assert.Len(t, anc, f.Depth())

	// Each ancestor is itself a usable cursor whose chain continues outward.
	assert.Equal(t, "dba", names(anc[0].Ancestors()))
	assert.Equal(t, "", names(anc[len(anc)-1].Ancestors()))
}

func TestCursor_DoesNotAliasSiblingPaths(t *testing.T) {
	tr := New(sampleTree())
	d := walk(t, tr.Cursor(), descend, descend, next)
	i := walk(t, d, next)

	e := walk(t, d, descend)
	j := walk(t, i, descend)

	assert.Equal(t, "dba", names(e.Ancestors()))
	assert.Equal(t, "iba", names(j.Ancestors()))
}
