package tree

import "slices"

// frame records where an ancestor sits: its arena index and its position
// among its own parent's children.
type frame struct {
	index int
	pos   int
}

// Cursor is a position in a Tree. It is a small value: moving a cursor
// returns a new one and never modifies the receiver or the tree.
//
// Children of a node are addressed as one sequence, tiling children first
// and floating children after them, so sibling moves cross from one group
// into the other.
type Cursor struct {
	tree    *Tree
	index   int
	pos     int
	parents []frame // root first, immediate parent last
}

// Move is the result of a cursor navigation. When Moved is false the move
// was blocked and Cursor is the original, unchanged position. A blocked move
// is ordinary control flow, not an error.
type Move struct {
	Cursor Cursor
	Moved  bool
}

// Get returns the cursor and whether the move succeeded.
func (m Move) Get() (Cursor, bool) {
	return m.Cursor, m.Moved
}

func moved(c Cursor) Move   { return Move{Cursor: c, Moved: true} }
func blocked(c Cursor) Move { return Move{Cursor: c} }

// Node returns the node under the cursor.
func (c Cursor) Node() *Node {
	return c.tree.slots[c.index].node
}

// Index returns the position of the node among its parent's tiling and
// floating children combined. The root is at index 0.
func (c Cursor) Index() int {
	return c.pos
}

// Depth is the number of ancestors above the cursor.
func (c Cursor) Depth() int {
	return len(c.parents)
}

// Equal reports whether both cursors point at the same node of the same tree.
func (c Cursor) Equal(o Cursor) bool {
	return c.tree == o.tree && c.index == o.index
}

// IsFloating reports whether the node is one of its parent's floating
// children. The root is never floating.
func (c Cursor) IsFloating() bool {
	if len(c.parents) == 0 {
		return false
	}
	parent := c.tree.slots[c.parents[len(c.parents)-1].index]
	return c.pos >= parent.tiling
}

// Descend moves to the first child: the first tiling child, or the first
// floating child when there are no tiling children.
func (c Cursor) Descend() Move {
	children := c.tree.slots[c.index].children
	if len(children) == 0 {
		return blocked(c)
	}
	return moved(Cursor{
		tree:    c.tree,
		index:   children[0],
		pos:     0,
		parents: append(slices.Clip(c.parents), frame{index: c.index, pos: c.pos}),
	})
}

// Ascend moves to the parent. It is blocked at the root.
func (c Cursor) Ascend() Move {
	n := len(c.parents)
	if n == 0 {
		return blocked(c)
	}
	p := c.parents[n-1]
	return moved(Cursor{
		tree:    c.tree,
		index:   p.index,
		pos:     p.pos,
		parents: slices.Clip(c.parents[:n-1]),
	})
}

// NextSibling moves to the following child of the same parent.
func (c Cursor) NextSibling() Move {
	return c.sibling(c.pos + 1)
}

// PrevSibling moves to the preceding child of the same parent.
func (c Cursor) PrevSibling() Move {
	return c.sibling(c.pos - 1)
}

func (c Cursor) sibling(pos int) Move {
	n := len(c.parents)
	if n == 0 || pos < 0 {
		return blocked(c)
	}
	siblings := c.tree.slots[c.parents[n-1].index].children
	if pos >= len(siblings) {
		return blocked(c)
	}
	return moved(Cursor{
		tree:    c.tree,
		index:   siblings[pos],
		pos:     pos,
		parents: c.parents,
	})
}

// Ancestors returns cursors for every ancestor, the immediate parent first
// and the root last. The cursor's own node is not included.
func (c Cursor) Ancestors() []Cursor {
	out := make([]Cursor, 0, len(c.parents))
	for i := len(c.parents) - 1; i >= 0; i-- {
		p := c.parents[i]
		out = append(out, Cursor{
			tree:    c.tree,
			index:   p.index,
			pos:     p.pos,
			parents: slices.Clip(c.parents[:i]),
		})
	}
	return out
}

func (c Cursor) leftMost() Cursor {
	for {
		m := c.Descend()
		if !m.Moved {
			return c
		}
		c = m.Cursor
	}
}
