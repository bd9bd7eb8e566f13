package tree

// slot is one arena entry. children holds arena indices of the tiling
// children followed by the floating children; tiling is how many of those
// are tiling.
type slot struct {
	node     *Node
	children []int
	tiling   int
}

// Tree is a read-only, flattened view over a decoded layout tree. Every node
// is assigned a stable arena index in pre-order, the root being 0.
type Tree struct {
	slots []slot
}

// New flattens root into an arena. The nodes are borrowed, not copied, and
// must not be modified while the Tree is in use.
func New(root *Node) *Tree {
	if root == nil {
		root = &Node{}
	}
	t := &Tree{}
	t.add(root)
	return t
}

func (t *Tree) add(n *Node) int {
	idx := len(t.slots)
	t.slots = append(t.slots, slot{node: n, tiling: len(n.Nodes)})

	children := make([]int, 0, len(n.Nodes)+len(n.FloatingNodes))
	for i := range n.Nodes {
		children = append(children, t.add(&n.Nodes[i]))
	}
	for i := range n.FloatingNodes {
		children = append(children, t.add(&n.FloatingNodes[i]))
	}
	t.slots[idx].children = children
	return idx
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.slots[0].node
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.slots)
}

// Cursor returns a cursor positioned at the root.
func (t *Tree) Cursor() Cursor {
	return Cursor{tree: t}
}
