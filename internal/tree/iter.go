package tree

import "iter"

// Iterator walks the subtree under a starting cursor depth first, left to
// right, yielding every child before its parent and tiling children before
// floating ones. An Iterator is single use.
type Iterator struct {
	next  Cursor
	floor int
	done  bool
}

// NewIterator returns an iterator over the subtree rooted at start. The
// start node itself is yielded last.
func NewIterator(start Cursor) *Iterator {
	return &Iterator{next: start.leftMost(), floor: start.Depth()}
}

// Next returns the next cursor, or false once the walk is finished.
func (it *Iterator) Next() (Cursor, bool) {
	if it.done {
		return Cursor{}, false
	}
	cur := it.next
	switch {
	case cur.Depth() <= it.floor:
		it.done = true
	default:
		if m := cur.NextSibling(); m.Moved {
			it.next = m.Cursor.leftMost()
		} else if m := cur.Ascend(); m.Moved {
			it.next = m.Cursor
		} else {
			it.done = true
		}
	}
	return cur, true
}

// All returns the walk of the whole tree as a sequence. Breaking out of the
// range loop stops the walk early.
func (t *Tree) All() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		it := NewIterator(t.Cursor())
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// FindFocused returns a cursor at the first focused node in walk order.
// A tree without a focused node is valid and returns false.
func FindFocused(t *Tree) (Cursor, bool) {
	for c := range t.All() {
		if c.Node().Focused {
			return c, true
		}
	}
	return Cursor{}, false
}
