package loosequad

// Item is a movable bounding box carrying a value of type T.
//
// An item belongs to at most one Tree at a time. While it is in a tree, the
// tree records which node holds it; changing the item's position or size
// re-checks that node's loose rectangle and relocates the item if it no
// longer fits.
type Item[T any] struct {
	rect  Rect
	value T

	tree  *Tree[T] // nil when not inserted
	owner nodeRef
	slot  int // index into the owner's items
}

// NewItem creates an item centered at position with the given size.
func NewItem[T any](value T, position, size Point) *Item[T] {
	return &Item[T]{
		rect:  RectFromCenter(position, size),
		value: value,
	}
}

func (it *Item[T]) Value() T        { return it.value }
func (it *Item[T]) Rect() Rect      { return it.rect }
func (it *Item[T]) Position() Point { return it.rect.Center() }
func (it *Item[T]) Size() Point     { return it.rect.Size() }

// Inserted reports whether the item currently lives in a tree.
func (it *Item[T]) Inserted() bool {
	return it.tree != nil
}

// SetPosition moves the item's center. It returns true if the item had to be
// removed from its node and reinserted into the tree.
func (it *Item[T]) SetPosition(p Point) bool {
	return it.SetRect(RectFromCenter(p, it.Size()))
}

// SetSize resizes the item about its current center. The return value is the
// same as for SetPosition.
func (it *Item[T]) SetSize(size Point) bool {
	return it.SetRect(RectFromCenter(it.Position(), size))
}

// SetRect replaces the item's bounding box. The return value is the same as
// for SetPosition.
func (it *Item[T]) SetRect(r Rect) bool {
	it.rect = r
	if it.tree == nil {
		return false
	}
	return it.tree.relocate(it)
}

// Delete removes the item from its tree, if any. The item can be inserted
// again later.
func (it *Item[T]) Delete() bool {
	if it.tree == nil {
		return false
	}
	return it.tree.Remove(it)
}
