package loosequad

// Child order. Rows grow with Y, so "top" is the half nearer MinY.
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
)

// nodeRef addresses a node in the tree's level arena.
type nodeRef struct {
	level int
	index int
}

// node is one fixed grid cell of the pyramid.
type node[T any] struct {
	rect  Rect // exact cell
	loose Rect // rect scaled by LooseFactor

	level    int
	row, col int
	leaf     bool

	parent   int    // index in level-1; unused at the root
	children [4]int // indices in level+1, in child order; unused at leaves

	items []*Item[T]

	// descendants is the number of items resident strictly below this node.
	descendants int
}

func cellIndex(level, row, col int) int {
	return row<<level + col
}

func newNode[T any](rect Rect, level, row, col, maxLevel int) node[T] {
	n := node[T]{
		rect:  rect,
		loose: rect.Scale(LooseFactor),
		level: level,
		row:   row,
		col:   col,
		leaf:  level == maxLevel,
	}
	if level > 0 {
		n.parent = cellIndex(level-1, row/2, col/2)
	}
	if !n.leaf {
		r, c := row*2, col*2
		n.children[topLeft] = cellIndex(level+1, r, c)
		n.children[topRight] = cellIndex(level+1, r, c+1)
		n.children[bottomLeft] = cellIndex(level+1, r+1, c)
		n.children[bottomRight] = cellIndex(level+1, r+1, c+1)
	}
	return n
}

// fits reports whether r may stay resident in this node.
func (n *node[T]) fits(r Rect) bool {
	return n.loose.Contains(r)
}

func (n *node[T]) add(it *Item[T]) {
	it.slot = len(n.items)
	n.items = append(n.items, it)
}

// remove drops it by swapping the last item into its slot.
func (n *node[T]) remove(it *Item[T]) {
	last := len(n.items) - 1
	moved := n.items[last]
	n.items[it.slot] = moved
	moved.slot = it.slot
	n.items[last] = nil
	n.items = n.items[:last]
	it.slot = -1
}

// getItems calls fn for each resident item overlapping r, provided the loose
// rectangle overlaps r at all. It returns false if fn asked to stop.
func (n *node[T]) getItems(r Rect, fn func(*Item[T]) bool) bool {
	if !n.loose.Overlaps(r) {
		return true
	}
	for _, it := range n.items {
		if it.rect.Overlaps(r) && !fn(it) {
			return false
		}
	}
	return true
}
