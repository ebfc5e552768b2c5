// Package loosequad is a loose quadtree over a fixed grid pyramid.
// Every level of the pyramid is built up front. Items are placed in the
// level whose cell size matches their extent and relocated when they move
// out of their node's loose rectangle.
package loosequad

import (
	"fmt"
	"math"
)

// MaxDepth is the deepest pyramid a Tree will build. Level i holds 4^i nodes.
const MaxDepth = 10

// Tree is a loose quadtree over a square world.
// It is not safe for concurrent use.
type Tree[T any] struct {
	world    Rect
	side     float64
	minSide  float64
	maxLevel int

	levels [][]node[T] // levels[i] holds 4^i nodes, row-major
	count  int
	log    Logger
}

// New creates a tree covering the square of the given side centered on
// center. minSide is the smallest object side the tree is tuned for; it
// determines the depth of the pyramid.
func New[T any](center Point, side, minSide float64, opts *Options) (*Tree[T], error) {
	if !(side > 0) || math.IsInf(side, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorld, side)
	}
	if !(minSide > 0) || math.IsInf(minSide, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMinSize, minSide)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	depth := math.Floor(math.Log2(side/minSide)) + 1
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: side %v / min side %v needs level %v, limit is %d", ErrTooDeep, side, minSide, depth, MaxDepth)
	}
	maxLevel := 0
	if depth > 0 {
		maxLevel = int(depth)
	}
	t := &Tree[T]{
		world:    RectFromCenter(center, Point{side, side}),
		side:     side,
		minSide:  minSide,
		maxLevel: maxLevel,
		log:      opts.Logger,
	}
	if t.log == nil {
		t.log = NopLogger
	}
	t.build()
	return t, nil
}

// NewFromRect creates a tree over world, squared to its longer side about
// the same center.
func NewFromRect[T any](world Rect, minSide float64, opts *Options) (*Tree[T], error) {
	sq := world.Square()
	return New[T](sq.Center(), sq.Width(), minSide, opts)
}

// build materializes every level of the pyramid.
func (t *Tree[T]) build() {
	t.levels = make([][]node[T], t.maxLevel+1)
	for level := range t.levels {
		n := 1 << level
		cell := t.side / float64(n)
		nodes := make([]node[T], n*n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				rect := Rect{
					MinX: t.world.MinX + float64(c)*cell,
					MinY: t.world.MinY + float64(r)*cell,
				}
				rect.MaxX = rect.MinX + cell
				rect.MaxY = rect.MinY + cell
				nodes[cellIndex(level, r, c)] = newNode[T](rect, level, r, c, t.maxLevel)
			}
		}
		t.levels[level] = nodes
	}
}

func (t *Tree[T]) WorldRect() Rect   { return t.world }
func (t *Tree[T]) WorldSide() float64 { return t.side }
func (t *Tree[T]) MinSide() float64   { return t.minSide }

// MaxLevel is the index of the leaf level. The root is level 0.
func (t *Tree[T]) MaxLevel() int { return t.maxLevel }

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int { return t.count }

// LevelCounts returns how many items are resident at each level.
func (t *Tree[T]) LevelCounts() []int {
	counts := make([]int, len(t.levels))
	for level, nodes := range t.levels {
		for i := range nodes {
			counts[level] += len(nodes[i].items)
		}
	}
	return counts
}

func (t *Tree[T]) node(ref nodeRef) *node[T] {
	return &t.levels[ref.level][ref.index]
}

// Insert adds it to the tree. It returns false, leaving the tree unchanged,
// if the item is larger than the world, lies outside it, or is already in a
// tree. Use TryInsert to find out why.
func (t *Tree[T]) Insert(it *Item[T]) bool {
	return t.TryInsert(it) == nil
}

// TryInsert is like Insert but reports the reason for a failure.
func (t *Tree[T]) TryInsert(it *Item[T]) error {
	if it.tree != nil {
		return ErrAlreadyInserted
	}
	ref, err := t.locate(it.rect)
	if err != nil {
		return err
	}
	t.attach(it, ref)
	return nil
}

// locate chooses the node that should hold an item with bounding box r.
func (t *Tree[T]) locate(r Rect) (nodeRef, error) {
	w, h := r.Width(), r.Height()
	if !(w >= 0) || !(h >= 0) {
		return nodeRef{}, fmt.Errorf("%w: %vx%v", ErrInvalidSize, w, h)
	}
	if w > t.side || h > t.side {
		t.log.Errorf("item %vx%v is larger than the world side %v, cannot insert it", w, h, t.side)
		return nodeRef{}, fmt.Errorf("%w: %vx%v, world side %v", ErrItemTooLarge, w, h, t.side)
	}
	center := r.Center()
	if !t.world.ContainsPoint(center) {
		return nodeRef{}, fmt.Errorf("%w: %v", ErrOutsideWorld, center)
	}

	level := t.maxLevel
	if l := math.Floor(math.Log2(t.side / r.LongSide())); l <= float64(t.maxLevel) {
		level = int(l)
	} else {
		t.log.Warningf("item %vx%v is smaller than the finest cell, placing it at level %d", w, h, t.maxLevel)
	}

	ref := nodeRef{level: level, index: t.cellAt(level, center)}
	n := t.node(ref)
	if !n.rect.ContainsPoint(center) {
		return nodeRef{}, fmt.Errorf("%w: %v, cell %v", ErrCellMismatch, center, n.rect)
	}
	if !n.leaf {
		for _, c := range n.children {
			if t.levels[level+1][c].fits(r) {
				return nodeRef{level: level + 1, index: c}, nil
			}
		}
	}
	return ref, nil
}

// cellAt maps a point inside the world to its cell index at level.
func (t *Tree[T]) cellAt(level int, p Point) int {
	n := 1 << level
	cell := t.side / float64(n)
	local := p.Sub(t.world.Min())
	col := min(max(int(local.X/cell), 0), n-1)
	row := min(max(int(local.Y/cell), 0), n-1)
	return cellIndex(level, row, col)
}

func (t *Tree[T]) attach(it *Item[T], ref nodeRef) {
	t.node(ref).add(it)
	it.tree = t
	it.owner = ref
	t.adjustAncestors(ref, 1)
	t.count++
}

func (t *Tree[T]) detach(it *Item[T]) {
	ref := it.owner
	t.node(ref).remove(it)
	it.tree = nil
	it.owner = nodeRef{}
	t.adjustAncestors(ref, -1)
	t.count--
}

// adjustAncestors adds delta to the descendant count of every node above ref.
func (t *Tree[T]) adjustAncestors(ref nodeRef, delta int) {
	idx := ref.index
	for level := ref.level; level > 0; level-- {
		idx = t.levels[level][idx].parent
		t.levels[level-1][idx].descendants += delta
	}
}

// Remove takes it out of the tree. It returns false if it is not in t.
func (t *Tree[T]) Remove(it *Item[T]) bool {
	if it.tree != t {
		return false
	}
	t.detach(it)
	return true
}

// relocate is called after its bounding box changed. If the box no longer
// fits the owning node's loose rectangle the item is removed and inserted
// again. An item that cannot be reinserted is left out of the tree.
func (t *Tree[T]) relocate(it *Item[T]) bool {
	if t.node(it.owner).fits(it.rect) {
		return false
	}
	t.detach(it)
	if err := t.TryInsert(it); err != nil {
		t.log.Warningf("item dropped from the tree after moving to %v: %v", it.rect, err)
	}
	return true
}

// Search calls fn for every item whose rectangle overlaps r, stopping early
// if fn returns false. fn must not modify the tree.
func (t *Tree[T]) Search(r Rect, fn func(it *Item[T]) bool) {
	t.search(nodeRef{}, r, fn)
}

func (t *Tree[T]) search(ref nodeRef, r Rect, fn func(it *Item[T]) bool) bool {
	n := t.node(ref)
	if !n.getItems(r, fn) {
		return false
	}
	if n.leaf || n.descendants == 0 {
		return true
	}
	for _, c := range n.children {
		if !t.levels[ref.level+1][c].loose.Overlaps(r) {
			continue
		}
		if !t.search(nodeRef{level: ref.level + 1, index: c}, r, fn) {
			return false
		}
	}
	return true
}

// Query returns all items that overlap r.
func (t *Tree[T]) Query(r Rect) []*Item[T] {
	results := []*Item[T]{}
	return t.QueryFast(r, results)
}

// QueryFast accepts a 'results' slice as input. If you are performing many
// queries, reusing a 'results' slice will reduce the number of allocations.
func (t *Tree[T]) QueryFast(r Rect, results []*Item[T]) []*Item[T] {
	results = results[:0]
	t.Search(r, func(it *Item[T]) bool {
		results = append(results, it)
		return true
	})
	return results
}
