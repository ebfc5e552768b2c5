package loosequad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemAccessors(t *testing.T) {
	it := NewItem("ship", Point{3, 4}, Point{2, 1})
	require.Equal(t, "ship", it.Value())
	require.Equal(t, Point{3, 4}, it.Position())
	require.Equal(t, Point{2, 1}, it.Size())
	require.Equal(t, Rect{MinX: 2, MinY: 3.5, MaxX: 4, MaxY: 4.5}, it.Rect())
	require.False(t, it.Inserted())
}

func TestItemDetachedUpdates(t *testing.T) {
	it := NewItem(0, Point{3, 4}, Point{2, 2})
	require.False(t, it.SetPosition(Point{10, 10}))
	require.False(t, it.SetSize(Point{4, 4}))
	require.Equal(t, Rect{MinX: 8, MinY: 8, MaxX: 12, MaxY: 12}, it.Rect())
	require.False(t, it.SetRect(Rect{MaxX: 1, MaxY: 1}))
	require.Equal(t, Point{0.5, 0.5}, it.Position())
	require.False(t, it.Delete())
}

func TestItemSingleOwner(t *testing.T) {
	tr, _ := newTestTree(t, 16, 1)
	it := NewItem(0, Point{2, 2}, Point{1, 1})
	require.True(t, tr.Insert(it))

	// walk the item across the world; it must only ever be resident once
	for x := 2.0; x < 15; x += 0.75 {
		it.SetPosition(Point{x, 16 - x})
		found := 0
		for _, nodes := range tr.levels {
			for i := range nodes {
				for _, r := range nodes[i].items {
					if r == it {
						found++
					}
				}
			}
		}
		require.Equal(t, 1, found)
		checkInvariants(t, tr)
	}
}
