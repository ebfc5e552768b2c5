package loosequad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Point{8, 4}, Point{4, 2})
	require.Equal(t, Rect{MinX: 6, MinY: 3, MaxX: 10, MaxY: 5}, r)
	require.Equal(t, Point{8, 4}, r.Center())
	require.Equal(t, Point{4, 2}, r.Size())
	require.Equal(t, 4.0, r.LongSide())
}

func TestRectContains(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	require.True(t, r.ContainsPoint(Point{0, 0}))
	require.True(t, r.ContainsPoint(Point{10, 10}))
	require.False(t, r.ContainsPoint(Point{10.001, 5}))

	require.True(t, r.Contains(r))
	require.True(t, r.Contains(Rect{MinX: 1, MinY: 1, MaxX: 9, MaxY: 10}))
	require.False(t, r.Contains(Rect{MinX: -1, MinY: 1, MaxX: 9, MaxY: 9}))
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	require.True(t, r.Overlaps(Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}))
	// touching edges share points
	require.True(t, r.Overlaps(Rect{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}))
	require.False(t, r.Overlaps(Rect{MinX: 10.5, MinY: 0, MaxX: 20, MaxY: 10}))
	require.False(t, r.Overlaps(Rect{MinX: 0, MinY: -5, MaxX: 10, MaxY: -0.1}))
}

func TestRectScaleAndSquare(t *testing.T) {
	r := Rect{MinX: 2, MinY: 2, MaxX: 6, MaxY: 4}
	s := r.Scale(2)
	require.Equal(t, r.Center(), s.Center())
	require.Equal(t, Point{8, 4}, s.Size())

	q := r.Square()
	require.Equal(t, r.Center(), q.Center())
	require.Equal(t, Point{4, 4}, q.Size())
}
