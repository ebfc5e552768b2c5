package loosequad

// Point is a 2D position or extent.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Sub returns p - d.
func (p Point) Sub(d Point) Point {
	return Point{p.X - d.X, p.Y - d.Y}
}

// Rect is an axis-aligned rectangle. All bounds are inclusive.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// RectFromCenter builds a rectangle of the given size centered on center.
func RectFromCenter(center, size Point) Rect {
	hw := size.X / 2
	hh := size.Y / 2
	return Rect{
		MinX: center.X - hw,
		MinY: center.Y - hh,
		MaxX: center.X + hw,
		MaxY: center.Y + hh,
	}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) Min() Point { return Point{r.MinX, r.MinY} }

func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

func (r Rect) Size() Point {
	return Point{r.Width(), r.Height()}
}

// LongSide returns the larger of width and height.
func (r Rect) LongSide() float64 {
	return max(r.Width(), r.Height())
}

// Scale returns r with its width and height multiplied by f, keeping the center.
func (r Rect) Scale(f float64) Rect {
	s := r.Size()
	return RectFromCenter(r.Center(), Point{s.X * f, s.Y * f})
}

// Square returns the square about r's center whose side is r's longer side.
func (r Rect) Square() Rect {
	side := r.LongSide()
	return RectFromCenter(r.Center(), Point{side, side})
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Contains reports whether b lies entirely inside r, edges included.
func (r Rect) Contains(b Rect) bool {
	return b.MinX >= r.MinX && b.MaxX <= r.MaxX && b.MinY >= r.MinY && b.MaxY <= r.MaxY
}

// Overlaps reports whether r and b share at least one point.
// Rectangles that only touch along an edge overlap.
func (r Rect) Overlaps(b Rect) bool {
	return b.MaxX >= r.MinX && b.MinX <= r.MaxX && b.MaxY >= r.MinY && b.MinY <= r.MaxY
}
