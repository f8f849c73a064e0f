package tilekit

// Rect is a half-open integer rectangle: points p with x1<=p.x<x2 and
// y1<=p.y<y2 lie inside it. A rectangle is empty when x2<=x1 or y2<=y1.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{}
}

func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }

func (r Rect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// ContainsPoint reports whether (x,y) lies within the half-open rectangle.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X1 < o.X2 && o.X1 < r.X2 && r.Y1 < o.Y2 && o.Y1 < r.Y2
}

// Translate returns r shifted by (dx,dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// SetPos returns r moved so its origin becomes (nx,ny), preserving size.
func (r Rect) SetPos(nx, ny int) Rect {
	return r.Translate(nx-r.X1, ny-r.Y1)
}

// Intersect returns the intersection of r and o. X2/Y2 are clamped up to
// o.X1/o.Y1, so when r lies left of or above o the disjoint result has
// X2==X1 or Y2==Y1. When r lies right of or below o, X2/Y2 can end up below
// X1/Y1; a disjoint result is always Empty() either way.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X1: maxInt(r.X1, o.X1),
		Y1: maxInt(r.Y1, o.Y1),
	}
	out.X2 = maxInt(o.X1, minInt(r.X2, o.X2))
	out.Y2 = maxInt(o.Y1, minInt(r.Y2, o.Y2))
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
