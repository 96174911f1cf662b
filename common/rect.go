package common

// Rect is an axis-aligned box in world units. X/Y is the top-left corner and
// Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// SetRight moves the rect horizontally so its right edge sits at x.
func (r *Rect) SetRight(x float64) {
	r.X = x - r.Width
}

// SetBottom moves the rect vertically so its bottom edge sits at y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.Height
}

func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether the two rects share interior area. Rects that
// only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
