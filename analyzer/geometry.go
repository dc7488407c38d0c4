package analyzer

// Point is a 2-D position in display pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path is a polyline. Paths are rebuilt wholesale and must not be modified
// once published.
type Path []Point

// Rect is an axis-aligned display rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inset shrinks r by the given amounts from each edge. Width and height
// never go negative.
func (r Rect) Inset(top, bottom, left, right float64) Rect {
	out := Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
	out.Width = max(out.Width, 0)
	out.Height = max(out.Height, 0)

	return out
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }
