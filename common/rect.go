package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned pixel rectangle. Positions are ints because all
// entities are grid-snapped.
type Rect struct {
	X, Y          int
	Width, Height int
}

// BB returns the rectangle's inclusive pixel span as a chipmunk bounding
// box. The span runs to Width-1 so rectangles that only touch edges do not
// count as overlapping.
func (r Rect) BB() cp.BB {
	return cp.BB{
		L: float64(r.X),
		B: float64(r.Y),
		R: float64(r.X + r.Width - 1),
		T: float64(r.Y + r.Height - 1),
	}
}

// Intersects reports whether the two rectangles share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.BB().Intersects(other.BB())
}

// TileRect returns a TileSize square at pixel (x, y).
func TileRect(x, y int) Rect {
	return Rect{X: x, Y: y, Width: TileSize, Height: TileSize}
}
