// Package core holds the platform-neutral types shared by games and the
// terminal front end: screens, input frames and runtime settings.
// It does not import Bubble Tea so game logic stays testable on its own.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles, empty when disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := Max(r.X, o.X), Max(r.Y, o.Y)
	x1, y1 := Min(r.Right(), o.Right()), Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Viewport projects world coordinates (y pointing up) onto the cells of
// Bounds (y pointing down), with the world point (CenterX, CenterY)
// drawn at the middle cell.
type Viewport struct {
	Bounds       Rect
	CenterX      float64
	CenterY      float64
	UnitsPerCell float64
}

// Project returns the cell showing world point (x, y) and whether that
// cell is inside Bounds.
func (v Viewport) Project(x, y float64) (int, int, bool) {
	upc := v.UnitsPerCell
	if upc <= 0 {
		upc = 1
	}
	col := v.Bounds.X + v.Bounds.W/2 + int(math.Floor((x-v.CenterX)/upc))
	row := v.Bounds.Y + v.Bounds.H/2 - int(math.Floor((y-v.CenterY)/upc))
	return col, row, v.Bounds.Contains(col, row)
}

// Unproject returns the world point at the center of cell (col, row).
func (v Viewport) Unproject(col, row int) (float64, float64) {
	upc := v.UnitsPerCell
	if upc <= 0 {
		upc = 1
	}
	dx := float64(col-v.Bounds.X-v.Bounds.W/2) + 0.5
	dy := float64(v.Bounds.Y+v.Bounds.H/2-row) + 0.5
	return v.CenterX + dx*upc, v.CenterY + dy*upc
}

// ProjectRect maps the half-open world rectangle with lower-left corner
// (x, y) and size w by h to screen cells, clipped to Bounds.
func (v Viewport) ProjectRect(x, y, w, h float64) Rect {
	left, above, _ := v.Project(x, y+h)
	right, base, _ := v.Project(x+w, y)
	return NewRect(left, above+1, right-left, base-above).Intersect(v.Bounds)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return Max(lo, Min(val, hi))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
