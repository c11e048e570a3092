// Package sim implements the tower-defense simulation core.
// It has no dependencies on the platform layer: the caller owns a
// Simulation, feeds it commands and elapsed time, and reads snapshots back.
package sim

import "math"

// Point is a position in world units.
type Point struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
