// Package geom provides the 2D point type shared by the vectorisation
// stages and the distance measures used during simplification.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D coordinate in pixel space.
// X grows to the right, Y grows downwards.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), q.Vec()))
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PerpendicularDistance returns the distance from p to the infinite line
// through a and b:
//
//	|(b.Y-a.Y)·p.X - (b.X-a.X)·p.Y + b.X·a.Y - b.Y·a.X| / |b-a|
//
// A zero-length chord (a == b) has no direction, so the Euclidean
// distance from p to a is returned instead.
func PerpendicularDistance(p, a, b Point) float64 {
	chord := r2.Sub(b.Vec(), a.Vec())
	length := r2.Norm(chord)
	if length == 0 {
		return p.Distance(a)
	}
	num := r2.Cross(chord, r2.Sub(p.Vec(), a.Vec()))
	if num < 0 {
		num = -num
	}
	return num / length
}
