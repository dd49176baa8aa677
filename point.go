package vectorize

import "github.com/gogpu/vectorize/internal/geom"

// Point represents a 2D point in pixel coordinates.
type Point = geom.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}
