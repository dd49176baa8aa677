// Package simplify reduces polylines with the Ramer-Douglas-Peucker
// algorithm.
package simplify

import (
	"errors"
	"math"

	"github.com/gogpu/vectorize/internal/geom"
)

// Simplification errors.
var (
	// ErrTooFewPoints is returned when fewer than two points are given.
	ErrTooFewPoints = errors.New("simplify: at least two points are required")

	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("simplify: tolerance must be a non-negative number")
)

// span is an inclusive index range [first, last] of the input.
type span struct {
	first, last int
}

// RDP simplifies points with tolerance epsilon and returns a new slice.
//
// The result always starts with points[0] and ends with points[len-1],
// never holds more points than the input and preserves input order. A
// point is dropped only if its perpendicular distance to the chord of
// its enclosing range does not exceed epsilon. Ranges whose endpoints
// coincide measure plain Euclidean distance (see
// geom.PerpendicularDistance).
//
// The input is not modified. Ranges are processed from an explicit
// stack, so very long sequences do not deepen the call stack.
func RDP(points []geom.Point, epsilon float64) ([]geom.Point, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(epsilon) || epsilon < 0 {
		return nil, ErrInvalidTolerance
	}

	last := len(points) - 1
	keep := make([]bool, len(points))
	keep[0], keep[last] = true, true
	kept := 2

	stack := make([]span, 0, 32)
	stack = append(stack, span{0, last})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx, dmax := farthest(points, s.first, s.last)
		if dmax > epsilon {
			keep[idx] = true
			kept++
			// Left half is popped first to mirror the recursive order.
			stack = append(stack, span{idx, s.last}, span{s.first, idx})
		}
	}

	// The joint of two halves is kept once, and the input's final point
	// closes the result exactly once.
	out := make([]geom.Point, 0, kept)
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out, nil
}

// farthest returns the interior index of [first, last] that lies farthest
// from the chord points[first]→points[last], and its distance. The first
// maximum wins on ties. Ranges without interior points report (first, 0).
func farthest(points []geom.Point, first, last int) (int, float64) {
	idx, dmax := first, 0.0
	a, b := points[first], points[last]
	for i := first + 1; i < last; i++ {
		if d := geom.PerpendicularDistance(points[i], a, b); d > dmax {
			idx, dmax = i, d
		}
	}
	return idx, dmax
}
