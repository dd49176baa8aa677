package region

import "github.com/gogpu/vectorize/internal/geom"

// Grid is a read-only raster addressed by (x, y), 0 ≤ x < width,
// 0 ≤ y < height.
type Grid interface {
	// Size returns the grid dimensions.
	Size() (width, height int)

	// IsForeground reports whether the pixel at (x, y) belongs to a region.
	// It is only called with in-bounds coordinates.
	IsForeground(x, y int) bool
}

// Sequence is the result of one traversal.
type Sequence struct {
	// SeedRow is the row whose column-0 pixel seeded the traversal.
	SeedRow int

	// Points holds the foreground pixels in traversal order.
	Points []geom.Point
}

// Len returns the number of points in the sequence.
func (s Sequence) Len() int {
	return len(s.Points)
}

// RowFunc is called after the scan has handled row y of height rows.
type RowFunc func(y, height int)

// Option configures Extract.
type Option func(*options)

type options struct {
	rowDone RowFunc
}

// WithRowDone registers fn to be called once per scanned row, in order.
func WithRowDone(fn RowFunc) Option {
	return func(o *options) {
		o.rowDone = fn
	}
}
