package region

import "github.com/gogpu/vectorize/internal/geom"

// cell is a pixel coordinate on the traversal stack.
type cell struct {
	x, y int
}

// scan holds the mutable state of one extraction run.
type scan struct {
	grid          Grid
	width, height int
	visited       []bool // row-major, y*width + x
	rowProcessed  []bool
	stack         []cell
}

// Extract returns the point sequences of g in seed-row order. Traversals
// that find no foreground pixel produce no sequence, so every returned
// sequence has at least one point. A nil or empty grid yields nil.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited mask; the stack grows up to four
// entries per pixel of the largest region.
func Extract(g Grid, opts ...Option) []Sequence {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil
	}
	w, h := g.Size()
	if w <= 0 || h <= 0 {
		return nil
	}

	s := &scan{
		grid:         g,
		width:        w,
		height:       h,
		visited:      make([]bool, w*h),
		rowProcessed: make([]bool, h),
	}

	var seqs []Sequence
	for y := 0; y < h; y++ {
		if !s.rowProcessed[y] {
			if pts := s.traverse(0, y); len(pts) > 0 {
				seqs = append(seqs, Sequence{SeedRow: y, Points: pts})
			}
		}
		if o.rowDone != nil {
			o.rowDone(y, h)
		}
	}
	return seqs
}

// traverse runs a depth-first traversal from (x0, y0) and returns the
// foreground pixels it visits.
func (s *scan) traverse(x0, y0 int) []geom.Point {
	s.stack = append(s.stack[:0], cell{x0, y0})

	var pts []geom.Point
	for len(s.stack) > 0 {
		c := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if !s.inBounds(c.x, c.y) {
			continue
		}
		i := s.index(c.x, c.y)
		if s.visited[i] {
			continue
		}
		s.visited[i] = true

		if !s.grid.IsForeground(c.x, c.y) {
			continue
		}
		s.rowProcessed[c.y] = true
		pts = append(pts, geom.Pt(float64(c.x), float64(c.y)))

		if c.y+1 < s.height {
			s.stack = append(s.stack, cell{c.x, c.y + 1})
		}
		if c.x+1 < s.width {
			s.stack = append(s.stack, cell{c.x + 1, c.y})
		}
		if c.y >= 1 {
			s.stack = append(s.stack, cell{c.x, c.y - 1})
		}
		if c.x >= 1 {
			s.stack = append(s.stack, cell{c.x - 1, c.y})
		}
	}
	return pts
}

// inBounds reports whether (x, y) lies within the grid.
func (s *scan) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// index maps (x, y) to a row-major index: y*width + x.
func (s *scan) index(x, y int) int {
	return y*s.width + x
}
