package vectorize

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Path is a polyline made of one MoveTo followed by LineTo elements.
type Path struct {
	elements []PathElement
}

// Assemble builds a path whose MoveTo target is points[0] and whose LineTo
// targets are the remaining points in order. It returns ErrEmptySequence
// when points is empty. A single point yields a path with a lone MoveTo.
func Assemble(points []Point) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrEmptySequence
	}
	p := &Path{elements: make([]PathElement, 0, len(points))}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p, nil
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Points returns the target point of every element, in order.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Bounds returns the minimum and maximum corners of the axis-aligned box
// enclosing all points. ok is false for an empty path.
func (p *Path) Bounds() (minPt, maxPt Point, ok bool) {
	if len(p.elements) == 0 {
		return Point{}, Point{}, false
	}
	minPt = Pt(math.Inf(1), math.Inf(1))
	maxPt = Pt(math.Inf(-1), math.Inf(-1))
	for _, pt := range p.Points() {
		minPt.X = math.Min(minPt.X, pt.X)
		minPt.Y = math.Min(minPt.Y, pt.Y)
		maxPt.X = math.Max(maxPt.X, pt.X)
		maxPt.Y = math.Max(maxPt.Y, pt.Y)
	}
	return minPt, maxPt, true
}

// SVGData returns the path as SVG path data, e.g. "M0 0 L2 0".
func (p *Path) SVGData() string {
	var sb strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			writeCommand(&sb, 'M', e.Point)
		case LineTo:
			writeCommand(&sb, 'L', e.Point)
		}
	}
	return sb.String()
}

func writeCommand(sb *strings.Builder, cmd byte, pt Point) {
	sb.WriteByte(cmd)
	sb.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
}
