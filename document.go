package vectorize

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
)

// DefaultStrokeStyle is the SVG style applied to the group of paths.
const DefaultStrokeStyle = "fill:none;stroke:black;stroke-width:1"

// Document is the result of a conversion: the paths in extraction order
// and the dimensions of the source grid.
type Document struct {
	Width  int
	Height int
	Paths  []*Path

	// Stats describes the conversion that produced the document.
	Stats Stats
}

// Stats counts what a conversion saw and produced.
type Stats struct {
	Rows             int // scanned rows
	Regions          int // non-empty traversals
	Discarded        int // regions below the minimum point count
	PointsExtracted  int // points over all regions
	PointsSimplified int // points over all paths
}

// Polylines returns the vertices of every path in document order.
func (d *Document) Polylines() [][]Point {
	out := make([][]Point, 0, len(d.Paths))
	for _, p := range d.Paths {
		out = append(out, p.Points())
	}
	return out
}

// WriteSVG writes the document as an SVG image with a viewBox matching the
// grid and one <path> element per path.
func (d *Document) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(d.Width, d.Height, 0, 0, d.Width, d.Height)
	canvas.Gstyle(DefaultStrokeStyle)
	for _, p := range d.Paths {
		canvas.Path(p.SVGData())
	}
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("vectorize: write SVG: %w", ew.err)
	}
	return nil
}

// SVG returns the document as SVG bytes.
func (d *Document) SVG() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveSVG writes the document to the named file. The file is only
// replaced once the SVG has been rendered completely.
func (d *Document) SaveSVG(path string) error {
	data, err := d.SVG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("vectorize: save SVG: %w", err)
	}
	return nil
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
