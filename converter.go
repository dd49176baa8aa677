package vectorize

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/vectorize/internal/region"
	"github.com/gogpu/vectorize/internal/simplify"
)

// Grid is a read-only pixel grid. Pixmap is the standard implementation.
type Grid = region.Grid

// Converter turns pixel grids into Documents.
//
// A Converter is immutable after creation and safe for concurrent use;
// each call allocates its own scan state.
type Converter struct {
	opts options
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{opts: o}
}

// Convert is shorthand for NewConverter(opts...).ConvertImage(img).
func Convert(img image.Image, opts ...Option) (*Document, error) {
	return NewConverter(opts...).ConvertImage(img)
}

// Tolerance returns the simplification tolerance in pixels.
func (c *Converter) Tolerance() float64 {
	return c.opts.tolerance
}

// ConvertImage applies the configured preprocessor, if any, and converts
// the resulting image.
func (c *Converter) ConvertImage(img image.Image) (*Document, error) {
	if img == nil {
		return nil, ErrNilGrid
	}
	if c.opts.preprocess != nil {
		out, err := c.opts.preprocess(img)
		if err != nil {
			return nil, fmt.Errorf("vectorize: preprocess: %w", err)
		}
		if out == nil {
			return nil, fmt.Errorf("vectorize: preprocess: %w", ErrNilGrid)
		}
		img = out
	}
	return c.Convert(FromImage(img))
}

// Convert extracts the regions of g, simplifies every region with at least
// two points (or the WithMinPoints threshold) and assembles one path per
// region. Paths appear in extraction order. The returned Document is
// sized to g.
//
// Conversion either succeeds completely or returns an error and no
// Document.
func (c *Converter) Convert(g Grid) (*Document, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if math.IsNaN(c.opts.tolerance) || c.opts.tolerance < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTolerance, c.opts.tolerance)
	}

	log := c.logger()
	progress := c.opts.progress
	if progress == nil {
		progress = func(row, height int) {
			log.Debug("processed row", "row", row, "of", height)
		}
	}

	width, height := g.Size()
	seqs := region.Extract(g, region.WithRowDone(region.RowFunc(progress)))

	doc := &Document{
		Width:  width,
		Height: height,
		Paths:  make([]*Path, 0, len(seqs)),
	}
	doc.Stats.Rows = height
	doc.Stats.Regions = len(seqs)

	for _, s := range seqs {
		doc.Stats.PointsExtracted += s.Len()
		if s.Len() < c.opts.minPoints {
			doc.Stats.Discarded++
			log.Debug("region discarded", "seed_row", s.SeedRow, "points", s.Len())
			continue
		}

		pts, err := simplify.RDP(s.Points, c.opts.tolerance)
		if err != nil {
			return nil, fmt.Errorf("vectorize: simplify region seeded at row %d: %w", s.SeedRow, err)
		}
		p, err := Assemble(pts)
		if err != nil {
			return nil, fmt.Errorf("vectorize: assemble region seeded at row %d: %w", s.SeedRow, err)
		}

		doc.Stats.PointsSimplified += len(pts)
		doc.Paths = append(doc.Paths, p)
		if log.Enabled(context.Background(), slog.LevelDebug) {
			minPt, maxPt, _ := p.Bounds()
			log.Debug("region simplified",
				"seed_row", s.SeedRow,
				"points", s.Len(),
				"kept", len(pts),
				"min", minPt,
				"max", maxPt)
		}
	}

	log.Info("conversion complete",
		"width", width,
		"height", height,
		"regions", doc.Stats.Regions,
		"discarded", doc.Stats.Discarded,
		"paths", len(doc.Paths),
		"tolerance", c.opts.tolerance)
	return doc, nil
}

func (c *Converter) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return Logger()
}

// ProgressMessage formats a progress event as "processed row R of H".
func ProgressMessage(row, height int) string {
	return fmt.Sprintf("processed row %d of %d", row, height)
}
