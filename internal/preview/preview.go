// Package preview renders vectorised paths back into a raster image so a
// conversion can be inspected without an SVG viewer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/gogpu/vectorize/internal/geom"
)

// Options controls preview rendering.
type Options struct {
	// Scale multiplies all coordinates. Values ≤ 0 mean 1.
	Scale float64

	// StrokeWidth is the line width in output pixels. Values ≤ 0 mean 1.
	StrokeWidth float64

	// Background fills the canvas before drawing.
	Background color.Color

	// Stroke is the line colour.
	Stroke color.Color
}

// DefaultOptions returns black lines on a white background at scale 1.
func DefaultOptions() Options {
	return Options{
		Scale:       1,
		StrokeWidth: 1,
		Background:  color.White,
		Stroke:      color.Black,
	}
}

// Render draws every polyline onto a width×height canvas (before scaling).
// Each segment is stroked as a quad with pixel-centre coordinates, so a
// segment between pixels (0,0) and (2,0) covers those pixels.
func Render(width, height int, polylines [][]geom.Point, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	half := opts.StrokeWidth / 2
	if half <= 0 {
		half = 0.5
	}
	bg, fg := opts.Background, opts.Stroke
	if bg == nil {
		bg = color.White
	}
	if fg == nil {
		fg = color.Black
	}

	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if w == 0 || h == 0 {
		return dst
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Over
	for _, line := range polylines {
		for i := 1; i < len(line); i++ {
			strokeSegment(r, center(line[i-1], scale), center(line[i], scale), half)
		}
		if len(line) == 1 {
			p := center(line[0], scale)
			strokeSegment(r, p, p, half)
		}
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(fg), image.Point{})
	return dst
}

// center maps a pixel coordinate to the centre of its scaled cell.
func center(p geom.Point, scale float64) geom.Point {
	return geom.Pt((p.X+0.5)*scale, (p.Y+0.5)*scale)
}

// strokeSegment adds a rectangle of half-width half around a→b, extended
// by half at both ends. A zero-length segment becomes a square dot.
func strokeSegment(r *vector.Rasterizer, a, b geom.Point, half float64) {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	ux, uy := 1.0, 0.0
	if length > 0 {
		ux, uy = d.X/length, d.Y/length
	}
	// Along-segment extension and perpendicular offset.
	ex, ey := ux*half, uy*half
	nx, ny := -uy*half, ux*half

	r.MoveTo(float32(a.X-ex+nx), float32(a.Y-ey+ny))
	r.LineTo(float32(b.X+ex+nx), float32(b.Y+ey+ny))
	r.LineTo(float32(b.X+ex-nx), float32(b.Y+ey-ny))
	r.LineTo(float32(a.X-ex-nx), float32(a.Y-ey-ny))
	r.ClosePath()
}

// SavePNG writes img to the named file as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("preview: create file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("preview: encode PNG: %w", err)
	}
	return f.Close()
}
