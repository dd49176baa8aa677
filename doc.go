// Package vectorize converts raster images into vector paths.
//
// # Overview
//
// vectorize finds regions of non-background pixels in an image, collects
// the pixels of each region, simplifies the collected point sequence with
// the Ramer-Douglas-Peucker algorithm and emits one straight-line path per
// region. The result is a Document that can be written as SVG.
//
// # Quick Start
//
//	import "github.com/gogpu/vectorize"
//
//	img, _, err := image.Decode(f)
//	if err != nil {
//		return err
//	}
//
//	doc, err := vectorize.Convert(img, vectorize.WithTolerance(1.0))
//	if err != nil {
//		return err
//	}
//	return doc.SaveSVG("output.svg")
//
// # Pipeline
//
// A conversion runs four stages, all synchronous:
//   - Region extraction: rows are scanned top to bottom and a 4-connected
//     depth-first traversal is seeded at column 0 of every row that no
//     earlier traversal reached. A pixel is foreground when its red, green
//     or blue channel is non-zero.
//   - Simplification: every sequence of two or more points is reduced
//     within the tolerance, keeping its first and last point.
//   - Assembly: each simplified sequence becomes a Path with one MoveTo
//     followed by LineTo elements.
//   - Aggregation: paths are collected in extraction order into a Document
//     sized to the image.
//
// Collected points cover whole regions in traversal order; they are not an
// ordered outline, so paths of filled shapes zig-zag through the interior.
//
// # Coordinate System
//
// Pixel coordinates are used throughout:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive diagnostics
// and per-row progress at debug level, or inject a ProgressFunc with
// WithProgress.
package vectorize

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
