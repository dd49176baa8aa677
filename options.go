package vectorize

import (
	"image"
	"log/slog"
)

// DefaultTolerance is the simplification tolerance, in pixels, used when
// no WithTolerance option is given.
const DefaultTolerance = 1.0

// Option configures a Converter during creation.
// Use functional options to customize conversion behavior.
//
// Example:
//
//	// Default conversion (tolerance 1.0, silent)
//	c := vectorize.NewConverter()
//
//	// Coarser paths with progress reporting
//	c := vectorize.NewConverter(
//	    vectorize.WithTolerance(2.5),
//	    vectorize.WithProgress(func(row, height int) { bar.Set(row + 1) }),
//	)
type Option func(*options)

// ProgressFunc receives one event per scanned row: row is zero-based and
// height is the total number of rows.
type ProgressFunc func(row, height int)

// Preprocessor transforms an image before region extraction.
type Preprocessor func(image.Image) (image.Image, error)

// options holds optional configuration for Converter creation.
type options struct {
	tolerance  float64
	minPoints  int
	progress   ProgressFunc
	logger     *slog.Logger
	preprocess Preprocessor
}

// defaultOptions returns the default converter options.
func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		minPoints: 2,
	}
}

// WithTolerance sets the maximum perpendicular deviation, in pixels, a
// dropped point may have from the simplified polyline. Zero keeps every
// point that is not exactly collinear. Negative or NaN values make Convert
// fail with ErrInvalidTolerance.
func WithTolerance(epsilon float64) Option {
	return func(o *options) {
		o.tolerance = epsilon
	}
}

// WithMinPoints discards regions with fewer than n pixels. Values below 2
// are raised to 2, because a single point cannot form a line.
func WithMinPoints(n int) Option {
	return func(o *options) {
		o.minPoints = max(n, 2)
	}
}

// WithProgress sets the per-row progress callback. Without it, progress is
// logged at debug level through the package logger.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithLogger sets the logger used by this converter instead of the
// package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPreprocessor sets a stage that ConvertImage applies to the image
// before building the pixel grid.
func WithPreprocessor(p Preprocessor) Option {
	return func(o *options) {
		o.preprocess = p
	}
}
