package vectorize

import (
	"errors"

	"github.com/gogpu/vectorize/internal/simplify"
)

// Conversion errors.
var (
	// ErrNilGrid is returned when Convert is called without a pixel grid.
	ErrNilGrid = errors.New("vectorize: nil pixel grid")

	// ErrEmptySequence is returned when a path is assembled from no points.
	ErrEmptySequence = errors.New("vectorize: cannot assemble a path from an empty point sequence")

	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = simplify.ErrInvalidTolerance

	// ErrEdgeDetectionUnimplemented is returned by DetectEdgesSobel.
	ErrEdgeDetectionUnimplemented = errors.New("vectorize: Sobel edge detection is not implemented")
)
