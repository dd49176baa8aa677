package vectorize

import "image"

// DetectEdgesSobel is the declared edge-detection preprocessing stage.
//
// It is not implemented: the gradient kernels, magnitude combination and
// threshold that would binarise the result are undefined. It always
// returns ErrEdgeDetectionUnimplemented, so a converter configured with
// WithPreprocessor(DetectEdgesSobel) fails instead of silently converting
// the unprocessed image.
func DetectEdgesSobel(img image.Image) (image.Image, error) {
	return nil, ErrEdgeDetectionUnimplemented
}
