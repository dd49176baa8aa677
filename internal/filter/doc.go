// Package filter provides preprocessing stages that clean up a raster
// image before vectorisation.
//
// Region extraction treats every pixel with a non-zero colour channel as
// foreground, so compressed or scanned input tends to produce many tiny
// regions from near-black noise. The stages here reduce that noise:
//   - Gaussian blur (separable, edge-clamped)
//   - Luminance threshold (dark pixels become background)
//
// Stages are combined with Pipeline into a vectorize.Preprocessor.
package filter
