package filter

import (
	"image"

	"github.com/gogpu/vectorize"
)

// Stage transforms a pixmap into a new one.
type Stage func(*vectorize.Pixmap) *vectorize.Pixmap

// BlurStage returns a stage applying Blur with the given radius.
func BlurStage(radius float64) Stage {
	return func(pm *vectorize.Pixmap) *vectorize.Pixmap { return Blur(pm, radius) }
}

// ThresholdStage returns a stage applying Threshold at the given level.
func ThresholdStage(level uint8) Stage {
	return func(pm *vectorize.Pixmap) *vectorize.Pixmap { return Threshold(pm, level) }
}

// Chain runs stages in order on the image as a vectorize.Preprocessor.
// With no stages it returns nil, which disables preprocessing.
func Chain(stages ...Stage) vectorize.Preprocessor {
	if len(stages) == 0 {
		return nil
	}
	return func(img image.Image) (image.Image, error) {
		pm := vectorize.FromImage(img)
		for _, s := range stages {
			pm = s(pm)
		}
		return pm, nil
	}
}

// Pipeline builds the usual denoise chain: blur first when radius > 0,
// then threshold when level > 0. It returns nil when both are disabled.
func Pipeline(radius float64, level uint8) vectorize.Preprocessor {
	var stages []Stage
	if radius > 0 {
		stages = append(stages, BlurStage(radius))
	}
	if level > 0 {
		stages = append(stages, ThresholdStage(level))
	}
	return Chain(stages...)
}
