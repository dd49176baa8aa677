package filter

import (
	"github.com/gogpu/vectorize"
)

// Luminance weights (Rec. 709).
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Luminance returns the Rec. 709 luma of an 8-bit RGB triple in [0, 255].
func Luminance(r, g, b uint8) float32 {
	return lumR*float32(r) + lumG*float32(g) + lumB*float32(b)
}

// Threshold returns a copy of src in which every pixel whose luminance is
// below level has its colour channels cleared, making it background.
// Alpha is preserved. Level 0 returns an unmodified copy.
func Threshold(src *vectorize.Pixmap, level uint8) *vectorize.Pixmap {
	w, h := src.Size()
	dst := vectorize.NewPixmap(w, h)
	out := dst.Data()
	copy(out, src.Data())
	if level == 0 {
		return dst
	}

	limit := float32(level)
	for i := 0; i+3 < len(out); i += 4 {
		if Luminance(out[i], out[i+1], out[i+2]) < limit {
			out[i], out[i+1], out[i+2] = 0, 0, 0
		}
	}
	return dst
}
