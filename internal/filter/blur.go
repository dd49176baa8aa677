package filter

import (
	"github.com/gogpu/vectorize"
)

// Blur returns a Gaussian-blurred copy of src. The horizontal and vertical
// passes run separately; samples beyond the edge repeat the edge pixel.
// A radius <= 0 returns an unmodified copy; radii above MaxRadius are
// clamped, and the kernel never reaches further than the larger image
// dimension.
func Blur(src *vectorize.Pixmap, radius float64) *vectorize.Pixmap {
	w, h := src.Size()
	dst := vectorize.NewPixmap(w, h)
	if w == 0 || h == 0 {
		return dst
	}
	if radius <= 0 {
		copy(dst.Data(), src.Data())
		return dst
	}

	kernel := gaussianKernel(radius, max(w, h))
	temp := make([]float32, w*h*4)
	blurHorizontal(src.Data(), temp, w, h, kernel)
	blurVertical(temp, dst.Data(), w, h, kernel)
	return dst
}

// blurHorizontal convolves each row of src into temp.
func blurHorizontal(src []uint8, temp []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, w-1)
				i := (row + kx) * 4
				r += float32(src[i+0]) * weight
				g += float32(src[i+1]) * weight
				b += float32(src[i+2]) * weight
				a += float32(src[i+3]) * weight
			}
			i := (row + x) * 4
			temp[i+0], temp[i+1], temp[i+2], temp[i+3] = r, g, b, a
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst []uint8, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				i := (ky*w + x) * 4
				r += temp[i+0] * weight
				g += temp[i+1] * weight
				b += temp[i+2] * weight
				a += temp[i+3] * weight
			}
			i := (y*w + x) * 4
			dst[i+0] = clampUint8(r)
			dst[i+1] = clampUint8(g)
			dst[i+2] = clampUint8(b)
			dst[i+3] = clampUint8(a)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds v to the nearest byte value.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
