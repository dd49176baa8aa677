package filter

import "math"

// MaxRadius is the largest blur radius the filters honour. Larger radii
// are clamped to it.
const MaxRadius = 64.0

// GaussianKernel generates a normalized 1D Gaussian kernel using radius as
// sigma. The kernel has 2*ceil(3*radius)+1 taps; radius is clamped to
// MaxRadius.
//
// For radius <= 0 or NaN, returns the identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	return gaussianKernel(radius, math.MaxInt)
}

// gaussianKernel is GaussianKernel with at most maxHalf taps on each side
// of the centre.
func gaussianKernel(radius float64, maxHalf int) []float32 {
	if radius <= 0 || math.IsNaN(radius) {
		return []float32{1.0}
	}
	radius = min(radius, MaxRadius)

	half := min(int(math.Ceil(radius*3)), max(maxHalf, 0))
	kernel := make([]float32, half*2+1)

	// exp(-x²/(2σ²)); the constant factor cancels in normalization.
	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}
