package cache

import "crypto/sha256"

// Key identifies a conversion: the digest of the uploaded bytes plus every
// setting that changes the resulting SVG.
type Key struct {
	Digest    [sha256.Size]byte
	Tolerance float64
	MinPoints int
	Blur      float64
	Threshold int
}

// NewKey hashes data and combines it with the conversion settings.
func NewKey(data []byte, tolerance float64, minPoints int, blur float64, threshold int) Key {
	return Key{
		Digest:    sha256.Sum256(data),
		Tolerance: tolerance,
		MinPoints: minPoints,
		Blur:      blur,
		Threshold: threshold,
	}
}
