package util

import (
	"github.com/fogleman/ease"
)

// GenerateLut builds a symmetric ease-in-out gain look-up table that rises
// over the first half and falls over the second.
func GenerateLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// Hash01 maps an integer seed to a value in [0, 1). Content generators use
// it where an effect should look random but must stay a pure function of
// the frame index (splitmix64 finalizer).
func Hash01(seed int64) float64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return float64(x>>11) / float64(uint64(1)<<53)
}
