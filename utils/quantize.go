package utils

import "math"

// PCMMax returns the largest positive sample value representable as a
// signed integer at the given bit depth (e.g. 32767 for 16-bit).
func PCMMax(bitDepth uint) float64 {
	return float64(int64(1)<<(bitDepth-1)) - 1
}

// PCMMin returns the most negative sample value representable as a
// signed integer at the given bit depth (e.g. -32768 for 16-bit).
func PCMMin(bitDepth uint) float64 {
	return -float64(int64(1) << (bitDepth - 1))
}

// ClampFloat limits x to the canonical floating point range [-1.0, 1.0].
func ClampFloat(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// ClampPCM limits x to the signed integer range of the given bit depth.
func ClampPCM(x float64, bitDepth uint) float64 {
	if max := PCMMax(bitDepth); x > max {
		return max
	}
	if min := PCMMin(bitDepth); x < min {
		return min
	}
	return x
}

// Truncate drops the fractional part of x, rounding toward zero.
// All narrowing conversions share this rule so results are reproducible
// bit-for-bit.
func Truncate(x float64) float64 {
	return math.Trunc(x)
}
