//go:build !hwy_nofma

package hwy

import "math"

// HasFMA reports whether MulAdd and friends round once (fused multiply-add).
const HasFMA = true

// fmaF32 rounds a*b+c once in float64 and once more to float32. The two
// roundings differ from a single fused one only on rare halfway cases.
func fmaF32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

func fmaF64(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}
