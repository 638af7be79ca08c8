//go:build hwy_nofma

package hwy

// HasFMA reports whether MulAdd and friends round once (fused multiply-add).
const HasFMA = false

// Explicit conversions stop the compiler from fusing the multiply and add.
func fmaF32(a, b, c float32) float32 {
	return float32(a*b) + c
}

func fmaF64(a, b, c float64) float64 {
	return float64(a*b) + c
}
