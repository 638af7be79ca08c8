package math

import (
	stdmath "math"
	"testing"

	"github.com/kdt3rd/pal/internal/ulp"
)

func TestCbrt(t *testing.T) {
	s := sweep(Cbrt[v8, i8, m8], stdmath.Cbrt, -1000, 1000, 0.0731, func(x float32) bool { return x == 0 })
	checkSweep(t, "Cbrt", s, 2)

	xs := []float32{8, -27, 0.001, 2, 1e-30, 3e20, -37.124, 0.0027, 1e38, -125}
	got := apply(Cbrt[v8, i8, m8], xs)
	for i, x := range xs {
		want := ulp.Ref32(stdmath.Cbrt, x)
		if d := ulp.Distance32(got[i], want); d > 2 {
			t.Errorf("Cbrt(%v) = %v, want %v (%d ULP)", x, got[i], want, d)
		}
	}
}

func TestCbrtSpecialCases(t *testing.T) {
	xs := []float32{0, negZ, inf, -inf, nan}
	got := apply(Cbrt[v8, i8, m8], xs)
	for i, x := range xs {
		if !sameFloat(got[i], x) {
			t.Errorf("Cbrt(%v) = %v, want %v", x, got[i], x)
		}
	}
}
