package math

import (
	stdmath "math"
	"testing"
)

var roundInputs = []float32{
	-2.5, -1.5, -0.5, -0.49999997, 0.49999997, 0.5, 1.5, 2.5,
	3.7, -3.7, 4194304.5, -4194304.5, 8388609, -1e10, 1e10,
	0, negZ, inf, -inf, nan, 0.3, -0.3, 99.999, -100.0001,
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name string
		fn   unaryFn
		ref  func(float64) float64
	}{
		{"Trunc", Trunc[v8, i8, m8], stdmath.Trunc},
		{"Floor", Floor[v8, i8, m8], stdmath.Floor},
		{"Ceil", Ceil[v8, i8, m8], stdmath.Ceil},
		{"Rint", Rint[v8, i8, m8], stdmath.RoundToEven},
		{"NearbyInt", NearbyInt[v8, i8, m8], stdmath.RoundToEven},
		{"Round", Round[v8, i8, m8], stdmath.Round},
		{"truncFallback", truncFallback[v8, i8, m8], stdmath.Trunc},
		{"floorFallback", floorFallback[v8, i8, m8], stdmath.Floor},
		{"ceilFallback", ceilFallback[v8, i8, m8], stdmath.Ceil},
		{"rintFallback", rintFallback[v8, i8, m8], stdmath.RoundToEven},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(tt.fn, roundInputs)
			for i, x := range roundInputs {
				want := float32(tt.ref(float64(x)))
				if !sameFloat(got[i], want) {
					t.Errorf("%s(%v) = %v, want %v", tt.name, x, got[i], want)
				}
			}
		})
	}
}

func TestRoundFloat64(t *testing.T) {
	xs := [4]float64{-2.5, 0.49999999999999994, 2.5, 0x1p52 + 1}
	got := Round[f64x4, i64x4, m64x4](f64x4FromArray(xs)).Array()
	for i, x := range xs {
		if want := stdmath.Round(x); got[i] != want {
			t.Errorf("Round(%v) = %v, want %v", x, got[i], want)
		}
	}
}
