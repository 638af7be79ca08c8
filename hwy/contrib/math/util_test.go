package math

import (
	stdmath "math"
	"testing"
)

func TestUtil(t *testing.T) {
	x := lanes8(-2, 3.5, negZ, 7, -7, 0.25, 10, -10)
	y := lanes8(1, -1, 1, 2, 2, -3, 3, 3)

	t.Run("Abs", func(t *testing.T) {
		want := []float32{2, 3.5, 0, 7, 7, 0.25, 10, 10}
		got := lanesOf(Abs[v8, i8, m8](x))
		for i := range want {
			if !sameFloat(got[i], want[i]) {
				t.Errorf("Abs lane %d = %v, want %v", i, got[i], want[i])
			}
		}
	})
	t.Run("CopySign", func(t *testing.T) {
		want := []float32{2, -3.5, 0, 7, 7, -0.25, 10, 10}
		got := lanesOf(CopySign[v8, i8, m8](x, y))
		for i := range want {
			if !sameFloat(got[i], want[i]) {
				t.Errorf("CopySign lane %d = %v, want %v", i, got[i], want[i])
			}
		}
	})
	t.Run("Clamp", func(t *testing.T) {
		got := lanesOf(ClampScalar[v8, i8, m8](x, -5, 5))
		want := []float32{-2, 3.5, negZ, 5, -5, 0.25, 5, -5}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Clamp lane %d = %v, want %v", i, got[i], want[i])
			}
		}
	})
	t.Run("Fmod", func(t *testing.T) {
		got := lanesOf(Fmod[v8, i8, m8](x, y))
		for i := range got {
			want := float32(stdmath.Mod(x.Get(i), y.Get(i)))
			if stdmath.Abs(float64(got[i]-want)) > 1e-6 {
				t.Errorf("Fmod(%v, %v) = %v, want %v", x.Get(i), y.Get(i), got[i], want)
			}
		}
	})
	t.Run("Square and HSum", func(t *testing.T) {
		sq := Square[v8, i8, m8](x)
		want := 4 + 12.25 + 0 + 49 + 49 + 0.0625 + 100 + 100
		if got := HSum[v8, i8, m8](sq); got != want {
			t.Errorf("HSum(Square(x)) = %v, want %v", got, want)
		}
	})
}
