package math

import (
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kdt3rd/pal/hwy"
)

var exponentInputs = []float32{0.0005, -2, 31.2, 123412.2, 1, -0.75, stdmath.MaxFloat32, 0x1p-126}

func TestILogB(t *testing.T) {
	got := ILogB[v8, i8, m8](lanes8(exponentInputs...)).Array()
	for i, x := range exponentInputs {
		if want := int32(stdmath.Ilogb(float64(x))); got[i] != want {
			t.Errorf("ILogB(%v) = %d, want %d", x, got[i], want)
		}
	}

	special := ILogB[v8, i8, m8](lanes8(0, negZ, nan, inf, -inf, subnrm)).Array()
	want := [8]int32{FPILogB0, FPILogB0, FPILogBNaN, stdmath.MaxInt32, stdmath.MaxInt32, FPILogB0, FPILogB0, FPILogB0}
	if diff := cmp.Diff(want, special); diff != "" {
		t.Errorf("ILogB special cases mismatch (-want +got):\n%s", diff)
	}
}

func TestFrExp(t *testing.T) {
	m, e := FrExp[v8, i8, m8](lanes8(exponentInputs...))
	for i, x := range exponentInputs {
		wantM, wantE := stdmath.Frexp(float64(x))
		if got := m.Get(i); got != wantM {
			t.Errorf("FrExp(%v) mantissa = %v, want %v", x, got, wantM)
		}
		if got := e.Get(i); got != int64(wantE) {
			t.Errorf("FrExp(%v) exponent = %d, want %d", x, got, wantE)
		}
	}

	t.Run("special", func(t *testing.T) {
		xs := []float32{0, negZ, inf, -inf, nan}
		m, e := FrExp[v8, i8, m8](lanes8(xs...))
		for i, x := range xs {
			if !sameFloat(float32(m.Get(i)), x) || e.Get(i) != 0 {
				t.Errorf("FrExp(%v) = (%v, %d), want (%v, 0)", x, m.Get(i), e.Get(i), x)
			}
		}
	})
}

func TestLdExp(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		e    int32
		want float32
	}{
		{"scale up", 1.5, 10, 1536},
		{"scale down", 1536, -10, 1.5},
		{"negative", -0.75, 3, -6},
		{"no change", 31.2, 0, 31.2},
		{"to max exponent", 1, 127, 0x1p127},
		{"overflow", 1, 128, inf},
		{"negative overflow", -3, 200, -inf},
		{"flush", 1, -127, 0},
		{"negative flush", -1, -200, negZ},
		{"zero", 0, 5, 0},
		{"negative zero", negZ, 5, negZ},
		{"infinity", -inf, -5, -inf},
		{"NaN", nan, 3, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := hwy.BroadcastInt32x8(tt.e)
			got := float32(LdExp[v8, i8, m8](lanes8(tt.x), e).Get(0))
			if !sameFloat(got, tt.want) {
				t.Errorf("LdExp(%v, %d) = %v, want %v", tt.x, tt.e, got, tt.want)
			}
		})
	}
}

func TestFrExpLdExpRoundTrip(t *testing.T) {
	for _, xs := range [][]float32{exponentInputs, {1e-30, -1e30, 3, 0.1, -7.5, 1e38, 2e-38, 42}} {
		v := lanes8(xs...)
		m, e := FrExp[v8, i8, m8](v)
		back := LdExp[v8, i8, m8](m, e)
		if diff := cmp.Diff(v.Array(), back.Array()); diff != "" {
			t.Errorf("LdExp(FrExp(x)) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestLdExpFloat64(t *testing.T) {
	v := f64x4FromArray([4]float64{1, -3, 0.1, 1e300})
	e := hwy.Int64x4FromArray([4]int64{1000, -2, 3, 100})
	got := LdExp[f64x4, i64x4, m64x4](v, e).Array()
	want := [4]float64{0x1p1000, -0.75, 0.8, stdmath.Inf(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LdExp mismatch (-want +got):\n%s", diff)
	}
}
