package math

import (
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kdt3rd/pal/hwy"
)

func TestClassify(t *testing.T) {
	// NaN, +Inf, -Inf, +0, -0, subnormal, 1.5, -max
	v := lanes8(nan, inf, -inf, 0, negZ, subnrm, 1.5, -stdmath.MaxFloat32)

	tests := []struct {
		name string
		got  hwy.Mask32x8
		want [8]bool
	}{
		{"IsNaN", IsNaN[v8, i8, m8](v), [8]bool{true, false, false, false, false, false, false, false}},
		{"IsInf", IsInf[v8, i8, m8](v), [8]bool{false, true, true, false, false, false, false, false}},
		{"IsFinite", IsFinite[v8, i8, m8](v), [8]bool{false, false, false, true, true, true, true, true}},
		// Subnormals count as normal.
		{"IsNormal", IsNormal[v8, i8, m8](v), [8]bool{false, false, false, false, false, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [8]bool
			for i := range got {
				got[i] = tt.got.Get(i)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestFPClassify(t *testing.T) {
	v := lanes8(nan, -inf, negZ, subnrm, -subnrm, 1, stdmath.MaxFloat32, stdmath.SmallestNonzeroFloat32*(1<<23))
	want := [8]int32{FPNaN, FPInfinite, FPZero, FPSubnormal, FPSubnormal, FPNormal, FPNormal, FPNormal}

	got := FPClassify[v8, i8, m8](v).Array()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FPClassify mismatch (-want +got):\n%s", diff)
	}
}

// Every bit pattern falls in exactly one category, and the category agrees
// with the predicates.
func TestFPClassifyPartition(t *testing.T) {
	for b := uint64(0); b < 1<<32; b += 0x10001 {
		x := stdmath.Float32frombits(uint32(b))
		v := lanes8(x, -x)
		c := FPClassify[v8, i8, m8](v).Get(0)
		c2 := FPClassify[v8, i8, m8](v).Get(1)
		if c != c2 {
			t.Fatalf("FPClassify(%v) = %d but FPClassify(%v) = %d", x, c, -x, c2)
		}

		var want int64
		f := float64(x)
		switch {
		case stdmath.IsNaN(f):
			want = FPNaN
		case stdmath.IsInf(f, 0):
			want = FPInfinite
		case x == 0:
			want = FPZero
		case stdmath.Abs(f) < 0x1p-126:
			want = FPSubnormal
		default:
			want = FPNormal
		}
		if c != want {
			t.Fatalf("FPClassify(%v) = %d, want %d", x, c, want)
		}
		if got := IsNaN[v8, i8, m8](v).Get(0); got != (want == FPNaN) {
			t.Fatalf("IsNaN(%v) = %v", x, got)
		}
		if got := IsFinite[v8, i8, m8](v).Get(0); got != (want >= FPZero) {
			t.Fatalf("IsFinite(%v) = %v", x, got)
		}
	}
}

func TestSignBit(t *testing.T) {
	v := lanes8(1, -1, 0, negZ, inf, -inf, nan, stdmath.Float32frombits(0xffc00000))
	want := [8]int32{0, 1, 0, 1, 0, 1, 0, 1}
	if diff := cmp.Diff(want, SignBit[v8, i8, m8](v).Array()); diff != "" {
		t.Errorf("SignBit mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyFloat64(t *testing.T) {
	v := hwy.Float64x4FromArray([4]float64{stdmath.NaN(), stdmath.Inf(-1), 0, stdmath.SmallestNonzeroFloat64})
	want := [4]int64{FPNaN, FPInfinite, FPZero, FPSubnormal}
	got := FPClassify[hwy.Float64x4, hwy.Int64x4, hwy.Mask64x4](v).Array()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FPClassify mismatch (-want +got):\n%s", diff)
	}
}
