package math

import (
	stdmath "math"
	"testing"

	"github.com/kdt3rd/pal/hwy"
	"github.com/kdt3rd/pal/internal/ulp"
)

// Most tests run on the 8-lane float32 shape.
type (
	v8 = hwy.Float32x8
	i8 = hwy.Int32x8
	m8 = hwy.Mask32x8
)

var (
	nan    = float32(stdmath.NaN())
	inf    = float32(stdmath.Inf(1))
	negZ   = float32(stdmath.Copysign(0, -1))
	subnrm = stdmath.Float32frombits(1)
)

func f4(a, b, c, d float32) hwy.Float32x4 {
	return hwy.Float32x4FromArray([4]float32{a, b, c, d})
}

// lanes8 packs up to 8 values into a Float32x8, zero filling.
func lanes8(xs ...float32) v8 {
	return hwy.LoadFloat32x8Partial(xs)
}

func lanesOf[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) []float32 {
	out := make([]float32, v.NumLanes())
	v.StoreSlice(out)
	return out
}

type unaryFn func(v8) v8

// sweep applies fn to every x = lo + i*step in [lo, hi] and measures the
// result against ref rounded to float32. Inputs for which skip reports true
// are left out.
func sweep(fn unaryFn, ref func(float64) float64, lo, hi, step float64, skip func(x float32) bool) ulp.Stats {
	var xs []float32
	for i := 0; ; i++ {
		x := lo + float64(i)*step
		if x > hi {
			break
		}
		if xf := float32(x); skip == nil || !skip(xf) {
			xs = append(xs, xf)
		}
	}
	return measure(fn, ref, xs)
}

// geomSweep is sweep over lo, lo*factor, lo*factor^2, ... up to hi.
func geomSweep(fn unaryFn, ref func(float64) float64, lo, hi, factor float64) ulp.Stats {
	var xs []float32
	for x := lo; x <= hi; x *= factor {
		xs = append(xs, float32(x))
	}
	return measure(fn, ref, xs)
}

func measure(fn unaryFn, ref func(float64) float64, xs []float32) ulp.Stats {
	var s ulp.Stats
	got := apply(fn, xs)
	for i, x := range xs {
		s.Add(float64(x), got[i], ulp.Ref32(ref, x))
	}
	return s
}

func checkSweep(t *testing.T, name string, s ulp.Stats, maxULP uint64) {
	t.Helper()
	if s.Count == 0 {
		t.Fatalf("%s: empty sweep", name)
	}
	if s.Max > maxULP {
		t.Errorf("%s: max error %d ULP at x=%v, want <= %d", name, s.Max, s.Worst, maxULP)
	}
}

// sameFloat reports whether got and want are the same value, treating all
// NaNs as equal and distinguishing -0 from +0.
func sameFloat(got, want float32) bool {
	if got != got || want != want {
		return got != got && want != want
	}
	return got == want && stdmath.Signbit(float64(got)) == stdmath.Signbit(float64(want))
}

// apply runs fn over xs eight lanes at a time.
func apply(fn unaryFn, xs []float32) []float32 {
	out := make([]float32, len(xs))
	for off := 0; off < len(xs); off += 8 {
		end := min(off+8, len(xs))
		fn(lanes8(xs[off:end]...)).StorePartial(out[off:end])
	}
	return out
}

type (
	f64x4 = hwy.Float64x4
	i64x4 = hwy.Int64x4
	m64x4 = hwy.Mask64x4
)

var f64x4FromArray = hwy.Float64x4FromArray

type (
	f32x4  = hwy.Float32x4
	i32x4  = hwy.Int32x4
	m32x4  = hwy.Mask32x4
	f32x16 = hwy.Float32x16
	i32x16 = hwy.Int32x16
	m32x16 = hwy.Mask32x16
)

var (
	hwyLoad4  = hwy.LoadFloat32x4
	hwyLoad16 = hwy.LoadFloat32x16
)
