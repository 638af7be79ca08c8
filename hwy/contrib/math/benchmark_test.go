package math_test

import (
	"testing"

	"github.com/kdt3rd/pal/hwy"
	hwymath "github.com/kdt3rd/pal/hwy/contrib/math"
)

type (
	vec  = hwy.Float32x8
	ivec = hwy.Int32x8
	mvec = hwy.Mask32x8
)

const benchSize = 4096

func benchInput(scale, offset float32) []float32 {
	input := make([]float32, benchSize)
	for i := range input {
		input[i] = float32(i%100)*scale + offset
	}
	return input
}

func benchUnary(b *testing.B, input []float32, fn func(vec) vec) {
	output := make([]float32, len(input))
	b.SetBytes(int64(4 * len(input)))
	b.ReportAllocs()
	for b.Loop() {
		for off := 0; off+8 <= len(input); off += 8 {
			fn(hwy.LoadFloat32x8(input[off:])).StoreSlice(output[off:])
		}
	}
}

func BenchmarkExp(b *testing.B) {
	input := benchInput(0.1, -5)
	b.Run("Exp", func(b *testing.B) { benchUnary(b, input, hwymath.Exp[vec, ivec, mvec]) })
	b.Run("FastExp", func(b *testing.B) { benchUnary(b, input, hwymath.FastExp[vec, ivec, mvec]) })
	b.Run("Exp2", func(b *testing.B) { benchUnary(b, input, hwymath.Exp2[vec, ivec, mvec]) })
	b.Run("FasterExp2", func(b *testing.B) { benchUnary(b, input, hwymath.FasterExp2[vec, ivec, mvec]) })
	b.Run("Exp10", func(b *testing.B) { benchUnary(b, input, hwymath.Exp10[vec, ivec, mvec]) })
}

func BenchmarkLog(b *testing.B) {
	input := benchInput(0.1, 0.01)
	b.Run("Log", func(b *testing.B) { benchUnary(b, input, hwymath.Log[vec, ivec, mvec]) })
	b.Run("Log2", func(b *testing.B) { benchUnary(b, input, hwymath.Log2[vec, ivec, mvec]) })
	b.Run("FastLog2", func(b *testing.B) { benchUnary(b, input, hwymath.FastLog2[vec, ivec, mvec]) })
	b.Run("FasterLog2", func(b *testing.B) { benchUnary(b, input, hwymath.FasterLog2[vec, ivec, mvec]) })
}

func BenchmarkPow(b *testing.B) {
	input := benchInput(0.1, 0.01)
	b.Run("Pow", func(b *testing.B) {
		benchUnary(b, input, func(v vec) vec { return hwymath.PowScalar[vec, ivec, mvec](v, 2.4) })
	})
	b.Run("FastPow", func(b *testing.B) {
		benchUnary(b, input, func(v vec) vec { return hwymath.FastPowScalar[vec, ivec, mvec](v, 2.4) })
	})
	b.Run("FasterPow", func(b *testing.B) {
		benchUnary(b, input, func(v vec) vec { return hwymath.FasterPowScalar[vec, ivec, mvec](v, 2.4) })
	})
	b.Run("PowInt", func(b *testing.B) {
		benchUnary(b, input, func(v vec) vec { return hwymath.PowInt[vec, ivec, mvec](v, 5) })
	})
}

func BenchmarkMisc(b *testing.B) {
	input := benchInput(0.06, -3)
	b.Run("Sin", func(b *testing.B) { benchUnary(b, input, hwymath.Sin[vec, ivec, mvec]) })
	b.Run("Cos", func(b *testing.B) { benchUnary(b, input, hwymath.Cos[vec, ivec, mvec]) })
	b.Run("Cbrt", func(b *testing.B) { benchUnary(b, input, hwymath.Cbrt[vec, ivec, mvec]) })
	b.Run("RSqrt", func(b *testing.B) { benchUnary(b, input, hwymath.RSqrt[vec, ivec, mvec]) })
	b.Run("FastRSqrt", func(b *testing.B) { benchUnary(b, input, hwymath.FastRSqrt[vec, ivec, mvec]) })
	b.Run("Round", func(b *testing.B) { benchUnary(b, input, hwymath.Round[vec, ivec, mvec]) })
}
