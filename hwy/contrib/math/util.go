package math

import "github.com/kdt3rd/pal/hwy"

// Abs clears the sign bit of each lane. NaN payloads are kept.
func Abs[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return v.AndNot(signMask[V, I, M]())
}

// CopySign returns the magnitude of mag with the sign of sign.
func CopySign[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](mag, sign V) V {
	return mag.BitMix(sign, signMask[V, I, M]())
}

func signMask[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]]() V {
	fc := FloatConstants[V, I, M]{}
	return fc.Bits(fc.limits().SignMask)
}

// Clamp limits each lane to [lo, hi]. A NaN lane comes out as hi.
func Clamp[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v, lo, hi V) V {
	return v.Min(hi).Max(lo)
}

// ClampScalar is Clamp with the same bounds in every lane.
func ClampScalar[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V, lo, hi float64) V {
	fc := FloatConstants[V, I, M]{}
	return Clamp[V, I, M](v, fc.Set(lo), fc.Set(hi))
}

func Square[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return v.Mul(v)
}

// Fmod returns n - trunc(n/d)*d. The quotient goes through a truncating
// integer conversion, so it is only exact while n/d fits in the lane's
// integer type.
func Fmod[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](n, d V) V {
	q := n.Div(d).ConvertToIntTrunc().ConvertToFloat()
	return q.NegMulAdd(d, n)
}

// HSum returns the sum of all lanes.
func HSum[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) float64 {
	return v.ReduceSum()
}
