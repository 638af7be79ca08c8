package math

import (
	stdmath "math"

	"github.com/kdt3rd/pal/hwy"
)

// Floating-point categories returned by FPClassify. The values match the
// C library's FP_* macros.
const (
	FPNaN       = 0
	FPInfinite  = 1
	FPZero      = 2
	FPSubnormal = 3
	FPNormal    = 4
)

// ILogB results for zero and NaN inputs, as in glibc.
const (
	FPILogB0   = stdmath.MinInt32
	FPILogBNaN = stdmath.MinInt32
)

// IsNaN is true in the lanes holding a NaN.
func IsNaN[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) M {
	return v.Unordered(v)
}

// IsInf is true in the lanes holding ±Inf: the value is not NaN, but 0*v
// is.
func IsInf[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) M {
	zv := FloatConstants[V, I, M]{}.Zero().Mul(v)
	return v.Ordered(v).And(v.Unordered(zv))
}

// IsFinite is true in the lanes holding neither ±Inf nor NaN.
func IsFinite[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) M {
	zv := FloatConstants[V, I, M]{}.Zero().Mul(v)
	return v.Ordered(zv)
}

// IsNormal is true in the finite, non-zero lanes. Subnormal values are
// reported as normal.
func IsNormal[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) M {
	zero := FloatConstants[V, I, M]{}.Zero()
	return v.Ordered(v.Mul(zero)).And(v.NotEqual(zero))
}

// FPClassify returns one of FPNaN, FPInfinite, FPZero, FPSubnormal or
// FPNormal for every lane. Each bit pattern maps to exactly one category.
func FPClassify[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) I {
	ec := ExtractConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}
	zero := ic.Zero()
	allOnes := ec.BiasedExponentRange()

	bits := v.AsInt()
	e := bits.ShiftAllRightLogical(ec.MantissaBits()).And(allOnes)

	// e == 0: zero unless anything but the sign is set.
	eZero := e.Equal(zero)
	magnitude := bits.ShiftAllLeft(1).Greater(zero)
	// e all ones: infinity when the mantissa is clear.
	eMax := e.Equal(allOnes)
	mantZero := bits.ShiftAllLeft(ec.ExponentBits() + 1).Equal(zero)

	r := ic.Set(FPNormal)
	r = hwy.IfThenElse(eZero.And(magnitude), ic.Set(FPSubnormal), r)
	r = hwy.IfThenElse(eZero.AndNot(magnitude), ic.Set(FPZero), r)
	r = hwy.IfThenElse(eMax.And(mantZero), ic.Set(FPInfinite), r)
	r = hwy.IfThenElse(eMax.AndNot(mantZero), ic.Set(FPNaN), r)
	return r
}

// SignBit returns 1 in the lanes whose sign bit is set (including -0 and
// negative NaNs) and 0 elsewhere.
func SignBit[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) I {
	ec := ExtractConstants[V, I, M]{}
	return v.AsInt().ShiftAllRightLogical(ec.LaneBits() - 1)
}
