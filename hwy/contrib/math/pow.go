package math

import (
	stdmath "math"

	"github.com/kdt3rd/pal/hwy"
)

// PowInt raises every lane to the integer power p. Small powers are
// unrolled; larger ones use repeated squaring, and a negative p takes the
// reciprocal at the end.
func PowInt[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V, p int) V {
	fc := FloatConstants[V, I, M]{}
	switch p {
	case 0:
		return fc.One()
	case 1:
		return v
	case -1:
		return Recip[V, I, M](v)
	case 2:
		return v.Mul(v)
	case -2:
		return Recip[V, I, M](v.Mul(v))
	case 3:
		return v.Mul(v).Mul(v)
	case 4:
		sq := v.Mul(v)
		return sq.Mul(sq)
	}

	neg := p < 0
	n := uint(p)
	if neg {
		n = uint(-p)
	}
	acc := fc.One()
	base := v
	for n > 0 {
		if n&1 != 0 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return Recip[V, I, M](acc)
	}
	return acc
}

// PowLanes computes v^p lane by lane with the scalar math.Pow. It accepts
// any float shape, including float64 lanes, and follows math.Pow for every
// special case.
func PowLanes[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v, p V) V {
	r := v
	for i := range v.NumLanes() {
		r = r.With(i, stdmath.Pow(v.Get(i), p.Get(i)))
	}
	return r
}

// Pow computes v^p for each lane, within 4 ULP where the result is normal.
//
// The result is exp2(p*log2|v|). log2|v| is kept as an integer and a
// fraction, and p times each is carried with its rounding error, which is
// applied to the exp2 result as a first-order correction.
//
// Special cases follow the C library's powf. They are applied as a cascade
// of overrides, each later rule winning over the earlier ones:
//
//	v = ±Inf                 +Inf for p > 0, 0 for p < 0; negated for v = -Inf and odd p
//	v = ±0                   Inf for p < 0, 0 for p > 0; keeps the sign of v for odd p
//	|v| < 1, p = ±Inf        +Inf for p = -Inf, 0 for p = +Inf
//	|v| >= 1, p = ±Inf       0 for p = -Inf, +Inf for p = +Inf
//	v = -1, p = ±Inf         1
//	finite v < 0, p not int  -NaN
//	v NaN                    v
//	p NaN                    p
//	v = 1                    1
//	p = 0                    1
func Pow[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v, p V) V {
	fc := FloatConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}
	zero := fc.Zero()
	one := fc.One()
	inf := fc.Infinity()

	res := powMagnitude[V, I, M](Abs[V, I, M](v), p)

	pIsInt := p.Equal(Trunc[V, I, M](p))
	pIsOdd := pIsInt.And(p.ConvertToIntTrunc().And(ic.One()).NotEqual(ic.Zero()))
	pIsInf := IsInf[V, I, M](p)
	vIsInf := IsInf[V, I, M](v)
	vIsNeg := SignBit[V, I, M](v).Equal(ic.One())
	pIsNeg := SignBit[V, I, M](p).Equal(ic.One())

	// A negative base to an odd power keeps its sign.
	res = hwy.IfThenElse(vIsNeg.And(pIsOdd), res.Neg(), res)

	res = hwy.IfThenElse(vIsInf,
		hwy.IfThenElse(pIsNeg,
			hwy.IfThenElse(vIsNeg.And(pIsOdd), zero.Neg(), zero),
			hwy.IfThenElse(vIsNeg.And(pIsOdd), inf.Neg(), inf)),
		res)
	res = hwy.IfThenElse(v.Equal(zero),
		hwy.IfThenElse(pIsNeg,
			hwy.IfThenElse(pIsOdd, CopySign[V, I, M](inf, v), inf),
			hwy.IfThenElse(pIsOdd, v, zero)),
		res)
	res = hwy.IfThenElse(Abs[V, I, M](v).Less(one),
		hwy.IfThenElse(pIsInf, hwy.IfThenElse(pIsNeg, p.Neg(), zero), res),
		hwy.IfThenElse(pIsInf, hwy.IfThenElse(pIsNeg, zero, p), res))
	res = hwy.IfThenElse(v.Equal(one.Neg()).And(pIsInf), one, res)

	negFinite := v.Less(zero).AndNot(vIsInf)
	res = hwy.IfThenElse(negFinite.AndNot(pIsInt), fc.NaN().Neg(), res)
	res = hwy.IfThenElse(IsNaN[V, I, M](v), v, res)
	res = hwy.IfThenElse(IsNaN[V, I, M](p), p, res)
	res = hwy.IfThenElse(v.Equal(one), v, res)
	res = hwy.IfThenElse(p.Equal(zero), one, res)
	return res
}

// powMagnitude returns exp2(p*log2(a)) for a >= 0 with the product carried
// in two parts.
func powMagnitude[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](a, p V) V {
	fc := FloatConstants[V, I, M]{}
	k, t := log2Parts[V, I, M](a)

	// p*k and p*t with their rounding errors (exact when MulSub is fused)
	yk := p.Mul(k)
	ek := p.MulSub(k, yk)
	yt := p.Mul(t)
	et := p.MulSub(t, yt)

	// Two-sum of yk + yt.
	y := yk.Add(yt)
	bb := y.Sub(yk)
	ey := yk.Sub(y.Sub(bb)).Add(yt.Sub(bb))
	lo := ek.Add(et).Add(ey)

	r := Exp2[V, I, M](y)
	corr := r.Mul(lo.Mul(fc.Ln2()))
	return hwy.IfThenElse(IsFinite[V, I, M](corr), r.Add(corr), r)
}

// PowScalar is Pow with the same exponent in every lane.
func PowScalar[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V, p float64) V {
	return Pow[V, I, M](v, FloatConstants[V, I, M]{}.Set(p))
}

// FasterPow is FasterExp2(p*FasterLog2(v)), with no special cases. Only
// positive normal v give meaningful results.
func FasterPow[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v, p V) V {
	return FasterExp2[V, I, M](p.Mul(FasterLog2[V, I, M](v)))
}

func FasterPowScalar[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V, p float64) V {
	return FasterPow[V, I, M](v, FloatConstants[V, I, M]{}.Set(p))
}

// FastPow is FastExp(p*FastLog(v)), with no special cases. Within 64 ULP
// for positive normal v and results well inside the float range.
func FastPow[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v, p V) V {
	return FastExp[V, I, M](p.Mul(FastLog[V, I, M](v)))
}

func FastPowScalar[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V, p float64) V {
	return FastPow[V, I, M](v, FloatConstants[V, I, M]{}.Set(p))
}
