package math

import "github.com/kdt3rd/pal/hwy"

// ILogB returns the unbiased exponent of each lane. Zero (and subnormal)
// lanes give FPILogB0, NaN lanes FPILogBNaN and infinite lanes the largest
// lane integer.
func ILogB[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x V) I {
	ec := ExtractConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}

	e := biasedExponent[V, I, M](x)
	r := e.Sub(ec.Bias())
	r = hwy.IfThenElse(e.Equal(ic.Zero()), ic.Set(FPILogB0), r)
	r = hwy.IfThenElse(IsNaN[V, I, M](x), ic.Set(FPILogBNaN), r)
	r = hwy.IfThenElse(IsInf[V, I, M](x), ic.Max(), r)
	return r
}

func biasedExponent[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x V) I {
	ec := ExtractConstants[V, I, M]{}
	return x.AsInt().And(ec.ExponentMask()).ShiftAllRightLogical(ec.MantissaBits())
}

// nonFinite is true in the zero, NaN and infinite lanes, the inputs that
// scaling by a power of two leaves unchanged.
func nonFinite[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x V) M {
	zero := FloatConstants[V, I, M]{}.Zero()
	return x.Equal(zero).Or(IsNaN[V, I, M](x)).Or(IsInf[V, I, M](x))
}

// LdExp returns x * 2^e by adding e to the exponent field.
//
// Zero, NaN and infinite lanes come back unchanged. A lane whose new
// exponent passes the largest finite one becomes ±Inf, and one whose
// exponent reaches zero or below is flushed to a zero of the same sign.
func LdExp[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x V, e I) V {
	fc := FloatConstants[V, I, M]{}
	ec := ExtractConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}

	e = hwy.IfThenElse(nonFinite[V, I, M](x), ic.Zero(), e)
	cur := biasedExponent[V, I, M](x).Add(e)

	repl := cur.ShiftAllLeft(ec.MantissaBits()).AsFloat()
	r := x.BitMix(repl, ec.ExponentMask().AsFloat())

	r = hwy.IfThenElse(cur.GreaterEqual(ec.BiasedExponentRange()), CopySign[V, I, M](fc.Infinity(), x), r)
	r = hwy.IfThenElse(cur.LessEqual(ic.Zero()), CopySign[V, I, M](fc.Zero(), x), r)
	return hwy.IfThenElse(e.Equal(ic.Zero()), x, r)
}

// FrExp splits x into a mantissa in [0.5, 1) carrying the sign of x and an
// exponent, so that x = mantissa * 2^exponent. Zero, NaN and infinite lanes
// return x with an exponent of 0, as glibc does.
func FrExp[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x V) (V, I) {
	ec := ExtractConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}

	e := biasedExponent[V, I, M](x).Sub(ec.BiasM1())

	half := ec.BiasM1().ShiftAllLeft(ec.MantissaBits()).AsFloat()
	m := x.AndNot(ec.ExponentMask().AsFloat()).Or(half)

	bad := nonFinite[V, I, M](x)
	m = hwy.IfThenElse(bad, x, m)
	e = hwy.IfThenElse(bad, ic.Zero(), e)
	return m, e
}
