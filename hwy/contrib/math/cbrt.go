package math

import "github.com/kdt3rd/pal/hwy"

// Cbrt computes the real cube root of each lane, within 2 ULP.
//
// |v| is split into a mantissa in [0.5, 1) and an exponent e. A quadratic
// estimate of the mantissa's cube root is refined by one Halley step, then
// scaled by 2^(1/3) or 2^(2/3) (or their inverses for negative e) for the
// remainder of e/3, and polished with a Newton step against the scaled
// mantissa. Zero, NaN and infinite lanes are returned unchanged; subnormal
// lanes are not normalized first.
func Cbrt[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}
	two := fc.Two()

	xm, xe := FrExp[V, I, M](Abs[V, I, M](v))

	x := xm.MulAdd(xm.NegMulAdd(fc.Set(cbrtC0_f32), fc.Set(cbrtC1_f32)), fc.Set(cbrtC2_f32))

	// Halley: x*(x^3 + 2m)/(2x^3 + m)
	x3 := x.Mul(x).Mul(x)
	x = x.Mul(xm.MulAdd(two, x3)).Div(two.MulAdd(x3, xm))

	nxe := DivideByConst[I, V, M](xe, 3)
	rem := xe.Sub(ic.Set(3).Mul(nxe))

	isOne := rem.Abs().Equal(ic.One())
	up := hwy.IfThenElse(isOne, fc.Set(cbrt2_f32), fc.Set(cbrt4_f32))
	down := hwy.IfThenElse(isOne, fc.Set(1/cbrt2_f32), fc.Set(1/cbrt4_f32))
	factor := hwy.IfThenElse(xe.Less(ic.Zero()), down, up)
	y := hwy.IfThenElse(rem.Equal(ic.Zero()), x, x.Mul(factor))

	// y is now the cube root of a = m*2^rem; take out the rounding of the
	// factor with y -= (y^3 - a)/(3y^2).
	a := LdExp[V, I, M](xm, rem)
	yy := y.Mul(y)
	resid := yy.MulSub(y, a)
	y = y.Sub(resid.Div(fc.Three().Mul(yy)))

	y = LdExp[V, I, M](CopySign[V, I, M](y, v), nxe)
	return hwy.IfThenElse(IsNormal[V, I, M](v), y, v)
}
