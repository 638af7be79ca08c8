// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import "github.com/kdt3rd/pal/hwy"

// Exp computes e^x for each lane, within 1 ULP.
//
// x is reduced to r = x - k*ln2 with |r| <= 0.5*ln2, using a two-part ln2
// so that k*ln2 is subtracted exactly, and e^r comes from the FreeBSD
// rational approximation. Lanes with |x| >= 87.3365 saturate to 0 or +Inf,
// lanes with |x| <= 2^-13 return 1+x, and NaN passes through.
func Exp[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x0 V) V {
	fc := FloatConstants[V, I, M]{}
	ec := ExtractConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}

	ln2hi := fc.Bits(expLn2HiBits_f32)
	ln2lo := fc.Bits(expLn2LoBits_f32)
	invln2 := fc.Bits(expInvLn2Bits_f32)
	zero := fc.Zero()
	one := fc.One()

	hx := x0.AsInt().And(ic.NonSignBitmask())
	neg := x0.Less(zero)
	gtHalfLn2 := hx.Greater(ic.Set(expHalfLn2Bits_f32))
	gtThreeHalfLn2 := hx.Greater(ic.Set(expThreeHalfLn2_f32))

	signmul := hwy.IfThenElse(neg, one.Neg(), one)
	halfSign := fc.OneHalf().Mul(signmul)

	// Round x/ln2 half away from zero; between 0.5*ln2 and 1.5*ln2 k is ±1.
	k := hwy.IfThenElse(gtThreeHalfLn2,
		invln2.MulAdd(x0, halfSign).ConvertToIntTrunc(),
		signmul.ConvertToIntTrunc())
	fk := k.ConvertToFloat()

	hi := hwy.IfThenElse(gtHalfLn2, fk.NegMulAdd(ln2hi, x0), x0)
	lo := hwy.IfThenElse(gtHalfLn2, fk.Mul(ln2lo), zero)
	x := hwy.IfThenElse(gtHalfLn2, hi.Sub(lo), x0)
	k = hwy.IfThenElse(gtHalfLn2, k, ic.Zero())

	xx := x.Mul(x)
	c := x.Sub(xx.Mul(fc.Set(expP1_f32).Add(xx.Mul(fc.Set(expP2_f32)))))
	y := one.Add(x.Mul(c).Div(fc.Two().Sub(c)).Sub(lo).Add(hi))

	// Scale by 2^k through the exponent field.
	maxK := ic.Set(exp2Max_f32)
	minK := ic.Set(exp2Min_f32)
	n := k.Max(minK).Min(maxK).Add(ec.Bias())
	ey := y.Mul(n.ShiftAllLeft(ec.MantissaBits()).AsFloat())
	ey = hwy.IfThenElse(k.Greater(maxK), fc.Infinity(), ey)
	ey = hwy.IfThenElse(k.Less(minK), zero, ey)

	y = hwy.IfThenElse(k.Equal(ic.Zero()), y, ey)
	y = hwy.IfThenElse(hx.LessEqual(ic.Set(expTinyBits_f32)), one.Add(x0), y)
	y = hwy.IfThenElse(hx.GreaterEqual(ic.Set(expOverflowBits_f32)),
		hwy.IfThenElse(neg, zero, fc.Infinity()), y)
	y = hwy.IfThenElse(IsNaN[V, I, M](x0), x0, y)
	y = hwy.IfThenElse(IsInf[V, I, M](x0).And(neg), zero, y)
	return y
}

// Exp2 computes 2^x for each lane, within 1 ULP, with the Cephes exp2f
// polynomial on the fraction in [-0.5, 0.5]. Above 127 the result is +Inf,
// below -126 it is 0.
func Exp2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x0 V) V {
	fc := FloatConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}

	px := Floor[V, I, M](x0)
	i0 := px.ConvertToInt()
	x := x0.Sub(px)
	gtHalf := x.Greater(fc.OneHalf())
	i0 = hwy.IfThenElse(gtHalf, i0.Add(ic.One()), i0)
	x = hwy.IfThenElse(gtHalf, x.Sub(fc.One()), x)

	p := fc.Set(exp2P0_f32)
	p = p.MulAdd(x, fc.Set(exp2P1_f32))
	p = p.MulAdd(x, fc.Set(exp2P2_f32))
	p = p.MulAdd(x, fc.Set(exp2P3_f32))
	p = p.MulAdd(x, fc.Set(exp2P4_f32))
	p = p.MulAdd(x, fc.Set(exp2P5_f32))
	r := LdExp[V, I, M](x.MulAdd(p, fc.One()), i0)

	r = hwy.IfThenElse(x0.Equal(fc.Zero()), fc.One(), r)
	r = hwy.IfThenElse(x0.Greater(fc.Set(float64(exp2Max_f32))), fc.Infinity(), r)
	r = hwy.IfThenElse(x0.Less(fc.Set(float64(exp2Min_f32))), fc.Zero(), r)
	return r
}

// Exp10 computes 10^x for each lane with the Cephes exp10f polynomial.
// Beyond ±38.23 the result saturates to +Inf or 0.
func Exp10[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x0 V) V {
	fc := FloatConstants[V, I, M]{}

	qx := Floor[V, I, M](x0.MulAdd(fc.Set(exp10Log210_f32), fc.OneHalf()))
	n := qx.ConvertToInt()
	x := x0.Sub(qx.Mul(fc.Set(exp10Lg102A_f32)))
	x = x.Sub(qx.Mul(fc.Set(exp10Lg102B_f32)))

	r := fc.Set(exp10P0_f32)
	r = r.MulAdd(x, fc.Set(exp10P1_f32))
	r = r.MulAdd(x, fc.Set(exp10P2_f32))
	r = r.MulAdd(x, fc.Set(exp10P3_f32))
	r = r.MulAdd(x, fc.Set(exp10P4_f32))
	r = r.MulAdd(x, fc.Set(exp10P5_f32))
	r = LdExp[V, I, M](x.MulAdd(r, fc.One()), n)

	maxL10 := fc.Set(exp10MaxL10_f32)
	r = hwy.IfThenElse(x0.Equal(fc.Zero()), fc.One(), r)
	r = hwy.IfThenElse(x0.Greater(maxL10), fc.Infinity(), r)
	r = hwy.IfThenElse(x0.Less(maxL10.Neg()), fc.Zero(), r)
	return r
}

// FastExp is the Cephes expf: n = round(x*log2(e)), a two-constant
// reduction by n*ln2 and a degree-5 polynomial. It skips the small and
// large argument cases of Exp.
func FastExp[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](x0 V) V {
	fc := FloatConstants[V, I, M]{}

	z := Floor[V, I, M](fc.Set(fastExpLog2EF_f32).MulAdd(x0, fc.OneHalf()))
	x := z.NegMulAdd(fc.Set(fastExpC2_f32), z.NegMulAdd(fc.Set(fastExpC1_f32), x0))
	n := z.ConvertToInt()
	xx := x.Mul(x)

	r := x.MulAdd(fc.Set(fastExpP0_f32), fc.Set(fastExpP1_f32)).
		MulAdd(x, fc.Set(fastExpP2_f32)).
		MulAdd(x, fc.Set(fastExpP3_f32)).
		MulAdd(x, fc.Set(fastExpP4_f32)).
		MulAdd(x, fc.Set(fastExpP5_f32)).
		MulAdd(xx, x.Add(fc.One()))
	r = LdExp[V, I, M](r, n)

	r = hwy.IfThenElse(x0.Equal(fc.Zero()), fc.One(), r)
	r = hwy.IfThenElse(x0.Greater(fc.Set(fastExpMaxLogF_f32)), fc.Infinity(), r)
	r = hwy.IfThenElse(x0.Less(fc.Set(fastExpMinLogF_f32)), fc.Zero(), r)
	return r
}

// FasterExp2 writes a linear approximation of 2^x straight into the bit
// pattern, with a quadratic correction of the fraction. It is the inverse
// of FasterLog2. Lanes that overflow the exponent give +Inf.
func FasterExp2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}

	y := d.Sub(Floor[V, I, M](d))
	y = y.NegMulAdd(y, y).Mul(fc.Set(fasterExp2C_f32))

	x := d.Add(fc.Set(127)).Sub(y).Mul(fc.Set(0x1p23))
	x = x.ConvertToInt().AsFloat()
	// An overflowed conversion leaves only the sign bit set.
	x = x.Blend(fc.Infinity(), x)
	return hwy.IfThenElse(d.Less(fc.Set(float64(exp2Min_f32))), fc.Zero(), x)
}

// FastExp2 is FastExp(v*ln2).
func FastExp2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	return FastExp[V, I, M](v.Mul(fc.Ln2()))
}

// FastExp10 is FastExp(v*ln10).
func FastExp10[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	return FastExp[V, I, M](v.Mul(fc.Ln10()))
}
