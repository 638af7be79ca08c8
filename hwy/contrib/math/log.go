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

// logKernel reduces d to 2^k * (1+f) with 1+f in [sqrt(2)/2, sqrt(2)] and
// evaluates the FreeBSD log1p kernel on f: s = f/(2+f), r = R(s^2) and
// hfsq = f^2/2.
type logKernel[V, I any] struct {
	k    I
	f    V
	s    V
	r    V
	hfsq V
}

func reduceLog[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) logKernel[V, I] {
	fc := FloatConstants[V, I, M]{}
	ec := ExtractConstants[V, I, M]{}
	ic := IntConstants[I, V, M]{}

	// Shift the bit pattern so that the exponent rounds at sqrt(2)/2
	// rather than at 1.
	id := d.AsInt().Add(ic.Set(logOneBits_f32 - logSqrtHalfBits_f32))
	k := id.And(ec.ExponentMask()).ShiftAllRightLogical(ec.MantissaBits()).Sub(ec.Bias())
	id = id.And(ec.MantissaMask()).Add(ic.Set(logSqrtHalfBits_f32))

	f := id.AsFloat().Sub(fc.One())
	s := f.Div(fc.Two().Add(f))
	z := s.Mul(s)
	w := z.Mul(z)
	r := z.MulAdd(w.MulAdd(fc.Set(logLg3_f32), fc.Set(logLg1_f32)),
		w.Mul(w.MulAdd(fc.Set(logLg4_f32), fc.Set(logLg2_f32))))
	hfsq := fc.OneHalf().Mul(f).Mul(f)
	return logKernel[V, I]{k: k, f: f, s: s, r: r, hfsq: hfsq}
}

// splitLog returns f - hfsq with the low 12 bits cleared, and the rest
// of log1p(f) that the cut drops.
func splitLog[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](lk logKernel[V, I]) (hi, lo V) {
	fc := FloatConstants[V, I, M]{}
	hi = lk.f.Sub(lk.hfsq).And(fc.Bits(logHiMask_f32))
	lo = lk.hfsq.Add(lk.r).MulAdd(lk.s, lk.f.Sub(hi).Sub(lk.hfsq))
	return hi, lo
}

// log2Parts returns log2(d) as an exact integer part k and a fraction t,
// |t| <= 0.5. Pow scales the two separately to keep the bits that a single
// rounded log2 would lose.
func log2Parts[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) (k, t V) {
	fc := FloatConstants[V, I, M]{}
	lk := reduceLog[V, I, M](d)
	hi, lo := splitLog[V, I, M](lk)
	a := lo.Add(hi)
	t = a.MulAdd(fc.Set(logIvLn2Lo_f32), a.Mul(fc.Set(logIvLn2Hi_f32)))
	return lk.k.ConvertToFloat(), t
}

// logSpecial applies the results for special inputs, later rules winning:
// negative gives NaN, zero gives -Inf, NaN and +Inf pass through.
func logSpecial[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d, ret V) V {
	fc := FloatConstants[V, I, M]{}
	zero := fc.Zero()
	ret = hwy.IfThenElse(d.Less(zero), fc.NaN(), ret)
	ret = hwy.IfThenElse(d.Equal(zero), fc.Infinity().Neg(), ret)
	posInf := IsInf[V, I, M](d).AndNot(d.Less(zero))
	ret = hwy.IfThenElse(IsNaN[V, I, M](d).Or(posInf), d, ret)
	return ret
}

// Log2 computes the base-2 logarithm of each lane, within 1 ULP (2 ULP for
// inputs just below 1, where the result is tiny).
//
// A negative input gives NaN, ±0 gives -Inf, and NaN and +Inf come back
// unchanged. -Inf is negative and so gives NaN.
func Log2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	k, t := log2Parts[V, I, M](d)
	return logSpecial[V, I, M](d, t.Add(k))
}

// Log computes the natural logarithm of each lane, within 1 ULP. Special
// inputs are handled as in Log2.
func Log[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}
	lk := reduceLog[V, I, M](d)
	dk := lk.k.ConvertToFloat()

	// s*(hfsq+R) + dk*ln2lo - hfsq + f + dk*ln2hi, summed in this order.
	ret := lk.s.Mul(lk.hfsq.Add(lk.r))
	ret = ret.Add(dk.Mul(fc.Set(logLn2Lo_f32)))
	ret = ret.Sub(lk.hfsq).Add(lk.f)
	ret = ret.Add(dk.Mul(fc.Set(logLn2Hi_f32)))
	return logSpecial[V, I, M](d, ret)
}

// Log10 computes the base-10 logarithm of each lane, within 1 ULP. Special
// inputs are handled as in Log2.
func Log10[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}
	lk := reduceLog[V, I, M](d)
	hi, lo := splitLog[V, I, M](lk)
	dk := lk.k.ConvertToFloat()

	ret := dk.Mul(fc.Set(logLog10_2Lo_f32))
	ret = ret.Add(lo.Add(hi).Mul(fc.Set(logIvLn10Lo_f32)))
	ret = ret.Add(lo.Mul(fc.Set(logIvLn10Hi_f32)))
	ret = ret.Add(hi.Mul(fc.Set(logIvLn10Hi_f32)))
	ret = ret.Add(dk.Mul(fc.Set(logLog10_2Hi_f32)))
	return logSpecial[V, I, M](d, ret)
}

// FasterLog2 reads the bit pattern as a fixed-point log2 and adds a
// quadratic correction of the mantissa. Good to about 13 bits for normal
// positive inputs; other inputs give unspecified results.
func FasterLog2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}
	x := d.AsInt().ConvertToFloat().Mul(fc.Set(0x1p-23)).Sub(fc.Set(127))
	y := x.Sub(Floor[V, I, M](x))
	return x.Add(y.NegMulAdd(y, y).Mul(fc.Set(fasterLog2C_f32)))
}

// FastLog2 evaluates a degree-5 Chebyshev polynomial on the mantissa, within
// 16 ULP for normal positive inputs. FastLog2(0) is -Inf; negative, NaN and
// infinite inputs give unspecified results.
func FastLog2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}
	ec := ExtractConstants[V, I, M]{}

	bits := d.AsInt()
	e := bits.And(ec.ExponentMask()).ShiftAllRightLogical(ec.MantissaBits()).Sub(ec.Bias()).ConvertToFloat()
	m := bits.And(ec.MantissaMask()).Or(ec.Bias().ShiftAllLeft(ec.MantissaBits())).AsFloat().Sub(fc.One())

	y := m.MulAdd(fc.Set(fastLog2C0_f32), fc.Set(fastLog2C1_f32))
	y = m.MulAdd(y, fc.Set(fastLog2C2_f32))
	y = m.MulAdd(y, fc.Set(fastLog2C3_f32))
	y = m.MulAdd(y, fc.Set(fastLog2C4_f32))
	y = m.MulAdd(y, fc.Set(fastLog2C5_f32))
	y = m.MulAdd(y, e)

	return hwy.IfThenElse(d.Equal(fc.Zero()), fc.Infinity().Neg(), y)
}

// FastLog is FastLog2(d) * ln(2).
func FastLog[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}
	return FastLog2[V, I, M](d).Mul(fc.Ln2())
}

// FastLog10 is FastLog2(d) * log10(2).
func FastLog10[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V {
	fc := FloatConstants[V, I, M]{}
	return FastLog2[V, I, M](d).Mul(fc.Log10Of2())
}
