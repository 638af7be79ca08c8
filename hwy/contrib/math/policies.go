package math

import (
	stdmath "math"

	"github.com/kdt3rd/pal/hwy"
)

// FloatConstants supplies the named constants of the float vector V,
// broadcast to every lane and rounded to the lane type. The zero value is
// ready to use:
//
//	fc := FloatConstants[V, I, M]{}
//	twoPi := fc.TwoPi()
type FloatConstants[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]] struct{}

// Set broadcasts x.
func (FloatConstants[V, I, M]) Set(x float64) V {
	var v V
	return v.Broadcast(x)
}

// Bits broadcasts the float whose bit pattern is b.
func (FloatConstants[V, I, M]) Bits(b uint64) V {
	var v V
	return v.BroadcastBits(b)
}

func (FloatConstants[V, I, M]) limits() hwy.VectorLimits {
	var v V
	return v.Limits()
}

func (c FloatConstants[V, I, M]) Zero() V { return c.Set(0) }

// Epsilon is the difference between 1 and the next representable value.
func (c FloatConstants[V, I, M]) Epsilon() V {
	return c.Set(stdmath.Ldexp(1, -c.limits().MantissaBits))
}

func (c FloatConstants[V, I, M]) Infinity() V { return c.Set(stdmath.Inf(1)) }
func (c FloatConstants[V, I, M]) NaN() V      { return c.Set(stdmath.NaN()) }

// Max is the largest finite value.
func (c FloatConstants[V, I, M]) Max() V {
	l := c.limits()
	return c.Bits(l.ExponentMask - 1<<l.MantissaBits | l.MantissaMask)
}

// Lowest is the most negative finite value.
func (c FloatConstants[V, I, M]) Lowest() V { return c.Max().Neg() }

// Min is the smallest positive normal value.
func (c FloatConstants[V, I, M]) Min() V {
	return c.Bits(1 << c.limits().MantissaBits)
}

func (c FloatConstants[V, I, M]) OneHalf() V { return c.Set(0.5) }
func (c FloatConstants[V, I, M]) One() V     { return c.Set(1) }
func (c FloatConstants[V, I, M]) Two() V     { return c.Set(2) }
func (c FloatConstants[V, I, M]) Three() V   { return c.Set(3) }

func (c FloatConstants[V, I, M]) E() V      { return c.Set(stdmath.E) }
func (c FloatConstants[V, I, M]) Log2E() V  { return c.Set(stdmath.Log2E) }
func (c FloatConstants[V, I, M]) Log10E() V { return c.Set(stdmath.Log10E) }
func (c FloatConstants[V, I, M]) Ln2() V    { return c.Set(stdmath.Ln2) }
func (c FloatConstants[V, I, M]) Ln10() V   { return c.Set(stdmath.Ln10) }

// Log10Of2 is log10(2) = ln(2)/ln(10).
func (c FloatConstants[V, I, M]) Log10Of2() V { return c.Set(stdmath.Ln2 / stdmath.Ln10) }

func (c FloatConstants[V, I, M]) Pi() V        { return c.Set(stdmath.Pi) }
func (c FloatConstants[V, I, M]) PiHalf() V    { return c.Set(stdmath.Pi / 2) }
func (c FloatConstants[V, I, M]) PiQuarter() V { return c.Set(stdmath.Pi / 4) }
func (c FloatConstants[V, I, M]) TwoPi() V     { return c.Set(2 * stdmath.Pi) }
func (c FloatConstants[V, I, M]) OneOverPi() V { return c.Set(1 / stdmath.Pi) }
func (c FloatConstants[V, I, M]) Sqrt2() V     { return c.Set(stdmath.Sqrt2) }
func (c FloatConstants[V, I, M]) Sqrt1_2() V   { return c.Set(1 / stdmath.Sqrt2) }

// ExtractConstants supplies the integer constants used to take a float of
// the vector V apart: field masks, the exponent bias and exponent range.
// Each is an integer vector I of the same lane width.
type ExtractConstants[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]] struct{}

func (ExtractConstants[V, I, M]) set(n int64) I {
	var i I
	return i.Broadcast(n)
}

func (ExtractConstants[V, I, M]) limits() hwy.VectorLimits {
	var v V
	return v.Limits()
}

// MantissaBits is the width of the mantissa field, as a shift count.
func (c ExtractConstants[V, I, M]) MantissaBits() uint { return uint(c.limits().MantissaBits) }

// ExponentBits is the width of the exponent field, as a shift count.
func (c ExtractConstants[V, I, M]) ExponentBits() uint { return uint(c.limits().ExponentBits) }

// LaneBits is the lane width, as a shift count.
func (c ExtractConstants[V, I, M]) LaneBits() uint { return uint(c.limits().ValueBits) }

func (c ExtractConstants[V, I, M]) ExponentMask() I { return c.set(int64(c.limits().ExponentMask)) }
func (c ExtractConstants[V, I, M]) MantissaMask() I { return c.set(int64(c.limits().MantissaMask)) }
func (c ExtractConstants[V, I, M]) SignMask() I     { return c.set(int64(c.limits().SignMask)) }

// Bias is the exponent bias (127 for float32).
func (c ExtractConstants[V, I, M]) Bias() I { return c.set(int64(c.limits().ExponentBias)) }

// BiasM1 is the biased exponent of values in [0.5, 1).
func (c ExtractConstants[V, I, M]) BiasM1() I { return c.set(int64(c.limits().ExponentBias - 1)) }

// MinExponent is the unbiased exponent of the smallest normal value.
func (c ExtractConstants[V, I, M]) MinExponent() I {
	return c.set(int64(c.limits().MinExponent - 1))
}

// MaxExponent is the unbiased exponent of the largest finite value.
func (c ExtractConstants[V, I, M]) MaxExponent() I {
	return c.set(int64(c.limits().MaxExponent - 1))
}

// BiasedExponentRange is the all-ones exponent field (255 for float32),
// shared by infinities and NaNs.
func (c ExtractConstants[V, I, M]) BiasedExponentRange() I {
	return c.set(1<<c.limits().ExponentBits - 1)
}

// IntConstants supplies the constants of the integer vector I.
type IntConstants[I hwy.IntVec[I, V, M], V hwy.FloatVec[V, I, M], M hwy.MaskVec[M]] struct{}

// Set broadcasts n, truncated to the lane width.
func (IntConstants[I, V, M]) Set(n int64) I {
	var i I
	return i.Broadcast(n)
}

func (IntConstants[I, V, M]) limits() hwy.VectorLimits {
	var i I
	return i.Limits()
}

func (c IntConstants[I, V, M]) Zero() I   { return c.Set(0) }
func (c IntConstants[I, V, M]) One() I    { return c.Set(1) }
func (c IntConstants[I, V, M]) NegOne() I { return c.Set(-1) }

// SignBitmask has only the top bit of each lane set.
func (c IntConstants[I, V, M]) SignBitmask() I { return c.Set(c.limits().MinInt) }

// NonSignBitmask has every bit but the top one set.
func (c IntConstants[I, V, M]) NonSignBitmask() I { return c.Set(c.limits().MaxInt) }

func (c IntConstants[I, V, M]) Max() I { return c.Set(c.limits().MaxInt) }
func (c IntConstants[I, V, M]) Min() I { return c.Set(c.limits().MinInt) }
