package hwy

import (
	"math"
	"math/bits"
)

// Per-lane helpers shared by the generated vector types. They model the
// behavior of the corresponding x86 instructions so that every shape
// produces the same bits as the hardware it stands in for.

// estimateBits is the number of mantissa bits kept by the reciprocal and
// reciprocal square root estimates (rcpps/rsqrtps have a relative error
// below 1.5*2^-12).
const estimateBits = 12

// roundMantissa rounds x to estimateBits fractional mantissa bits.
func roundMantissa(x float64) float64 {
	const drop = 52 - estimateBits
	b := math.Float64bits(x)
	b += 1 << (drop - 1)
	b &^= 1<<drop - 1
	return math.Float64frombits(b)
}

func recipEstimateF64(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x == 0:
		return math.Copysign(math.Inf(1), x)
	case math.IsInf(x, 0):
		return math.Copysign(0, x)
	}
	return roundMantissa(1 / x)
}

func recipEstimateF32(x float32) float32 {
	return float32(recipEstimateF64(float64(x)))
}

func rsqrtEstimateF64(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x == 0:
		return math.Copysign(math.Inf(1), x)
	case x < 0:
		return math.NaN()
	case math.IsInf(x, 1):
		return 0
	}
	return roundMantissa(1 / math.Sqrt(x))
}

func rsqrtEstimateF32(x float32) float32 {
	return float32(rsqrtEstimateF64(float64(x)))
}

// cvtNearestF32 converts with round-to-nearest-even. Out of range and NaN
// inputs give the integer indefinite value (math.MinInt32), like cvtps2dq.
func cvtNearestF32(x float32) int32 {
	return cvtF32(math.RoundToEven(float64(x)))
}

// cvtTruncF32 converts with truncation toward zero, like cvttps2dq.
func cvtTruncF32(x float32) int32 {
	return cvtF32(math.Trunc(float64(x)))
}

func cvtF32(f float64) int32 {
	if f >= -(1<<31) && f < 1<<31 {
		return int32(f)
	}
	return math.MinInt32
}

func cvtNearestF64(x float64) int64 {
	return cvtF64(math.RoundToEven(x))
}

func cvtTruncF64(x float64) int64 {
	return cvtF64(math.Trunc(x))
}

func cvtF64(f float64) int64 {
	if f >= -(1<<63) && f < 1<<63 {
		return int64(f)
	}
	return math.MinInt64
}

func mulHigh32(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 32)
}

func mulHigh64(a, b int64) int64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	// Signed correction of the unsigned high word.
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return int64(hi)
}

func boolToMask32(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

func boolToMask64(b bool) int64 {
	if b {
		return -1
	}
	return 0
}

// minLane and maxLane follow minps/maxps: when either input is NaN, or
// both are zero, the second operand is returned.
func minLane[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxLane[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// reduceTree sums lanes pairwise: the upper half is folded onto the lower
// half until one lane is left. len(t) must be a power of two.
func reduceTree[T Lanes](t []T) T {
	for n := len(t) / 2; n > 0; n /= 2 {
		for i := range n {
			t[i] += t[i+n]
		}
	}
	return t[0]
}
