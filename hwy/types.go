// Package hwy provides portable fixed-width SIMD vector types.
//
// Each vector shape is a value type with a fixed lane count: Float32x4,
// Float32x8 and Float32x16 hold packed float32, Float64x2 and Float64x4
// packed float64. Every float shape is paired with the integer vector of the
// same lane count and width (Int32x4, Int64x2, ...) and a mask type
// (Mask32x4, Mask64x2, ...). Methods return new values; vectors are never
// modified in place.
//
// The pairing is captured by the generic constraints FloatVec, IntVec and
// MaskVec, so algorithms can be written once over any shape:
//
//	func Square[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
//	    return v.Mul(v)
//	}
//
// Basic usage:
//
//	import "github.com/kdt3rd/pal/hwy"
//
//	a := hwy.LoadFloat32x4(data1)
//	b := hwy.LoadFloat32x4(data2)
//	a.MulAdd(b, a).StoreSlice(output)
//
// The instruction set is chosen at compile time through build tags
// (hwy_nofma, hwy_sse2); see CurrentLevel.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// MaskVec is the per-lane boolean produced by comparisons. Each lane holds
// either all bits set (true) or all bits clear (false).
type MaskVec[M any] interface {
	NumLanes() int
	Get(i int) bool

	And(o M) M
	Or(o M) M
	Xor(o M) M
	// AndNot returns m & ^o.
	AndNot(o M) M
	Not() M

	Any() bool
	All() bool
	None() bool
	CountTrue() int
	// Bits packs the lanes into the low bits of the result, lane 0 in bit 0.
	Bits() uint64
}

// FloatVec is a packed floating-point vector V whose bit pattern
// reinterprets as the integer vector I and whose comparisons produce M.
type FloatVec[V, I, M any] interface {
	NumLanes() int
	Limits() VectorLimits
	Get(i int) float64
	With(i int, x float64) V

	// Broadcast and BroadcastBits ignore the receiver and return a vector
	// with every lane set to x, or to the float whose bits are b.
	Broadcast(x float64) V
	BroadcastBits(b uint64) V

	Add(o V) V
	Sub(o V) V
	Mul(o V) V
	Div(o V) V
	Min(o V) V
	Max(o V) V
	Neg() V
	Abs() V
	Sqrt() V

	// MulAdd returns v*b + c.
	MulAdd(b, c V) V
	// MulSub returns v*b - c.
	MulSub(b, c V) V
	// NegMulAdd returns c - v*b.
	NegMulAdd(b, c V) V
	// NegMulSub returns -(v*b) - c.
	NegMulSub(b, c V) V

	Floor() V
	Ceil() V
	Trunc() V
	RoundToEven() V

	ReciprocalEstimate() V
	ReciprocalSqrtEstimate() V

	Equal(o V) M
	NotEqual(o V) M
	Less(o V) M
	LessEqual(o V) M
	Greater(o V) M
	GreaterEqual(o V) M
	Ordered(o V) M
	Unordered(o V) M

	And(o V) V
	Or(o V) V
	Xor(o V) V
	AndNot(o V) V
	BitMix(b, sel V) V
	Merge(b V, m M) V
	Blend(b, sel V) V

	AsInt() I
	ConvertToInt() I
	ConvertToIntTrunc() I

	ReduceSum() float64
}

// Float32Vec narrows FloatVec to the float32 shapes, and adds the slice
// accessors used by buffer processing.
type Float32Vec[V, I, M any] interface {
	FloatVec[V, I, M]

	LoadSlice(s []float32) V
	LoadPartial(s []float32) V
	StoreSlice(s []float32)
	StorePartial(s []float32)

	float32Lanes()
}

// IntVec is a packed signed integer vector I paired with the float vector V
// of the same lane width.
type IntVec[I, V, M any] interface {
	NumLanes() int
	Limits() VectorLimits
	Get(i int) int64
	With(i int, x int64) I
	Broadcast(x int64) I

	Add(o I) I
	Sub(o I) I
	Mul(o I) I
	// MulHigh returns the upper half of the signed double-width product.
	MulHigh(o I) I
	Min(o I) I
	Max(o I) I
	Neg() I
	Abs() I

	And(o I) I
	Or(o I) I
	Xor(o I) I
	AndNot(o I) I
	BitMix(b, sel I) I
	Merge(b I, m M) I

	ShiftAllLeft(n uint) I
	ShiftAllRightLogical(n uint) I
	ShiftAllRightArith(n uint) I

	Equal(o I) M
	NotEqual(o I) M
	Less(o I) M
	LessEqual(o I) M
	Greater(o I) M
	GreaterEqual(o I) M

	AsFloat() V
	ConvertToFloat() V

	ReduceSum() int64
}

// IfThenElse returns yes in the lanes where m is true and no elsewhere.
func IfThenElse[V interface{ Merge(b V, m M) V }, M any](m M, yes, no V) V {
	return yes.Merge(no, m)
}
