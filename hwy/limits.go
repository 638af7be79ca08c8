package hwy

// VectorLimits describes the layout of a vector shape and of its lanes.
// It is pure metadata; no value of the vector is inspected.
type VectorLimits struct {
	ValueCount int // lanes
	Bytes      int // register size in bytes
	Bits       int // register size in bits
	ValueBits  int // lane size in bits

	MantissaBits int
	SignBits     int
	ExponentBits int
	ExponentBias int

	MantissaMask uint64
	ExponentMask uint64
	SignMask     uint64

	// MinExponent and MaxExponent follow the C FLT_MIN_EXP / FLT_MAX_EXP
	// convention: 2^(MinExponent-1) is the smallest normal value.
	MinExponent int
	MaxExponent int

	// MinInt and MaxInt are the integer range of a lane, for integer shapes.
	MinInt int64
	MaxInt int64

	IsFloat bool
}

// Float32Limits returns the limits of a float32 vector with the given lanes.
func Float32Limits(lanes int) VectorLimits {
	return VectorLimits{
		ValueCount:   lanes,
		Bytes:        lanes * 4,
		Bits:         lanes * 32,
		ValueBits:    32,
		MantissaBits: 23,
		SignBits:     1,
		ExponentBits: 8,
		ExponentBias: 127,
		MantissaMask: 0x007FFFFF,
		ExponentMask: 0x7F800000,
		SignMask:     0x80000000,
		MinExponent:  -125,
		MaxExponent:  128,
		IsFloat:      true,
	}
}

// Float64Limits returns the limits of a float64 vector with the given lanes.
func Float64Limits(lanes int) VectorLimits {
	return VectorLimits{
		ValueCount:   lanes,
		Bytes:        lanes * 8,
		Bits:         lanes * 64,
		ValueBits:    64,
		MantissaBits: 52,
		SignBits:     1,
		ExponentBits: 11,
		ExponentBias: 1023,
		MantissaMask: 0x000FFFFFFFFFFFFF,
		ExponentMask: 0x7FF0000000000000,
		SignMask:     0x8000000000000000,
		MinExponent:  -1021,
		MaxExponent:  1024,
		IsFloat:      true,
	}
}

// Int32Limits returns the limits of an int32 vector with the given lanes.
func Int32Limits(lanes int) VectorLimits {
	return VectorLimits{
		ValueCount:   lanes,
		Bytes:        lanes * 4,
		Bits:         lanes * 32,
		ValueBits:    32,
		MantissaBits: 31,
		SignBits:     1,
		SignMask:     0x80000000,
		MantissaMask: 0x7FFFFFFF,
		MinInt:       -1 << 31,
		MaxInt:       1<<31 - 1,
	}
}

// Int64Limits returns the limits of an int64 vector with the given lanes.
func Int64Limits(lanes int) VectorLimits {
	return VectorLimits{
		ValueCount:   lanes,
		Bytes:        lanes * 8,
		Bits:         lanes * 64,
		ValueBits:    64,
		MantissaBits: 63,
		SignBits:     1,
		SignMask:     0x8000000000000000,
		MantissaMask: 0x7FFFFFFFFFFFFFFF,
		MinInt:       -1 << 63,
		MaxInt:       1<<63 - 1,
	}
}
