package hwy

import (
	"os"
	"slices"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set the package was built for.
//
// The level is a compile-time property: it follows GOARCH and the hwy_sse2
// and hwy_nofma build tags, and never changes at run time. CPU detection is
// only used to report features (see CPUFeatures).
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline): no
	// rounding instructions, no FMA.
	DispatchSSE2

	// DispatchSSE4 indicates SSE4.1 instructions: rounding, no FMA.
	DispatchSSE4

	// DispatchAVX2 indicates AVX2 with FMA (256-bit SIMD).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE4:
		return "sse4"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the compile-time SIMD level.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// features holds what the running CPU reports.
// Set by init() in dispatch_*.go files.
var features Features

// CurrentLevel returns the SIMD instruction set the package was built for.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the target is reported as scalar regardless of build tags.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes of type T in a register of the
// current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

// Features lists the SIMD features reported by the running CPU.
type Features struct {
	Arch  string
	Names []string
	// Required are the features the compile-time target assumes.
	Required []string
}

// Has reports whether the CPU has the named feature.
func (f Features) Has(name string) bool {
	return slices.Contains(f.Names, name)
}

// Missing returns the required features the CPU does not report. The
// vector types are portable Go, so a non-empty result does not stop them
// from working; it means the build does not match the hardware.
func (f Features) Missing() []string {
	var out []string
	for _, r := range f.Required {
		if !f.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// CPUFeatures returns the features of the running CPU. It is informational
// only; no math routine is selected from it.
func CPUFeatures() Features {
	return features
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
