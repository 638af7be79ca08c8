//go:build !hwy_sse2

package hwy

// HasRoundInstructions reports whether the target has native floor, ceil,
// trunc and round-to-nearest instructions (SSE4.1 and later, NEON). When it
// is false the math package uses its bit-manipulation fallbacks.
const HasRoundInstructions = true
