//go:build hwy_sse2

package hwy

// HasRoundInstructions reports whether the target has native floor, ceil,
// trunc and round-to-nearest instructions. Plain SSE2 does not.
const HasRoundInstructions = false
