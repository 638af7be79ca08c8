package algo

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/kdt3rd/pal/hwy"
	"github.com/kdt3rd/pal/hwy/contrib/math"
)

// Precision selects the tier of the math routine a named transform uses.
type Precision int

const (
	// Accurate uses the routines without a prefix (about 1 ULP).
	Accurate Precision = iota
	// Fast uses the Fast* routines.
	Fast
	// Faster uses the Faster* routines where one exists and Fast otherwise.
	Faster
)

func (p Precision) String() string {
	switch p {
	case Accurate:
		return "accurate"
	case Fast:
		return "fast"
	case Faster:
		return "faster"
	}
	return "unknown"
}

// ParsePrecision returns the Precision whose String is s, ignoring case.
func ParsePrecision(s string) (Precision, error) {
	for p := Accurate; p <= Faster; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return Accurate, errors.Errorf("unknown precision %q, want accurate, fast or faster", s)
}

// The named transforms work on 8-lane vectors.
type (
	vec  = hwy.Float32x8
	ivec = hwy.Int32x8
	mvec = hwy.Mask32x8
)

type vecFunc = func(vec) vec

// tiers holds one routine per Precision. Missing tiers fall back to the
// next more accurate one.
type tiers [3]vecFunc

func (t tiers) pick(p Precision) vecFunc {
	for i := min(int(max(p, Accurate)), len(t)-1); i >= 0; i-- {
		if t[i] != nil {
			return t[i]
		}
	}
	panic("algo: no accurate routine")
}

var (
	expTiers   = tiers{math.Exp[vec, ivec, mvec], math.FastExp[vec, ivec, mvec]}
	exp2Tiers  = tiers{math.Exp2[vec, ivec, mvec], math.FastExp2[vec, ivec, mvec], math.FasterExp2[vec, ivec, mvec]}
	exp10Tiers = tiers{math.Exp10[vec, ivec, mvec], math.FastExp10[vec, ivec, mvec]}
	logTiers   = tiers{math.Log[vec, ivec, mvec], math.FastLog[vec, ivec, mvec]}
	log2Tiers  = tiers{math.Log2[vec, ivec, mvec], math.FastLog2[vec, ivec, mvec], math.FasterLog2[vec, ivec, mvec]}
	log10Tiers = tiers{math.Log10[vec, ivec, mvec], math.FastLog10[vec, ivec, mvec]}
	cbrtTiers  = tiers{math.Cbrt[vec, ivec, mvec]}
	sinTiers   = tiers{math.Sin[vec, ivec, mvec]}
	cosTiers   = tiers{math.Cos[vec, ivec, mvec]}
	rsqrtTiers = tiers{math.RSqrt[vec, ivec, mvec], math.FastRSqrt[vec, ivec, mvec], math.FasterRSqrt[vec, ivec, mvec]}
)

func transform(input, output []float32, fn vecFunc) {
	Process[vec, ivec, mvec](output, input, fn)
}

// ExpTransform writes e^input[i] to output[i] for the shorter of the two
// slices.
func ExpTransform(input, output []float32, p Precision) {
	transform(input, output, expTiers.pick(p))
}

// Exp2Transform writes 2^input[i] to output[i].
func Exp2Transform(input, output []float32, p Precision) {
	transform(input, output, exp2Tiers.pick(p))
}

// Exp10Transform writes 10^input[i] to output[i].
func Exp10Transform(input, output []float32, p Precision) {
	transform(input, output, exp10Tiers.pick(p))
}

// LogTransform writes ln(input[i]) to output[i].
func LogTransform(input, output []float32, p Precision) {
	transform(input, output, logTiers.pick(p))
}

// Log2Transform writes log2(input[i]) to output[i].
func Log2Transform(input, output []float32, p Precision) {
	transform(input, output, log2Tiers.pick(p))
}

// Log10Transform writes log10(input[i]) to output[i].
func Log10Transform(input, output []float32, p Precision) {
	transform(input, output, log10Tiers.pick(p))
}

// CbrtTransform writes the cube root of input[i] to output[i]. There is a
// single tier.
func CbrtTransform(input, output []float32, p Precision) {
	transform(input, output, cbrtTiers.pick(p))
}

// SinTransform writes sin(input[i]) to output[i]. There is a single tier.
func SinTransform(input, output []float32, p Precision) {
	transform(input, output, sinTiers.pick(p))
}

// CosTransform writes cos(input[i]) to output[i]. There is a single tier.
func CosTransform(input, output []float32, p Precision) {
	transform(input, output, cosTiers.pick(p))
}

// RSqrtTransform writes 1/sqrt(input[i]) to output[i].
func RSqrtTransform(input, output []float32, p Precision) {
	transform(input, output, rsqrtTiers.pick(p))
}

func powFunc(p Precision) func(v, e vec) vec {
	switch p {
	case Fast:
		return math.FastPow[vec, ivec, mvec]
	case Faster:
		return math.FasterPow[vec, ivec, mvec]
	}
	return math.Pow[vec, ivec, mvec]
}

// PowTransform writes base[i]^exp[i] to output[i] for the length of the
// shortest slice.
func PowTransform(base, exp, output []float32, p Precision) {
	Process2[vec, ivec, mvec](output, base, exp, powFunc(p))
}

// PowScalarTransform writes input[i]^e to output[i].
func PowScalarTransform(input, output []float32, e float32, p Precision) {
	pow := powFunc(p)
	ev := hwy.BroadcastFloat32x8(e)
	transform(input, output, func(v vec) vec { return pow(v, ev) })
}
