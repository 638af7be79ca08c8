// Package ulpcheck measures the accuracy of the math engine against Go's
// float64 math package and exposes the sweeps as cobra commands.
package ulpcheck

import (
	stdmath "math"

	"github.com/samber/lo"

	"github.com/kdt3rd/pal/hwy"
	"github.com/kdt3rd/pal/hwy/contrib/algo"
	"github.com/kdt3rd/pal/hwy/contrib/math"
)

// Sweeps run on 8-lane vectors.
type (
	vec  = hwy.Float32x8
	ivec = hwy.Int32x8
	mvec = hwy.Mask32x8
)

// Func is one engine routine with the reference it is measured against.
type Func struct {
	Name string
	Tier algo.Precision
	// Min and Max bound the domain over which Bound holds.
	Min, Max float32
	// Bound is the largest ULP error allowed. When it is zero AbsBound
	// applies instead.
	Bound    uint64
	AbsBound float64

	Vec func(vec) vec
	Ref func(float64) float64
}

// Check reports whether the measured errors are within the bound.
func (f *Func) Check(maxULP uint64, maxAbs float64) bool {
	if f.Bound == 0 && f.AbsBound > 0 {
		return maxAbs <= f.AbsBound
	}
	return maxULP <= f.Bound
}

func rsqrt(x float64) float64 { return 1 / stdmath.Sqrt(x) }
func recip(x float64) float64 { return 1 / x }
func exp10(x float64) float64 { return stdmath.Pow(10, x) }

var registry = []*Func{
	{Name: "exp", Tier: algo.Accurate, Min: -87, Max: 87, Bound: 1, Vec: math.Exp[vec, ivec, mvec], Ref: stdmath.Exp},
	{Name: "fastexp", Tier: algo.Fast, Min: -87, Max: 87, Bound: 1, Vec: math.FastExp[vec, ivec, mvec], Ref: stdmath.Exp},
	{Name: "exp2", Tier: algo.Accurate, Min: -100, Max: 100, Bound: 1, Vec: math.Exp2[vec, ivec, mvec], Ref: stdmath.Exp2},
	{Name: "fastexp2", Tier: algo.Fast, Min: -100, Max: 100, Bound: 128, Vec: math.FastExp2[vec, ivec, mvec], Ref: stdmath.Exp2},
	{Name: "fasterexp2", Tier: algo.Faster, Min: -100, Max: 100, Bound: 65536, Vec: math.FasterExp2[vec, ivec, mvec], Ref: stdmath.Exp2},
	{Name: "exp10", Tier: algo.Accurate, Min: -37.5, Max: 38.2, Bound: 1, Vec: math.Exp10[vec, ivec, mvec], Ref: exp10},
	{Name: "fastexp10", Tier: algo.Fast, Min: -37.5, Max: 38.2, Bound: 128, Vec: math.FastExp10[vec, ivec, mvec], Ref: exp10},
	{Name: "log", Tier: algo.Accurate, Min: 0.001, Max: 10000, Bound: 1, Vec: math.Log[vec, ivec, mvec], Ref: stdmath.Log},
	{Name: "fastlog", Tier: algo.Fast, Min: 2, Max: 10000, Bound: 32, Vec: math.FastLog[vec, ivec, mvec], Ref: stdmath.Log},
	{Name: "log2", Tier: algo.Accurate, Min: 0.01, Max: 10000, Bound: 2, Vec: math.Log2[vec, ivec, mvec], Ref: stdmath.Log2},
	{Name: "fastlog2", Tier: algo.Fast, Min: 2, Max: 10000, Bound: 32, Vec: math.FastLog2[vec, ivec, mvec], Ref: stdmath.Log2},
	{Name: "fasterlog2", Tier: algo.Faster, Min: 2, Max: 10000, Bound: 65536, Vec: math.FasterLog2[vec, ivec, mvec], Ref: stdmath.Log2},
	{Name: "log10", Tier: algo.Accurate, Min: 0.001, Max: 10000, Bound: 1, Vec: math.Log10[vec, ivec, mvec], Ref: stdmath.Log10},
	{Name: "fastlog10", Tier: algo.Fast, Min: 2, Max: 10000, Bound: 32, Vec: math.FastLog10[vec, ivec, mvec], Ref: stdmath.Log10},
	{Name: "cbrt", Tier: algo.Accurate, Min: -1000, Max: 1000, Bound: 2, Vec: math.Cbrt[vec, ivec, mvec], Ref: stdmath.Cbrt},
	{Name: "sin", Tier: algo.Accurate, Min: -3, Max: 3, AbsBound: 1e-6, Vec: math.Sin[vec, ivec, mvec], Ref: stdmath.Sin},
	{Name: "cos", Tier: algo.Accurate, Min: -3, Max: 3, AbsBound: 1e-6, Vec: math.Cos[vec, ivec, mvec], Ref: stdmath.Cos},
	{Name: "recip", Tier: algo.Accurate, Min: 0.001, Max: 100000, Bound: 0, Vec: math.Recip[vec, ivec, mvec], Ref: recip},
	{Name: "fastrecip", Tier: algo.Fast, Min: 0.001, Max: 100000, Bound: 2, Vec: math.FastRecip[vec, ivec, mvec], Ref: recip},
	{Name: "fasterrecip", Tier: algo.Faster, Min: 0.001, Max: 100000, Bound: 4096, Vec: math.FasterRecip[vec, ivec, mvec], Ref: recip},
	{Name: "sqrt", Tier: algo.Accurate, Min: 0, Max: 100000, Bound: 0, Vec: math.Sqrt[vec, ivec, mvec], Ref: stdmath.Sqrt},
	{Name: "rsqrt", Tier: algo.Accurate, Min: 0.001, Max: 100000, Bound: 1, Vec: math.RSqrt[vec, ivec, mvec], Ref: rsqrt},
	{Name: "fastrsqrt", Tier: algo.Fast, Min: 0.001, Max: 100000, Bound: 2, Vec: math.FastRSqrt[vec, ivec, mvec], Ref: rsqrt},
	{Name: "fasterrsqrt", Tier: algo.Faster, Min: 0.001, Max: 100000, Bound: 4096, Vec: math.FasterRSqrt[vec, ivec, mvec], Ref: rsqrt},
}

var byName = lo.KeyBy(registry, func(f *Func) string { return f.Name })

// Lookup returns the registered function called name.
func Lookup(name string) (*Func, bool) {
	f, ok := byName[name]
	return f, ok
}

// Funcs returns the registered functions in listing order, keeping only
// those whose tier is in tiers. No tiers keeps everything.
func Funcs(tiers ...algo.Precision) []*Func {
	if len(tiers) == 0 {
		return registry
	}
	return lo.Filter(registry, func(f *Func, _ int) bool {
		return lo.Contains(tiers, f.Tier)
	})
}

// Names lists the registered function names.
func Names() []string {
	return lo.Map(registry, func(f *Func, _ int) string { return f.Name })
}
