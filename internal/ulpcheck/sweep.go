package ulpcheck

import (
	"context"
	stdmath "math"
	"sync"

	"github.com/pkg/errors"

	"github.com/kdt3rd/pal/hwy/contrib/algo"
	"github.com/kdt3rd/pal/hwy/contrib/math"
	"github.com/kdt3rd/pal/hwy/contrib/workerpool"
	"github.com/kdt3rd/pal/internal/ulp"
)

const (
	// DefaultSamples is the number of inputs when neither a step nor a
	// sample count is given.
	DefaultSamples = 1 << 20

	// batchSize is the number of inputs a worker takes at a time.
	batchSize = 1 << 14
)

// Sweep describes one accuracy run. Zero Min and Max select the function's
// registered domain; a zero Step spreads Samples inputs over the range; a
// nil Bound keeps the registered one.
type Sweep struct {
	Func    string  `yaml:"func" json:"func"`
	Min     float32 `yaml:"min,omitempty" json:"min"`
	Max     float32 `yaml:"max,omitempty" json:"max"`
	Step    float64 `yaml:"step,omitempty" json:"step"`
	Samples int     `yaml:"samples,omitempty" json:"samples,omitempty"`
	Bound   *uint64 `yaml:"bound,omitempty" json:"bound,omitempty"`

	// spread is set when Step was derived from Samples, so the last
	// input lands on Max.
	spread bool
}

// Result is the outcome of a sweep.
type Result struct {
	Func    string  `json:"func"`
	Tier    string  `json:"tier"`
	Min     float32 `json:"min"`
	Max     float32 `json:"max"`
	Count   int     `json:"count"`
	MaxULP  uint64  `json:"max_ulp"`
	Worst   float64 `json:"worst_input"`
	MeanULP float64 `json:"mean_ulp"`
	MaxAbs  float64 `json:"max_abs"`
	NaNs    int     `json:"nans"`
	Bound   uint64  `json:"bound"`
	Pass    bool    `json:"pass"`
}

// resolve fills the defaults of s from f and validates the range.
func (s Sweep) resolve(f *Func) (Sweep, error) {
	if s.Min == 0 && s.Max == 0 {
		s.Min, s.Max = f.Min, f.Max
	}
	if !(s.Min <= s.Max) {
		return s, errors.Errorf("%s: empty range [%g, %g]", s.Func, s.Min, s.Max)
	}
	if s.Step < 0 {
		return s, errors.Errorf("%s: negative step %g", s.Func, s.Step)
	}
	switch {
	case s.Min == s.Max:
		s.Step, s.Samples = 0, 1
	case s.Step == 0:
		if s.Samples <= 0 {
			s.Samples = DefaultSamples
		}
		if s.Samples == 1 {
			break
		}
		s.Step = (float64(s.Max) - float64(s.Min)) / float64(s.Samples-1)
		s.spread = true
	default:
		// The slack keeps an exact multiple of Step from losing its last
		// input to rounding.
		s.Samples = int((float64(s.Max)-float64(s.Min))/s.Step*(1+1e-12)) + 1
	}
	if s.Bound == nil {
		b := f.Bound
		s.Bound = &b
	}
	return s, nil
}

// count is the number of inputs of a resolved sweep.
func (s Sweep) count() int {
	return s.Samples
}

// input returns min + i*step. The last input of a sweep spread over a
// sample count is max itself.
func (s Sweep) input(i int) float32 {
	if s.spread && i == s.Samples-1 {
		return s.Max
	}
	return min(float32(float64(s.Min)+float64(i)*s.Step), s.Max)
}

// Run evaluates the sweep on the workers of pool and compares every
// result with the reference. A nil pool runs on the calling goroutine.
func Run(ctx context.Context, pool *workerpool.Pool, s Sweep) (*Result, error) {
	f, ok := Lookup(s.Func)
	if !ok {
		return nil, errors.Errorf("unknown function %q", s.Func)
	}
	s, err := s.resolve(f)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		stats  ulp.Stats
		maxAbs float64
		nans   int
	)
	batch := func(start, end int) {
		if ctx.Err() != nil {
			return
		}
		in := make([]float32, end-start)
		for i := range in {
			in[i] = s.input(start + i)
		}
		out := make([]float32, len(in))
		algo.Process[vec, ivec, mvec](out, in, f.Vec)

		var local ulp.Stats
		var abs float64
		for i, x := range in {
			want := ulp.Ref32(f.Ref, x)
			local.Add(float64(x), out[i], want)
			// Infinite differences already show as ulp.Inf.
			if d := stdmath.Abs(float64(out[i]) - float64(want)); d > abs && !stdmath.IsInf(d, 0) {
				abs = d
			}
		}
		n := algo.CountIf[vec, ivec, mvec](out, math.IsNaN[vec, ivec, mvec])

		mu.Lock()
		stats.Merge(local)
		maxAbs = max(maxAbs, abs)
		nans += n
		mu.Unlock()
	}

	if n := s.count(); pool == nil {
		batch(0, n)
	} else {
		pool.ParallelForBatched(n, batchSize, batch)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "sweep %s", s.Func)
	}

	return &Result{
		Func:    f.Name,
		Tier:    f.Tier.String(),
		Min:     s.Min,
		Max:     s.Max,
		Count:   stats.Count,
		MaxULP:  stats.Max,
		Worst:   stats.Worst,
		MeanULP: stats.Mean(),
		MaxAbs:  maxAbs,
		NaNs:    nans,
		Bound:   *s.Bound,
		Pass:    f.withBound(*s.Bound).Check(stats.Max, maxAbs),
	}, nil
}

// withBound returns a copy of f with its ULP bound replaced.
func (f *Func) withBound(b uint64) *Func {
	if b == f.Bound {
		return f
	}
	g := *f
	g.Bound = b
	return &g
}
