// Package ulp measures the distance between floating-point values in units
// in the last place.
package ulp

import "math"

// Inf is returned for pairs that no finite number of steps connects: a NaN
// against a number, or an infinity against a different value.
const Inf = math.MaxUint64

// Distance32 returns the number of float32 values between a and b. Equal
// values, +0 against -0, and two NaNs are 0 apart.
func Distance32(a, b float32) uint64 {
	switch {
	case a == b:
		return 0
	case a != a && b != b:
		return 0
	case a != a || b != b:
		return Inf
	case math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0):
		return Inf
	}
	return diff(ordered32(a), ordered32(b))
}

// Distance64 is Distance32 for float64.
func Distance64(a, b float64) uint64 {
	switch {
	case a == b:
		return 0
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a) || math.IsNaN(b):
		return Inf
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return Inf
	}
	return diff(ordered64(a), ordered64(b))
}

// ordered32 maps the bit pattern onto a line where adjacent floats are
// adjacent integers and -0 meets +0.
func ordered32(f float32) int64 {
	b := math.Float32bits(f)
	if b>>31 != 0 {
		return -int64(b &^ (1 << 31))
	}
	return int64(b)
}

func ordered64(f float64) int64 {
	b := math.Float64bits(f)
	if b>>63 != 0 {
		return -int64(b &^ (1 << 63))
	}
	return int64(b)
}

func diff(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// Ref32 evaluates the float64 function ref at x and rounds the result to
// float32, the reference a float32 routine is measured against.
func Ref32(ref func(float64) float64, x float32) float32 {
	return float32(ref(float64(x)))
}

// Stats accumulates ULP errors over a sweep.
type Stats struct {
	Count int
	Max   uint64
	// Worst is the first input that produced Max.
	Worst float64
	sum   float64
}

// Add records the distance between got and want for input x.
func (s *Stats) Add(x float64, got, want float32) uint64 {
	d := Distance32(got, want)
	if s.Count == 0 || d > s.Max {
		s.Max, s.Worst = d, x
	}
	s.Count++
	if d != Inf {
		s.sum += float64(d)
	}
	return d
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 || o.Max > s.Max {
		s.Max, s.Worst = o.Max, o.Worst
	}
	s.Count += o.Count
	s.sum += o.sum
}

// Mean is the average finite distance.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.sum / float64(s.Count)
}
