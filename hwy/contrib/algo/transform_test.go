// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdt3rd/pal/hwy"
	"github.com/kdt3rd/pal/hwy/contrib/math"
)

// lanewise applies fn to a broadcast of each element, the reference for a
// transform.
func lanewise(fn func(hwy.Float32x8) hwy.Float32x8, xs []float32) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = fn(hwy.BroadcastFloat32x8(x)).Array()[0]
	}
	return out
}

// sameBits compares element bit patterns so NaN results compare equal.
func sameBits(t *testing.T, want, got []float32) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if stdmath.Float32bits(want[i]) != stdmath.Float32bits(got[i]) {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNamedTransforms(t *testing.T) {
	input := make([]float32, 45)
	for i := range input {
		input[i] = 0.37 + 0.91*float32(i)
	}

	type fn = func(hwy.Float32x8) hwy.Float32x8
	tests := []struct {
		name      string
		transform func(in, out []float32, p Precision)
		want      [3]fn
	}{
		{"Exp", ExpTransform, [3]fn{math.Exp[vec, ivec, mvec], math.FastExp[vec, ivec, mvec], math.FastExp[vec, ivec, mvec]}},
		{"Exp2", Exp2Transform, [3]fn{math.Exp2[vec, ivec, mvec], math.FastExp2[vec, ivec, mvec], math.FasterExp2[vec, ivec, mvec]}},
		{"Exp10", Exp10Transform, [3]fn{math.Exp10[vec, ivec, mvec], math.FastExp10[vec, ivec, mvec], math.FastExp10[vec, ivec, mvec]}},
		{"Log", LogTransform, [3]fn{math.Log[vec, ivec, mvec], math.FastLog[vec, ivec, mvec], math.FastLog[vec, ivec, mvec]}},
		{"Log2", Log2Transform, [3]fn{math.Log2[vec, ivec, mvec], math.FastLog2[vec, ivec, mvec], math.FasterLog2[vec, ivec, mvec]}},
		{"Log10", Log10Transform, [3]fn{math.Log10[vec, ivec, mvec], math.FastLog10[vec, ivec, mvec], math.FastLog10[vec, ivec, mvec]}},
		{"Cbrt", CbrtTransform, [3]fn{math.Cbrt[vec, ivec, mvec], math.Cbrt[vec, ivec, mvec], math.Cbrt[vec, ivec, mvec]}},
		{"Sin", SinTransform, [3]fn{math.Sin[vec, ivec, mvec], math.Sin[vec, ivec, mvec], math.Sin[vec, ivec, mvec]}},
		{"Cos", CosTransform, [3]fn{math.Cos[vec, ivec, mvec], math.Cos[vec, ivec, mvec], math.Cos[vec, ivec, mvec]}},
		{"RSqrt", RSqrtTransform, [3]fn{math.RSqrt[vec, ivec, mvec], math.FastRSqrt[vec, ivec, mvec], math.FasterRSqrt[vec, ivec, mvec]}},
	}
	for _, tt := range tests {
		for p := Accurate; p <= Faster; p++ {
			t.Run(tt.name+"/"+p.String(), func(t *testing.T) {
				out := make([]float32, len(input))
				tt.transform(input, out, p)
				sameBits(t, lanewise(tt.want[p], input), out)
			})
		}
	}
}

func TestTransformShortOutput(t *testing.T) {
	input := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	out := []float32{-1, -1, -1}
	ExpTransform(input, out, Accurate)
	assert.Equal(t, float32(1), out[0])
	assert.InDelta(t, stdmath.E*stdmath.E, out[2], 1e-5)
}

func TestPowTransform(t *testing.T) {
	base := []float32{2, 3, 0.5, 10, 0, -2, 7, 1.5, 9, 100, 4}
	exp := []float32{10, 2, -1, 3, 0, 3, 0.5, 2, 0.5, -2, 1.5}
	want := []float32{1024, 9, 2, 1000, 1, -8, 2.6457512, 2.25, 3, 1e-4, 8}

	out := make([]float32, len(base))
	PowTransform(base, exp, out, Accurate)
	assert.InEpsilonSlice(t, want, out, 2e-6)

	for _, p := range []Precision{Fast, Faster} {
		out := make([]float32, 4)
		PowTransform(base[:4], exp[:4], out, p)
		assert.InEpsilonSlice(t, want[:4], out, 0.1, p.String())
	}
}

func TestPowScalarTransform(t *testing.T) {
	input := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out := make([]float32, len(input))
	PowScalarTransform(input, out, 2, Accurate)
	for i, x := range input {
		assert.InEpsilon(t, x*x, out[i], 2e-6)
	}
}

func TestPrecision(t *testing.T) {
	for p := Accurate; p <= Faster; p++ {
		got, err := ParsePrecision(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePrecision("FAST")
	require.NoError(t, err)
	assert.Equal(t, Fast, got)

	_, err = ParsePrecision("exact")
	assert.ErrorContains(t, err, `unknown precision "exact"`)
	assert.Equal(t, "unknown", Precision(7).String())
}
