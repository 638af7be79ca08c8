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

package math

import "github.com/kdt3rd/pal/hwy"

// Maclaurin coefficients ±1/n!, highest power first so Horner's scheme can
// walk them in order.
var (
	sinCoeffs = maclaurin(1, sinTerms)
	cosCoeffs = maclaurin(0, cosTerms)
)

// maclaurin returns (-1)^j / (2j+first)! for j = terms-1 down to 0.
func maclaurin(first, terms int) []float64 {
	c := make([]float64, terms)
	fact := 1.0
	for n := 2; n <= first; n++ {
		fact *= float64(n)
	}
	for j := range terms {
		n := 2*j + first
		if j > 0 {
			fact *= float64(n-1) * float64(n)
		}
		v := 1 / fact
		if j&1 == 1 {
			v = -v
		}
		c[terms-1-j] = v
	}
	return c
}

// evenPoly evaluates the polynomial in z with coefficients c, highest
// first.
func evenPoly[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](z V, c []float64) V {
	fc := FloatConstants[V, I, M]{}
	p := fc.Set(c[0])
	for _, k := range c[1:] {
		p = p.MulAdd(z, fc.Set(k))
	}
	return p
}

// Sin computes the sine of each lane.
//
// The argument is reduced with Fmod(v, 2*pi) only, into (-2*pi, 2*pi), and
// the Maclaurin series is summed to the x^17 term. The absolute error stays
// below 1e-6 for |v| <= 3 and grows quickly toward ±2*pi; large arguments
// also lose the precision of the reduction.
func Sin[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	x := Fmod[V, I, M](v, FloatConstants[V, I, M]{}.TwoPi())
	return x.Mul(evenPoly[V, I, M](x.Mul(x), sinCoeffs))
}

// Cos computes the cosine of each lane, summing the Maclaurin series to the
// x^18 term after the same reduction as Sin, with the same accuracy.
func Cos[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	x := Fmod[V, I, M](v, FloatConstants[V, I, M]{}.TwoPi())
	return evenPoly[V, I, M](x.Mul(x), cosCoeffs)
}
