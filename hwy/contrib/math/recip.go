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

// FasterRecip is the hardware reciprocal estimate: relative error below
// 1.5*2^-12.
func FasterRecip[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return v.ReciprocalEstimate()
}

// FastRecip refines the estimate with one Newton-Raphson step,
// e' = 2e - v*e^2. Within 2 ULP of 1/v for normal inputs.
func FastRecip[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	e := v.ReciprocalEstimate()
	return v.NegMulAdd(e.Mul(e), e.Add(e))
}

// Recip is 1/v.
func Recip[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return FloatConstants[V, I, M]{}.One().Div(v)
}

func Sqrt[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return v.Sqrt()
}

// FasterRSqrt is the hardware reciprocal square root estimate.
func FasterRSqrt[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return v.ReciprocalSqrtEstimate()
}

// FastRSqrt refines the estimate with one Newton-Raphson step,
// e' = e + 0.5*(e - v*e^3). Within 2 ULP for finite positive inputs; an
// infinite input gives NaN.
func FastRSqrt[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	e := v.ReciprocalSqrtEstimate()
	return v.Mul(e).Mul(e).NegMulAdd(e, e).MulAdd(fc.OneHalf(), e)
}

// RSqrt is 1/sqrt(v).
func RSqrt[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return FloatConstants[V, I, M]{}.One().Div(v.Sqrt())
}
