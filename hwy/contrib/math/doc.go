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

// Package math provides SIMD transcendental math functions over the
// fixed-width vectors of package hwy.
//
// Every function is generic over the vector shape. The type parameters
// are the float vector V, its integer vector I and its mask M:
//
//	func Log2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](d V) V
//
// so the same code runs on Float32x4, Float32x8 and Float32x16. Routines
// that only exist for float32 lanes (the log, exp, pow and cbrt families)
// are constrained by hwy.Float32Vec and reject float64 vectors at compile
// time; the rest accept any float shape.
//
// # Precision tiers
//
// Most elementary functions come in up to three tiers:
//
//   - Faster*: a raw hardware estimate or a few-term approximation. Useful
//     where the result is only a guide (graphics, heuristics).
//   - Fast*: an estimate refined by one Newton/Halley step, or a shorter
//     polynomial without the special-case cascade.
//   - accurate (no prefix): within about 1 ULP for normal inputs, with the
//     C library special cases for zero, infinity and NaN.
//
// Documented bounds against Go's float64 math rounded to float32:
//
//	FasterRecip, FasterRSqrt          <= 4096 ULP
//	FastRecip, FastRSqrt              <= 2 ULP
//	FasterLog2                        <= 65536 ULP for x >= 2
//	FastLog2, FastLog, FastLog10      <= 32 ULP for x >= 2
//	Log, Log10, Exp, Exp2, Exp10      <= 1 ULP
//	FastExp                           <= 1 ULP
//	Log2                              <= 2 ULP (1 ULP away from 1)
//	FasterExp2                        <= 65536 ULP
//	FastExp2, FastExp10               <= 128 ULP
//	Pow                               <= 4 ULP
//	FastPow                           <= 64 ULP
//	FasterPow                         <= 262144 ULP
//	Cbrt                              <= 2 ULP
//	Sin, Cos                          absolute error 1e-6 for |x| <= 3
//
// # Constant policies
//
// FloatConstants, ExtractConstants and IntConstants give every routine the
// constants of its shape (pi, the exponent mask, the sign bit, ...) so no
// routine hard-codes a lane width.
//
// # Limitations
//
// Subnormal inputs are only partly handled: IsNormal reports them as
// normal, ILogB reports them as FPILogB0, and LdExp/FrExp/Cbrt treat their
// exponent field literally. Sin and Cos reduce the argument with a single
// Fmod by 2*pi, so accuracy degrades away from the origin.
package math
