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

import (
	stdmath "math"

	"github.com/kdt3rd/pal/hwy"
)

// Trunc rounds each lane toward zero.
func Trunc[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	if hwy.HasRoundInstructions {
		return v.Trunc()
	}
	return truncFallback[V, I, M](v)
}

// Floor rounds each lane toward negative infinity.
func Floor[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	if hwy.HasRoundInstructions {
		return v.Floor()
	}
	return floorFallback[V, I, M](v)
}

// Ceil rounds each lane toward positive infinity.
func Ceil[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	if hwy.HasRoundInstructions {
		return v.Ceil()
	}
	return ceilFallback[V, I, M](v)
}

// Rint rounds each lane to the nearest integer, ties to even.
func Rint[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	if hwy.HasRoundInstructions {
		return v.RoundToEven()
	}
	return rintFallback[V, I, M](v)
}

// NearbyInt is Rint. Vector lanes never raise the inexact exception, so the
// two are the same.
func NearbyInt[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	return Rint[V, I, M](v)
}

// Round rounds each lane to the nearest integer, ties away from zero.
//
// The fraction is measured after truncation instead of adding 0.5 first, so
// 0.49999997 rounds to 0.
func Round[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	t := Trunc[V, I, M](v)
	up := v.Sub(t).Abs().GreaterEqual(fc.OneHalf())
	r := hwy.IfThenElse(up, t.Add(CopySign[V, I, M](fc.One(), v)), t)
	return passLarge[V, I, M](v, CopySign[V, I, M](r, v))
}

// passLarge returns v in the lanes where |v| >= 2^mantissa_bits (already an
// integer) or v is NaN, and r elsewhere.
func passLarge[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v, r V) V {
	fc := FloatConstants[V, I, M]{}
	limit := fc.Set(stdmath.Ldexp(1, v.Limits().MantissaBits))
	small := v.Abs().Less(limit)
	return hwy.IfThenElse(small, r, v)
}

// truncFallback goes through a truncating integer conversion. The sign is
// copied back so that -0.5 gives -0.
func truncFallback[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	k := v.ConvertToIntTrunc().ConvertToFloat()
	return passLarge[V, I, M](v, CopySign[V, I, M](k, v))
}

func floorFallback[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	k := v.ConvertToIntTrunc().ConvertToFloat()
	k = hwy.IfThenElse(k.Greater(v), k.Sub(fc.One()), k)
	return passLarge[V, I, M](v, CopySign[V, I, M](k, v))
}

func ceilFallback[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	k := v.ConvertToIntTrunc().ConvertToFloat()
	k = hwy.IfThenElse(k.Less(v), k.Add(fc.One()), k)
	return passLarge[V, I, M](v, CopySign[V, I, M](k, v))
}

// rintFallback adds and subtracts 2^mantissa_bits, which leaves no room for
// a fraction and so rounds in the current (nearest-even) mode.
func rintFallback[V hwy.FloatVec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	fc := FloatConstants[V, I, M]{}
	shift := fc.Set(stdmath.Ldexp(1, v.Limits().MantissaBits))
	pos := v.Add(shift).Sub(shift)
	neg := v.Sub(shift).Add(shift)
	r := hwy.IfThenElse(v.Less(fc.Zero()), neg, pos)
	return passLarge[V, I, M](v, CopySign[V, I, M](r, v))
}
