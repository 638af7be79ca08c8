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
	"math/bits"

	"github.com/kdt3rd/pal/hwy"
)

// DivideByConst divides every lane of a by d, truncating toward zero like
// Go's / operator. The divisor is known up front, so the division becomes a
// multiply-high and shifts (Granlund and Montgomery, "Division by Invariant
// Integers using Multiplication", 1994).
//
// DivideByConst panics if d is zero.
func DivideByConst[I hwy.IntVec[I, V, M], V hwy.FloatVec[V, I, M], M hwy.MaskVec[M]](a I, d int64) I {
	ic := IntConstants[I, V, M]{}
	l := a.Limits()
	w := uint(l.ValueBits)

	switch {
	case d == 0:
		panic("math: DivideByConst by zero")
	case d == 1:
		return a
	case d == -1:
		return a.Neg()
	case d == l.MinInt:
		return hwy.IfThenElse(a.Equal(ic.Min()), ic.One(), ic.Zero())
	}

	ad := uint64(d)
	if d < 0 {
		ad = uint64(-d)
	}
	// 0 or -1 in every lane
	sign := a.ShiftAllRightArith(w - 1)

	var q I
	if ad&(ad-1) == 0 {
		// Bias negative dividends by ad-1 so the arithmetic shift truncates.
		sh := uint(bits.TrailingZeros64(ad))
		bias := sign.ShiftAllRightLogical(w - sh)
		q = a.Add(bias).ShiftAllRightArith(sh)
	} else {
		sh := uint(bits.Len64(ad-1)) - 1
		q = a.MulHigh(ic.Set(magicMultiplier(ad, sh, w))).Add(a)
		q = q.ShiftAllRightArith(sh).Sub(sign)
	}
	if d < 0 {
		q = q.Neg()
	}
	return q
}

// magicMultiplier returns 2^(w+sh)/ad + 1 - 2^w, the signed multiplier for
// a w-bit lane. It lies in [-2^(w-1), 0) and so fits the lane.
func magicMultiplier(ad uint64, sh, w uint) int64 {
	if w == 32 {
		return int64(int32(uint32((uint64(1)<<(32+sh))/ad + 1)))
	}
	q, _ := bits.Div64(uint64(1)<<sh, 0, ad)
	return int64(q + 1)
}
