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
	stdbits "math/bits"

	"github.com/kdt3rd/pal/hwy"
)

// FindIf returns the index of the first element of buf for which pred sets
// its lane, or -1 if there is none.
//
// Example: the first NaN in a buffer
//
//	idx := algo.FindIf[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf, math.IsNaN[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
func FindIf[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](buf []float32, pred func(V) M) int {
	var z V
	lanes := z.NumLanes()
	for i := 0; i < len(buf); i += lanes {
		bits := pred(z.LoadPartial(buf[i:])).Bits()
		if rem := len(buf) - i; rem < lanes {
			bits &= 1<<rem - 1
		}
		if bits != 0 {
			return i + stdbits.TrailingZeros64(bits)
		}
	}
	return -1
}

// CountIf returns the number of elements of buf for which pred sets its
// lane.
func CountIf[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](buf []float32, pred func(V) M) int {
	var z V
	lanes := z.NumLanes()
	count := 0
	for i := 0; i < len(buf); i += lanes {
		bits := pred(z.LoadPartial(buf[i:])).Bits()
		if rem := len(buf) - i; rem < lanes {
			bits &= 1<<rem - 1
		}
		count += stdbits.OnesCount64(bits)
	}
	return count
}

// AnyOf reports whether pred holds for some element of buf.
func AnyOf[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](buf []float32, pred func(V) M) bool {
	return FindIf[V, I, M](buf, pred) >= 0
}

// AllOf reports whether pred holds for every element of buf. It is true for
// an empty buf.
func AllOf[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](buf []float32, pred func(V) M) bool {
	return FindIf[V, I, M](buf, func(v V) M { return pred(v).Not() }) < 0
}
