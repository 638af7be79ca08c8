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
	"unsafe"

	"github.com/kdt3rd/pal/hwy"
	"github.com/kdt3rd/pal/hwy/contrib/workerpool"
)

// blockFloats is the number of floats handled per iteration of the main
// loop: four 4-lane vectors, two 8-lane vectors or one 16-lane vector.
const blockFloats = 16

// ProcessInPlace replaces every element of buf with fn applied to it, one
// vector of V at a time. fn must work lane by lane; lanes past the end of
// buf hold zeros and their results are discarded.
//
// Leading elements are handled with a partial vector until the remaining
// slice starts on a vector boundary, then whole blocks of 16 floats, then
// full vectors, then one last partial vector.
func ProcessInPlace[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](buf []float32, fn func(V) V) {
	var z V
	lanes := z.NumLanes()
	n := len(buf)
	if n == 0 {
		return
	}

	i := 0
	if peel := misalignment(buf, lanes); peel > 0 {
		i = min(peel, n)
		fn(z.LoadPartial(buf[:i])).StorePartial(buf[:i])
	}

	if lanes <= blockFloats {
		for ; i+blockFloats <= n; i += blockFloats {
			for j := i; j < i+blockFloats; j += lanes {
				fn(z.LoadSlice(buf[j:])).StoreSlice(buf[j:])
			}
		}
	}

	rest := buf[i:]
	hwy.ProcessWithTail(len(rest), lanes,
		func(off int) {
			fn(z.LoadSlice(rest[off:])).StoreSlice(rest[off:])
		},
		func(off, count int) {
			tail := rest[off : off+count]
			fn(z.LoadPartial(tail)).StorePartial(tail)
		})
}

// misalignment returns how many elements precede the first vector-aligned
// element of buf, or 0 if buf already starts on a boundary or is not
// float-aligned at all.
func misalignment(buf []float32, lanes int) int {
	const floatBytes = 4
	vecBytes := lanes * floatBytes
	addr := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) % uintptr(vecBytes))
	if hwy.IsAligned(addr, vecBytes) || !hwy.IsAligned(addr, floatBytes) {
		return 0
	}
	return (hwy.AlignedSize(addr, vecBytes) - addr) / floatBytes
}

// overlaps reports whether a and b share any memory.
func overlaps(a, b []float32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const floatBytes = 4
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(len(b)*floatBytes) && pb < pa+uintptr(len(a)*floatBytes)
}

// Process writes fn(src[i]) to dst[i] for the first min(len(dst), len(src))
// elements.
//
// When dst and src do not overlap and hold at least one vector, the tail is
// covered by a final full vector that overlaps the previous one, which
// recomputes a few lanes instead of going through a partial load.
func Process[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](dst, src []float32, fn func(V) V) {
	var z V
	lanes := z.NumLanes()
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	full := func(off int) {
		fn(z.LoadSlice(src[off:])).StoreSlice(dst[off:])
	}
	if n >= lanes && !overlaps(dst, src) {
		hwy.ProcessWithTailNoMask(n, lanes, full)
		return
	}
	hwy.ProcessWithTail(n, lanes, full, func(off, count int) {
		fn(z.LoadPartial(src[off : off+count])).StorePartial(dst[off : off+count])
	})
}

// Process2 writes fn(a[i], b[i]) to dst[i] for the length of the shortest
// slice.
func Process2[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](dst, a, b []float32, fn func(V, V) V) {
	var z V
	lanes := z.NumLanes()
	n := min(len(dst), len(a), len(b))

	hwy.ProcessWithTail(n, lanes,
		func(off int) {
			fn(z.LoadSlice(a[off:]), z.LoadSlice(b[off:])).StoreSlice(dst[off:])
		},
		func(off, count int) {
			end := off + count
			fn(z.LoadPartial(a[off:end]), z.LoadPartial(b[off:end])).StorePartial(dst[off:end])
		})
}

// ParallelProcessInPlace is ProcessInPlace split over the workers of pool
// in chunks that are whole vectors long, so only the final chunk has a
// partial tail. A nil pool runs on the calling goroutine.
func ParallelProcessInPlace[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](pool *workerpool.Pool, buf []float32, fn func(V) V) {
	if pool == nil {
		ProcessInPlace[V, I, M](buf, fn)
		return
	}
	var z V
	pool.ParallelForAligned(len(buf), blockFloats*z.NumLanes(), func(start, end int) {
		ProcessInPlace[V, I, M](buf[start:end], fn)
	})
}
