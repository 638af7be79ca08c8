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

package hwy

// ProcessWithTail walks size elements in steps of lanes. It calls
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the remainder, if size is not a
//     multiple of lanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 4,
//	    func(offset int) {
//	        v := hwy.LoadFloat32x4(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadFloat32x4Partial(data[offset:offset+count])
//	        v.Add(v).StorePartial(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. The tail is covered by one last full vector that overlaps
// the previous one, so fullFn must be idempotent on the overlapping
// elements. Sizes below lanes are not handled and must be padded by the
// caller.
func ProcessWithTailNoMask(size, lanes int, fullFn func(offset int)) {
	if size < lanes {
		return
	}

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if size%lanes > 0 {
		fullFn(size - lanes)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize(size, lanes int) int {
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes == 0 {
		return true
	}
	return size%lanes == 0
}
