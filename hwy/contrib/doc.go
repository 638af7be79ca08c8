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

// Package contrib holds the packages built on top of the hwy vector types.
//
//   - math: transcendental functions in up to three precision tiers
//     (Log2/FastLog2/FasterLog2, Exp/FastExp, Pow/FastPow/FasterPow, ...),
//     plus classification, rounding and integer division helpers.
//   - algo: loops that apply a vector function to a whole float32 buffer,
//     handling misaligned heads and partial tails, and named transforms
//     such as ExpTransform and PowTransform.
//   - workerpool: a persistent worker pool that splits buffer work across
//     goroutines.
//
// A typical use:
//
//	import (
//		"github.com/kdt3rd/pal/hwy"
//		"github.com/kdt3rd/pal/hwy/contrib/algo"
//		"github.com/kdt3rd/pal/hwy/contrib/math"
//	)
//
//	algo.ProcessInPlace[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf,
//		math.Log2[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
package contrib
