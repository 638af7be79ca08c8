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

// Package algo applies vector functions to whole float32 buffers.
//
// # Buffer processing
//
// ProcessInPlace walks a buffer in three phases: a scalar-width prefix up to
// the first lane-aligned element, unrolled blocks of 16 floats' worth of
// vectors, and a partial tail. Every element is visited exactly once and
// elements outside the buffer are never written:
//
//	algo.ProcessInPlace[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf, math.Exp[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
//
// Process and Process2 write into a separate destination, and
// ParallelProcessInPlace splits the buffer over a workerpool.Pool on block
// boundaries.
//
// # Named transforms
//
// ExpTransform, LogTransform, PowTransform and friends apply one of the
// precision tiers of package math, picked with a Precision:
//
//	algo.Log2Transform(input, output, algo.Fast)
//
// # Search
//
// FindIf, CountIf, AnyOf and AllOf evaluate a mask predicate such as
// math.IsNaN over a buffer.
package algo
