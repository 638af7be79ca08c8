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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	features = detectCPUFeatures()

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	switch {
	case !HasRoundInstructions:
		currentLevel = DispatchSSE2
		currentWidth = 16
		features.Required = []string{"sse2"}
	case !HasFMA:
		currentLevel = DispatchSSE4
		currentWidth = 16
		features.Required = []string{"sse2", "sse41"}
	default:
		currentLevel = DispatchAVX2
		currentWidth = 32
		features.Required = []string{"sse2", "sse41", "avx", "avx2", "fma"}
	}
}

func detectCPUFeatures() Features {
	f := Features{Arch: "amd64"}
	add := func(has bool, name string) {
		if has {
			f.Names = append(f.Names, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSE41, "sse41")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasFMA, "fma")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.X86.HasAVX512DQ, "avx512dq")
	return f
}
