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
	"testing"

	"github.com/kdt3rd/pal/internal/ulp"
)

func exp2Ref(x float64) float64  { return stdmath.Exp2(x) }
func exp10Ref(x float64) float64 { return stdmath.Pow(10, x) }

func TestExpSweep(t *testing.T) {
	tests := []struct {
		name   string
		fn     unaryFn
		ref    func(float64) float64
		lo, hi float64
		step   float64
		maxULP uint64
	}{
		{"Exp", Exp[v8, i8, m8], stdmath.Exp, -87, 87, 0.0137, 1},
		{"Exp2", Exp2[v8, i8, m8], exp2Ref, -100, 100, 0.0173, 1},
		{"Exp10", Exp10[v8, i8, m8], exp10Ref, -37.5, 38.2, 0.0137, 1},
		{"FastExp", FastExp[v8, i8, m8], stdmath.Exp, -87, 87, 0.0137, 1},
		{"FastExp2", FastExp2[v8, i8, m8], exp2Ref, -100, 100, 0.0173, 128},
		{"FasterExp2", FasterExp2[v8, i8, m8], exp2Ref, -100, 100, 0.0173, 65536},
		{"FastExp10", FastExp10[v8, i8, m8], exp10Ref, -37.5, 38.2, 0.0137, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSweep(t, tt.name, sweep(tt.fn, tt.ref, tt.lo, tt.hi, tt.step, nil), tt.maxULP)
		})
	}
}

func TestExpSamples(t *testing.T) {
	xs := []float32{-37.124, 0.0005, 2, 371.2}
	tests := []struct {
		name   string
		fn     unaryFn
		ref    func(float64) float64
		maxULP uint64
	}{
		{"Exp", Exp[v8, i8, m8], stdmath.Exp, 1},
		{"Exp2", Exp2[v8, i8, m8], exp2Ref, 1},
		{"Exp10", Exp10[v8, i8, m8], exp10Ref, 1},
		{"FastExp", FastExp[v8, i8, m8], stdmath.Exp, 1},
		{"FastExp2", FastExp2[v8, i8, m8], exp2Ref, 16},
		{"FastExp10", FastExp10[v8, i8, m8], exp10Ref, 16},
		{"FasterExp2", FasterExp2[v8, i8, m8], exp2Ref, 32768},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(tt.fn, xs)
			for i, x := range xs {
				want := ulp.Ref32(tt.ref, x)
				if d := ulp.Distance32(got[i], want); d > tt.maxULP {
					t.Errorf("%s(%v) = %v, want %v (%d ULP)", tt.name, x, got[i], want, d)
				}
			}
		})
	}
}

func TestExpSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		fn   unaryFn
		x    float32
		want float32
	}{
		{"Exp(0)", Exp[v8, i8, m8], 0, 1},
		{"Exp(-0)", Exp[v8, i8, m8], negZ, 1},
		{"Exp(+Inf)", Exp[v8, i8, m8], inf, inf},
		{"Exp(-Inf)", Exp[v8, i8, m8], -inf, 0},
		{"Exp(NaN)", Exp[v8, i8, m8], nan, nan},
		{"Exp(89) overflows", Exp[v8, i8, m8], 89, inf},
		{"Exp(-104) underflows", Exp[v8, i8, m8], -104, 0},
		{"Exp2(0)", Exp2[v8, i8, m8], 0, 1},
		{"Exp2(10)", Exp2[v8, i8, m8], 10, 1024},
		{"Exp2(-3)", Exp2[v8, i8, m8], -3, 0.125},
		{"Exp2(-126)", Exp2[v8, i8, m8], -126, 0x1p-126},
		{"Exp2(128)", Exp2[v8, i8, m8], 128, inf},
		{"Exp2(-127)", Exp2[v8, i8, m8], -127, 0},
		{"Exp2(+Inf)", Exp2[v8, i8, m8], inf, inf},
		{"Exp2(-Inf)", Exp2[v8, i8, m8], -inf, 0},
		{"Exp2(NaN)", Exp2[v8, i8, m8], nan, nan},
		{"Exp10(0)", Exp10[v8, i8, m8], 0, 1},
		{"Exp10(2)", Exp10[v8, i8, m8], 2, 100},
		{"Exp10(3)", Exp10[v8, i8, m8], 3, 1000},
		{"Exp10(39)", Exp10[v8, i8, m8], 39, inf},
		{"Exp10(-39)", Exp10[v8, i8, m8], -39, 0},
		{"Exp10(NaN)", Exp10[v8, i8, m8], nan, nan},
		{"FastExp(0)", FastExp[v8, i8, m8], 0, 1},
		{"FastExp(89)", FastExp[v8, i8, m8], 89, inf},
		{"FastExp(-89)", FastExp[v8, i8, m8], -89, 0},
		{"FasterExp2(2)", FasterExp2[v8, i8, m8], 2, 4},
		{"FasterExp2(128)", FasterExp2[v8, i8, m8], 128, inf},
		{"FasterExp2(200)", FasterExp2[v8, i8, m8], 200, inf},
		{"FasterExp2(-200)", FasterExp2[v8, i8, m8], -200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float32(tt.fn(lanes8(tt.x)).Get(0))
			if !sameFloat(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestExpWidths(t *testing.T) {
	in := make([]float32, 16)
	for i := range in {
		in[i] = float32(i)*0.7 - 5
	}
	want := make([]float32, 16)
	for i, x := range in {
		want[i] = float32(stdmath.Exp(float64(x)))
	}

	got4 := make([]float32, 16)
	for off := 0; off < 16; off += 4 {
		v := Exp[f32x4, i32x4, m32x4](hwyLoad4(in[off:]))
		v.StoreSlice(got4[off:])
	}
	got16 := lanesOf(Exp[f32x16, i32x16, m32x16](hwyLoad16(in)))

	for i := range in {
		if d := ulp.Distance32(got4[i], want[i]); d > 1 {
			t.Errorf("Float32x4 Exp(%v) = %v, want %v", in[i], got4[i], want[i])
		}
		if got4[i] != got16[i] {
			t.Errorf("Exp(%v): Float32x4 gives %v, Float32x16 gives %v", in[i], got4[i], got16[i])
		}
	}
}
