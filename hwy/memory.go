package hwy

// This file provides width-generic memory operations over the float32
// shapes. They are thin wrappers over the per-shape methods so callers can
// be written once for Float32x4, Float32x8 and Float32x16.

// Load loads a full vector from src. It panics if src is shorter than the
// vector.
//
//	v := hwy.Load[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](data)
func Load[V Float32Vec[V, I, M], I IntVec[I, V, M], M MaskVec[M]](src []float32) V {
	var v V
	return v.LoadSlice(src)
}

// LoadPartial loads min(len(src), lanes) elements from src and zeroes the
// remaining lanes. It is the tail load used when fewer than a full vector of
// elements remain.
func LoadPartial[V Float32Vec[V, I, M], I IntVec[I, V, M], M MaskVec[M]](src []float32) V {
	var v V
	return v.LoadPartial(src)
}

// BlendedStore stores elements from v to dst only where mask is true.
// Existing values in dst are preserved where mask is false.
func BlendedStore[V Float32Vec[V, I, M], I IntVec[I, V, M], M MaskVec[M]](v V, mask M, dst []float32) {
	n := min(len(dst), v.NumLanes())
	for i := range n {
		if mask.Get(i) {
			dst[i] = float32(v.Get(i))
		}
	}
}

// LoadInterleaved2 loads interleaved pairs and deinterleaves them into two
// vectors (Array-of-Structures to Structure-of-Arrays).
//
// Input memory layout:
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// Missing trailing pairs leave the corresponding lanes zero.
func LoadInterleaved2[V Float32Vec[V, I, M], I IntVec[I, V, M], M MaskVec[M]](src []float32) (V, V) {
	var a, b V
	for i := 0; i < a.NumLanes() && 2*i+1 < len(src); i++ {
		a = a.With(i, float64(src[2*i]))
		b = b.With(i, float64(src[2*i+1]))
	}
	return a, b
}

// StoreInterleaved2 is the inverse of LoadInterleaved2. Pairs that do not
// fit in dst are dropped.
func StoreInterleaved2[V Float32Vec[V, I, M], I IntVec[I, V, M], M MaskVec[M]](a, b V, dst []float32) {
	for i := 0; i < a.NumLanes() && 2*i+1 < len(dst); i++ {
		dst[2*i] = float32(a.Get(i))
		dst[2*i+1] = float32(b.Get(i))
	}
}
