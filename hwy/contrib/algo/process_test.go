package algo

import (
	stdmath "math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdt3rd/pal/hwy"
	"github.com/kdt3rd/pal/hwy/contrib/math"
	"github.com/kdt3rd/pal/hwy/contrib/workerpool"
)

const sentinel = float32(-12345)

// affine maps x to 2x+1. An element processed twice would read 4x+3.
func affine[V hwy.Float32Vec[V, I, M], I hwy.IntVec[I, V, M], M hwy.MaskVec[M]](v V) V {
	var z V
	return v.MulAdd(z.Broadcast(2), z.Broadcast(1))
}

// guarded returns a slice of n elements at offset off inside a larger
// buffer whose other elements hold sentinel.
func guarded(n, off int) (backing, buf []float32) {
	backing = make([]float32, n+off+blockFloats)
	for i := range backing {
		backing[i] = sentinel
	}
	buf = backing[off : off+n]
	for i := range buf {
		buf[i] = float32(i)
	}
	return backing, buf
}

func checkProcessed(t *testing.T, backing []float32, n, off int) {
	t.Helper()
	for i, x := range backing {
		if i >= off && i < off+n {
			require.Equalf(t, float32(2*(i-off)+1), x, "element %d (n=%d off=%d)", i-off, n, off)
		} else {
			require.Equalf(t, sentinel, x, "guard %d written (n=%d off=%d)", i, n, off)
		}
	}
}

func TestProcessInPlace(t *testing.T) {
	t.Run("Float32x4", func(t *testing.T) {
		for n := 0; n <= 67; n++ {
			for off := 0; off < 8; off++ {
				backing, buf := guarded(n, off)
				ProcessInPlace[hwy.Float32x4, hwy.Int32x4, hwy.Mask32x4](buf, affine[hwy.Float32x4, hwy.Int32x4, hwy.Mask32x4])
				checkProcessed(t, backing, n, off)
			}
		}
	})
	t.Run("Float32x8", func(t *testing.T) {
		for n := 0; n <= 67; n++ {
			for off := 0; off < 8; off++ {
				backing, buf := guarded(n, off)
				ProcessInPlace[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf, affine[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
				checkProcessed(t, backing, n, off)
			}
		}
	})
	t.Run("Float32x16", func(t *testing.T) {
		for n := 0; n <= 67; n++ {
			for off := 0; off < 8; off++ {
				backing, buf := guarded(n, off)
				ProcessInPlace[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16](buf, affine[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16])
				checkProcessed(t, backing, n, off)
			}
		}
	})
}

func TestProcessInPlaceMatchesLanes(t *testing.T) {
	exp := math.Exp[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8]
	buf := make([]float32, 53)
	for i := range buf {
		buf[i] = -20 + 0.77*float32(i)
	}
	want := make([]float32, len(buf))
	for i, x := range buf {
		want[i] = exp(hwy.BroadcastFloat32x8(x)).Array()[0]
	}
	ProcessInPlace[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf[1:], exp)
	assert.Equal(t, want[1:], buf[1:])
	assert.Equal(t, float32(-20), buf[0])
}

func TestProcess(t *testing.T) {
	src := make([]float32, 37)
	for i := range src {
		src[i] = float32(i)
	}
	t.Run("equal lengths", func(t *testing.T) {
		dst := make([]float32, len(src))
		Process[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](dst, src, affine[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
		for i, x := range dst {
			assert.Equal(t, float32(2*i+1), x)
		}
		assert.Equal(t, float32(36), src[36], "source modified")
	})
	t.Run("short destination", func(t *testing.T) {
		dst := make([]float32, 10)
		Process[hwy.Float32x4, hwy.Int32x4, hwy.Mask32x4](dst, src, affine[hwy.Float32x4, hwy.Int32x4, hwy.Mask32x4])
		assert.Equal(t, float32(19), dst[9])
	})
	t.Run("short source", func(t *testing.T) {
		dst := []float32{sentinel, sentinel, sentinel, sentinel}
		Process[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16](dst, src[:3], affine[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16])
		assert.Equal(t, []float32{1, 3, 5, sentinel}, dst)
	})
}

func TestProcessAliased(t *testing.T) {
	for n := 0; n <= 67; n++ {
		for off := 0; off < 8; off++ {
			backing, buf := guarded(n, off)
			Process[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](buf, buf, affine[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
			checkProcessed(t, backing, n, off)
		}
	}
}

func TestProcessTails(t *testing.T) {
	for n := 0; n <= 67; n++ {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i)
		}
		dstBacking, dst := guarded(n, 3)
		for i := range dst {
			dst[i] = sentinel
		}
		Process[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16](dst, src, affine[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16])
		checkProcessed(t, dstBacking, n, 3)
	}
}

func TestMisalignment(t *testing.T) {
	backing := make([]float32, 64)
	for _, lanes := range []int{4, 8, 16} {
		vecBytes := uintptr(lanes * 4)
		for off := range 2 * lanes {
			buf := backing[off:]
			peel := misalignment(buf, lanes)
			require.GreaterOrEqual(t, peel, 0)
			require.Less(t, peel, lanes)
			addr := uintptr(unsafe.Pointer(&buf[peel]))
			assert.Zerof(t, addr%vecBytes, "lanes=%d off=%d peel=%d", lanes, off, peel)
		}
	}
}

func TestOverlaps(t *testing.T) {
	buf := make([]float32, 16)
	assert.True(t, overlaps(buf, buf))
	assert.True(t, overlaps(buf[:8], buf[7:]))
	assert.False(t, overlaps(buf[:8], buf[8:]))
	assert.False(t, overlaps(buf, nil))
	assert.False(t, overlaps(buf, make([]float32, 16)))
}

func TestProcess2(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	b := []float32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	dst := make([]float32, len(a))
	for i := range dst {
		dst[i] = sentinel
	}
	Process2[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](dst, a, b, hwy.Float32x8.Add)
	assert.Equal(t, []float32{11, 22, 33, 44, 55, 66, 77, 88, 99, 110, sentinel}, dst)
}

func TestParallelProcessInPlace(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 127, 128, 129, 1000, 4099} {
		for _, p := range []*workerpool.Pool{nil, pool} {
			backing, buf := guarded(n, 3)
			ParallelProcessInPlace[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](p, buf, affine[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8])
			checkProcessed(t, backing, n, 3)
		}
	}
}

func TestFindIf(t *testing.T) {
	isNaN := math.IsNaN[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8]
	nan := float32(stdmath.NaN())

	tests := []struct {
		name  string
		buf   []float32
		first int
		count int
	}{
		{"empty", nil, -1, 0},
		{"none", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, -1, 0},
		{"first", []float32{nan, 2, 3}, 0, 1},
		{"second vector", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, nan, nan}, 9, 2},
		{"last", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, nan}, 16, 1},
		{"all", []float32{nan, nan, nan}, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.first, FindIf[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](tt.buf, isNaN))
			assert.Equal(t, tt.count, CountIf[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](tt.buf, isNaN))
			assert.Equal(t, tt.count > 0, AnyOf[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](tt.buf, isNaN))
			assert.Equal(t, tt.count == len(tt.buf), AllOf[hwy.Float32x8, hwy.Int32x8, hwy.Mask32x8](tt.buf, isNaN))
		})
	}
}

func TestFindIfIgnoresPadding(t *testing.T) {
	// Zero padding lanes would match this predicate.
	isZero := func(v hwy.Float32x16) hwy.Mask32x16 {
		return v.Equal(hwy.BroadcastFloat32x16(0))
	}
	buf := []float32{1, 2, 3}
	assert.Equal(t, -1, FindIf[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16](buf, isZero))
	assert.Equal(t, 0, CountIf[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16](buf, isZero))
	assert.True(t, AllOf[hwy.Float32x16, hwy.Int32x16, hwy.Mask32x16](buf, func(v hwy.Float32x16) hwy.Mask32x16 { return isZero(v).Not() }))
}
