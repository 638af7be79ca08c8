package hwy

//go:generate go run ../cmd/hwygen -output . -shapes 128,256,512

// The float32 shapes satisfy Float32Vec; the float64 ones do not.

func (Float32x4) float32Lanes()  {}
func (Float32x8) float32Lanes()  {}
func (Float32x16) float32Lanes() {}
