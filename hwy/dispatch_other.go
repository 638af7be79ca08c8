//go:build !amd64 && !arm64

package hwy

import "runtime"

func init() {
	// Other architectures run the vector types as plain Go.
	features = Features{Arch: runtime.GOARCH}
	setScalarMode()
}
