//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	features = Features{Arch: "arm64", Required: []string{"asimd"}}
	if cpu.ARM64.HasASIMD {
		features.Names = append(features.Names, "asimd")
	}
	if cpu.ARM64.HasFPHP {
		features.Names = append(features.Names, "fphp")
	}
	if cpu.ARM64.HasSVE {
		features.Names = append(features.Names, "sve")
	}

	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) with fused multiply-add and
	// rounding instructions; it's part of the ARMv8-A base architecture.
	currentLevel = DispatchNEON
	currentWidth = 16
}
