//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// NEON is 128-bit and present on effectively all arm64 hardware.
	if cpu.ARM64.HasASIMD {
		currentLevel = Level128
		currentWidth = 16
		currentName = "128bit"
	} else {
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 0
	currentName = "scalar"
}
