//go:build amd64

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
	// 256-bit float arithmetic needs AVX; SSE2 is the amd64 baseline.
	if cpu.X86.HasAVX {
		currentLevel = Level256
		currentWidth = 32
		currentName = "256bit"
	} else {
		currentLevel = Level128
		currentWidth = 16
		currentName = "128bit"
	}
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 0
	currentName = "scalar"
}
