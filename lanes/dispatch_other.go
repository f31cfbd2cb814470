//go:build !amd64 && !arm64

package lanes

// No vector registers to recommend on other architectures; the width-1
// tiers are always correct.

func init() {
	setScalarMode()
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 0
	currentName = "scalar"
}
