package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the widest tier worth entering on this host. It is a
// recommendation: every tier is portable Go and works on any GOARCH, the
// level only reflects which register width the hardware can back.
type Level int

const (
	// LevelScalar recommends the width-1 tiers only.
	LevelScalar Level = iota

	// Level128 recommends entering at the 128-bit tiers (SSE2, NEON).
	Level128

	// Level256 recommends entering at the 256-bit tiers (AVX).
	Level256
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case Level128:
		return "128bit"
	case Level256:
		return "256bit"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the register width in bytes for the current level,
// 0 in scalar mode. Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the tier recommendation detected at startup.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the recommended register width in bytes:
// 32 for the 256-bit tiers, 16 for the 128-bit tiers, 0 in scalar mode.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level,
// e.g. "256bit" or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the LANES_NO_SIMD environment variable is set.
// When set, the width-1 tiers are recommended regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of T elements one lane carries at the current
// level: lane bit width divided by scalar bit width, or 1 in scalar mode.
//
// For example, at Level256:
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Floats]() int {
	if currentLevel == LevelScalar {
		return 1
	}
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}
