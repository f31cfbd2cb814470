package lanes

import "testing"

func TestLevelString(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelScalar, "scalar"},
		{Level128, "128bit"},
		{Level256, "256bit"},
		{Level(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("Level(%d).String(): got %q, want %q", c.level, got, c.want)
		}
	}
}

func TestCurrentLevelConsistency(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	if name != level.String() {
		t.Errorf("CurrentName %q does not match level %v", name, level)
	}

	switch level {
	case Level256:
		if width != 32 {
			t.Errorf("Level256: width %d, want 32", width)
		}
	case Level128:
		if width != 16 {
			t.Errorf("Level128: width %d, want 16", width)
		}
	case LevelScalar:
		if width != 0 {
			t.Errorf("LevelScalar: width %d, want 0", width)
		}
	default:
		t.Errorf("unexpected level %d", level)
	}
}

func TestMaxLanes(t *testing.T) {
	l32 := MaxLanes[float32]()
	l64 := MaxLanes[float64]()

	if CurrentLevel() == LevelScalar {
		if l32 != 1 || l64 != 1 {
			t.Errorf("scalar mode: MaxLanes got (%d, %d), want (1, 1)", l32, l64)
		}
		return
	}

	if l32 != 2*l64 {
		t.Errorf("MaxLanes[float32] = %d, want twice MaxLanes[float64] = %d", l32, l64)
	}
	if want := CurrentWidth() / 4; l32 != want {
		t.Errorf("MaxLanes[float32] = %d, want %d", l32, want)
	}
	if want := CurrentWidth() / 8; l64 != want {
		t.Errorf("MaxLanes[float64] = %d, want %d", l64, want)
	}
}

func TestNoSimdEnv(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true}, // unparsable non-empty values count as set
	}
	for _, c := range cases {
		t.Setenv("LANES_NO_SIMD", c.val)
		if got := NoSimdEnv(); got != c.want {
			t.Errorf("LANES_NO_SIMD=%q: got %v, want %v", c.val, got, c.want)
		}
	}
}

func TestLanesWidths(t *testing.T) {
	// Static widths of each tier, independent of dispatch.
	if got := (F32x8{}).Lanes(); got != 8 {
		t.Errorf("F32x8.Lanes: got %d", got)
	}
	if got := (F32x4{}).Lanes(); got != 4 {
		t.Errorf("F32x4.Lanes: got %d", got)
	}
	if got := (F32x1{}).Lanes(); got != 1 {
		t.Errorf("F32x1.Lanes: got %d", got)
	}
	if got := (F64x4{}).Lanes(); got != 4 {
		t.Errorf("F64x4.Lanes: got %d", got)
	}
	if got := (F64x2{}).Lanes(); got != 2 {
		t.Errorf("F64x2.Lanes: got %d", got)
	}
	if got := (F64x1{}).Lanes(); got != 1 {
		t.Errorf("F64x1.Lanes: got %d", got)
	}
}

func TestFallbackChainHalves(t *testing.T) {
	// Every non-terminal tier falls back to the tier with half its lanes.
	if w, f := (F32x8{}).Lanes(), (F32x8{}).Fallback().Lanes(); f != w/2 {
		t.Errorf("F32x8 fallback lanes: got %d, want %d", f, w/2)
	}
	if w, f := (F32x4{}).Lanes(), (F32x4{}).Fallback().Lanes(); f != 1 {
		t.Errorf("F32x4 fallback lanes: got %d, want 1 (from %d)", f, w)
	}
	if w, f := (F64x4{}).Lanes(), (F64x4{}).Fallback().Lanes(); f != w/2 {
		t.Errorf("F64x4 fallback lanes: got %d, want %d", f, w/2)
	}
	if w, f := (F64x2{}).Lanes(), (F64x2{}).Fallback().Lanes(); f != 1 {
		t.Errorf("F64x2 fallback lanes: got %d, want 1 (from %d)", f, w)
	}
}
