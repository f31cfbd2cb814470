// Copyright 2026 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import (
	"math"
	"testing"
)

var specials64 = []float64{
	0,
	math.Float64frombits(0x8000_0000_0000_0000), // -0
	1.5,
	-2.25,
	math.Inf(1),
	math.Inf(-1),
	math.NaN(),
	math.Float64frombits(0xfff8_0000_0000_0001), // negative NaN with payload
	math.Float64frombits(0x0000_0000_0000_0001), // smallest subnormal
	-3.7,
	12345.678,
}

func TestAbsNeg64SignBit(t *testing.T) {
	w, n, s := F64x4{}, F64x2{}, F64x1{}
	for _, x := range specials64 {
		bits := math.Float64bits(x)

		if got := math.Float64bits(s.Abs(x)); got != bits&absMask64 {
			t.Errorf("f64x1: Abs(%#016x): got %#016x", bits, got)
		}
		if got := math.Float64bits(s.Neg(x)); got != bits^signMask64 {
			t.Errorf("f64x1: Neg(%#016x): got %#016x", bits, got)
		}

		abs4 := w.ToArray(w.Abs(w.Set(x)))
		neg4 := w.ToArray(w.Neg(w.Set(x)))
		for i := 0; i < 4; i++ {
			if got := math.Float64bits(abs4[i]); got != bits&absMask64 {
				t.Errorf("f64x4: Abs(%#016x): lane %d: got %#016x", bits, i, got)
			}
			if got := math.Float64bits(neg4[i]); got != bits^signMask64 {
				t.Errorf("f64x4: Neg(%#016x): lane %d: got %#016x", bits, i, got)
			}
		}

		abs2 := n.ToArray(n.Abs(n.Set(x)))
		neg2 := n.ToArray(n.Neg(n.Set(x)))
		for i := 0; i < 2; i++ {
			if got := math.Float64bits(abs2[i]); got != bits&absMask64 {
				t.Errorf("f64x2: Abs(%#016x): lane %d: got %#016x", bits, i, got)
			}
			if got := math.Float64bits(neg2[i]); got != bits^signMask64 {
				t.Errorf("f64x2: Neg(%#016x): lane %d: got %#016x", bits, i, got)
			}
		}
	}
}

func TestCopySign64(t *testing.T) {
	s := F64x1{}
	cases := []struct {
		sign, v, want float64
	}{
		{-5.0, 3.0, -3.0},
		{2.0, -7.5, 7.5},
		{math.Float64frombits(0x8000_0000_0000_0000), 1.0, -1.0},
		{0, -0.25, 0.25},
	}
	for _, c := range cases {
		if got := s.CopySign(c.sign, c.v); math.Float64bits(got) != math.Float64bits(c.want) {
			t.Errorf("CopySign(%v, %v): got %v, want %v", c.sign, c.v, got, c.want)
		}
	}

	w := F64x4{}
	got := w.ToArray(w.CopySign(w.Load([]float64{-1, 2, -3, 4}), w.Load([]float64{5, -6, 7, -8})))
	want := [4]float64{-5, 6, -7, 8}
	for i := 0; i < 4; i++ {
		if got[i] != want[i] {
			t.Errorf("f64x4: CopySign: lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestArithmetic64LaneIndependence(t *testing.T) {
	w := F64x4{}
	a := w.Load([]float64{1, 2, 3, 4})
	b := w.Load([]float64{10, 20, 30, 40})

	sum := w.ToArray(w.Add(a, b))
	diff := w.ToArray(w.Sub(b, a))
	prod := w.ToArray(w.Mul(a, b))
	quot := w.ToArray(w.Div(b, a))
	for i := 0; i < 4; i++ {
		af, bf := float64(i+1), float64(10*(i+1))
		if sum[i] != af+bf || diff[i] != bf-af || prod[i] != af*bf || quot[i] != bf/af {
			t.Errorf("lane %d: got (%v, %v, %v, %v)", i, sum[i], diff[i], prod[i], quot[i])
		}
	}

	n := F64x2{}
	a2 := n.Load([]float64{1.5, -2.5})
	b2 := n.Load([]float64{4, 8})
	sum2 := n.ToArray(n.Add(a2, b2))
	if sum2 != [2]float64{5.5, 5.5} {
		t.Errorf("f64x2: Add: got %v", sum2)
	}
	if got := n.ToArray(n.MulScalar(a2, 2)); got != [2]float64{3, -5} {
		t.Errorf("f64x2: MulScalar: got %v", got)
	}
	if got := n.ToArray(n.AddScalar(a2, 1)); got != [2]float64{2.5, -1.5} {
		t.Errorf("f64x2: AddScalar: got %v", got)
	}
}

func TestComparisons64(t *testing.T) {
	w := F64x4{}
	nan := math.NaN()
	a := w.Load([]float64{1, nan, 3, 4})
	b := w.Load([]float64{1, 2, 2, nan})

	eq := w.Equal(a, b)
	wantEq := [4]uint64{maskTrue64, 0, 0, 0}
	if eq.m != wantEq {
		t.Errorf("Equal: got %x, want %x", eq.m, wantEq)
	}

	lt := w.Less(b, a)
	wantLt := [4]uint64{0, 0, maskTrue64, 0}
	if lt.m != wantLt {
		t.Errorf("Less: got %x, want %x", lt.m, wantLt)
	}

	gt := w.Greater(a, b)
	wantGt := [4]uint64{0, 0, maskTrue64, 0}
	if gt.m != wantGt {
		t.Errorf("Greater: got %x, want %x", gt.m, wantGt)
	}

	s := F64x1{}
	if got := s.Equal(nan, nan); got != 0 {
		t.Errorf("f64x1: Equal(NaN,NaN): got %#x, want 0", got)
	}
	if got := s.Less(1, 2); got != maskTrue64 {
		t.Errorf("f64x1: Less(1,2): got %#x, want all ones", got)
	}
}

func TestIfThenElse64(t *testing.T) {
	w := F64x4{}
	a := w.Load([]float64{1, 2, 3, 4})
	b := w.Load([]float64{-1, -2, -3, -4})
	m := w.Greater(a, w.Set(2.5))

	got := w.ToArray(w.IfThenElse(m, a, b))
	want := [4]float64{-1, -2, 3, 4}
	if got != want {
		t.Errorf("IfThenElse: got %v, want %v", got, want)
	}

	s := F64x1{}
	if got := s.IfThenElse(maskTrue64, 1.5, -2.5); got != 1.5 {
		t.Errorf("f64x1: IfThenElse(true): got %v", got)
	}
	if got := s.IfThenElse(0, 1.5, -2.5); got != -2.5 {
		t.Errorf("f64x1: IfThenElse(false): got %v", got)
	}
}

func TestFloorMaxMin64(t *testing.T) {
	w := F64x4{}
	got := w.ToArray(w.Floor(w.Load([]float64{2.7, -2.7, 2, -0.5})))
	want := [4]float64{2, -3, 2, -1}
	if got != want {
		t.Errorf("Floor: got %v, want %v", got, want)
	}

	nan := math.NaN()
	s := F64x1{}
	if got := s.Max(nan, 5); got != 5 {
		t.Errorf("Max(NaN, 5): got %v, want 5", got)
	}
	if got := s.Max(5, nan); !math.IsNaN(got) {
		t.Errorf("Max(5, NaN): got %v, want NaN", got)
	}
	if got := s.Min(nan, 5); got != 5 {
		t.Errorf("Min(NaN, 5): got %v, want 5", got)
	}
	if got := s.Min(5, nan); !math.IsNaN(got) {
		t.Errorf("Min(5, NaN): got %v, want NaN", got)
	}

	maxed := w.ToArray(w.Max(w.Load([]float64{1, 5, -2, 0}), w.Load([]float64{2, 3, -4, 0})))
	if maxed != [4]float64{2, 5, -2, 0} {
		t.Errorf("f64x4: Max: got %v", maxed)
	}
	minned := w.ToArray(w.Min(w.Load([]float64{1, 5, -2, 0}), w.Load([]float64{2, 3, -4, 0})))
	if minned != [4]float64{1, 3, -4, 0} {
		t.Errorf("f64x4: Min: got %v", minned)
	}
}

func TestMulAdd64DoubleRounding(t *testing.T) {
	a := math.Float64frombits(0x3FF0_0000_0000_0001) // 1 + 2^-52
	b := math.Float64frombits(0x3FEF_FFFF_FFFF_FFFE) // 1 - 2^-52
	c := -1.0

	s := F64x1{}
	got := s.MulAdd(a, b, c)
	if got != 0 {
		t.Fatalf("MulAdd(%v, %v, %v): got %v, want 0", a, b, c, got)
	}

	fused := math.FMA(a, b, c)
	if fused == got {
		t.Errorf("expected double rounding to differ from fused reference, both %v", got)
	}
	if want := -math.Pow(2, -104); fused != want {
		t.Errorf("fused reference: got %v, want %v", fused, want)
	}

	w := F64x4{}
	if lane := w.ToArray(w.MulAdd(w.Set(a), w.Set(b), w.Set(c)))[0]; lane != got {
		t.Errorf("f64x4: MulAdd: got %v, want %v", lane, got)
	}
}

func TestMulAdd64MatchesMulThenAdd(t *testing.T) {
	w := F64x4{}
	a := w.Load([]float64{1.1, -2.2, 1e100, 0.5})
	b := w.Load([]float64{0.9, 8.25, 3e-50, 2})
	c := w.Load([]float64{0.1, -0.2, 0.3, -0.4})

	want := w.ToArray(w.Add(w.Mul(a, b), c))
	got := w.ToArray(w.MulAdd(a, b, c))
	for i := 0; i < 4; i++ {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConvertToInt64Truncates(t *testing.T) {
	// float64 tiers truncate toward zero, unlike the float32 tiers.
	cases := []struct {
		in   float64
		want int64
	}{
		{2.5, 2},
		{-2.5, -2},
		{2.7, 2},
		{-2.7, -2},
		{3.5, 3},
		{-0.99, 0},
		{4, 4},
	}

	w, n, s := F64x4{}, F64x2{}, F64x1{}
	for _, c := range cases {
		if got := s.ConvertToInt(c.in); got != c.want {
			t.Errorf("f64x1: ConvertToInt(%v): got %d, want %d", c.in, got, c.want)
		}
		for i, g := range w.ConvertToInt(w.Set(c.in)).Array() {
			if g != c.want {
				t.Errorf("f64x4: ConvertToInt(%v): lane %d: got %d, want %d", c.in, i, g, c.want)
			}
		}
		for i, g := range n.ConvertToInt(n.Set(c.in)).Array() {
			if g != c.want {
				t.Errorf("f64x2: ConvertToInt(%v): lane %d: got %d, want %d", c.in, i, g, c.want)
			}
		}
	}
}

func TestLoadStore64Bounds(t *testing.T) {
	n := F64x2{}

	src := []float64{1.5, -2.5, 99}
	v := n.Load(src)
	if got := n.ToArray(v); got != [2]float64{1.5, -2.5} {
		t.Errorf("Load: got %v", got)
	}

	dst := []float64{0, 0, -7}
	n.Store(v, dst)
	if dst[0] != 1.5 || dst[1] != -2.5 {
		t.Errorf("Store: got %v", dst[:2])
	}
	if dst[2] != -7 {
		t.Errorf("Store wrote past its span: %v", dst[2])
	}
}

func TestStore64ShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Store into a 3-element slice did not panic")
		}
	}()
	w := F64x4{}
	w.Store(w.Set(1), make([]float64, 3))
}
