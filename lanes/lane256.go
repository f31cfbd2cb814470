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

// This file holds the 256-bit tiers: eight float32 lanes or four float64
// lanes per operation. Each tier declares the matching 128-bit tier as its
// remainder fallback.

// F32x8 is the 256-bit float32 tier.
type F32x8 struct{}

// Lanes returns 8.
func (F32x8) Lanes() int { return 8 }

// Fallback returns the 128-bit tier that handles remainders of this one.
func (F32x8) Fallback() F32x4 { return F32x4{} }

// Set broadcasts v to every lane.
func (F32x8) Set(v float32) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = v
	}
	return r
}

// Load reads eight contiguous scalars from src, unaligned-safe.
// Panics when len(src) < 8.
func (F32x8) Load(src []float32) Float32x8 {
	var r Float32x8
	copy(r.v[:], src[:8])
	return r
}

// Store writes eight contiguous scalars to dst, unaligned-safe.
// Panics when len(dst) < 8.
func (F32x8) Store(v Float32x8, dst []float32) {
	copy(dst[:8], v.v[:])
}

func (F32x8) Add(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

func (F32x8) Sub(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

func (F32x8) Mul(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

func (F32x8) Div(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// AddScalar adds b to every lane; equivalent to Add(a, Set(b)).
func (t F32x8) AddScalar(a Float32x8, b float32) Float32x8 {
	return t.Add(a, t.Set(b))
}

// MulScalar multiplies every lane by b; equivalent to Mul(a, Set(b)).
func (t F32x8) MulScalar(a Float32x8, b float32) Float32x8 {
	return t.Mul(a, t.Set(b))
}

// Abs clears the sign bit of every lane.
func (F32x8) Abs(a Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = abs32(a.v[i])
	}
	return r
}

// Neg flips the sign bit of every lane.
func (F32x8) Neg(a Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = neg32(a.v[i])
	}
	return r
}

// CopySign combines the magnitude of v with the sign bit of sign, per lane.
func (F32x8) CopySign(sign, v Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = copySign32(sign.v[i], v.v[i])
	}
	return r
}

// IfThenElse selects bits: (mask & a) | (^mask & b). Elementwise semantics
// hold only for lane-uniform masks.
func (F32x8) IfThenElse(mask Mask32x8, a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = selectBits32(mask.m[i], a.v[i], b.v[i])
	}
	return r
}

// Equal compares ordered: lanes with a NaN operand are false.
func (F32x8) Equal(a, b Float32x8) Mask32x8 {
	var m Mask32x8
	for i := range m.m {
		m.m[i] = mask32(a.v[i] == b.v[i])
	}
	return m
}

// Less compares ordered, per lane.
func (F32x8) Less(a, b Float32x8) Mask32x8 {
	var m Mask32x8
	for i := range m.m {
		m.m[i] = mask32(a.v[i] < b.v[i])
	}
	return m
}

// Greater compares ordered, per lane.
func (F32x8) Greater(a, b Float32x8) Mask32x8 {
	var m Mask32x8
	for i := range m.m {
		m.m[i] = mask32(a.v[i] > b.v[i])
	}
	return m
}

// Floor rounds every lane toward negative infinity.
func (F32x8) Floor(a Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = floor32(a.v[i])
	}
	return r
}

// MulAdd computes a*b + c with two roundings. No tier fuses, so this can
// differ in the last bit from a single-rounding FMA.
func (F32x8) MulAdd(a, b, c Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = mulAdd32(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// Max returns per-lane maxima; the second operand wins when either lane is
// NaN.
func (F32x8) Max(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = max32(a.v[i], b.v[i])
	}
	return r
}

// Min returns per-lane minima; the second operand wins when either lane is
// NaN.
func (F32x8) Min(a, b Float32x8) Float32x8 {
	var r Float32x8
	for i := range r.v {
		r.v[i] = min32(a.v[i], b.v[i])
	}
	return r
}

// ConvertToInt converts every lane to int32, rounding to nearest even.
func (F32x8) ConvertToInt(a Float32x8) Int32x8 {
	var r Int32x8
	for i := range r.v {
		r.v[i] = toInt32(a.v[i])
	}
	return r
}

// ToArray materializes the lane group into an addressable array, in order.
func (F32x8) ToArray(a Float32x8) [8]float32 { return a.v }

// ApplyLane loads the first eight scalars of buf, applies f and stores the
// result back over the same span.
func (t F32x8) ApplyLane(f func(Float32x8) Float32x8, buf []float32) {
	t.Store(f(t.Load(buf)), buf)
}

// ApplyElementwise walks buf in eight-wide chunks, applying f to each, and
// hands the trailing remainder (fewer than eight elements) to fRest.
func (t F32x8) ApplyElementwise(f func(Float32x8) Float32x8, fRest func([]float32), buf []float32) {
	apply(t, f, fRest, buf)
}

// F64x4 is the 256-bit float64 tier.
type F64x4 struct{}

// Lanes returns 4.
func (F64x4) Lanes() int { return 4 }

// Fallback returns the 128-bit tier that handles remainders of this one.
func (F64x4) Fallback() F64x2 { return F64x2{} }

// Set broadcasts v to every lane.
func (F64x4) Set(v float64) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = v
	}
	return r
}

// Load reads four contiguous scalars from src, unaligned-safe.
// Panics when len(src) < 4.
func (F64x4) Load(src []float64) Float64x4 {
	var r Float64x4
	copy(r.v[:], src[:4])
	return r
}

// Store writes four contiguous scalars to dst, unaligned-safe.
// Panics when len(dst) < 4.
func (F64x4) Store(v Float64x4, dst []float64) {
	copy(dst[:4], v.v[:])
}

func (F64x4) Add(a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

func (F64x4) Sub(a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

func (F64x4) Mul(a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

func (F64x4) Div(a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// AddScalar adds b to every lane; equivalent to Add(a, Set(b)).
func (t F64x4) AddScalar(a Float64x4, b float64) Float64x4 {
	return t.Add(a, t.Set(b))
}

// MulScalar multiplies every lane by b; equivalent to Mul(a, Set(b)).
func (t F64x4) MulScalar(a Float64x4, b float64) Float64x4 {
	return t.Mul(a, t.Set(b))
}

// Abs clears the sign bit of every lane.
func (F64x4) Abs(a Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = abs64(a.v[i])
	}
	return r
}

// Neg flips the sign bit of every lane.
func (F64x4) Neg(a Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = neg64(a.v[i])
	}
	return r
}

// CopySign combines the magnitude of v with the sign bit of sign, per lane.
func (F64x4) CopySign(sign, v Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = copySign64(sign.v[i], v.v[i])
	}
	return r
}

// IfThenElse selects bits: (mask & a) | (^mask & b). Elementwise semantics
// hold only for lane-uniform masks.
func (F64x4) IfThenElse(mask Mask64x4, a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = selectBits64(mask.m[i], a.v[i], b.v[i])
	}
	return r
}

// Equal compares ordered: lanes with a NaN operand are false.
func (F64x4) Equal(a, b Float64x4) Mask64x4 {
	var m Mask64x4
	for i := range m.m {
		m.m[i] = mask64(a.v[i] == b.v[i])
	}
	return m
}

// Less compares ordered, per lane.
func (F64x4) Less(a, b Float64x4) Mask64x4 {
	var m Mask64x4
	for i := range m.m {
		m.m[i] = mask64(a.v[i] < b.v[i])
	}
	return m
}

// Greater compares ordered, per lane.
func (F64x4) Greater(a, b Float64x4) Mask64x4 {
	var m Mask64x4
	for i := range m.m {
		m.m[i] = mask64(a.v[i] > b.v[i])
	}
	return m
}

// Floor rounds every lane toward negative infinity.
func (F64x4) Floor(a Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = floor64(a.v[i])
	}
	return r
}

// MulAdd computes a*b + c with two roundings; see F32x8.MulAdd.
func (F64x4) MulAdd(a, b, c Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = mulAdd64(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// Max returns per-lane maxima; the second operand wins when either lane is
// NaN.
func (F64x4) Max(a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = max64(a.v[i], b.v[i])
	}
	return r
}

// Min returns per-lane minima; the second operand wins when either lane is
// NaN.
func (F64x4) Min(a, b Float64x4) Float64x4 {
	var r Float64x4
	for i := range r.v {
		r.v[i] = min64(a.v[i], b.v[i])
	}
	return r
}

// ConvertToInt converts every lane to int64, truncating toward zero. This
// mode differs from the float32 tiers' round-to-nearest-even; see toInt64.
func (F64x4) ConvertToInt(a Float64x4) Int64x4 {
	var r Int64x4
	for i := range r.v {
		r.v[i] = toInt64(a.v[i])
	}
	return r
}

// ToArray materializes the lane group into an addressable array, in order.
func (F64x4) ToArray(a Float64x4) [4]float64 { return a.v }

// ApplyLane loads the first four scalars of buf, applies f and stores the
// result back over the same span.
func (t F64x4) ApplyLane(f func(Float64x4) Float64x4, buf []float64) {
	t.Store(f(t.Load(buf)), buf)
}

// ApplyElementwise walks buf in four-wide chunks, applying f to each, and
// hands the trailing remainder (fewer than four elements) to fRest.
func (t F64x4) ApplyElementwise(f func(Float64x4) Float64x4, fRest func([]float64), buf []float64) {
	apply(t, f, fRest, buf)
}
