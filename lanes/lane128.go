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

// This file holds the 128-bit tiers: four float32 lanes or two float64
// lanes per operation. Each tier declares the width-1 tier as its remainder
// fallback, terminating the chain.

// F32x4 is the 128-bit float32 tier.
type F32x4 struct{}

// Lanes returns 4.
func (F32x4) Lanes() int { return 4 }

// Fallback returns the width-1 tier that handles remainders of this one.
func (F32x4) Fallback() F32x1 { return F32x1{} }

// Set broadcasts v to every lane.
func (F32x4) Set(v float32) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = v
	}
	return r
}

// Load reads four contiguous scalars from src, unaligned-safe.
// Panics when len(src) < 4.
func (F32x4) Load(src []float32) Float32x4 {
	var r Float32x4
	copy(r.v[:], src[:4])
	return r
}

// Store writes four contiguous scalars to dst, unaligned-safe.
// Panics when len(dst) < 4.
func (F32x4) Store(v Float32x4, dst []float32) {
	copy(dst[:4], v.v[:])
}

func (F32x4) Add(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

func (F32x4) Sub(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

func (F32x4) Mul(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

func (F32x4) Div(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// AddScalar adds b to every lane; equivalent to Add(a, Set(b)).
func (t F32x4) AddScalar(a Float32x4, b float32) Float32x4 {
	return t.Add(a, t.Set(b))
}

// MulScalar multiplies every lane by b; equivalent to Mul(a, Set(b)).
func (t F32x4) MulScalar(a Float32x4, b float32) Float32x4 {
	return t.Mul(a, t.Set(b))
}

// Abs clears the sign bit of every lane.
func (F32x4) Abs(a Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = abs32(a.v[i])
	}
	return r
}

// Neg flips the sign bit of every lane.
func (F32x4) Neg(a Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = neg32(a.v[i])
	}
	return r
}

// CopySign combines the magnitude of v with the sign bit of sign, per lane.
func (F32x4) CopySign(sign, v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = copySign32(sign.v[i], v.v[i])
	}
	return r
}

// IfThenElse selects bits: (mask & a) | (^mask & b). Elementwise semantics
// hold only for lane-uniform masks.
func (F32x4) IfThenElse(mask Mask32x4, a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = selectBits32(mask.m[i], a.v[i], b.v[i])
	}
	return r
}

// Equal compares ordered: lanes with a NaN operand are false.
func (F32x4) Equal(a, b Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range m.m {
		m.m[i] = mask32(a.v[i] == b.v[i])
	}
	return m
}

// Less compares ordered, per lane.
func (F32x4) Less(a, b Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range m.m {
		m.m[i] = mask32(a.v[i] < b.v[i])
	}
	return m
}

// Greater compares ordered, per lane.
func (F32x4) Greater(a, b Float32x4) Mask32x4 {
	var m Mask32x4
	for i := range m.m {
		m.m[i] = mask32(a.v[i] > b.v[i])
	}
	return m
}

// Floor rounds every lane toward negative infinity.
func (F32x4) Floor(a Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = floor32(a.v[i])
	}
	return r
}

// MulAdd computes a*b + c with two roundings; see F32x8.MulAdd.
func (F32x4) MulAdd(a, b, c Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = mulAdd32(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// Max returns per-lane maxima; the second operand wins when either lane is
// NaN.
func (F32x4) Max(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = max32(a.v[i], b.v[i])
	}
	return r
}

// Min returns per-lane minima; the second operand wins when either lane is
// NaN.
func (F32x4) Min(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.v {
		r.v[i] = min32(a.v[i], b.v[i])
	}
	return r
}

// ConvertToInt converts every lane to int32, rounding to nearest even.
func (F32x4) ConvertToInt(a Float32x4) Int32x4 {
	var r Int32x4
	for i := range r.v {
		r.v[i] = toInt32(a.v[i])
	}
	return r
}

// ToArray materializes the lane group into an addressable array, in order.
func (F32x4) ToArray(a Float32x4) [4]float32 { return a.v }

// ApplyLane loads the first four scalars of buf, applies f and stores the
// result back over the same span.
func (t F32x4) ApplyLane(f func(Float32x4) Float32x4, buf []float32) {
	t.Store(f(t.Load(buf)), buf)
}

// ApplyElementwise walks buf in four-wide chunks, applying f to each, and
// hands the trailing remainder (fewer than four elements) to fRest.
func (t F32x4) ApplyElementwise(f func(Float32x4) Float32x4, fRest func([]float32), buf []float32) {
	apply(t, f, fRest, buf)
}

// F64x2 is the 128-bit float64 tier.
type F64x2 struct{}

// Lanes returns 2.
func (F64x2) Lanes() int { return 2 }

// Fallback returns the width-1 tier that handles remainders of this one.
func (F64x2) Fallback() F64x1 { return F64x1{} }

// Set broadcasts v to every lane.
func (F64x2) Set(v float64) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = v
	}
	return r
}

// Load reads two contiguous scalars from src, unaligned-safe.
// Panics when len(src) < 2.
func (F64x2) Load(src []float64) Float64x2 {
	var r Float64x2
	copy(r.v[:], src[:2])
	return r
}

// Store writes two contiguous scalars to dst, unaligned-safe.
// Panics when len(dst) < 2.
func (F64x2) Store(v Float64x2, dst []float64) {
	copy(dst[:2], v.v[:])
}

func (F64x2) Add(a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

func (F64x2) Sub(a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

func (F64x2) Mul(a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

func (F64x2) Div(a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

// AddScalar adds b to every lane; equivalent to Add(a, Set(b)).
func (t F64x2) AddScalar(a Float64x2, b float64) Float64x2 {
	return t.Add(a, t.Set(b))
}

// MulScalar multiplies every lane by b; equivalent to Mul(a, Set(b)).
func (t F64x2) MulScalar(a Float64x2, b float64) Float64x2 {
	return t.Mul(a, t.Set(b))
}

// Abs clears the sign bit of every lane.
func (F64x2) Abs(a Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = abs64(a.v[i])
	}
	return r
}

// Neg flips the sign bit of every lane.
func (F64x2) Neg(a Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = neg64(a.v[i])
	}
	return r
}

// CopySign combines the magnitude of v with the sign bit of sign, per lane.
func (F64x2) CopySign(sign, v Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = copySign64(sign.v[i], v.v[i])
	}
	return r
}

// IfThenElse selects bits: (mask & a) | (^mask & b). Elementwise semantics
// hold only for lane-uniform masks.
func (F64x2) IfThenElse(mask Mask64x2, a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = selectBits64(mask.m[i], a.v[i], b.v[i])
	}
	return r
}

// Equal compares ordered: lanes with a NaN operand are false.
func (F64x2) Equal(a, b Float64x2) Mask64x2 {
	var m Mask64x2
	for i := range m.m {
		m.m[i] = mask64(a.v[i] == b.v[i])
	}
	return m
}

// Less compares ordered, per lane.
func (F64x2) Less(a, b Float64x2) Mask64x2 {
	var m Mask64x2
	for i := range m.m {
		m.m[i] = mask64(a.v[i] < b.v[i])
	}
	return m
}

// Greater compares ordered, per lane.
func (F64x2) Greater(a, b Float64x2) Mask64x2 {
	var m Mask64x2
	for i := range m.m {
		m.m[i] = mask64(a.v[i] > b.v[i])
	}
	return m
}

// Floor rounds every lane toward negative infinity.
func (F64x2) Floor(a Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = floor64(a.v[i])
	}
	return r
}

// MulAdd computes a*b + c with two roundings; see F32x8.MulAdd.
func (F64x2) MulAdd(a, b, c Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = mulAdd64(a.v[i], b.v[i], c.v[i])
	}
	return r
}

// Max returns per-lane maxima; the second operand wins when either lane is
// NaN.
func (F64x2) Max(a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = max64(a.v[i], b.v[i])
	}
	return r
}

// Min returns per-lane minima; the second operand wins when either lane is
// NaN.
func (F64x2) Min(a, b Float64x2) Float64x2 {
	var r Float64x2
	for i := range r.v {
		r.v[i] = min64(a.v[i], b.v[i])
	}
	return r
}

// ConvertToInt converts every lane to int64, truncating toward zero; see
// toInt64.
func (F64x2) ConvertToInt(a Float64x2) Int64x2 {
	var r Int64x2
	for i := range r.v {
		r.v[i] = toInt64(a.v[i])
	}
	return r
}

// ToArray materializes the lane group into an addressable array, in order.
func (F64x2) ToArray(a Float64x2) [2]float64 { return a.v }

// ApplyLane loads the first two scalars of buf, applies f and stores the
// result back over the same span.
func (t F64x2) ApplyLane(f func(Float64x2) Float64x2, buf []float64) {
	t.Store(f(t.Load(buf)), buf)
}

// ApplyElementwise walks buf in two-wide chunks, applying f to each, and
// hands the trailing remainder (a single element) to fRest.
func (t F64x2) ApplyElementwise(f func(Float64x2) Float64x2, fRest func([]float64), buf []float64) {
	apply(t, f, fRest, buf)
}
