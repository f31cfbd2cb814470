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

// Package lanes provides a hardware-abstracted elementwise vector engine:
// a uniform operation contract over width tiers (256-bit, 128-bit and a
// width-1 scalar terminal), with a generic driver that walks a buffer of
// arbitrary length in full-width chunks and hands the trailing remainder to
// the next-narrower tier.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/lanes"
//
//	// Negate every element of buf in place, whatever len(buf) is.
//	var (
//		w = lanes.F32x8{}
//		n = lanes.F32x4{}
//		s = lanes.F32x1{}
//	)
//	lanes.Apply32(buf, w.Neg, n.Neg, s.Neg)
//
// Every operation is a pure value transformation over IEEE-754 scalars.
// A tier's results are bit-identical to applying the width-1 operation to
// each element independently, so chunking is invisible to callers.
package lanes

// Floats is a constraint for the scalar element types the engine supports.
type Floats interface {
	~float32 | ~float64
}

// Float32x8 is one 256-bit lane group of eight float32 values, operated on
// as a unit by the F32x8 tier.
//
// Lane values should not be created directly; use Set or Load on the tier
// that owns them.
type Float32x8 struct{ v [8]float32 }

// Float32x4 is one 128-bit lane group of four float32 values (F32x4 tier).
type Float32x4 struct{ v [4]float32 }

// Float64x4 is one 256-bit lane group of four float64 values (F64x4 tier).
type Float64x4 struct{ v [4]float64 }

// Float64x2 is one 128-bit lane group of two float64 values (F64x2 tier).
type Float64x2 struct{ v [2]float64 }

// Mask32x8 is the result of an F32x8 comparison. Each element is the full
// 32-bit group for one lane and is either all ones (the lane compared true)
// or all zeros. IfThenElse relies on that invariant; masks obtained by any
// means other than a comparison or a documented sign-bit constant give
// undefined selection results.
//
// Mask instances should not be created directly; use Equal, Less or Greater.
type Mask32x8 struct{ m [8]uint32 }

// Mask32x4 is the result of an F32x4 comparison. See Mask32x8.
type Mask32x4 struct{ m [4]uint32 }

// Mask64x4 is the result of an F64x4 comparison. See Mask32x8.
type Mask64x4 struct{ m [4]uint64 }

// Mask64x2 is the result of an F64x2 comparison. See Mask32x8.
type Mask64x2 struct{ m [2]uint64 }

// Int32x8 holds the integer-typed counterpart of a Float32x8, produced by
// ConvertToInt. It has the same bit width as the float lane it mirrors.
type Int32x8 struct{ v [8]int32 }

// Array returns the lane values as an addressable array.
func (v Int32x8) Array() [8]int32 { return v.v }

// Int32x4 holds the integer counterpart of a Float32x4.
type Int32x4 struct{ v [4]int32 }

// Array returns the lane values as an addressable array.
func (v Int32x4) Array() [4]int32 { return v.v }

// Int64x4 holds the integer counterpart of a Float64x4.
type Int64x4 struct{ v [4]int64 }

// Array returns the lane values as an addressable array.
func (v Int64x4) Array() [4]int64 { return v.v }

// Int64x2 holds the integer counterpart of a Float64x2.
type Int64x2 struct{ v [2]int64 }

// Array returns the lane values as an addressable array.
func (v Int64x2) Array() [2]int64 { return v.v }
