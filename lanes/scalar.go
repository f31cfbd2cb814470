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

import "math"

// This file holds the width-1 terminal tiers and the per-element helpers
// they are built from. The 256-bit and 128-bit tiers loop over the same
// helpers, which is what makes chunking transparent: a lane op and its
// scalar equivalent cannot drift apart because they are the same code.

// abs32 clears the sign bit, leaving magnitude bits (NaN payloads included)
// untouched.
func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) & absMask32)
}

// neg32 flips the sign bit. Unlike 0-x this maps +0 to -0.
func neg32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) ^ signMask32)
}

// selectBits32 picks mask bits from a and the rest from b.
func selectBits32(mask uint32, a, b float32) float32 {
	return math.Float32frombits(mask&math.Float32bits(a) | ^mask&math.Float32bits(b))
}

// copySign32 combines the magnitude of x with the sign bit of sign.
func copySign32(sign, x float32) float32 {
	return selectBits32(signMask32, sign, x)
}

func floor32(x float32) float32 {
	// Exact: float32 widens losslessly and every float32 floor result is
	// representable.
	return float32(math.Floor(float64(x)))
}

// mulAdd32 computes x*y + z with two roundings. The explicit conversion
// rounds the product to float32 before the add, which stops the compiler
// from emitting a fused FMADD on arm64 and keeps the result identical on
// every GOARCH.
func mulAdd32(x, y, z float32) float32 {
	return float32(x*y) + z
}

// max32 follows the VMAXPS rule a > b ? a : b, so the second operand comes
// through whenever either operand is NaN.
func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// min32 follows the VMINPS rule a < b ? a : b.
func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// toInt32 rounds to the nearest integer, ties to even, matching the CVTPS2DQ
// conversion the 32-bit lanes model. Values outside the int32 range are
// caller error.
func toInt32(x float32) int32 {
	return int32(math.RoundToEven(float64(x)))
}

// mask32 widens an ordered-comparison outcome to a full 32-bit lane group.
func mask32(ok bool) uint32 {
	if ok {
		return maskTrue32
	}
	return 0
}

func abs64(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) & absMask64)
}

func neg64(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) ^ signMask64)
}

func selectBits64(mask uint64, a, b float64) float64 {
	return math.Float64frombits(mask&math.Float64bits(a) | ^mask&math.Float64bits(b))
}

func copySign64(sign, x float64) float64 {
	return selectBits64(signMask64, sign, x)
}

func floor64(x float64) float64 {
	return math.Floor(x)
}

// mulAdd64 computes x*y + z with two roundings; the conversion blocks
// fusion just as in mulAdd32.
func mulAdd64(x, y, z float64) float64 {
	return float64(x*y) + z
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// toInt64 truncates toward zero. The 64-bit lanes model hardware without a
// packed double-to-quad conversion, where each element is stored and cast,
// so the mode deliberately differs from toInt32's rounding.
func toInt64(x float64) int64 {
	return int64(x)
}

func mask64(ok bool) uint64 {
	if ok {
		return maskTrue64
	}
	return 0
}

// F32x1 is the width-1 float32 tier: the terminal fallback of the float32
// chain. Its lane type is a bare float32, its mask a single uint32 group and
// load/apply/store degenerates to direct application. It declares no further
// fallback; a width-1 walk leaves no remainder.
type F32x1 struct{}

// Lanes returns 1.
func (F32x1) Lanes() int { return 1 }

// Set returns its argument; a width-1 broadcast is the identity.
func (F32x1) Set(v float32) float32 { return v }

// Load reads the first element of src. Panics when src is empty.
func (F32x1) Load(src []float32) float32 { return src[0] }

// Store writes v to the first element of dst. Panics when dst is empty.
func (F32x1) Store(v float32, dst []float32) { dst[0] = v }

func (F32x1) Add(a, b float32) float32 { return a + b }
func (F32x1) Sub(a, b float32) float32 { return a - b }
func (F32x1) Mul(a, b float32) float32 { return a * b }
func (F32x1) Div(a, b float32) float32 { return a / b }

func (F32x1) AddScalar(a, b float32) float32 { return a + b }
func (F32x1) MulScalar(a, b float32) float32 { return a * b }

func (F32x1) Abs(a float32) float32 { return abs32(a) }
func (F32x1) Neg(a float32) float32 { return neg32(a) }
func (F32x1) CopySign(sign, v float32) float32 { return copySign32(sign, v) }

func (F32x1) IfThenElse(mask uint32, a, b float32) float32 {
	return selectBits32(mask, a, b)
}

func (F32x1) Equal(a, b float32) uint32 { return mask32(a == b) }
func (F32x1) Less(a, b float32) uint32 { return mask32(a < b) }
func (F32x1) Greater(a, b float32) uint32 { return mask32(a > b) }

func (F32x1) Floor(a float32) float32 { return floor32(a) }
func (F32x1) MulAdd(a, b, c float32) float32 { return mulAdd32(a, b, c) }
func (F32x1) Max(a, b float32) float32 { return max32(a, b) }
func (F32x1) Min(a, b float32) float32 { return min32(a, b) }

func (F32x1) ConvertToInt(a float32) int32 { return toInt32(a) }

// ToArray wraps the single lane in an addressable array.
func (F32x1) ToArray(a float32) [1]float32 { return [1]float32{a} }

// ApplyLane transforms the first element of buf in place.
func (F32x1) ApplyLane(f func(float32) float32, buf []float32) {
	buf[0] = f(buf[0])
}

// ApplyElementwise transforms every element of buf in place. At width 1 the
// remainder is always empty, so fRest is never invoked and may be nil.
func (b F32x1) ApplyElementwise(f func(float32) float32, fRest func([]float32), buf []float32) {
	apply(b, f, fRest, buf)
}

// F64x1 is the width-1 float64 tier, terminal fallback of the float64 chain.
type F64x1 struct{}

// Lanes returns 1.
func (F64x1) Lanes() int { return 1 }

// Set returns its argument.
func (F64x1) Set(v float64) float64 { return v }

// Load reads the first element of src. Panics when src is empty.
func (F64x1) Load(src []float64) float64 { return src[0] }

// Store writes v to the first element of dst. Panics when dst is empty.
func (F64x1) Store(v float64, dst []float64) { dst[0] = v }

func (F64x1) Add(a, b float64) float64 { return a + b }
func (F64x1) Sub(a, b float64) float64 { return a - b }
func (F64x1) Mul(a, b float64) float64 { return a * b }
func (F64x1) Div(a, b float64) float64 { return a / b }

func (F64x1) AddScalar(a, b float64) float64 { return a + b }
func (F64x1) MulScalar(a, b float64) float64 { return a * b }

func (F64x1) Abs(a float64) float64 { return abs64(a) }
func (F64x1) Neg(a float64) float64 { return neg64(a) }
func (F64x1) CopySign(sign, v float64) float64 { return copySign64(sign, v) }

func (F64x1) IfThenElse(mask uint64, a, b float64) float64 {
	return selectBits64(mask, a, b)
}

func (F64x1) Equal(a, b float64) uint64 { return mask64(a == b) }
func (F64x1) Less(a, b float64) uint64 { return mask64(a < b) }
func (F64x1) Greater(a, b float64) uint64 { return mask64(a > b) }

func (F64x1) Floor(a float64) float64 { return floor64(a) }
func (F64x1) MulAdd(a, b, c float64) float64 { return mulAdd64(a, b, c) }
func (F64x1) Max(a, b float64) float64 { return max64(a, b) }
func (F64x1) Min(a, b float64) float64 { return min64(a, b) }

func (F64x1) ConvertToInt(a float64) int64 { return toInt64(a) }

// ToArray wraps the single lane in an addressable array.
func (F64x1) ToArray(a float64) [1]float64 { return [1]float64{a} }

// ApplyLane transforms the first element of buf in place.
func (F64x1) ApplyLane(f func(float64) float64, buf []float64) {
	buf[0] = f(buf[0])
}

// ApplyElementwise transforms every element of buf in place; fRest is never
// invoked at width 1 and may be nil.
func (b F64x1) ApplyElementwise(f func(float64) float64, fRest func([]float64), buf []float64) {
	apply(b, f, fRest, buf)
}
