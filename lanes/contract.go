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

// Vector is the operation contract every width tier satisfies.
//
// E is the scalar element type, V the lane value carrying Lanes() elements,
// M the mask type produced by comparisons, I the integer-typed lane and A
// the addressable scalar array mirroring one lane.
//
// All operations are pure value transformations and lane-independent. There
// is no recoverable-error path: a tier assumes the caller selected it
// knowingly, and the only runtime enforcement is the bounds panic from
// Load, Store and ApplyLane when handed fewer than Lanes() elements.
type Vector[E Floats, V, M, I, A any] interface {
	// Lanes is the number of scalar elements packed into one lane value.
	// It is constant per tier and strictly decreases along the fallback
	// chain down to 1.
	Lanes() int

	// Set broadcasts one scalar to every lane.
	Set(E) V
	// Load reads exactly Lanes() contiguous scalars from src,
	// unaligned-safe. Panics when src is shorter.
	Load(src []E) V
	// Store writes exactly Lanes() contiguous scalars to dst,
	// unaligned-safe. Panics when dst is shorter.
	Store(v V, dst []E)

	// Elementwise IEEE-754 arithmetic.
	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V
	Div(a, b V) V
	// AddScalar and MulScalar are equivalent to op(a, Set(b)).
	AddScalar(a V, b E) V
	MulScalar(a V, b E) V

	// Abs clears the sign bit of every lane; magnitude bits, NaN payloads
	// included, are untouched.
	Abs(V) V
	// Neg flips the sign bit of every lane; Neg(Neg(x)) is bit-identical
	// to x.
	Neg(V) V
	// CopySign returns lanes with the magnitude of v and the sign bit of
	// sign.
	CopySign(sign, v V) V
	// IfThenElse selects per bit: (mask & a) | (^mask & b). The result has
	// elementwise meaning only when mask is lane-uniform, which every mask
	// produced by Equal, Less or Greater is.
	IfThenElse(mask M, a, b V) V

	// Ordered comparisons: a lane with a NaN operand compares false.
	Equal(a, b V) M
	Less(a, b V) M
	Greater(a, b V) M

	// Floor rounds every lane toward negative infinity.
	Floor(V) V
	// MulAdd computes a*b + c. No tier has a fused instruction, so the
	// product is rounded before the add; the result can differ in the last
	// bit from a single-rounding FMA.
	MulAdd(a, b, c V) V
	// Max and Min follow the AVX rule (a OP b ? a : b): the second operand
	// comes through whenever either lane is NaN.
	Max(a, b V) V
	Min(a, b V) V

	// ConvertToInt converts each lane to the same-width integer. The
	// rounding mode is fixed per element width, not across widths: float32
	// tiers round to nearest even, float64 tiers truncate toward zero.
	ConvertToInt(V) I
	// ToArray materializes a lane into an addressable scalar array,
	// preserving lane order.
	ToArray(V) A

	// ApplyLane loads the first Lanes() scalars of buf, applies f and
	// stores the result back over the same span.
	ApplyLane(f func(V) V, buf []E)
	// ApplyElementwise walks buf in full Lanes()-wide chunks left to right
	// applying f in place, then hands the trailing remainder to fRest.
	// fRest receives between 1 and Lanes()-1 elements and is typically the
	// fallback tier's own ApplyElementwise.
	ApplyElementwise(f func(V) V, fRest func([]E), buf []E)
}

// Every tier implements the contract.
var (
	_ Vector[float32, Float32x8, Mask32x8, Int32x8, [8]float32] = F32x8{}
	_ Vector[float32, Float32x4, Mask32x4, Int32x4, [4]float32] = F32x4{}
	_ Vector[float32, float32, uint32, int32, [1]float32]       = F32x1{}
	_ Vector[float64, Float64x4, Mask64x4, Int64x4, [4]float64] = F64x4{}
	_ Vector[float64, Float64x2, Mask64x2, Int64x2, [2]float64] = F64x2{}
	_ Vector[float64, float64, uint64, int64, [1]float64]       = F64x1{}
)
