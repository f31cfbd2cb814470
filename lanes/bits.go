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

// IEEE-754 sign-bit constants. Sign manipulation on every tier is defined in
// terms of these patterns rather than arithmetic, so -0, infinities and NaN
// payloads come through untouched.
const (
	// signMask32 is the binary32 sign bit (bit 31): the bit pattern of
	// float32(-0.0). XOR with it flips a value's sign.
	signMask32 uint32 = 0x8000_0000

	// absMask32 is every binary32 bit except the sign bit. AND with it
	// clears the sign.
	absMask32 uint32 = 0x7fff_ffff

	// signMask64 is the binary64 sign bit (bit 63): the bit pattern of -0.0.
	signMask64 uint64 = 0x8000_0000_0000_0000

	// absMask64 is every binary64 bit except the sign bit.
	absMask64 uint64 = 0x7fff_ffff_ffff_ffff
)

// Comparison results: one lane's full bit group, all ones or all zeros.
const (
	maskTrue32 uint32 = 0xffff_ffff
	maskTrue64 uint64 = 0xffff_ffff_ffff_ffff
)
