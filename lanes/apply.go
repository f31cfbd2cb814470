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

// laneApplier is the slice of the Vector contract the driver needs: the
// lane width and the load-apply-store primitive.
type laneApplier[E Floats, V any] interface {
	Lanes() int
	ApplyLane(f func(V) V, buf []E)
}

// apply is the one chunking algorithm behind every tier's ApplyElementwise.
// It consumes full Lanes()-wide spans of buf left to right, replacing each
// in place via ApplyLane, then hands the trailing remainder to fRest. When
// len(buf) < Lanes() the whole buffer is remainder and no full-width work
// happens. It never issues a load or store wider than the elements that
// remain, and len(buf) == 0 is a no-op.
//
// Each chunk is passed with its capacity clipped to the chunk, so a
// misbehaving kernel cannot reach the remainder span.
func apply[E Floats, V any](t laneApplier[E, V], f func(V) V, fRest func([]E), buf []E) {
	w := t.Lanes()
	for len(buf) >= w {
		t.ApplyLane(f, buf[:w:w])
		buf = buf[w:]
	}
	if len(buf) > 0 {
		fRest(buf)
	}
}

// Apply32 transforms every element of buf in place with one elementwise
// operation expressed at each tier of the float32 chain: f8 over full
// 256-bit lane groups, f4 over 128-bit lane groups and f1 per element. The
// three functions must implement the same scalar operation; when they do,
// the result is bit-identical to applying f1 to every element on its own,
// for any len(buf) including 0.
//
// The entry tier honors the detected dispatch level, so hosts without
// 256-bit registers start at the 128-bit tier and LANES_NO_SIMD forces the
// width-1 walk.
func Apply32(buf []float32, f8 func(Float32x8) Float32x8, f4 func(Float32x4) Float32x4, f1 func(float32) float32) {
	wide := F32x8{}
	narrow := wide.Fallback()
	scalar := narrow.Fallback()

	scalarRest := func(rest []float32) {
		scalar.ApplyElementwise(f1, nil, rest)
	}
	narrowRest := func(rest []float32) {
		narrow.ApplyElementwise(f4, scalarRest, rest)
	}

	switch CurrentLevel() {
	case Level256:
		wide.ApplyElementwise(f8, narrowRest, buf)
	case Level128:
		narrowRest(buf)
	default:
		scalarRest(buf)
	}
}

// Apply64 is Apply32 for the float64 chain: f4 over 256-bit lane groups,
// f2 over 128-bit lane groups and f1 per element.
func Apply64(buf []float64, f4 func(Float64x4) Float64x4, f2 func(Float64x2) Float64x2, f1 func(float64) float64) {
	wide := F64x4{}
	narrow := wide.Fallback()
	scalar := narrow.Fallback()

	scalarRest := func(rest []float64) {
		scalar.ApplyElementwise(f1, nil, rest)
	}
	narrowRest := func(rest []float64) {
		narrow.ApplyElementwise(f2, scalarRest, rest)
	}

	switch CurrentLevel() {
	case Level256:
		wide.ApplyElementwise(f4, narrowRest, buf)
	case Level128:
		narrowRest(buf)
	default:
		scalarRest(buf)
	}
}
