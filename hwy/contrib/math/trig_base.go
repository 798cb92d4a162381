// Copyright 2025 go-highway Authors
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

package math

import (
	stdmath "math"

	"github.com/go-highway/astro/hwy"
)

// fma32 computes a*b + c with one rounding to float32.
func fma32(a, b, c float32) float32 {
	return float32(stdmath.FMA(float64(a), float64(b), float64(c)))
}

// sinPoly evaluates the odd polynomial on r in [-pi/2, pi/2].
func sinPoly(r float32) float32 {
	r2 := r * r
	y := fma32(trigA9, r2, trigA7)
	y = fma32(y, r2, trigA5)
	y = fma32(y, r2, trigA3)
	return fma32(y*r2, r, r)
}

// reducePi subtracts n*pi from r using the three-term split of pi.
func reducePi(r, n float32) float32 {
	r = fma32(-trigPi1, n, r)
	r = fma32(-trigPi2, n, r)
	return fma32(-trigPi3, n, r)
}

// Sin32 computes sin(x) for a single float32.
//
// Special cases:
//   - Sin32(±0) = ±0
//   - Sin32(±Inf) = NaN
//   - Sin32(NaN) = NaN
func Sin32(x float32) float32 {
	r := float32(stdmath.Abs(float64(x)))
	if !(r < trigRangeVal) {
		return float32(stdmath.Sin(float64(x)))
	}
	sign := stdmath.Float32bits(x) & trigSignMask

	// n = rint(|x|/pi)
	n := fma32(trigInvPi, r, trigShift)
	odd := stdmath.Float32bits(n) << 31
	n -= trigShift

	y := sinPoly(reducePi(r, n))
	return stdmath.Float32frombits(stdmath.Float32bits(y) ^ sign ^ odd)
}

// Cos32 computes cos(x) for a single float32.
//
// Special cases:
//   - Cos32(±Inf) = NaN
//   - Cos32(NaN) = NaN
func Cos32(x float32) float32 {
	r := float32(stdmath.Abs(float64(x)))
	if !(r < trigRangeVal) {
		return float32(stdmath.Cos(float64(x)))
	}

	// n = rint((|x|+pi/2)/pi) - 0.5
	n := fma32(trigInvPi, r+trigHalfPi, trigShift)
	odd := stdmath.Float32bits(n) << 31
	n -= trigShift
	n -= 0.5

	y := sinPoly(reducePi(r, n))
	return stdmath.Float32frombits(stdmath.Float32bits(y) ^ odd)
}

// BaseSin computes sin(x) for each lane, one lane at a time.
func BaseSin(v hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Make(Sin32(v.Lane(0)), Sin32(v.Lane(1)))
}

// BaseCos computes cos(x) for each lane, one lane at a time.
func BaseCos(v hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Make(Cos32(v.Lane(0)), Cos32(v.Lane(1)))
}
