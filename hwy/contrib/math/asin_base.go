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

// asinClass is the argument class that selects an asin code path.
type asinClass uint8

const (
	asinClassOne    asinClass = iota // |x| == 1
	asinClassOver                    // |x| > 1 or NaN
	asinClassLinear                  // 2^-126 <= |x| < 2^-12
	asinClassSmall                   // |x| < 0.5, otherwise
	asinClassLarge                   // 0.5 <= |x| < 1
)

func classifyAsin(x float32) asinClass {
	a := float32(stdmath.Abs(float64(x)))
	switch {
	case a == 1:
		return asinClassOne
	case !(a < 1):
		return asinClassOver
	case a < asinHalf:
		if a >= asinMinNormal && a < asinLinear {
			return asinClassLinear
		}
		return asinClassSmall
	default:
		return asinClassLarge
	}
}

// asinR evaluates R(z) = z*(pS0 + z*(pS1 + z*pS2)) / (1 + z*qS1).
func asinR(z float32) float32 {
	p := fma32(z, asinPS2, asinPS1)
	p = fma32(z, p, asinPS0)
	p *= z
	q := fma32(z, asinQS1, 1)
	return p / q
}

// Asin32 computes asin(x) for a single float32.
//
// Special cases:
//   - Asin32(±1) = ±pi/2
//   - Asin32(x) = NaN for |x| > 1
//   - Asin32(NaN) = NaN
func Asin32(x float32) float32 {
	switch classifyAsin(x) {
	case asinClassOne:
		return fma32(x, asinPio2, asinTiny)
	case asinClassOver:
		return float32(stdmath.Asin(float64(x)))
	case asinClassLinear:
		return x
	case asinClassSmall:
		return fma32(x, asinR(x*x), x)
	}

	// asin(x) = pi/2 - 2*asin(sqrt((1-|x|)/2))
	z := (1 - float32(stdmath.Abs(float64(x)))) * 0.5
	s := float32(stdmath.Sqrt(float64(z)))
	y := asinPio2 - 2*fma32(s, asinR(z), s)
	if stdmath.Signbit(float64(x)) {
		return -y
	}
	return y
}

// Acos32 computes acos(x) for a single float32 with the standard library.
func Acos32(x float32) float32 {
	return float32(stdmath.Acos(float64(x)))
}

// BaseAsin computes asin(x) for each lane, one lane at a time.
func BaseAsin(v hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Make(Asin32(v.Lane(0)), Asin32(v.Lane(1)))
}

// BaseAcos computes acos(x) for each lane, one lane at a time.
func BaseAcos(v hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Make(Acos32(v.Lane(0)), Acos32(v.Lane(1)))
}
