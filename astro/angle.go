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

package astro

import (
	stdmath "math"

	"github.com/go-highway/astro/hwy"
)

// FixAngle reduces a finite angle in degrees into [0, 360).
func FixAngle(a float32) float32 {
	r := fma32(-360, float32(stdmath.Floor(float64(a*(1.0/360)))), a)
	if r >= 0 && r < 360 {
		return r
	}
	// The rounded quotient can be off by one or more periods; redo the
	// reduction exactly.
	r = float32(stdmath.Mod(float64(a), 360))
	if r < 0 {
		r += 360
	}
	return Align360(r)
}

// Align360 wraps a into [0, 360) with at most one subtraction or addition.
// a must already lie in [-360, 720).
func Align360(a float32) float32 {
	return alignN(a, 360)
}

// Align24 wraps a into [0, 24) with at most one subtraction or addition.
// a must already lie in [-24, 48).
func Align24(a float32) float32 {
	return alignN(a, 24)
}

func alignN(a, n float32) float32 {
	if a >= n {
		a -= n
	}
	if a < 0 {
		a += n
	}
	return a
}

// Align360_F32x2 applies Align360 to both lanes.
func Align360_F32x2(v hwy.Vec[float32]) hwy.Vec[float32] {
	return alignN_F32x2(v, 360)
}

// Align24_F32x2 applies Align24 to both lanes.
func Align24_F32x2(v hwy.Vec[float32]) hwy.Vec[float32] {
	return alignN_F32x2(v, 24)
}

// alignN_F32x2 subtracts and adds the period under lane masks, the way
// the scalar version branches.
func alignN_F32x2(v hwy.Vec[float32], n float32) hwy.Vec[float32] {
	period := hwy.Set(n)
	v = hwy.Sub(v, hwy.IfThenElseZero(hwy.GreaterEqual(v, period), period))
	return hwy.Add(v, hwy.IfThenElseZero(hwy.LessThan(v, hwy.Zero[float32]()), period))
}

// fma32 computes a*b + c with one rounding to float32.
func fma32(a, b, c float32) float32 {
	return float32(stdmath.FMA(float64(a), float64(b), float64(c)))
}
