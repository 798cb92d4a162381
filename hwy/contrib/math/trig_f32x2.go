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

// sinPoly_F32x2 evaluates the odd polynomial on both reduced lanes.
func sinPoly_F32x2(r hwy.Vec[float32]) hwy.Vec[float32] {
	r2 := hwy.Mul(r, r)
	y := hwy.FMA(hwy.Set(trigA9), r2, hwy.Set(trigA7))
	y = hwy.FMA(y, r2, hwy.Set(trigA5))
	y = hwy.FMA(y, r2, hwy.Set(trigA3))
	return hwy.FMA(hwy.Mul(y, r2), r, r)
}

// reducePi_F32x2 subtracts n*pi from both lanes of r.
func reducePi_F32x2(r, n hwy.Vec[float32]) hwy.Vec[float32] {
	r = hwy.FMA(hwy.Set(-trigPi1), n, r)
	r = hwy.FMA(hwy.Set(-trigPi2), n, r)
	return hwy.FMA(hwy.Set(-trigPi3), n, r)
}

// Sin_F32x2 computes sin(x) for both lanes with shared vector arithmetic.
//
// Lanes with |x| >= 2^20, infinite or NaN are recomputed with the standard
// library after the vector pass.
func Sin_F32x2(x hwy.Vec[float32]) hwy.Vec[float32] {
	r := hwy.Abs(x)
	sign := hwy.And(hwy.AsUint32(x), hwy.Set(trigSignMask))
	inRange := hwy.LessThan(r, hwy.Set(trigRangeVal))

	// n = rint(|x|/pi)
	shift := hwy.Set(trigShift)
	n := hwy.FMA(hwy.Set(trigInvPi), r, shift)
	odd := hwy.ShiftLeft(hwy.AsUint32(n), 31)
	n = hwy.Sub(n, shift)

	y := sinPoly_F32x2(reducePi_F32x2(r, n))
	y = hwy.AsFloat32(hwy.Xor(hwy.AsUint32(y), hwy.Xor(sign, odd)))

	if !inRange.AllTrue() {
		for i := 0; i < hwy.VecLanes; i++ {
			if !inRange.GetBit(i) {
				y = hwy.WithLane(y, i, float32(stdmath.Sin(float64(x.Lane(i)))))
			}
		}
	}
	return y
}

// Cos_F32x2 computes cos(x) for both lanes with shared vector arithmetic.
//
// Lanes with |x| >= 2^20, infinite or NaN are recomputed with the standard
// library after the vector pass.
func Cos_F32x2(x hwy.Vec[float32]) hwy.Vec[float32] {
	r := hwy.Abs(x)
	inRange := hwy.LessThan(r, hwy.Set(trigRangeVal))

	// n = rint((|x|+pi/2)/pi) - 0.5
	shift := hwy.Set(trigShift)
	n := hwy.FMA(hwy.Set(trigInvPi), hwy.Add(r, hwy.Set(trigHalfPi)), shift)
	odd := hwy.ShiftLeft(hwy.AsUint32(n), 31)
	n = hwy.Sub(n, shift)
	n = hwy.Sub(n, hwy.Set[float32](0.5))

	y := sinPoly_F32x2(reducePi_F32x2(r, n))
	y = hwy.AsFloat32(hwy.Xor(hwy.AsUint32(y), odd))

	if !inRange.AllTrue() {
		for i := 0; i < hwy.VecLanes; i++ {
			if !inRange.GetBit(i) {
				y = hwy.WithLane(y, i, float32(stdmath.Cos(float64(x.Lane(i)))))
			}
		}
	}
	return y
}
