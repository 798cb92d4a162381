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

// asinR_F32x2 evaluates R(z) on both lanes.
func asinR_F32x2(z hwy.Vec[float32]) hwy.Vec[float32] {
	p := hwy.FMA(z, hwy.Set(asinPS2), hwy.Set(asinPS1))
	p = hwy.FMA(z, p, hwy.Set(asinPS0))
	p = hwy.Mul(p, z)
	q := hwy.FMA(z, hwy.Set(asinQS1), hwy.Set[float32](1))
	return hwy.Div(p, q)
}

// Asin_F32x2 computes asin(x) for both lanes.
//
// When both lanes fall in the same argument class the class is evaluated
// with vector operations. When they differ, each lane is computed on its
// own and the two results are merged; no lane is ever pushed through the
// other lane's code path.
func Asin_F32x2(x hwy.Vec[float32]) hwy.Vec[float32] {
	class := classifyAsin(x.Lane(0))
	if classifyAsin(x.Lane(1)) != class {
		return hwy.Make(Asin32(x.Lane(0)), Asin32(x.Lane(1)))
	}

	switch class {
	case asinClassOne:
		return hwy.FMA(x, hwy.Set[float32](asinPio2), hwy.Set(asinTiny))
	case asinClassOver:
		return hwy.Make(
			float32(stdmath.Asin(float64(x.Lane(0)))),
			float32(stdmath.Asin(float64(x.Lane(1)))),
		)
	case asinClassLinear:
		return x
	case asinClassSmall:
		return hwy.FMA(x, asinR_F32x2(hwy.Mul(x, x)), x)
	}

	half := hwy.Set[float32](0.5)
	z := hwy.Mul(hwy.Sub(hwy.Set[float32](1), hwy.Abs(x)), half)
	s := hwy.Sqrt(z)
	y := hwy.Sub(hwy.Set[float32](asinPio2), hwy.Mul(hwy.Set[float32](2), hwy.FMA(s, asinR_F32x2(z), s)))

	// y is positive here, so copying the sign bit restores the sign.
	sign := hwy.And(hwy.AsUint32(x), hwy.Set(trigSignMask))
	return hwy.AsFloat32(hwy.Or(hwy.AsUint32(y), sign))
}

// Acos_F32x2 computes acos(x) for both lanes.
//
// The arc-cosine has no vector kernel; each lane uses the standard library.
func Acos_F32x2(x hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Make(
		float32(stdmath.Acos(float64(x.Lane(0)))),
		float32(stdmath.Acos(float64(x.Lane(1)))),
	)
}
