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

// sincosPoly_F32x2 evaluates the sine polynomial in lane 0 and the cosine
// polynomial in lane 1, then swaps the lanes for odd quadrants.
func sincosPoly_F32x2(x, x2 float32, p *sincosCoeffs, n int) hwy.Vec[float32] {
	x2v := hwy.Set(x2)
	x3x4 := hwy.Mul(x2v, hwy.Make(x, x2))
	x5x6 := hwy.Mul(x2v, x3x4)

	// {s2 + x2*s3, c3 + x2*c4}
	tail := hwy.FMA(x2v,
		hwy.Make(float32(p.s3), float32(p.c4)),
		hwy.Make(float32(p.s2), float32(p.c3)))

	c1 := fma32(x2, float32(p.c1), float32(p.c0))

	// {x + x3*s1, c1 + x4*c2}
	head := hwy.FMA(x3x4, hwy.Make(float32(p.s1), float32(p.c2)), hwy.Make(x, c1))

	sc := hwy.FMA(x5x6, tail, head)
	if n&1 != 0 {
		return hwy.Reverse(sc)
	}
	return sc
}

// SinCosFast_F32x2 computes {sin(x), cos(x)} for one angle, evaluating both
// polynomials in the two lanes of one vector.
//
// Unlike the standard library, infinite and NaN arguments return {0, 0}.
func SinCosFast_F32x2(x float32) hwy.Vec[float32] {
	a := float32(stdmath.Abs(float64(x)))
	switch {
	case a < sincosPio4:
		if a < sincosTiny {
			return hwy.Make[float32](x, 1)
		}
		return sincosPoly_F32x2(x, x*x, &sincosTable[0], 0)

	case a < sincosFastHi:
		r, n := reduceFast(float64(x))
		xr := float32(r)
		return sincosPoly_F32x2(xr*float32(sincosSign[n&3]), xr*xr, &sincosTable[(n>>1)&1], n)

	case a <= stdmath.MaxFloat32:
		xi := stdmath.Float32bits(x)
		r, n := reduceLarge(xi)
		q := n + int(xi>>31)
		xr := float32(r)
		return sincosPoly_F32x2(xr*float32(sincosSign[q&3]), xr*xr, &sincosTable[(q>>1)&1], n)
	}
	return hwy.Zero[float32]()
}
