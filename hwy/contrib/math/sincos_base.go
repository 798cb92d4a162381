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

// reduceFast reduces |x| < 120 to r in [-pi/4, pi/4] and the quadrant n,
// with x = n*pi/2 + r.
func reduceFast(x float64) (r float64, n int) {
	k := stdmath.Round(x * sincosHpiInv)
	return x - k*sincosHpi, int(k)
}

// reduceLarge reduces a finite float32, given as its bit pattern, with
// |x| >= 120. It multiplies the 24-bit significand by a 96-bit window of
// 4/pi picked from the exponent and keeps the fraction in 2^-62 fixed
// point. The sign bit is ignored.
func reduceLarge(xi uint32) (r float64, n int) {
	arr := invPio4[(xi>>26)&15:]
	shift := (xi >> 23) & 7
	xi = ((xi & 0xffffff) | 0x800000) << shift

	res0 := uint64(xi * arr[0])
	res1 := uint64(xi) * uint64(arr[4])
	res2 := uint64(xi) * uint64(arr[8])
	res0 = (res2 >> 32) | (res0 << 32)
	res0 += res1

	q := (res0 + 1<<61) >> 62
	res0 -= q << 62
	return float64(int64(res0)) * sincosPi63, int(q)
}

// sincosPoly evaluates sin and cos of the reduced argument x (already
// multiplied by the quadrant sign) and swaps them for odd quadrants.
func sincosPoly(x, x2 float64, p *sincosCoeffs, n int) (sin, cos float32) {
	x3 := x * x2
	x4 := x2 * x2
	x5 := x3 * x2
	x6 := x4 * x2

	s := x + x3*p.s1 + x5*(p.s2+x2*p.s3)
	c := p.c0 + x2*p.c1 + x4*p.c2 + x6*(p.c3+x2*p.c4)
	if n&1 != 0 {
		return float32(c), float32(s)
	}
	return float32(s), float32(c)
}

// SinCos32 computes sin(x) and cos(x) together, sharing the range reduction.
//
// Unlike the standard library, infinite and NaN arguments return (0, 0).
func SinCos32(x float32) (sin, cos float32) {
	a := float32(stdmath.Abs(float64(x)))
	switch {
	case a < sincosPio4:
		if a < sincosTiny {
			// Go exposes no floating-point status flags, so the
			// underflow of x*x for subnormal x has nothing to raise.
			return x, 1
		}
		xd := float64(x)
		return sincosPoly(xd, xd*xd, &sincosTable[0], 0)

	case a < sincosFastHi:
		r, n := reduceFast(float64(x))
		return sincosPoly(r*sincosSign[n&3], r*r, &sincosTable[(n>>1)&1], n)

	case a <= stdmath.MaxFloat32:
		xi := stdmath.Float32bits(x)
		r, n := reduceLarge(xi)
		q := n + int(xi>>31)
		return sincosPoly(r*sincosSign[q&3], r*r, &sincosTable[(q>>1)&1], n)
	}
	return 0, 0
}

// BaseSinCosFast computes {sin(x), cos(x)} with the scalar kernel.
func BaseSinCosFast(x float32) hwy.Vec[float32] {
	s, c := SinCos32(x)
	return hwy.Make(s, c)
}
