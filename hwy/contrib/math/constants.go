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

// =============================================================================
// Constants for Sin/Cos (magic-shift reduction modulo pi)
// =============================================================================

const (
	// Three-term split of pi: trigPi1 + trigPi2 + trigPi3 ~= pi.
	trigPi1 float32 = 0x1.921fb6p+1
	trigPi2 float32 = -0x1.777a5cp-24
	trigPi3 float32 = -0x1.ee59dap-49

	// Odd minimax polynomial r + A3 r^3 + A5 r^5 + A7 r^7 + A9 r^9.
	trigA3 float32 = -0x1.555548p-3
	trigA5 float32 = 0x1.110df4p-7
	trigA7 float32 = -0x1.9f42eap-13
	trigA9 float32 = 0x1.5b2e76p-19

	trigInvPi  float32 = 0x1.45f306p-2
	trigHalfPi float32 = 0x1.921fb6p0

	// Adding trigShift rounds any value below 2^22 to an integer and leaves
	// that integer's parity in the lowest mantissa bit.
	trigShift float32 = 0x1.8p+23

	// Lanes at or above this magnitude use the standard library.
	trigRangeVal float32 = 0x1p20

	trigSignMask uint32 = 0x80000000
)

// =============================================================================
// Constants for Asin (rational approximation R(z) = z P(z) / Q(z))
// =============================================================================

const (
	asinPio2 = 1.570796326794896558e+00

	asinPS0 float32 = 1.6666586697e-01
	asinPS1 float32 = -4.2743422091e-02
	asinPS2 float32 = -8.6563630030e-03
	asinQS1 float32 = -7.0662963390e-01

	// Nudges ±pi/2 so that the rounded result keeps asin monotonic.
	asinTiny float32 = 0x1p-120

	// Below asinLinear (and above the smallest normal) asin(x) rounds to x.
	asinLinear    float32 = 0x1p-12
	asinMinNormal float32 = 0x1p-126
	asinHalf      float32 = 0.5
)

// =============================================================================
// Constants for SinCosFast (quadrant reduction modulo pi/2)
// =============================================================================

const (
	sincosHpiInv = 0x1.45F306DC9C883p-1 // 2/pi
	sincosHpi    = 0x1.921FB54442D18p0  // pi/2
	sincosPi63   = 0x1.921FB54442D18p-62

	// Argument classes.
	sincosPio4   float32 = 0x1.921FB54442D18p-1
	sincosTiny   float32 = 0x1p-12
	sincosFastHi float32 = 120
)

// sincosCoeffs holds one polynomial table. Table 1 negates the cosine
// coefficients for quadrants 2 and 3.
type sincosCoeffs struct {
	c0, c1, c2, c3, c4 float64
	s1, s2, s3         float64
}

var sincosTable = [2]sincosCoeffs{
	{
		c0: 0x1p0,
		c1: -0x1.ffffffd0c621cp-2,
		c2: 0x1.55553e1068f19p-5,
		c3: -0x1.6c087e89a359dp-10,
		c4: 0x1.99343027bf8c3p-16,
		s1: -0x1.555545995a603p-3,
		s2: 0x1.1107605230bc4p-7,
		s3: -0x1.994eb3774cf24p-13,
	},
	{
		c0: -0x1p0,
		c1: 0x1.ffffffd0c621cp-2,
		c2: -0x1.55553e1068f19p-5,
		c3: 0x1.6c087e89a359dp-10,
		c4: -0x1.99343027bf8c3p-16,
		s1: -0x1.555545995a603p-3,
		s2: 0x1.1107605230bc4p-7,
		s3: -0x1.994eb3774cf24p-13,
	},
}

// sincosSign is the sign applied to the reduced argument per quadrant.
var sincosSign = [4]float64{1, -1, -1, 1}

// invPio4 holds the bits of 4/pi, windowed so that invPio4[i] starts i
// bytes into the expansion.
var invPio4 = [24]uint32{
	0xa2, 0xa2f9, 0xa2f983, 0xa2f9836e,
	0xf9836e4e, 0x836e4e44, 0x6e4e4415, 0x4e441529,
	0x441529fc, 0x1529fc27, 0x29fc2757, 0xfc2757d1,
	0x2757d1f5, 0x57d1f534, 0xd1f534dd, 0xf534ddc0,
	0x34ddc0db, 0xddc0db62, 0xc0db6295, 0xdb629599,
	0x6295993c, 0x95993c43, 0x993c4390, 0x3c439041,
}
