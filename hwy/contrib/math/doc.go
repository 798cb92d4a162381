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

// Package math provides float32 trigonometric kernels over two-lane vectors.
//
// Every kernel has one contract and two strategies:
//
//   - the scalar strategy (BaseSin, BaseCos, BaseAsin, BaseAcos,
//     BaseSinCosFast) runs each lane through a single-value kernel
//     (Sin32, Cos32, Asin32, Acos32, SinCos32);
//   - the lane-pair strategy (Sin_F32x2, Cos_F32x2, Asin_F32x2, Acos_F32x2,
//     SinCosFast_F32x2) pushes both lanes through shared hwy operations.
//
// The package-level variables Sin, Cos, Asin, Acos and SinCosFast are bound
// to the scalar strategy in dispatch.go and rebound to the lane-pair
// strategy in z_math_f32x2.go when hwy.HasLanePairs reports true.
//
// # Kernels
//
// Sin and Cos reduce |x| modulo pi with a magic-shift rounding trick and a
// three-term split of pi, evaluate a degree-9 odd polynomial and fix the
// sign by XOR on the bit pattern. Lanes with |x| >= 2^20 (and NaN) use the
// standard library instead.
//
// Asin classifies each lane (|x| == 1, |x| > 1, tiny, |x| < 0.5,
// 0.5 <= |x| < 1). Lanes in the same class share vector arithmetic; lanes
// in different classes are evaluated one at a time and merged.
//
// SinCosFast takes one angle and returns {sin, cos} in the two lanes. It
// reduces |x| < 120 with one multiply by 2/pi and larger finite arguments
// with a Payne-Hanek style 64-bit fixed-point reduction. Infinite and NaN
// arguments return {0, 0}.
//
// # Accuracy
//
// All kernels stay within 1e-5 absolute error of the float64 standard
// library over [-1e6, 1e6], and both strategies agree to the same bound.
//
// # Example Usage
//
//	import (
//	    "github.com/go-highway/astro/hwy"
//	    "github.com/go-highway/astro/hwy/contrib/math"
//	)
//
//	angles := hwy.Make[float32](0.5, 2.0)
//	s := math.Sin(angles)
//	sc := math.SinCosFast(0.5) // {sin(0.5), cos(0.5)}
package math
