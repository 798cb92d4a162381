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

package hwy

import "math"

// This file provides the portable implementations of all lane operations.
// Every operation works on both lanes independently; none of them allocate.

// Load creates a vector from the first VecLanes elements of src.
// Missing elements are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	copy(v.data[:], src)
	return v
}

// Make creates a vector from its two lanes.
func Make[T Lanes](lo, hi T) Vec[T] {
	return Vec[T]{data: [VecLanes]T{lo, hi}}
}

// Store writes the vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return Vec[T]{data: [VecLanes]T{value, value}}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// WithLane returns a copy of v with lane i replaced by value.
func WithLane[T Lanes](v Vec[T], i int, value T) Vec[T] {
	v.data[i] = value
	return v
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] += b.data[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] -= b.data[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] *= b.data[i]
	}
	return a
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] /= b.data[i]
	}
	return a
}

// Neg negates each lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	for i := range v.data {
		v.data[i] = -v.data[i]
	}
	return v
}

// Abs computes the absolute value of each lane.
// For floats the sign bit is cleared, so Abs(-0) is +0 and NaN stays NaN.
func Abs[T Floats](v Vec[T]) Vec[T] {
	for i := range v.data {
		v.data[i] = T(math.Abs(float64(v.data[i])))
	}
	return v
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		if b.data[i] < a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		if b.data[i] > a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// Sqrt computes the square root of each lane.
// The result is correctly rounded for float32 lanes.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	for i := range v.data {
		v.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return v
}

// FMA performs fused multiply-add: a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return a
}

// MulAdd performs fused multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	for i := range v.data {
		v.data[i] = T(math.Floor(float64(v.data[i])))
	}
	return v
}

// RoundToEven rounds to the nearest even integer (banker's rounding).
// This is the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	for i := range v.data {
		v.data[i] = T(math.RoundToEven(float64(v.data[i])))
	}
	return v
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	return v.data[0] + v.data[1]
}

// Reverse swaps the two lanes (vrev64 on a 64-bit register).
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	v.data[0], v.data[1] = v.data[1], v.data[0]
	return v
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range a.data {
		m.bits[i] = a.data[i] == b.data[i]
	}
	return m
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range a.data {
		m.bits[i] = a.data[i] != b.data[i]
	}
	return m
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range a.data {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range a.data {
		m.bits[i] = a.data[i] > b.data[i]
	}
	return m
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range a.data {
		m.bits[i] = a.data[i] <= b.data[i]
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	for i := range a.data {
		m.bits[i] = a.data[i] >= b.data[i]
	}
	return m
}

// Greater performs element-wise greater-than comparison.
// Alias for GreaterThan for compatibility with SIMD method naming.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return GreaterThan(a, b)
}

// Less performs element-wise less-than comparison.
// Alias for LessThan for compatibility with SIMD method naming.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	return LessThan(a, b)
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	var m Mask[T]
	for i, x := range v.data {
		m.bits[i] = x != x
	}
	return m
}

// IfThenElse performs conditional selection: a where mask is set, b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	for i := range a.data {
		if !mask.bits[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// IfThenElseZero returns a where mask is true, zero otherwise.
// Equivalent to IfThenElse(mask, a, Zero()) and to AND-ing a with the
// all-ones lane mask produced by a NEON comparison.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	for i := range a.data {
		if !mask.bits[i] {
			a.data[i] = 0
		}
	}
	return a
}

// Merge selects elements from a where mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] &= b.data[i]
	}
	return a
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] |= b.data[i]
	}
	return a
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] ^= b.data[i]
	}
	return a
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Integers](v Vec[T]) Vec[T] {
	for i := range v.data {
		v.data[i] = ^v.data[i]
	}
	return v
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	for i := range a.data {
		a.data[i] = ^a.data[i] & b.data[i]
	}
	return a
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.data {
		v.data[i] <<= bits
	}
	return v
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.data {
		v.data[i] >>= bits
	}
	return v
}

// ============================================================================
// Type reinterpretation and conversion
// ============================================================================

// AsUint32 reinterprets a float32 vector as uint32 (bit cast).
func AsUint32(v Vec[float32]) Vec[uint32] {
	var r Vec[uint32]
	for i, x := range v.data {
		r.data[i] = math.Float32bits(x)
	}
	return r
}

// AsFloat32 reinterprets a uint32 vector as float32 (bit cast).
func AsFloat32(v Vec[uint32]) Vec[float32] {
	var r Vec[float32]
	for i, x := range v.data {
		r.data[i] = math.Float32frombits(x)
	}
	return r
}

// ConvertToUint32 converts float32 lanes to uint32, truncating toward zero.
//
// Out-of-range lanes saturate like vcvt_u32_f32: NaN and values below 1
// become 0, values at or above 2^32 become math.MaxUint32.
func ConvertToUint32(v Vec[float32]) Vec[uint32] {
	var r Vec[uint32]
	for i, x := range v.data {
		switch {
		case !(x >= 1):
			r.data[i] = 0
		case x >= 0x1p32:
			r.data[i] = math.MaxUint32
		default:
			r.data[i] = uint32(x)
		}
	}
	return r
}

// ConvertToFloat32 converts uint32 lanes to float32 (round to nearest).
func ConvertToFloat32(v Vec[uint32]) Vec[float32] {
	var r Vec[float32]
	for i, x := range v.data {
		r.data[i] = float32(x)
	}
	return r
}
