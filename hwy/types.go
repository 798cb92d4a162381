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

// Package hwy provides a portable two-lane vector type with runtime
// dispatch of the strategy used by the kernels built on it.
//
// A Vec carries two independent scalar problems through shared arithmetic,
// the way a 64-bit float32x2 register does on ARM NEON. Kernels written
// against Vec are the "lane-pair" strategy; each kernel package also keeps
// a scalar strategy and picks one at init time from CurrentLevel.
//
// Basic usage:
//
//	import "github.com/go-highway/astro/hwy"
//
//	a := hwy.Make[float32](6, 18)
//	b := hwy.Set[float32](0.5)
//	sum := hwy.Add(a, b) // {6.5, 18.5}
package hwy

// VecLanes is the number of lanes in every Vec.
const VecLanes = 2

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a two-lane vector value.
//
// Vec instances are plain values; create them with Load, Make, Set or Zero.
// Lane 0 is the "low" lane and lane 1 the "high" lane, matching the order
// in which they are packed into a 64-bit word by the astro package.
type Vec[T Lanes] struct {
	data [VecLanes]T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return VecLanes
}

// Data returns a copy of the lanes as a slice.
// This is primarily for testing and should not be used in hot code.
func (v Vec[T]) Data() []T {
	out := make([]T, VecLanes)
	copy(out, v.data[:])
	return out
}

// Lane returns the value of lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Store writes the vector's lanes to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:])
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse and Merge to perform per-lane selection.
type Mask[T Lanes] struct {
	bits [VecLanes]bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return VecLanes
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits[0] && m.bits[1]
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits[0] || m.bits[1]
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= VecLanes {
		return false
	}
	return m.bits[i]
}
