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

import stdmath "math"

// PackLocation packs a latitude and longitude in degrees into one word:
// the low 32 bits hold the latitude's float32 bits, the high 32 bits the
// longitude's. The bit patterns are kept exactly, NaN payloads included.
func PackLocation(lat, lon float32) uint64 {
	return uint64(stdmath.Float32bits(lon))<<32 | uint64(stdmath.Float32bits(lat))
}

// UnpackLocation is the inverse of PackLocation.
func UnpackLocation(location uint64) (lat, lon float32) {
	return stdmath.Float32frombits(uint32(location)), stdmath.Float32frombits(uint32(location >> 32))
}

// PackTimeRange packs UTC seconds of day: sunrise in the low 32 bits,
// sunset in the high 32 bits.
func PackTimeRange(sunrise, sunset uint32) uint64 {
	return uint64(sunset)<<32 | uint64(sunrise)
}

// UnpackTimeRange is the inverse of PackTimeRange.
func UnpackTimeRange(packed uint64) (sunrise, sunset uint32) {
	return uint32(packed), uint32(packed >> 32)
}
