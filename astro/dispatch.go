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

import "github.com/go-highway/astro/hwy"

// Dispatch function variables.
// These are initialized to the scalar strategy and may be overridden by
// the lane-pair strategy in z_astro_f32x2.go.
var (
	// MoonPhase returns the Moon's illuminated fraction in [0, 1] at noon
	// UT of a proleptic Gregorian date: 0 is new, 1 is full.
	MoonPhase func(year, month, day uint32) float32

	// SunriseSunsetRange returns the packed UTC sunrise (low 32 bits) and
	// sunset (high 32 bits) seconds of day for a day of year in [1, 366]
	// and a location packed with PackLocation. Both are 0 when the Sun
	// does not rise or set that day.
	SunriseSunsetRange func(dayOfYear uint32, location uint64) uint64

	// sunHours returns {sunrise, sunset} as UTC hours, NaN for no event.
	sunHours func(dayOfYear uint32, lat, lon float32) hwy.Vec[float32]
)

func init() {
	// Initialize with the scalar strategy.
	// z_astro_f32x2.go runs after this file and may override it.
	MoonPhase = BaseMoonPhase
	SunriseSunsetRange = BaseSunriseSunset
	sunHours = baseSunHours
}
