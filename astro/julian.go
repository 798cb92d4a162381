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

// ToJulianDay converts a proleptic Gregorian calendar date to its Julian
// Day Number, the integer day count whose noon falls on the date.
//
// The result is undefined for dates before 1 March of year 0 and for
// months or days outside their calendar range; no validation is done.
// ToJulianDay(2000, 1, 1) == 2451545.
func ToJulianDay(year, month, day uint32) uint64 {
	// Shift the year to start in March so the leap day is last.
	if month > 2 {
		month -= 3
	} else {
		month += 9
		year--
	}

	c := uint64(year / 100)
	ya := uint64(year) - 100*c

	return uint64(day) + (c*146097)/4 + (ya*1461)/4 + (uint64(month)*153+2)/5 + 1721119
}
