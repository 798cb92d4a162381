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

import (
	"fmt"
	"time"

	"github.com/go-highway/astro/internal/log"
)

// TimeRange is a sunrise/sunset pair in UTC seconds of day, each in
// [0, 86400).
type TimeRange struct {
	Sunrise uint32
	Sunset  uint32
}

// TimeRangeOf decodes a word produced by PackTimeRange.
func TimeRangeOf(packed uint64) TimeRange {
	rise, set := UnpackTimeRange(packed)
	return TimeRange{Sunrise: rise, Sunset: set}
}

// Pack returns the range in the PackTimeRange encoding.
func (r TimeRange) Pack() uint64 {
	return PackTimeRange(r.Sunrise, r.Sunset)
}

// InZone shifts both instants by offsetSeconds (east of UTC positive) and
// wraps them back into [0, 86400).
func (r TimeRange) InZone(offsetSeconds int32) TimeRange {
	return TimeRange{
		Sunrise: shiftSeconds(r.Sunrise, offsetSeconds),
		Sunset:  shiftSeconds(r.Sunset, offsetSeconds),
	}
}

func shiftSeconds(s uint32, offset int32) uint32 {
	v := (int64(s) + int64(offset)) % secondsPerDay
	if v < 0 {
		v += secondsPerDay
	}
	return uint32(v)
}

// SunriseOffset returns the sunrise time of day as a duration since midnight.
func (r TimeRange) SunriseOffset() time.Duration {
	return time.Duration(r.Sunrise) * time.Second
}

// SunsetOffset returns the sunset time of day as a duration since midnight.
func (r TimeRange) SunsetOffset() time.Duration {
	return time.Duration(r.Sunset) * time.Second
}

func (r TimeRange) String() string {
	return formatClock(r.Sunrise) + "-" + formatClock(r.Sunset)
}

func formatClock(s uint32) string {
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

// MoonPhaseOf validates d and returns its Moon phase.
func MoonPhaseOf(d Date) (float32, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return MoonPhase(uint32(d.Year), uint32(d.Month), uint32(d.Day)), nil
}

// SunTimes validates its inputs and returns the UTC sunrise and sunset of
// dayOfYear at loc. It returns ErrNoSunriseSunset during polar day or night.
func SunTimes(dayOfYear int, loc Location) (TimeRange, error) {
	if dayOfYear < 1 || dayOfYear > 366 {
		return TimeRange{}, fmt.Errorf("%w: %d", ErrInvalidDayOfYear, dayOfYear)
	}
	if err := loc.Validate(); err != nil {
		return TimeRange{}, err
	}

	hours := sunHours(uint32(dayOfYear), loc.Latitude, loc.Longitude)
	if isNaN32(hours.Lane(0)) || isNaN32(hours.Lane(1)) {
		log.Debugw("no sunrise or sunset",
			"dayOfYear", dayOfYear,
			"latitude", loc.Latitude,
			"longitude", loc.Longitude)
		return TimeRange{}, fmt.Errorf("%w: day %d at %s", ErrNoSunriseSunset, dayOfYear, loc)
	}
	return TimeRange{
		Sunrise: utcSeconds(hours.Lane(0)),
		Sunset:  utcSeconds(hours.Lane(1)),
	}, nil
}

// SunTimesOn is SunTimes for a calendar date.
func SunTimesOn(d Date, loc Location) (TimeRange, error) {
	if err := d.Validate(); err != nil {
		return TimeRange{}, err
	}
	return SunTimes(d.DayOfYear(), loc)
}
