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

import "errors"

var (
	// ErrInvalidDate is returned for a date outside the Gregorian calendar
	// range the pipelines accept.
	ErrInvalidDate = errors.New("astro: invalid date")

	// ErrInvalidDayOfYear is returned for a day of year outside [1, 366].
	ErrInvalidDayOfYear = errors.New("astro: day of year out of range")

	// ErrInvalidLatitude is returned for a latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("astro: latitude out of range")

	// ErrInvalidLongitude is returned for a longitude outside [-180, 180].
	ErrInvalidLongitude = errors.New("astro: longitude out of range")

	// ErrNoSunriseSunset is returned when the Sun stays above or below the
	// horizon for the whole day (polar day or night).
	ErrNoSunriseSunset = errors.New("astro: sun does not rise or set")
)
