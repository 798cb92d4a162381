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

import "fmt"

// Location is a point on the Earth in degrees, north and east positive.
type Location struct {
	Latitude  float32
	Longitude float32
}

// NewLocation returns a validated Location.
func NewLocation(lat, lon float32) (Location, error) {
	loc := Location{Latitude: lat, Longitude: lon}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate checks that the latitude lies in [-90, 90] and the longitude in
// [-180, 180]. NaN fails both checks.
func (l Location) Validate() error {
	if !(l.Latitude >= -90 && l.Latitude <= 90) {
		return fmt.Errorf("%w: %g", ErrInvalidLatitude, l.Latitude)
	}
	if !(l.Longitude >= -180 && l.Longitude <= 180) {
		return fmt.Errorf("%w: %g", ErrInvalidLongitude, l.Longitude)
	}
	return nil
}

// Pack returns the location in the PackLocation encoding.
func (l Location) Pack() uint64 {
	return PackLocation(l.Latitude, l.Longitude)
}

// LocationOf decodes a word produced by PackLocation. No validation is done.
func LocationOf(packed uint64) Location {
	lat, lon := UnpackLocation(packed)
	return Location{Latitude: lat, Longitude: lon}
}

func (l Location) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", l.Latitude, l.Longitude)
}
