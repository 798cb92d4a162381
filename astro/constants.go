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

const (
	d2r float32 = stdmath.Pi / 180
	r2d float32 = 180 / stdmath.Pi
)

// Orbital elements of the Sun and Moon at epoch 1980 January 0.0.
const (
	moonEpoch float32 = 2444238.5 // Julian date of the epoch

	elongE float32 = 278.833540 // ecliptic longitude of the Sun at epoch
	elongP float32 = 282.596403 // ecliptic longitude of the Sun at perigee
	eccent float32 = 0.016718   // eccentricity of Earth's orbit

	mmLong  float32 = 64.975464  // Moon's mean longitude at epoch
	mmLongP float32 = 349.383063 // mean longitude of the perigee at epoch

	// sqrt((1+e)/(1-e)), used to go from eccentric to true anomaly.
	trueAnomalyScale float32 = 1.01686011182
)

// Sunrise/sunset constants.
const (
	// cos(90.8888°): the Sun's centre below the horizon by refraction plus
	// its apparent radius.
	cosZenith float32 = -0.015511

	hoursPerDegree float32 = 1.0 / 15
	daysPerHour    float32 = 0.04166666666

	secondsPerHour float32 = 3600
	secondsPerDay          = 86400
)

// Kepler solver limits.
const (
	keplerTolerance     float32 = 1e-6
	keplerMaxIterations         = 32
)
