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
	stdmath "math"

	"github.com/go-highway/astro/hwy"
	"github.com/go-highway/astro/hwy/contrib/math"
	"github.com/go-highway/astro/internal/log"
)

// Kepler solves Kepler's equation E - e*sin(E) = M for the Earth's orbit.
// meanAnomaly is in degrees; the eccentric anomaly is returned in radians.
//
// Newton-Raphson stops once the residual is no larger than 1e-6 radians.
// For the Earth's eccentricity that takes a handful of steps. If the cap of
// keplerMaxIterations is ever reached, the current estimate is returned and
// a warning is logged.
func Kepler(meanAnomaly float32) float32 {
	return kepler(meanAnomaly, math.SinCosFast)
}

func kepler(meanAnomaly float32, sincos func(float32) hwy.Vec[float32]) float32 {
	m := d2r * meanAnomaly
	e := m
	for range keplerMaxIterations {
		sc := sincos(e)
		delta := fma32(-eccent, sc.Lane(0), e) - m
		e -= delta / fma32(-eccent, sc.Lane(1), 1)
		if !(float32(stdmath.Abs(float64(delta))) > keplerTolerance) {
			return e
		}
	}

	log.Warnw("kepler: iteration cap reached",
		"meanAnomaly", meanAnomaly,
		"iterations", keplerMaxIterations,
		"estimate", e)
	return e
}
