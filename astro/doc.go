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

// Package astro computes the Moon's illuminated fraction and UTC sunrise and
// sunset instants from low-precision closed-form ephemeris formulas.
//
// The numeric work runs on the trigonometric kernels of
// hwy/contrib/math. Each pipeline exists twice: a scalar strategy
// (BaseMoonPhase, BaseSunriseSunset) and a lane-pair strategy
// (MoonPhase_F32x2, SunriseSunset_F32x2) that carries two independent
// sub-problems through shared vector arithmetic. The MoonPhase and
// SunriseSunsetRange variables are bound to one of them at init, following
// hwy.HasLanePairs.
//
// # Raw entry points
//
// MoonPhase and SunriseSunsetRange are total: they never fail and do no
// validation. Out-of-domain inputs yield undefined numbers, and a location
// with no sunrise or sunset on the given day yields zero seconds.
//
// # Checked API
//
// Date, Location, MoonPhaseOf, SunTimes and DescribeMoon validate their
// inputs and report problems as wrapped sentinel errors (ErrInvalidDate,
// ErrInvalidDayOfYear, ErrInvalidLatitude, ErrInvalidLongitude,
// ErrNoSunriseSunset) for use with errors.Is.
//
// # Calendars
//
// PhaseTable and SunTable evaluate many days at once on a
// workerpool.Pool.
package astro
