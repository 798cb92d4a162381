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
)

// moonState holds the pipeline values that precede the two smallest
// corrections to the Moon's longitude.
type moonState struct {
	sinM      float32 // sine of the Sun's mean anomaly
	lambdaSun float32 // Sun's ecliptic longitude, degrees
	ml        float32 // Moon's mean longitude, degrees
	ev        float32 // evection, degrees
	ae        float32 // annual equation, degrees
	mmp       float32 // Moon's corrected mean anomaly, degrees
}

// moonPrelude runs the pipeline from the calendar date up to the Moon's
// corrected anomaly.
func moonPrelude(year, month, day uint32, sincos func(float32) hwy.Vec[float32]) moonState {
	dayF := float32(ToJulianDay(year, month, day)) - moonEpoch

	// Sun
	n := FixAngle((360 / 365.2422) * dayF)
	m := FixAngle(n + elongE - elongP)
	sinM := math.Sin32(m * d2r)

	ec := kepler(m, sincos)
	ec = trueAnomalyScale * tan32(ec*0.5)
	ec = 2 * r2d * atan32(ec)
	lambdaSun := FixAngle(ec + elongP)

	// Moon
	ml := FixAngle(fma32(13.1763966, dayF, mmLong))
	mm := FixAngle(ml - fma32(0.1114041, dayF, mmLongP))
	ev := 1.2739 * math.Sin32(d2r*(2*(ml-lambdaSun)-mm))
	ae := 0.1858 * sinM
	a3 := 0.37 * sinM

	return moonState{
		sinM:      sinM,
		lambdaSun: lambdaSun,
		ml:        ml,
		ev:        ev,
		ae:        ae,
		mmp:       mm + ev - ae - a3,
	}
}

// illumination finishes the pipeline from the equation of the centre
// (mEc) and the fourth correction (a4).
func (s moonState) illumination(mEc, a4 float32) float32 {
	lP := s.ml + s.ev + mEc - s.ae + a4
	lPP := fma32(0.6583, math.Sin32(2*d2r*(lP-s.lambdaSun)), lP)
	moonAge := lPP - s.lambdaSun

	phase := fma32(-0.5, math.Cos32(moonAge*d2r), 0.5)
	// The polynomial cosine can overshoot ±1 by an ulp.
	return min(max(phase, 0), 1)
}

// BaseMoonPhase returns the Moon's illuminated fraction at noon UT of the
// given Gregorian date, 0 for new and 1 for full, using the scalar kernels.
func BaseMoonPhase(year, month, day uint32) float32 {
	s := moonPrelude(year, month, day, math.BaseSinCosFast)
	mEc := 6.2886 * math.Sin32(d2r*s.mmp)
	a4 := 0.214 * math.Sin32(2*d2r*s.mmp)
	return s.illumination(mEc, a4)
}

// MoonPhase_F32x2 is BaseMoonPhase with the two smallest corrections
// evaluated by one lane-pair sine.
func MoonPhase_F32x2(year, month, day uint32) float32 {
	s := moonPrelude(year, month, day, math.SinCosFast_F32x2)

	args := hwy.Mul(hwy.Set(s.mmp), hwy.Make(d2r, 2*d2r))
	terms := hwy.Mul(math.Sin_F32x2(args), hwy.Make[float32](6.2886, 0.214))
	return s.illumination(terms.Lane(0), terms.Lane(1))
}

func tan32(x float32) float32 {
	return float32(stdmath.Tan(float64(x)))
}

func atan32(x float32) float32 {
	return float32(stdmath.Atan(float64(x)))
}

func floor32(x float32) float32 {
	return float32(stdmath.Floor(float64(x)))
}
