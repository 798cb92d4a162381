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

// Local mean time of the two events used as the first approximation.
const (
	sunriseHour float32 = 6
	sunsetHour  float32 = 18
)

// sunEventHours returns the UTC hour in [0, 24) of sunrise (or sunset) on
// dayOfYear at the given latitude and longitude in degrees. It returns NaN
// when the Sun does not cross the horizon that day.
func sunEventHours(dayOfYear uint32, lat, lon float32, sunrise bool) float32 {
	latRad := lat * d2r
	lnHour := lon * hoursPerDegree

	dHours := sunsetHour
	if sunrise {
		dHours = sunriseHour
	}
	t := fma32(dHours-lnHour, daysPerHour, float32(dayOfYear))

	// Sun's mean anomaly and true longitude
	m := fma32(0.9856, t, -3.289)
	mRad := m * d2r
	center := 1.916*math.Sin32(mRad) + 0.02*math.Sin32(2*mRad)
	l := Align360(m + center + 282.634)
	lRad := l * d2r

	// Right ascension, moved into the same quadrant as l, in hours
	ra := Align360(r2d * atan32(0.91764*tan32(lRad)))
	lQ := floor32(l*(1.0/90)) * 90
	raQ := floor32(ra*(1.0/90)) * 90
	ra = (ra + lQ - raQ) * hoursPerDegree

	// Declination and local hour angle
	sinDec := 0.39782 * math.Sin32(lRad)
	cosDec := math.Cos32(math.Asin32(sinDec))
	sinLat, cosLat := math.SinCos32(latRad)
	cosH := fma32(-sinDec, sinLat, cosZenith) / (cosDec * cosLat)

	acosH := math.Acos32(cosH)
	var h float32
	if sunrise {
		h = fma32(-r2d, acosH, 360)
	} else {
		h = r2d * acosH
	}

	hour := fma32(h, hoursPerDegree, ra) + fma32(-0.06571, t, -6.622)
	return Align24(Align24(hour) - lnHour)
}

// sunEventHours_F32x2 computes sunrise (lane 0) and sunset (lane 1) UTC
// hours together. Only the final ±acos combination is done per lane.
func sunEventHours_F32x2(dayOfYear uint32, lat, lon float32) hwy.Vec[float32] {
	latRad := lat * d2r
	lnHour := lon * hoursPerDegree
	lnHourV := hwy.Set(lnHour)

	dHours := hwy.Make(sunriseHour, sunsetHour)
	t := hwy.FMA(hwy.Sub(dHours, lnHourV), hwy.Set(daysPerHour), hwy.Set(float32(dayOfYear)))

	// Sun's mean anomaly and true longitude
	m := hwy.FMA(hwy.Set[float32](0.9856), t, hwy.Set[float32](-3.289))
	mRad := hwy.Mul(m, hwy.Set(d2r))
	center := hwy.Add(
		hwy.Mul(hwy.Set[float32](1.916), math.Sin_F32x2(mRad)),
		hwy.Mul(hwy.Set[float32](0.02), math.Sin_F32x2(hwy.Add(mRad, mRad))))
	l := Align360_F32x2(hwy.Add(hwy.Add(m, center), hwy.Set[float32](282.634)))
	lRad := hwy.Mul(l, hwy.Set(d2r))

	// Right ascension, moved into the same quadrant as l, in hours
	ra := hwy.Make(
		atan32(0.91764*tan32(lRad.Lane(0))),
		atan32(0.91764*tan32(lRad.Lane(1))))
	ra = Align360_F32x2(hwy.Mul(hwy.Set(r2d), ra))
	quarter := hwy.Set[float32](1.0 / 90)
	ninety := hwy.Set[float32](90)
	lQ := hwy.Mul(hwy.Floor(hwy.Mul(l, quarter)), ninety)
	raQ := hwy.Mul(hwy.Floor(hwy.Mul(ra, quarter)), ninety)
	ra = hwy.Mul(hwy.Sub(hwy.Add(ra, lQ), raQ), hwy.Set(hoursPerDegree))

	// Declination and local hour angle
	sinDec := hwy.Mul(hwy.Set[float32](0.39782), math.Sin_F32x2(lRad))
	cosDec := math.Cos_F32x2(math.Asin_F32x2(sinDec))
	sinCosLat := math.SinCosFast_F32x2(latRad)
	cosH := hwy.Div(
		hwy.FMA(hwy.Neg(sinDec), hwy.Set(sinCosLat.Lane(0)), hwy.Set(cosZenith)),
		hwy.Mul(cosDec, hwy.Set(sinCosLat.Lane(1))))

	// Sunrise takes 360 - acos(H), sunset +acos(H).
	acosH := math.Acos_F32x2(cosH)
	h := hwy.Make(fma32(-r2d, acosH.Lane(0), 360), r2d*acosH.Lane(1))

	hour := hwy.Add(
		hwy.FMA(h, hwy.Set(hoursPerDegree), ra),
		hwy.FMA(hwy.Set[float32](-0.06571), t, hwy.Set[float32](-6.622)))
	return Align24_F32x2(hwy.Sub(Align24_F32x2(hour), lnHourV))
}

// utcSeconds truncates an hour of the day to whole seconds. NaN (no event)
// becomes 0, matching hwy.ConvertToUint32.
func utcSeconds(hour float32) uint32 {
	s := hour * secondsPerHour
	if !(s >= 1) {
		return 0
	}
	return min(uint32(s), secondsPerDay-1)
}

// BaseSunriseSunset returns the packed UTC sunrise and sunset seconds of
// day for dayOfYear and a packed location, computing each event in its own
// scalar pass.
func BaseSunriseSunset(dayOfYear uint32, location uint64) uint64 {
	lat, lon := UnpackLocation(location)
	return PackTimeRange(
		utcSeconds(sunEventHours(dayOfYear, lat, lon, true)),
		utcSeconds(sunEventHours(dayOfYear, lat, lon, false)),
	)
}

// SunriseSunset_F32x2 is BaseSunriseSunset with sunrise and sunset carried
// as the two lanes of every intermediate.
func SunriseSunset_F32x2(dayOfYear uint32, location uint64) uint64 {
	lat, lon := UnpackLocation(location)
	hours := sunEventHours_F32x2(dayOfYear, lat, lon)
	secs := hwy.ConvertToUint32(hwy.Mul(hours, hwy.Set(secondsPerHour)))
	secs = hwy.Min(secs, hwy.Set[uint32](secondsPerDay-1))
	return PackTimeRange(secs.Lane(0), secs.Lane(1))
}

// baseSunHours is the scalar strategy of the hour-level pipeline.
func baseSunHours(dayOfYear uint32, lat, lon float32) hwy.Vec[float32] {
	return hwy.Make(
		sunEventHours(dayOfYear, lat, lon, true),
		sunEventHours(dayOfYear, lat, lon, false),
	)
}

// isNaN32 reports whether x is NaN.
func isNaN32(x float32) bool {
	return stdmath.IsNaN(float64(x))
}
