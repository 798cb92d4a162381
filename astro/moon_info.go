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

// MoonInfo describes the Moon on a given date.
type MoonInfo struct {
	Phase  float32 // illuminated fraction, 0 new to 1 full
	Waxing bool    // the next day is brighter
	Name   string
}

// DescribeMoon returns the phase of d, whether the Moon is waxing and the
// conventional name of the phase.
func DescribeMoon(d Date) (MoonInfo, error) {
	phase, err := MoonPhaseOf(d)
	if err != nil {
		return MoonInfo{}, err
	}
	next := d.AddDays(1)
	waxing := MoonPhase(uint32(next.Year), uint32(next.Month), uint32(next.Day)) > phase
	return MoonInfo{
		Phase:  phase,
		Waxing: waxing,
		Name:   phaseName(phase, waxing),
	}, nil
}

func phaseName(phase float32, waxing bool) string {
	switch {
	case phase < 0.01:
		return "New Moon"
	case phase > 0.99:
		return "Full Moon"
	case phase >= 0.49 && phase <= 0.51:
		if waxing {
			return "First Quarter"
		}
		return "Third Quarter"
	case phase < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
