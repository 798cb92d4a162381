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

	"github.com/go-highway/astro/hwy/contrib/workerpool"
)

// PhaseTable returns the Moon phase of days consecutive dates beginning at
// start. The dates are evaluated on pool; a nil pool runs them in the
// calling goroutine.
func PhaseTable(pool *workerpool.Pool, start Date, days int) ([]float32, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("astro: negative table length %d", days)
	}
	if days > 0 {
		if err := start.AddDays(days - 1).Validate(); err != nil {
			return nil, err
		}
	}

	phases := make([]float32, days)
	workerpool.Fill(pool, phases, func(i int) float32 {
		d := start.AddDays(i)
		return MoonPhase(uint32(d.Year), uint32(d.Month), uint32(d.Day))
	})
	return phases, nil
}

// SunTable returns the UTC sunrise and sunset for every day of year at loc.
// Entry i holds day of year i+1. Days without a sunrise or sunset hold the
// zero TimeRange.
func SunTable(pool *workerpool.Pool, year int, loc Location) ([]TimeRange, error) {
	if err := (Date{Year: year, Month: 1, Day: 1}).Validate(); err != nil {
		return nil, err
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	packed := loc.Pack()
	table := make([]TimeRange, DaysInYear(year))
	workerpool.Fill(pool, table, func(i int) TimeRange {
		return TimeRangeOf(SunriseSunsetRange(uint32(i+1), packed))
	})
	return table, nil
}
