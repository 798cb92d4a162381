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

	"github.com/soniakeys/meeus/v3/julian"
)

// Supported year range for Date. ToJulianDay works on unsigned years, so
// year 0 and earlier are excluded.
const (
	minYear = 1
	maxYear = 9999
)

// Date is a proleptic Gregorian calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: int(m), Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate reports whether d is a real calendar date in the supported
// year range.
func (d Date) Validate() error {
	if d.Year < minYear || d.Year > maxYear {
		return fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidDate, d.Year, minYear, maxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if n := daysIn(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return fmt.Errorf("%w: %s has day %d, month has %d days", ErrInvalidDate, d, d.Day, n)
	}
	return nil
}

// DayOfYear returns the 1-based day number of d within its year.
func (d Date) DayOfYear() int {
	return julian.DayOfYearGregorian(d.Year, d.Month, d.Day)
}

// JulianDay returns the Julian Day Number of d.
func (d Date) JulianDay() uint64 {
	return ToJulianDay(uint32(d.Year), uint32(d.Month), uint32(d.Day))
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, time.Month(d.Month), d.Day+n, 12, 0, 0, 0, time.UTC))
}

// DaysInYear returns 366 for Gregorian leap years and 365 otherwise.
func DaysInYear(year int) int {
	if julian.LeapYearGregorian(year) {
		return 366
	}
	return 365
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysIn(year, month int) int {
	if month == 2 && julian.LeapYearGregorian(year) {
		return 29
	}
	return monthDays[month]
}
