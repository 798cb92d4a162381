package astro

import (
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

func TestToJulianDayAnchor(t *testing.T) {
	tests := []struct {
		y, m, d uint32
		want    uint64
	}{
		{2000, 1, 1, 2451545},
		{1970, 1, 1, 2440588},
		{1858, 11, 17, 2400001},
		{2024, 2, 29, 2460370},
	}
	for _, tt := range tests {
		if got := ToJulianDay(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("ToJulianDay(%d, %d, %d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestToJulianDayMatchesMeeus(t *testing.T) {
	prev := ToJulianDay(1599, 12, 31)
	for y := 1600; y <= 2400; y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= daysIn(y, m); d++ {
				got := ToJulianDay(uint32(y), uint32(m), uint32(d))
				if got != prev+1 {
					t.Fatalf("%04d-%02d-%02d: JDN %d does not follow %d", y, m, d, got, prev)
				}
				prev = got

				// meeus returns the Julian date at 0h; the day number is at noon.
				want := uint64(julian.CalendarGregorianToJD(y, m, float64(d)) + 0.5)
				if got != want {
					t.Fatalf("%04d-%02d-%02d: got %d, meeus %d", y, m, d, got, want)
				}
			}
		}
	}
}

func TestDateDayOfYear(t *testing.T) {
	for d := (Date{2023, 1, 1}); d.Year < 2025; d = d.AddDays(1) {
		want := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).YearDay()
		if got := d.DayOfYear(); got != want {
			t.Fatalf("%s: DayOfYear = %d, want %d", d, got, want)
		}
		if d.JulianDay() != ToJulianDay(uint32(d.Year), uint32(d.Month), uint32(d.Day)) {
			t.Fatalf("%s: JulianDay disagrees with ToJulianDay", d)
		}
	}
}
