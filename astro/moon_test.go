package astro

import (
	stdmath "math"
	"testing"
)

type moonFunc func(year, month, day uint32) float32

var moonStrategies = []struct {
	name  string
	phase moonFunc
}{
	{"scalar", BaseMoonPhase},
	{"lane-pair", MoonPhase_F32x2},
}

func phaseOn(f moonFunc, d Date) float32 {
	return f(uint32(d.Year), uint32(d.Month), uint32(d.Day))
}

func TestMoonPhaseBounded(t *testing.T) {
	start := Date{Year: 2020, Month: 1, Day: 1}
	for _, s := range moonStrategies {
		t.Run(s.name, func(t *testing.T) {
			for i := 0; i < 3653; i++ {
				d := start.AddDays(i)
				if p := phaseOn(s.phase, d); !(p >= 0 && p <= 1) {
					t.Fatalf("%s: phase %g outside [0, 1]", d, p)
				}
			}
		})
	}
}

func TestMoonPhasePeriod(t *testing.T) {
	start := Date{Year: 2015, Month: 1, Day: 1}
	for _, s := range moonStrategies {
		t.Run(s.name, func(t *testing.T) {
			phases := make([]float32, 3653)
			for i := range phases {
				phases[i] = phaseOn(s.phase, start.AddDays(i))
			}

			var maxima []int
			for i := 1; i+1 < len(phases); i++ {
				if phases[i] > phases[i-1] && phases[i] >= phases[i+1] {
					maxima = append(maxima, i)
				}
			}
			if len(maxima) < 120 {
				t.Fatalf("found %d full moons in 10 years", len(maxima))
			}
			for i := 1; i < len(maxima); i++ {
				gap := float64(maxima[i] - maxima[i-1])
				if stdmath.Abs(gap-29.53) > 1 {
					t.Errorf("full moons on %s and %s are %g days apart",
						start.AddDays(maxima[i-1]), start.AddDays(maxima[i]), gap)
				}
			}
		})
	}
}

func TestMoonPhaseKnownDates(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		min, max float32
	}{
		{"new moon", Date{2023, 1, 21}, 0, 0.05},
		{"first quarter", Date{2023, 1, 28}, 0.45, 0.55},
		{"full moon", Date{2023, 2, 5}, 0.95, 1},
		{"third quarter", Date{2023, 2, 13}, 0.45, 0.55},
		{"full moon 2024", Date{2024, 3, 25}, 0.95, 1},
		{"new moon 2024", Date{2024, 4, 8}, 0, 0.05},
	}
	for _, s := range moonStrategies {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				if p := phaseOn(s.phase, tt.date); p < tt.min || p > tt.max {
					t.Errorf("%s: phase %g, want [%g, %g]", tt.date, p, tt.min, tt.max)
				}
			})
		}
	}
}

func TestMoonStrategiesAgree(t *testing.T) {
	start := Date{Year: 1990, Month: 1, Day: 1}
	for i := 0; i < 20000; i += 7 {
		d := start.AddDays(i)
		a := phaseOn(BaseMoonPhase, d)
		b := phaseOn(MoonPhase_F32x2, d)
		if diff := stdmath.Abs(float64(a - b)); diff > 1e-4 {
			t.Errorf("%s: scalar %g, lane-pair %g", d, a, b)
		}
	}
}

func BenchmarkMoonPhase(b *testing.B) {
	for _, s := range moonStrategies {
		b.Run(s.name, func(b *testing.B) {
			var sink float32
			for i := 0; i < b.N; i++ {
				sink += s.phase(2024, 4, uint32(1+i%28))
			}
			_ = sink
		})
	}
}
