package astro

import (
	stdmath "math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-highway/astro/hwy"
	"github.com/go-highway/astro/internal/log"
)

func TestKeplerSolvesEquation(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log.SetLogger(zap.New(core))
	defer log.SetLogger(nil)

	for deg := float32(0); deg < 360; deg += 0.5 {
		e := float64(Kepler(deg))
		m := float64(deg) * stdmath.Pi / 180
		if r := e - float64(eccent)*stdmath.Sin(e) - m; stdmath.Abs(r) > 1e-5 {
			t.Errorf("Kepler(%g) = %g, residual %g", deg, e, r)
		}
	}
	if n := logs.Len(); n != 0 {
		t.Errorf("converging inputs logged %d warnings", n)
	}
}

func TestKeplerIterationCap(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log.SetLogger(zap.New(core))
	defer log.SetLogger(nil)

	// A derivative this steep keeps every Newton step tiny, so the residual
	// never drops below the tolerance.
	stuck := func(float32) hwy.Vec[float32] { return hwy.Make[float32](1, 1e7) }
	e := kepler(30, stuck)
	if isNaN32(e) {
		t.Fatalf("kepler returned NaN")
	}

	entries := logs.FilterMessage("kepler: iteration cap reached").AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("got %d cap warnings, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["iterations"]; got != int64(keplerMaxIterations) {
		t.Errorf("iterations field = %v, want %d", got, keplerMaxIterations)
	}
}

func BenchmarkKepler(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += Kepler(float32(i % 360))
	}
	_ = sink
}
