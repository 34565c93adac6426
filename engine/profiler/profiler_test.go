package profiler

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestProfilerReportsRates(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var reports []Stats

	p := NewProfiler()
	p.now = clock.now
	p.lastTime = clock.t
	p.report = func(s Stats) { reports = append(reports, s) }

	for i := 0; i < 30; i++ {
		p.TickEngine()
	}
	for i := 0; i < 119; i++ {
		clock.t = clock.t.Add(5 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	clock.t = time.Unix(2, 0)
	if !p.Tick() {
		t.Fatalf("expected a report after the interval elapsed")
	}

	if len(reports) != 1 {
		t.Fatalf("reports = %d", len(reports))
	}
	if math.Abs(reports[0].FPS-60) > 1e-9 || math.Abs(reports[0].TPS-15) > 1e-9 {
		t.Errorf("fps/tps = %v/%v, want 60/15", reports[0].FPS, reports[0].TPS)
	}

	// Counters restart after a report.
	clock.t = clock.t.Add(time.Second)
	p.Tick()
	if len(reports) != 2 || reports[1].FPS != 1 || reports[1].TPS != 0 {
		t.Errorf("second report = %+v", reports[len(reports)-1])
	}
}
