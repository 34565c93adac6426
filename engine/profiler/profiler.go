package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Stats is one reporting interval's measurements.
type Stats struct {
	FPS         float64 // render frames per second
	TPS         float64 // engine ticks per second
	HeapMB      float64 // live heap
	AllocRateMB float64 // heap allocation rate per second
	NumGC       uint32
	SysMB       float64 // memory obtained from the OS
}

// Profiler tracks render frame rate, engine tick rate and memory statistics.
// Frames and ticks are counted from different goroutines; it is safe for concurrent use.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64

	now    func() time.Time
	report func(Stats)
}

// NewProfiler creates a new Profiler that logs once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		updateInterval: time.Second,
		now:            time.Now,
		report:         logStats,
	}
	p.lastTime = p.now()
	return p
}

// TickEngine counts one engine tick.
func (p *Profiler) TickEngine() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickCount++
}

// Tick should be called once per render frame. Reports statistics when the update
// interval has elapsed.
//
// Returns:
//   - bool: true if stats were reported this frame, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	secs := elapsed.Seconds()
	stats := Stats{
		FPS:         float64(p.frameCount) / secs,
		TPS:         float64(p.tickCount) / secs,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / secs,
		NumGC:       p.memStats.NumGC,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}
	p.report(stats)

	p.frameCount = 0
	p.tickCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

func logStats(s Stats) {
	log.Printf("[Profiler] FPS: %.2f | TPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d | Sys: %.2f MB",
		s.FPS, s.TPS, s.HeapMB, s.AllocRateMB, s.NumGC, s.SysMB)
}
