package memory

import (
	"log/slog"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Histogram tracks latency distribution with percentile support
type Histogram struct {
	samples []float64 // Latencies in microseconds
	mu      sync.RWMutex
	maxSize int  // Maximum samples to retain
	sorted  bool // Track if samples are sorted
}

// NewHistogram creates a new histogram with a max sample size
func NewHistogram(maxSize int) *Histogram {
	if maxSize <= 0 {
		maxSize = 10000 // Default: keep last 10k samples
	}
	return &Histogram{
		samples: make([]float64, 0, maxSize),
		maxSize: maxSize,
		sorted:  true,
	}
}

// Record adds a latency sample (in microseconds)
func (h *Histogram) Record(latencyUs float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// If at capacity, drop the oldest sample. Sorting reorders samples, so
	// "oldest" is only approximate once percentiles have been read.
	if len(h.samples) >= h.maxSize {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}

	h.samples = append(h.samples, latencyUs)
	h.sorted = false
}

// Percentile calculates the given percentile (0-100)
func (h *Histogram) Percentile(p float64) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.samples) == 0 {
		return 0
	}

	if !h.sorted {
		sort.Float64s(h.samples)
		h.sorted = true
	}

	rank := (p / 100.0) * float64(len(h.samples)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))

	if lower == upper {
		return h.samples[lower]
	}

	// Linear interpolation between lower and upper
	weight := rank - float64(lower)
	return h.samples[lower]*(1-weight) + h.samples[upper]*weight
}

// Mean calculates the average latency
func (h *Histogram) Mean() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range h.samples {
		sum += v
	}
	return sum / float64(len(h.samples))
}

// Count returns the number of samples
func (h *Histogram) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.samples)
}

// Reset clears all samples
func (h *Histogram) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.samples = h.samples[:0]
	h.sorted = true
}

// HistogramSnapshot holds point-in-time percentile statistics
type HistogramSnapshot struct {
	Count int
	Mean  float64
	P50   float64 // Median
	P95   float64
	P99   float64
}

// Snapshot captures current histogram statistics
func (h *Histogram) Snapshot() HistogramSnapshot {
	return HistogramSnapshot{
		Count: h.Count(),
		Mean:  h.Mean(),
		P50:   h.Percentile(50),
		P95:   h.Percentile(95),
		P99:   h.Percentile(99),
	}
}

// Metrics tracks simulator activity
type Metrics struct {
	// Allocation Metrics
	allocations        atomic.Uint64
	allocationFailures atomic.Uint64
	compactions        atomic.Uint64

	// Paging Metrics
	simulations atomic.Uint64
	references  atomic.Uint64
	pageFaults  atomic.Uint64
	pageHits    atomic.Uint64
	evictions   atomic.Uint64

	// Latency Histograms (microseconds)
	simulationLatency *Histogram

	startTime time.Time
	mu        sync.RWMutex
}

// NewMetrics creates a new metrics tracker
func NewMetrics(histogramSize int) *Metrics {
	return &Metrics{
		startTime:         time.Now(),
		simulationLatency: NewHistogram(histogramSize),
	}
}

// Allocation Metrics

func (m *Metrics) RecordAllocation() {
	m.allocations.Add(1)
}

func (m *Metrics) RecordAllocationFailure() {
	m.allocationFailures.Add(1)
}

func (m *Metrics) RecordCompaction() {
	m.compactions.Add(1)
}

// Paging Metrics

// RecordStep accounts for one replayed reference
func (m *Metrics) RecordStep(step Step) {
	m.references.Add(1)
	if !step.Fault {
		m.pageHits.Add(1)
		return
	}
	m.pageFaults.Add(1)
	if step.HasEvicted {
		m.evictions.Add(1)
	}
}

// RecordSimulation records one finished simulation run and its duration
func (m *Metrics) RecordSimulation(duration time.Duration) {
	m.simulations.Add(1)
	m.simulationLatency.Record(float64(duration.Microseconds()))
}

// Getters

func (m *Metrics) GetAllocations() uint64 {
	return m.allocations.Load()
}

func (m *Metrics) GetAllocationFailures() uint64 {
	return m.allocationFailures.Load()
}

func (m *Metrics) GetCompactions() uint64 {
	return m.compactions.Load()
}

func (m *Metrics) GetSimulations() uint64 {
	return m.simulations.Load()
}

func (m *Metrics) GetReferences() uint64 {
	return m.references.Load()
}

func (m *Metrics) GetPageFaults() uint64 {
	return m.pageFaults.Load()
}

func (m *Metrics) GetPageHits() uint64 {
	return m.pageHits.Load()
}

func (m *Metrics) GetEvictions() uint64 {
	return m.evictions.Load()
}

// GetFaultRate returns faults / references, or 0 before any reference
func (m *Metrics) GetFaultRate() float64 {
	faults := m.pageFaults.Load()
	refs := m.references.Load()
	if refs == 0 {
		return 0.0
	}
	return float64(faults) / float64(refs)
}

func (m *Metrics) GetUptime() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return time.Since(m.startTime)
}

// GetSimulationLatency returns snapshot of simulation latency distribution
func (m *Metrics) GetSimulationLatency() HistogramSnapshot {
	return m.simulationLatency.Snapshot()
}

// LogMetrics logs all metrics using structured logging
func (m *Metrics) LogMetrics(logger *slog.Logger) {
	latency := m.GetSimulationLatency()

	logger.Info("Simulator Metrics",
		slog.Group("allocation",
			slog.Uint64("allocations", m.GetAllocations()),
			slog.Uint64("failures", m.GetAllocationFailures()),
			slog.Uint64("compactions", m.GetCompactions()),
		),
		slog.Group("paging",
			slog.Uint64("simulations", m.GetSimulations()),
			slog.Uint64("references", m.GetReferences()),
			slog.Uint64("faults", m.GetPageFaults()),
			slog.Uint64("hits", m.GetPageHits()),
			slog.Uint64("evictions", m.GetEvictions()),
			slog.Float64("fault_rate", m.GetFaultRate()),
		),
		slog.Group("latency_us",
			slog.Group("simulation",
				slog.Int("count", latency.Count),
				slog.Float64("mean", latency.Mean),
				slog.Float64("p50", latency.P50),
				slog.Float64("p95", latency.P95),
				slog.Float64("p99", latency.P99),
			),
		),
		slog.Duration("uptime", m.GetUptime()),
	)
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.allocations.Store(0)
	m.allocationFailures.Store(0)
	m.compactions.Store(0)
	m.simulations.Store(0)
	m.references.Store(0)
	m.pageFaults.Store(0)
	m.pageHits.Store(0)
	m.evictions.Store(0)

	m.simulationLatency.Reset()

	m.mu.Lock()
	m.startTime = time.Now()
	m.mu.Unlock()
}
