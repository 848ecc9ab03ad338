package memory

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMetricsCreation(t *testing.T) {
	m := NewMetrics(100)
	if m == nil {
		t.Fatal("Metrics should not be nil")
	}

	if m.GetPageFaults() != 0 {
		t.Errorf("Expected page faults 0, got %d", m.GetPageFaults())
	}

	if m.GetFaultRate() != 0 {
		t.Errorf("Expected fault rate 0 before any reference, got %.2f", m.GetFaultRate())
	}
}

func TestStepMetrics(t *testing.T) {
	m := NewMetrics(100)

	m.RecordStep(Step{Page: 1, Fault: true})
	m.RecordStep(Step{Page: 2, Fault: true, Evicted: 1, HasEvicted: true})
	m.RecordStep(Step{Page: 2})

	if m.GetReferences() != 3 {
		t.Errorf("Expected 3 references, got %d", m.GetReferences())
	}
	if m.GetPageFaults() != 2 {
		t.Errorf("Expected 2 faults, got %d", m.GetPageFaults())
	}
	if m.GetPageHits() != 1 {
		t.Errorf("Expected 1 hit, got %d", m.GetPageHits())
	}
	if m.GetEvictions() != 1 {
		t.Errorf("Expected 1 eviction, got %d", m.GetEvictions())
	}

	rate := m.GetFaultRate()
	expected := 2.0 / 3.0
	if rate < expected-0.01 || rate > expected+0.01 {
		t.Errorf("Expected fault rate %.2f, got %.2f", expected, rate)
	}
}

func TestAllocationMetrics(t *testing.T) {
	m := NewMetrics(100)

	m.RecordAllocation()
	m.RecordAllocation()
	m.RecordAllocationFailure()
	m.RecordCompaction()

	if m.GetAllocations() != 2 {
		t.Errorf("Expected 2 allocations, got %d", m.GetAllocations())
	}
	if m.GetAllocationFailures() != 1 {
		t.Errorf("Expected 1 failure, got %d", m.GetAllocationFailures())
	}
	if m.GetCompactions() != 1 {
		t.Errorf("Expected 1 compaction, got %d", m.GetCompactions())
	}
}

func TestHistogramPercentiles(t *testing.T) {
	h := NewHistogram(1000)
	for i := 1; i <= 100; i++ {
		h.Record(float64(i))
	}

	if h.Count() != 100 {
		t.Errorf("Expected 100 samples, got %d", h.Count())
	}

	p50 := h.Percentile(50)
	if p50 < 50 || p50 > 51 {
		t.Errorf("Expected p50 around 50.5, got %.2f", p50)
	}

	if mean := h.Mean(); mean != 50.5 {
		t.Errorf("Expected mean 50.5, got %.2f", mean)
	}
}

func TestHistogramBounded(t *testing.T) {
	h := NewHistogram(10)
	for i := 0; i < 25; i++ {
		h.Record(float64(i))
	}

	if h.Count() != 10 {
		t.Errorf("Expected histogram capped at 10 samples, got %d", h.Count())
	}

	h.Reset()
	if h.Count() != 0 || h.Percentile(99) != 0 {
		t.Error("Expected empty histogram after reset")
	}
}

func TestSimulationLatency(t *testing.T) {
	m := NewMetrics(100)
	m.RecordSimulation(150 * time.Microsecond)
	m.RecordSimulation(250 * time.Microsecond)

	if m.GetSimulations() != 2 {
		t.Errorf("Expected 2 simulations, got %d", m.GetSimulations())
	}

	snap := m.GetSimulationLatency()
	if snap.Count != 2 || snap.Mean != 200 {
		t.Errorf("Unexpected latency snapshot %+v", snap)
	}
}

func TestLogMetrics(t *testing.T) {
	m := NewMetrics(100)
	m.RecordStep(Step{Fault: true})
	m.RecordAllocation()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m.LogMetrics(logger)

	out := buf.String()
	for _, want := range []string{"Simulator Metrics", "paging.faults=1", "allocation.allocations=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got %s", want, out)
		}
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics(100)
	m.RecordStep(Step{Fault: true, HasEvicted: true})
	m.RecordAllocationFailure()
	m.RecordSimulation(time.Millisecond)

	m.Reset()

	if m.GetPageFaults() != 0 || m.GetEvictions() != 0 || m.GetAllocationFailures() != 0 {
		t.Error("Counters should be zero after reset")
	}
	if m.GetSimulationLatency().Count != 0 {
		t.Error("Latency histogram should be empty after reset")
	}
}
