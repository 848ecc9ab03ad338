package memory

import (
	"fmt"
	"log/slog"
	"time"
)

// Simulator is the session-level front of the simulation core. It validates
// caller input, owns the Next-Fit cursor across allocations and feeds
// metrics. The algorithms it calls stay pure.
//
// A Simulator is meant for a single caller; the cursor is not synchronized.
type Simulator struct {
	config  *Config
	logger  *slog.Logger
	metrics *Metrics // nil when metrics are disabled
	cursor  *NextFitCursor
}

// NewSimulator creates a simulator from a validated configuration
func NewSimulator(config *Config, logger *slog.Logger) (*Simulator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Simulator{
		config: config.Clone(),
		logger: logger,
		cursor: NewNextFitCursor(config.LastPosition),
	}
	if config.EnableMetrics {
		s.metrics = NewMetrics(config.HistogramSize)
	}
	return s, nil
}

// Config returns a copy of the simulator configuration
func (s *Simulator) Config() *Config {
	return s.config.Clone()
}

// Metrics returns the metrics tracker, or nil when metrics are disabled
func (s *Simulator) Metrics() *Metrics {
	return s.metrics
}

// LastPosition returns the block index the next Next-Fit scan starts from
func (s *Simulator) LastPosition() int {
	return s.cursor.Position()
}

// SetLastPosition moves the Next-Fit cursor
func (s *Simulator) SetLastPosition(position int) {
	s.cursor = NewNextFitCursor(position)
}

// Allocate places a request of size into blocks using policy.
// blocks is modified in place: on success exactly one entry shrinks by
// size. When nothing fits, blocks is left unchanged and an ErrCodeNoFit
// error is returned together with NoFit.
func (s *Simulator) Allocate(blocks []int, size int, policy FitPolicy) (int, error) {
	const op = "Allocate"

	if size <= 0 {
		s.logger.Warn("rejected allocation", "size", size, "policy", policy.String())
		return NoFit, ErrInvalidSize(op, size)
	}
	if policy == NextFit && len(blocks) > 0 {
		if pos := s.cursor.Position(); pos < 0 || pos >= len(blocks) {
			s.logger.Warn("rejected allocation", "last_position", pos, "blocks", len(blocks))
			return NoFit, ErrInvalidPosition(op, pos, len(blocks))
		}
	}

	var idx int
	if policy == NextFit {
		idx = s.cursor.Allocate(blocks, size)
	} else {
		idx = Allocate(blocks, size, policy, 0)
	}

	if idx == NoFit {
		if s.metrics != nil {
			s.metrics.RecordAllocationFailure()
		}
		s.logger.Info("allocation failed", "size", size, "policy", policy.String(), "blocks", len(blocks))
		return NoFit, ErrNoFit(op, size, policy)
	}

	if s.metrics != nil {
		s.metrics.RecordAllocation()
	}
	s.logger.Debug("allocated", "size", size, "policy", policy.String(), "index", idx, "remaining", blocks[idx])
	return idx, nil
}

// Compact returns the compacted form of blocks without modifying it
func (s *Simulator) Compact(blocks []int) []int {
	compacted := Compact(blocks)
	if s.metrics != nil {
		s.metrics.RecordCompaction()
	}
	s.logger.Debug("compacted", "blocks", len(blocks), "allocated", len(compacted)-1, "free", -compacted[len(compacted)-1])
	return compacted
}

// Replace replays pages against frameCount frames and returns the fault count
func (s *Simulator) Replace(pages []int, frameCount int, policy ReplacementPolicy) (int, error) {
	if frameCount < 1 {
		s.logger.Warn("rejected simulation", "frame_count", frameCount)
		return 0, ErrInvalidFrameCount("Replace", frameCount)
	}

	start := time.Now()
	frames := NewFrameSet(policy, pages, frameCount)
	faults := 0
	for i := range pages {
		step := frames.Reference(i)
		if step.Fault {
			faults++
		}
		if s.metrics != nil {
			s.metrics.RecordStep(step)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordSimulation(time.Since(start))
	}
	s.logger.Debug("simulated", "policy", policy.String(), "frames", frameCount, "references", len(pages), "faults", faults)
	return faults, nil
}

// Trace replays pages like Replace and returns every step
func (s *Simulator) Trace(pages []int, frameCount int, policy ReplacementPolicy) ([]Step, error) {
	if frameCount < 1 {
		return nil, ErrInvalidFrameCount("Trace", frameCount)
	}
	return Trace(pages, frameCount, policy), nil
}

// Compare runs every given replacement policy over the same stream
func (s *Simulator) Compare(pages []int, frameCount int, policies ...ReplacementPolicy) ([]PolicyResult, error) {
	if frameCount < 1 {
		return nil, ErrInvalidFrameCount("Compare", frameCount)
	}
	results := ComparePolicies(pages, frameCount, policies...)
	for _, r := range results {
		s.logger.Debug("compared", "policy", r.Policy.String(), "faults", r.Faults)
	}
	return results, nil
}

// LogMetrics writes the collected metrics to the simulator logger
func (s *Simulator) LogMetrics() {
	if s.metrics != nil {
		s.metrics.LogMetrics(s.logger)
	}
}
