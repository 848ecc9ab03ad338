package memory

import (
	"strings"
)

// ReplacementPolicy selects which resident page is evicted on a fault
type ReplacementPolicy int

const (
	FIFO ReplacementPolicy = iota
	LRU
	Optimal
)

// ReplacementPolicies lists every replacement policy in presentation order
var ReplacementPolicies = []ReplacementPolicy{FIFO, LRU, Optimal}

func (p ReplacementPolicy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Optimal:
		return "Optimal"
	default:
		return "Unknown"
	}
}

// ParseReplacementPolicy maps "FIFO", "lru", "optimal"/"opt" to a policy
func ParseReplacementPolicy(name string) (ReplacementPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "optimal", "opt":
		return Optimal, nil
	default:
		return FIFO, ErrUnknownPolicy("ParseReplacementPolicy", name)
	}
}

// Step describes what happened when one reference was replayed
type Step struct {
	Index      int   // Position in the reference stream
	Page       int   // Referenced page
	Fault      bool  // Page was not resident
	Evicted    int   // Page removed to make room (valid if HasEvicted)
	HasEvicted bool  // An eviction took place
	Frames     []int // Resident pages after the reference (Trace only)
}

// FrameSet is the set of resident pages for one simulation run.
// It is built over an immutable reference stream and replayed one
// index at a time, in order. Its size never exceeds the frame count.
type FrameSet interface {
	// Reference replays pages[i]
	Reference(i int) Step

	// Resident returns a copy of the resident pages in policy order
	// (arrival order for FIFO, least recently used first for LRU)
	Resident() []int

	// Len returns the number of resident pages
	Len() int
}

// NewFrameSet creates the frame set for policy over the reference stream.
// frameCount must be at least 1.
func NewFrameSet(policy ReplacementPolicy, pages []int, frameCount int) FrameSet {
	switch policy {
	case LRU:
		return NewLRUFrames(pages, frameCount)
	case Optimal:
		return NewOptimalFrames(pages, frameCount)
	default:
		return NewFIFOFrames(pages, frameCount)
	}
}

// Simulate replays pages against frameCount frames and returns the number
// of page faults. An empty stream yields zero faults.
func Simulate(pages []int, frameCount int, policy ReplacementPolicy) int {
	frames := NewFrameSet(policy, pages, frameCount)
	faults := 0
	for i := range pages {
		if frames.Reference(i).Fault {
			faults++
		}
	}
	return faults
}

// Trace replays pages like Simulate but records every step together with
// the resident pages after it.
func Trace(pages []int, frameCount int, policy ReplacementPolicy) []Step {
	frames := NewFrameSet(policy, pages, frameCount)
	steps := make([]Step, 0, len(pages))
	for i := range pages {
		step := frames.Reference(i)
		step.Frames = frames.Resident()
		steps = append(steps, step)
	}
	return steps
}

// CountFaults returns the number of faulting steps in a trace
func CountFaults(steps []Step) int {
	faults := 0
	for _, s := range steps {
		if s.Fault {
			faults++
		}
	}
	return faults
}
