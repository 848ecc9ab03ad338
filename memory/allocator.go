package memory

import (
	"strings"
)

// NoFit is returned by every fit policy when no block can hold the request
const NoFit = -1

// FitPolicy selects which free block satisfies an allocation request
type FitPolicy int

const (
	FirstFit FitPolicy = iota
	BestFit
	WorstFit
	NextFit
)

// FitPolicies lists every fit policy in presentation order
var FitPolicies = []FitPolicy{FirstFit, BestFit, WorstFit, NextFit}

func (p FitPolicy) String() string {
	switch p {
	case FirstFit:
		return "First-Fit"
	case BestFit:
		return "Best-Fit"
	case WorstFit:
		return "Worst-Fit"
	case NextFit:
		return "Next-Fit"
	default:
		return "Unknown-Fit"
	}
}

// ParseFitPolicy maps a policy name ("First-Fit", "best", ...) to a FitPolicy
func ParseFitPolicy(name string) (FitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first-fit", "firstfit", "first":
		return FirstFit, nil
	case "best-fit", "bestfit", "best":
		return BestFit, nil
	case "worst-fit", "worstfit", "worst":
		return WorstFit, nil
	case "next-fit", "nextfit", "next":
		return NextFit, nil
	default:
		return FirstFit, ErrUnknownPolicy("ParseFitPolicy", name)
	}
}

// Allocator places requests into a block list.
// Implementations mutate blocks in place: on success exactly one entry
// shrinks by size, on NoFit nothing changes.
type Allocator interface {
	// Allocate returns the chosen block index or NoFit
	Allocate(blocks []int, size int) int

	// Policy reports the fit policy in use
	Policy() FitPolicy
}

// NewAllocator creates an allocator for the given policy.
// lastPosition is only used by Next-Fit.
func NewAllocator(policy FitPolicy, lastPosition int) Allocator {
	if policy == NextFit {
		return NewNextFitCursor(lastPosition)
	}
	return stateless(policy)
}

type stateless FitPolicy

func (s stateless) Allocate(blocks []int, size int) int {
	return Allocate(blocks, size, FitPolicy(s), 0)
}

func (s stateless) Policy() FitPolicy {
	return FitPolicy(s)
}

// NextFitCursor keeps the Next-Fit resume position between calls
type NextFitCursor struct {
	position int
}

// NewNextFitCursor creates a cursor starting at position
func NewNextFitCursor(position int) *NextFitCursor {
	return &NextFitCursor{position: position}
}

// Allocate runs Next-Fit from the cursor and moves it to the chosen block
func (c *NextFitCursor) Allocate(blocks []int, size int) int {
	idx := NextFitAllocate(blocks, size, c.position)
	if idx != NoFit {
		c.position = idx
	}
	return idx
}

func (c *NextFitCursor) Policy() FitPolicy {
	return NextFit
}

// Position returns the index the next scan starts from
func (c *NextFitCursor) Position() int {
	return c.position
}

// Allocate dispatches to the allocation routine for policy
func Allocate(blocks []int, size int, policy FitPolicy, lastPosition int) int {
	switch policy {
	case FirstFit:
		return FirstFitAllocate(blocks, size)
	case BestFit:
		return BestFitAllocate(blocks, size)
	case WorstFit:
		return WorstFitAllocate(blocks, size)
	case NextFit:
		return NextFitAllocate(blocks, size, lastPosition)
	default:
		return NoFit
	}
}

// FirstFitAllocate takes the first block large enough for size
func FirstFitAllocate(blocks []int, size int) int {
	for i := range blocks {
		if blocks[i] >= size {
			blocks[i] -= size
			return i
		}
	}
	return NoFit
}

// BestFitAllocate takes the block leaving the smallest remainder.
// Ties go to the lowest index.
func BestFitAllocate(blocks []int, size int) int {
	best := NoFit
	minDiff := 0
	for i := range blocks {
		if blocks[i] < size {
			continue
		}
		diff := blocks[i] - size
		if best == NoFit || diff < minDiff {
			minDiff = diff
			best = i
		}
	}
	if best != NoFit {
		blocks[best] -= size
	}
	return best
}

// WorstFitAllocate takes the block leaving the largest remainder.
// Ties go to the lowest index.
func WorstFitAllocate(blocks []int, size int) int {
	worst := NoFit
	maxDiff := -1
	for i := range blocks {
		if blocks[i] >= size && blocks[i]-size > maxDiff {
			maxDiff = blocks[i] - size
			worst = i
		}
	}
	if worst != NoFit {
		blocks[worst] -= size
	}
	return worst
}

// NextFitAllocate scans circularly starting at lastPosition and takes the
// first block large enough for size. Every index is examined at most once.
// An out-of-range lastPosition yields NoFit.
func NextFitAllocate(blocks []int, size int, lastPosition int) int {
	n := len(blocks)
	if lastPosition < 0 || lastPosition >= n {
		return NoFit
	}

	pos := lastPosition
	for {
		if blocks[pos] >= size {
			blocks[pos] -= size
			return pos
		}
		pos = (pos + 1) % n
		if pos == lastPosition {
			return NoFit
		}
	}
}
