package memory

import (
	"slices"
	"sync"
)

// PolicyResult is the outcome of one replacement policy in a comparison
type PolicyResult struct {
	Policy    ReplacementPolicy
	Faults    int
	Hits      int
	FaultRate float64
}

// ComparePolicies runs each policy over the same reference stream in its
// own goroutine. Every run builds its own frame set; pages is only read.
// Results are returned in argument order. With no policies given, all
// replacement policies are compared.
func ComparePolicies(pages []int, frameCount int, policies ...ReplacementPolicy) []PolicyResult {
	if len(policies) == 0 {
		policies = ReplacementPolicies
	}

	results := make([]PolicyResult, len(policies))
	var wg sync.WaitGroup
	for i, policy := range policies {
		wg.Add(1)
		go func(i int, policy ReplacementPolicy) {
			defer wg.Done()

			faults := Simulate(pages, frameCount, policy)
			r := PolicyResult{
				Policy: policy,
				Faults: faults,
				Hits:   len(pages) - faults,
			}
			if len(pages) > 0 {
				r.FaultRate = float64(faults) / float64(len(pages))
			}
			results[i] = r
		}(i, policy)
	}
	wg.Wait()

	return results
}

// FitResult is the outcome of one fit policy in a comparison
type FitResult struct {
	Policy FitPolicy
	Index  int   // Chosen block or NoFit
	Blocks []int // Block list after the allocation
}

// CompareFits allocates size under each policy, each against its own copy
// of blocks. The caller's slice is never modified. With no policies given,
// all fit policies are compared.
func CompareFits(blocks []int, size int, lastPosition int, policies ...FitPolicy) []FitResult {
	if len(policies) == 0 {
		policies = FitPolicies
	}

	results := make([]FitResult, len(policies))
	var wg sync.WaitGroup
	for i, policy := range policies {
		wg.Add(1)
		go func(i int, policy FitPolicy) {
			defer wg.Done()

			working := slices.Clone(blocks)
			idx := Allocate(working, size, policy, lastPosition)
			results[i] = FitResult{Policy: policy, Index: idx, Blocks: working}
		}(i, policy)
	}
	wg.Wait()

	return results
}
