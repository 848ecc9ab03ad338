package memory

import (
	"slices"
	"testing"
)

func TestComparePolicies(t *testing.T) {
	results := ComparePolicies(beladyStream, 3)

	if len(results) != len(ReplacementPolicies) {
		t.Fatalf("Expected %d results, got %d", len(ReplacementPolicies), len(results))
	}

	expected := map[ReplacementPolicy]int{FIFO: 9, LRU: 10, Optimal: 7}
	for i, r := range results {
		if r.Policy != ReplacementPolicies[i] {
			t.Errorf("Result %d: expected policy %s, got %s", i, ReplacementPolicies[i], r.Policy)
		}
		if r.Faults != expected[r.Policy] {
			t.Errorf("%s: expected %d faults, got %d", r.Policy, expected[r.Policy], r.Faults)
		}
		if r.Hits != len(beladyStream)-r.Faults {
			t.Errorf("%s: expected %d hits, got %d", r.Policy, len(beladyStream)-r.Faults, r.Hits)
		}
	}
}

func TestComparePoliciesSubset(t *testing.T) {
	results := ComparePolicies([]int{1, 2, 1}, 2, Optimal, FIFO)

	if len(results) != 2 || results[0].Policy != Optimal || results[1].Policy != FIFO {
		t.Fatalf("Unexpected results %+v", results)
	}
	rate := results[0].FaultRate
	if rate < 0.66 || rate > 0.67 {
		t.Errorf("Expected fault rate 2/3, got %.3f", rate)
	}
}

func TestComparePoliciesEmptyStream(t *testing.T) {
	for _, r := range ComparePolicies(nil, 3) {
		if r.Faults != 0 || r.FaultRate != 0 {
			t.Errorf("%s: expected no faults, got %+v", r.Policy, r)
		}
	}
}

func TestCompareFits(t *testing.T) {
	blocks := []int{100, 500, 200, 300, 600}
	results := CompareFits(blocks, 212, 2)

	expected := []struct {
		index int
		after []int
	}{
		{1, []int{100, 288, 200, 300, 600}},
		{3, []int{100, 500, 200, 88, 600}},
		{4, []int{100, 500, 200, 300, 388}},
		{3, []int{100, 500, 200, 88, 600}},
	}

	for i, r := range results {
		if r.Policy != FitPolicies[i] {
			t.Errorf("Result %d: expected %s, got %s", i, FitPolicies[i], r.Policy)
		}
		if r.Index != expected[i].index {
			t.Errorf("%s: expected index %d, got %d", r.Policy, expected[i].index, r.Index)
		}
		if !slices.Equal(r.Blocks, expected[i].after) {
			t.Errorf("%s: expected %v, got %v", r.Policy, expected[i].after, r.Blocks)
		}
	}

	if !slices.Equal(blocks, []int{100, 500, 200, 300, 600}) {
		t.Errorf("CompareFits modified the caller's blocks: %v", blocks)
	}
}
