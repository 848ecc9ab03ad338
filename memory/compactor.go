package memory

// Compact slides every allocated (positive) block to the front, keeping
// their relative order, and merges all free space into one trailing entry.
//
// The trailing entry uses the same encoding as the input: a non-positive
// value whose magnitude is the free total. It is appended even when the
// total is zero, so len(result) == count(positive)+1. blocks is not modified.
func Compact(blocks []int) []int {
	compacted := make([]int, 0, len(blocks)+1)
	free := 0
	for _, block := range blocks {
		if block > 0 {
			compacted = append(compacted, block)
		} else {
			free += -block
		}
	}
	return append(compacted, -free)
}

// FreeSpace returns the total magnitude of the free (non-positive) entries
func FreeSpace(blocks []int) int {
	free := 0
	for _, block := range blocks {
		if block <= 0 {
			free += -block
		}
	}
	return free
}

// Fragmentation reports external fragmentation of a block list as
// 1 - largestGap/totalFree. Zero means all free space is already one gap.
func Fragmentation(blocks []int) float64 {
	total := 0
	largest := 0
	for _, block := range blocks {
		if block > 0 {
			continue
		}
		gap := -block
		total += gap
		if gap > largest {
			largest = gap
		}
	}
	if total == 0 {
		return 0.0
	}
	return 1.0 - float64(largest)/float64(total)
}
