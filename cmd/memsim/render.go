package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sibexico/MemSim/memory"
)

// renderBlocks draws a horizontal bar chart of a block list. Positive
// entries are drawn with '#', free (non-positive) entries with '.'.
// The longest bar is width characters wide.
func renderBlocks(w io.Writer, blocks []int, title string, width int) {
	fmt.Fprintln(w, title)

	largest := 0
	for _, b := range blocks {
		largest = max(largest, abs(b))
	}

	for i, b := range blocks {
		bar := 0
		if largest > 0 {
			bar = abs(b) * width / largest
		}
		if bar == 0 && b != 0 {
			bar = 1
		}

		glyph := "#"
		if b <= 0 {
			glyph = "."
		}
		fmt.Fprintf(w, "%4d | %-*s %d\n", i, width, strings.Repeat(glyph, bar), b)
	}
}

// renderTrace prints one line per reference with the frames after it
func renderTrace(w io.Writer, steps []memory.Step) {
	fmt.Fprintf(w, "%5s %6s %6s %8s  %s\n", "ref", "page", "fault", "evicted", "frames")
	for _, s := range steps {
		fault := ""
		if s.Fault {
			fault = "*"
		}
		evicted := "-"
		if s.HasEvicted {
			evicted = fmt.Sprint(s.Evicted)
		}
		fmt.Fprintf(w, "%5d %6d %6s %8s  %v\n", s.Index, s.Page, fault, evicted, s.Frames)
	}
}

func renderPolicyComparison(w io.Writer, references, frames int, results []memory.PolicyResult) {
	fmt.Fprintf(w, "%d references, %d frames\n", references, frames)
	fmt.Fprintf(w, "%-8s %7s %7s %8s\n", "policy", "faults", "hits", "rate")
	for _, r := range results {
		fmt.Fprintf(w, "%-8s %7d %7d %7.1f%%\n", r.Policy, r.Faults, r.Hits, r.FaultRate*100)
	}
}

func renderFitComparison(w io.Writer, size int, results []memory.FitResult) {
	fmt.Fprintf(w, "request %d\n", size)
	for _, r := range results {
		if r.Index == memory.NoFit {
			fmt.Fprintf(w, "%-10s no fit\n", r.Policy)
			continue
		}
		fmt.Fprintf(w, "%-10s block %d -> %s\n", r.Policy, r.Index, memory.FormatIntList(r.Blocks))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
