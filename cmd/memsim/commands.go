package main

import (
	"flag"
	"fmt"

	"github.com/sibexico/MemSim/memory"
)

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// allocate places one request and charts the resulting block list
func (a *app) allocate(args []string) error {
	fs := a.flagSet("allocate")
	blocksText := fs.String("blocks", "", "comma-separated free block sizes")
	size := fs.Int("size", 0, "requested allocation size")
	policyName := fs.String("policy", a.config.FitPolicy, "fit policy: first, best, worst, next")
	last := fs.Int("last", a.config.LastPosition, "starting block for next fit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	blocks, err := memory.ParseIntList(*blocksText)
	if err != nil {
		return err
	}
	policy, err := memory.ParseFitPolicy(*policyName)
	if err != nil {
		return err
	}

	a.sim.SetLastPosition(*last)
	idx, err := a.sim.Allocate(blocks, *size, policy)
	if memory.IsErrorCode(err, memory.ErrCodeNoFit) {
		fmt.Fprintln(a.out, "Allocation Failed: process could not be allocated")
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: allocated %d at block %d\n", policy, *size, idx)
	renderBlocks(a.out, blocks, fmt.Sprintf("%s Allocation", policy), a.config.ChartWidth)
	return nil
}

// compact charts the compacted form of a block list
func (a *app) compact(args []string) error {
	fs := a.flagSet("compact")
	blocksText := fs.String("blocks", "", "comma-separated blocks (non-positive entries are free gaps)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	blocks, err := memory.ParseIntList(*blocksText)
	if err != nil {
		return err
	}

	compacted := a.sim.Compact(blocks)
	fmt.Fprintf(a.out, "Free space: %d (fragmentation %.0f%% before, %.0f%% after)\n",
		memory.FreeSpace(compacted),
		memory.Fragmentation(blocks)*100,
		memory.Fragmentation(compacted)*100)
	renderBlocks(a.out, compacted, "Memory Compaction", a.config.ChartWidth)
	return nil
}

// pagingFlags registers the reference stream inputs shared by replace and compare
func (a *app) pagingFlags(fs *flag.FlagSet) (pages, workload *string, frames *int) {
	pages = fs.String("pages", "", "comma-separated page reference stream")
	workload = fs.String("workload", "", "read the reference stream from a workload file")
	frames = fs.Int("frames", a.config.FrameCount, "number of physical frames")
	return pages, workload, frames
}

func loadPages(pagesText, workloadPath string) ([]int, error) {
	if workloadPath != "" {
		return memory.LoadWorkload(workloadPath)
	}
	return memory.ParseIntList(pagesText)
}

// replace reports the fault count of one policy
func (a *app) replace(args []string) error {
	fs := a.flagSet("replace")
	pagesText, workloadPath, frames := a.pagingFlags(fs)
	policyName := fs.String("policy", a.config.ReplacementPolicy, "replacement policy: fifo, lru, optimal")
	trace := fs.Bool("trace", false, "print the frame contents after every reference")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pages, err := loadPages(*pagesText, *workloadPath)
	if err != nil {
		return err
	}
	policy, err := memory.ParseReplacementPolicy(*policyName)
	if err != nil {
		return err
	}

	faults, err := a.sim.Replace(pages, *frames, policy)
	if err != nil {
		return err
	}

	if *trace {
		steps, err := a.sim.Trace(pages, *frames, policy)
		if err != nil {
			return err
		}
		renderTrace(a.out, steps)
	}

	fmt.Fprintf(a.out, "%s Page Faults: %d\n", policy, faults)
	fmt.Fprintf(a.out, "Resident set: %d frames (%d bytes at host page size %d)\n",
		*frames, memory.ResidentBytes(*frames), memory.HostPageSize())
	return nil
}

// compare runs every replacement policy, or every fit policy when -blocks is set
func (a *app) compare(args []string) error {
	fs := a.flagSet("compare")
	pagesText, workloadPath, frames := a.pagingFlags(fs)
	blocksText := fs.String("blocks", "", "compare fit policies over these blocks instead")
	size := fs.Int("size", 0, "requested allocation size for fit comparison")
	last := fs.Int("last", a.config.LastPosition, "starting block for next fit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *blocksText != "" {
		blocks, err := memory.ParseIntList(*blocksText)
		if err != nil {
			return err
		}
		if *size <= 0 {
			return memory.ErrInvalidSize("compare", *size)
		}
		if len(blocks) > 0 && (*last < 0 || *last >= len(blocks)) {
			return memory.ErrInvalidPosition("compare", *last, len(blocks))
		}
		renderFitComparison(a.out, *size, memory.CompareFits(blocks, *size, *last))
		return nil
	}

	pages, err := loadPages(*pagesText, *workloadPath)
	if err != nil {
		return err
	}
	results, err := a.sim.Compare(pages, *frames)
	if err != nil {
		return err
	}

	renderPolicyComparison(a.out, len(pages), *frames, results)
	return nil
}

// gen writes a synthetic reference stream
func (a *app) gen(args []string) error {
	fs := a.flagSet("gen")
	out := fs.String("out", "", "workload file to write")
	length := fs.Int("length", 100, "number of references")
	distinct := fs.Int("distinct", 10, "number of distinct pages")
	locality := fs.Float64("locality", 0.5, "probability of re-referencing a recent page (0-1)")
	seed := fs.Int64("seed", 1, "random seed")
	compression := fs.String("compression", a.config.WorkloadCompression, "none, snappy or lz4")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := memory.ParseCompression(*compression)
	if err != nil {
		return err
	}

	pages := memory.GenerateWorkload(*length, *distinct, *locality, *seed)
	if *out == "" {
		fmt.Fprintln(a.out, memory.FormatIntList(pages))
		return nil
	}

	if err := memory.SaveWorkload(*out, pages, c); err != nil {
		return err
	}
	a.logger.Info("workload written", "path", *out, "references", len(pages), "compression", c.String())
	return nil
}

// showConfig prints the effective configuration or saves it to a file
func (a *app) showConfig(args []string) error {
	fs := a.flagSet("config")
	save := fs.String("save", "", "write the effective configuration to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *save != "" {
		return a.config.SaveToFile(*save)
	}

	fmt.Fprintf(a.out, "fit_policy=%s last_position=%d\n", a.config.FitPolicy, a.config.LastPosition)
	fmt.Fprintf(a.out, "replacement_policy=%s frame_count=%d\n", a.config.ReplacementPolicy, a.config.FrameCount)
	fmt.Fprintf(a.out, "workload_compression=%s chart_width=%d\n", a.config.WorkloadCompression, a.config.ChartWidth)
	fmt.Fprintf(a.out, "enable_metrics=%t log_level=%s\n", a.config.EnableMetrics, a.config.LogLevel)
	fmt.Fprintf(a.out, "policies: fit=%v replacement=%v\n", memory.FitPolicies, memory.ReplacementPolicies)
	return nil
}
