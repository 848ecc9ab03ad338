// Command memsim runs the contiguous allocation and page replacement
// simulations from the command line.
//
// Usage:
//
//	memsim [-config file.json] <command> [flags]
//
// Commands:
//
//	allocate  place one request into a block list (first, best, worst, next fit)
//	compact   slide allocated blocks together and merge free space
//	replace   count page faults for a reference stream (fifo, lru, optimal)
//	compare   run every policy over the same input
//	gen       write a synthetic reference stream to a workload file
//	config    print or save the effective configuration
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sibexico/MemSim/memory"
)

// Exit codes
const (
	exitOK      = 0
	exitNoFit   = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every command needs
type app struct {
	config *memory.Config
	logger *slog.Logger
	sim    *memory.Simulator
	out    io.Writer
	errOut io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("memsim", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "path to a JSON configuration file")
	global.Usage = func() {
		fmt.Fprintln(stderr, "usage: memsim [-config file] <allocate|compact|replace|compare|gen|config> [flags]")
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return exitInvalid
	}
	if global.NArg() == 0 {
		global.Usage()
		return exitInvalid
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "memsim: %v\n", err)
		return exitInvalid
	}

	logger := newLogger(stderr, config.LogLevel)
	sim, err := memory.NewSimulator(config, logger)
	if err != nil {
		fmt.Fprintf(stderr, "memsim: %v\n", err)
		return exitInvalid
	}

	a := &app{config: config, logger: logger, sim: sim, out: stdout, errOut: stderr}
	command, rest := global.Arg(0), global.Args()[1:]

	var cmdErr error
	switch command {
	case "allocate":
		cmdErr = a.allocate(rest)
	case "compact":
		cmdErr = a.compact(rest)
	case "replace":
		cmdErr = a.replace(rest)
	case "compare":
		cmdErr = a.compare(rest)
	case "gen":
		cmdErr = a.gen(rest)
	case "config":
		cmdErr = a.showConfig(rest)
	default:
		fmt.Fprintf(stderr, "memsim: unknown command %q\n", command)
		global.Usage()
		return exitInvalid
	}

	sim.LogMetrics()
	return exitCode(cmdErr, stderr)
}

// loadConfig reads the optional config file and applies MEMSIM_* overrides
func loadConfig(path string) (*memory.Config, error) {
	if path == "" {
		config := memory.LoadConfigFromEnv()
		return config, config.Validate()
	}

	config, err := memory.LoadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv()
	return config, config.Validate()
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("component", "memsim")
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	var se *memory.SimError
	if errors.As(err, &se) && se.Code == memory.ErrCodeNoFit {
		// Already reported to the user as a notice
		return exitNoFit
	}

	fmt.Fprintf(stderr, "memsim: %v\n", err)
	return exitInvalid
}
