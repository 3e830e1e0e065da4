// Command aoc runs the Advent of Code 2021 solvers against cached inputs.
//
// Usage:
//
//	aoc -day 22                  # reads input_cache/2021_22.txt
//	aoc -day 16 -input my.txt    # reads an explicit file
//	aoc                          # runs every cached day
//	aoc -day 15 -profile cpu     # writes a CPU profile to the working directory
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/profile"

	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/puzzles"
)

type options struct {
	day      int
	file     string
	cacheDir string
	verbose  bool
	profile  string
}

func main() {
	var opts options
	flag.IntVar(&opts.day, "day", 0, "day to solve (0 runs every registered day)")
	flag.StringVar(&opts.file, "input", "", "explicit input file, overrides the cache")
	flag.StringVar(&opts.cacheDir, "cache", input.DefaultDir, "directory holding <year>_<day>.txt inputs")
	flag.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	flag.StringVar(&opts.profile, "profile", "", "write a profile: cpu or mem")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if err := run(logger, opts); err != nil {
		logger.Error("aoc failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, opts options) error {
	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q, want cpu or mem", opts.profile)
	}

	if opts.day == 0 {
		if opts.file != "" {
			return errors.New("-input needs -day")
		}
		return runAll(logger, opts.cacheDir)
	}

	solve, ok := puzzles.Lookup(opts.day)
	if !ok {
		return fmt.Errorf("day %d has no solver, have %v", opts.day, puzzles.Days())
	}
	var (
		text string
		err  error
	)
	if opts.file != "" {
		text, err = input.ReadFile(opts.file)
	} else {
		text, err = input.Load(opts.cacheDir, puzzles.Year, opts.day)
	}
	if err != nil {
		return err
	}
	return solveDay(logger, opts.day, solve, text)
}

// runAll solves every registered day whose input is cached and skips the rest.
func runAll(logger *slog.Logger, dir string) error {
	var errs []error
	for _, day := range puzzles.Days() {
		text, err := input.Load(dir, puzzles.Year, day)
		if errors.Is(err, input.ErrNotCached) {
			logger.Debug("skipping day", slog.Int("day", day), slog.Any("error", err))
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		solve, _ := puzzles.Lookup(day)
		if err := solveDay(logger, day, solve, text); err != nil {
			errs = append(errs, fmt.Errorf("day %d: %w", day, err))
		}
	}
	return errors.Join(errs...)
}

func solveDay(logger *slog.Logger, day int, solve puzzles.Solver, text string) error {
	logger.Debug("solving", slog.Int("day", day), slog.Int("input_bytes", len(text)))
	start := time.Now()
	ans, err := solve(text)
	if err != nil {
		return err
	}
	logger.Info("solved", slog.Int("day", day), slog.Duration("took", time.Since(start)))

	fmt.Printf("Day %d part 1: %s\n", day, ans.Part1)
	if ans.Part2 != "" {
		// multi-line answers start on their own line
		if strings.Contains(ans.Part2, "\n") {
			fmt.Printf("Day %d part 2:\n%s", day, ans.Part2)
		} else {
			fmt.Printf("Day %d part 2: %s\n", day, ans.Part2)
		}
	}
	return nil
}
