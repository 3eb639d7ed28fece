// Command pipeloop reads a pipe-grid puzzle and prints the distance to the
// farthest loop cell and the number of cells the loop encloses.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/internal/cli"
	"github.com/katalvlaran/pipeloop/internal/logging"
)

// main is the entrypoint for the pipeloop binary.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program so tests can drive it with their own writers
// and environment.
func run(outW, errW io.Writer, args []string, lookup func(string) (string, bool)) error {
	cfg, shouldExit, err := cli.Parse(args, outW, lookup)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(errW, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	if cfg.Profile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(cfg.Profile),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop()
		logger.Info("CPU profiling enabled.", "dir", cfg.Profile)
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading puzzle: %w", err)
	}
	logger.Debug("Puzzle loaded.", "path", cfg.Input, "bytes", len(data))

	report, err := pipeloop.Analyze(string(data),
		pipeloop.WithLogger(logger),
		pipeloop.WithReverseTraversal(cfg.Reverse),
	)
	if err != nil {
		logger.Error("Puzzle rejected.", "path", cfg.Input, "error", err)
		return err
	}

	if cfg.Wants(1) {
		fmt.Fprintf(outW, "part1: %d\n", report.HalfLength())
	}
	if cfg.Wants(2) {
		fmt.Fprintf(outW, "part2: %d\n", report.EnclosedArea())
	}
	if cfg.Render {
		fmt.Fprint(outW, report.Grid.Render())
	}
	logger.Info("Puzzle solved.",
		"loop_len", report.Loop.Len(),
		"winding", report.Winding.String(),
		"discarded", report.Discarded,
	)
	return nil
}
