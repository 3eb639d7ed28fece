package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeloop/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Configuration is layered from the
// -config HCL file, the -env dotenv file, the environment seen through
// lookup, and finally any flags given explicitly. It returns the config, a
// boolean telling the caller to exit cleanly (help was printed), or an
// *ExitError.
func Parse(args []string, output io.Writer, lookup func(string) (string, bool)) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pipeloop", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pipeloop - trace the pipe loop of a grid and measure the area it encloses.

Usage:
  pipeloop [options] [INPUT]

Arguments:
  INPUT
    Path to the puzzle text file.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	envFlag := flagSet.String("env", "", "Path to a .env file with PIPELOOP_* variables.")
	inputFlag := flagSet.String("input", "", "Path to the puzzle text file.")
	iFlag := flagSet.String("i", "", "Path to the puzzle text file (shorthand).")
	partFlag := flagSet.String("part", defaults.Part, "Answer to print: '1', '2' or 'all'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format: 'text' or 'json'.")
	renderFlag := flagSet.Bool("render", false, "Print the classified grid after the answers.")
	reverseFlag := flagSet.Bool("reverse", false, "Trace the loop through the start's second open end.")
	profileFlag := flagSet.String("profile", "", "Write a CPU profile into this directory.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg, err := config.Load(*configFlag, *envFlag, lookup)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "i":
			cfg.Input = *iFlag
		case "part":
			cfg.Part = *partFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "render":
			cfg.Render = *renderFlag
		case "reverse":
			cfg.Reverse = *reverseFlag
		case "profile":
			cfg.Profile = *profileFlag
		}
	})
	if flagSet.NArg() > 0 {
		cfg.Input = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", cfg.Input)

	if cfg.Input == "" {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
