package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Exit codes used by the shortpath command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Default route over the built-in letters graph.
const (
	DefaultFrom = "a"
	DefaultTo   = "f"
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

// Config is the validated command-line configuration.
type Config struct {
	// GraphPath is the HCL graph file; empty means the built-in letters graph.
	GraphPath string
	// From and To are node labels; empty means the file's route block, then the defaults.
	From string
	To   string
	// Metrics dumps the Prometheus text exposition after the run.
	Metrics   bool
	LogFormat string
	LogLevel  string
}

// Parse processes command-line arguments. It returns the populated Config,
// a boolean indicating the program should exit cleanly (help was printed),
// or an *ExitError with ExitUsage.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("shortpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
shortpath - find the minimum-cost path between two nodes of a directed graph.

Usage:
  shortpath [options] [GRAPH_PATH]

Arguments:
  GRAPH_PATH
    HCL graph file. Without one, the built-in a..h graph is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the HCL graph file.")
	fromFlag := flagSet.String("from", "", "Label of the start node (default: route block, else \"a\").")
	toFlag := flagSet.String("to", "", "Label of the end node (default: route block, else \"f\").")
	metricsFlag := flagSet.Bool("metrics", false, "Print Prometheus metrics after the run.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	path := *graphFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "at most one graph path may be given"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		GraphPath: path,
		From:      *fromFlag,
		To:        *toFlag,
		Metrics:   *metricsFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}, false, nil
}

// NewLogger creates a slog.Logger for the configured level and format. It
// does not set the global logger.
func NewLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
