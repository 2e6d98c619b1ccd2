package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ExitError is returned when the process should stop with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Values come from the defaults, then
// the optional -config file, then explicitly set flags. The boolean result is
// true when the program should exit cleanly (help was requested).
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("power4", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Power-4 - drop tokens, connect four.

Usage:
  power4 [options]

Keys:
  Left/Right or h/l  select a column
  Space or Enter     drop a token (starts a new game once it is over)
  q or Esc           quit

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := Default()
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	tickFlag := flagSet.Duration("tick", defaults.TickInterval, "Time between two animation steps.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Logging level. Options: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this file. Logs are discarded when empty.")
	summaryFlag := flagSet.Bool("summary", false, "Print finished games as CSV on exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	cfg := defaults
	if *configFlag != "" {
		if err := LoadFile(*configFlag, cfg); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	// Flags given on the command line win over the file
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick":
			cfg.TickInterval = *tickFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-file":
			cfg.LogFile = *logFileFlag
		case "summary":
			cfg.Summary = *summaryFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
