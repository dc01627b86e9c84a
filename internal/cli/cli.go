// Package cli parses command-line arguments into an app.Config and defines
// the harness's exit-code boundary.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/chainharness/internal/app"
	"github.com/vk/chainharness/internal/chain"
	"github.com/vk/chainharness/internal/scenario"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("chainharness", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ChainHarness - a nightly test-scenario orchestrator for an ephemeral network.

Usage:
  chainharness [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a session manifest .hcl file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the session manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the session manifest file or directory (shorthand).")
	toolkitFlag := flagSet.String("toolkit", "", "Override the manifest's asset-toolkit command.")
	ciFlag := flagSet.Bool("ci", os.Getenv("CI") != "", "Run in continuous-integration mode.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ManifestPath: path,
		Toolkit:      *toolkitFlag,
		CI:           *ciFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// ExitCode maps a session error to the harness's own exit code: the first
// failing step's subprocess status where one exists, 1 otherwise, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var failure *scenario.Failure
	if errors.As(err, &failure) && failure.Status > 0 {
		return failure.Status
	}
	var stepFailure *chain.StepFailure
	if errors.As(err, &stepFailure) && stepFailure.Status > 0 {
		return stepFailure.Status
	}
	return 1
}
