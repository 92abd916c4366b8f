package cli

import (
	"flag"
	"fmt"
	"io"

	"svw.info/numbers/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse resolves configuration with precedence defaults < HCL file <
// environment < flags. It returns shouldExit when help was requested.
func Parse(args []string, output io.Writer) (cfg *config.Config, shouldExit bool, err error) {
	flagSet := flag.NewFlagSet("numbers", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
numbers - guess the secret number in ten attempts.

Usage:
  numbers [options]

Type "reset" at the first prompt to clear the leaderboard.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", config.DefaultFile, "Path to an HCL settings file.")
	pathFlag := flagSet.String("leaderboard", defaults.LeaderboardPath, "Path to the leaderboard file.")
	backendFlag := flagSet.String("backend", defaults.LeaderboardBackend, "Leaderboard backend: 'json' or 'sqlite'.")
	levelFlag := flagSet.String("log-level", defaults.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	formatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format: 'text' or 'json'.")
	seedFlag := flagSet.Int64("seed", 0, "Random seed for the secret number. 0 picks one from the clock.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	resolved := defaults
	if err := config.ApplyFile(&resolved, *configFlag, set["config"]); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if err := config.ApplyEnv(&resolved); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if set["leaderboard"] {
		resolved.LeaderboardPath = *pathFlag
	}
	if set["backend"] {
		resolved.LeaderboardBackend = *backendFlag
	}
	if set["log-level"] {
		resolved.LogLevel = *levelFlag
	}
	if set["log-format"] {
		resolved.LogFormat = *formatFlag
	}
	if set["seed"] {
		resolved.Seed = *seedFlag
	}
	if err := resolved.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &resolved, false, nil
}
