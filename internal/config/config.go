// Package config loads the warmer configuration from flags and environment.
package config

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/pricofy/lambda-warmer/internal/warmup"
)

// Options are the settings recognized by the function.
type Options struct {
	Quiet        bool          `long:"quiet" env:"WARMER_QUIET" description:"do not log a record for each warm-up ping"`
	Delay        time.Duration `long:"delay" env:"WARMER_DELAY" default:"75ms" description:"wait before warm-up work starts"`
	LogLevel     string        `long:"log-level" env:"WARMER_LOG_LEVEL" default:"info" description:"log level"`
	FunctionName string        `long:"function-name" env:"WARMER_FUNCTION_NAME" description:"function re-invoked by warm-up fan-outs (defaults to the invoked ARN)"`
}

// Load parses args and the WARMER_* environment variables. Unknown flags are ignored.
func Load(args []string) (Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(args); err != nil {
		return Options{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if opts.Delay < 0 {
		return Options{}, fmt.Errorf("delay must not be negative, got %s", opts.Delay)
	}

	return opts, nil
}

// Warmer returns the warm-up settings.
func (o Options) Warmer() warmup.Config {
	return warmup.Config{
		LogEnabled: !o.Quiet,
		Delay:      o.Delay,
	}
}
