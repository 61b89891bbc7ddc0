// Package main is a command line trigger that sends a warm-up ping to a
// warmed Lambda function, the way a scheduled rule would.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/pricofy/lambda-warmer/internal/domain"
	"github.com/pricofy/lambda-warmer/internal/invoker"
)

type options struct {
	Function      string        `short:"f" long:"function" required:"true" description:"function name or ARN to warm"`
	Concurrency   int           `short:"c" long:"concurrency" default:"1" description:"number of environments to keep warm"`
	CorrelationID string        `long:"correlation-id" description:"correlation id of the fan-out (random when empty)"`
	Async         bool          `long:"async" description:"do not wait for the root invocation to finish"`
	Timeout       time.Duration `long:"timeout" default:"1m" description:"overall timeout"`
	LogLevel      string        `long:"log-level" default:"info" description:"log level"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	lvl, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}
	log.SetLevel(lvl)

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	client, err := invoker.New(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to create Lambda client")
	}

	if err := run(ctx, opts, client); err != nil {
		log.WithError(err).Fatal("Warm-up failed")
	}
}

type pinger interface {
	Invoke(ctx context.Context, functionName string, payload []byte, mode domain.InvocationMode) error
}

func run(ctx context.Context, opts options, client pinger) error {
	if opts.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", opts.Concurrency)
	}

	correlationID := opts.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	payload, err := json.Marshal(domain.NewPing(opts.Concurrency, correlationID))
	if err != nil {
		return err
	}

	mode := domain.ModeRequestResponse
	if opts.Async {
		mode = domain.ModeEvent
	}

	fields := log.Fields{
		"function":      opts.Function,
		"concurrency":   opts.Concurrency,
		"correlationId": correlationID,
		"mode":          mode.String(),
	}
	log.WithFields(fields).Debug("sending warm-up ping")

	start := time.Now()
	if err := client.Invoke(ctx, opts.Function, payload, mode); err != nil {
		return err
	}

	log.WithFields(fields).WithField("elapsed", time.Since(start).String()).Info("warm-up ping delivered")
	return nil
}
