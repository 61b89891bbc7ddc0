// Package main is the entry point for the warmed greeting Lambda function.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/pricofy/lambda-warmer/internal/config"
	"github.com/pricofy/lambda-warmer/internal/handler"
	"github.com/pricofy/lambda-warmer/internal/invoker"
	"github.com/pricofy/lambda-warmer/internal/logging"
	"github.com/pricofy/lambda-warmer/internal/warmup"
)

func main() {
	opts, err := config.Load(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	logger, err := logging.New(opts.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}

	client, err := invoker.New(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Lambda client")
	}

	warmerOpts := []warmup.Option{
		warmup.WithConfig(opts.Warmer()),
		warmup.WithLogger(logger),
	}
	if opts.FunctionName != "" {
		warmerOpts = append(warmerOpts, warmup.WithFunctionName(opts.FunctionName))
	}

	// Warm-up pings are routed before any request decoding.
	lambda.Start(warmup.New[handler.Request, *handler.Response](handler.New(), client, warmerOpts...))
}
