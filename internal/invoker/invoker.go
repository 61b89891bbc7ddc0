// Package invoker issues remote Lambda invocations through the AWS SDK.
package invoker

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/pricofy/lambda-warmer/internal/domain"
)

var (
	// ErrFunctionError is returned when a request-response invocation completed
	// but the invoked function reported an error.
	ErrFunctionError = errors.New("lambda function error")

	// ErrNotAccepted is returned when an event invocation was not queued.
	ErrNotAccepted = errors.New("lambda event invocation not accepted")
)

// API is the subset of the Lambda client used by Client.
type API interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Client invokes Lambda functions.
type Client struct {
	api API
}

// New creates a Client from the default AWS configuration chain.
func New(ctx context.Context) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewWithAPI(lambda.NewFromConfig(cfg)), nil
}

// NewWithAPI creates a Client on top of an existing Lambda API implementation.
func NewWithAPI(api API) *Client {
	return &Client{api: api}
}

// Invoke calls functionName with payload.
//
// In ModeEvent the call returns once Lambda has queued the invocation.
// In ModeRequestResponse it returns once the function has finished, and a
// function-level error is reported as ErrFunctionError.
func (c *Client) Invoke(ctx context.Context, functionName string, payload []byte, mode domain.InvocationMode) error {
	input := &lambda.InvokeInput{
		FunctionName: aws.String(functionName),
		Payload:      payload,
	}

	switch mode {
	case domain.ModeEvent:
		input.InvocationType = types.InvocationTypeEvent
	case domain.ModeRequestResponse:
		input.InvocationType = types.InvocationTypeRequestResponse
	default:
		return fmt.Errorf("unsupported invocation mode %d", mode)
	}

	result, err := c.api.Invoke(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}

	if mode == domain.ModeEvent {
		if result.StatusCode != http.StatusAccepted {
			return fmt.Errorf("%w: %s returned status %d", ErrNotAccepted, functionName, result.StatusCode)
		}
		return nil
	}

	if result.FunctionError != nil {
		return fmt.Errorf("%w: %s: %s", ErrFunctionError, functionName, aws.ToString(result.FunctionError))
	}

	return nil
}
