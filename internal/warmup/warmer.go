// Package warmup routes Lambda invocations between a business handler and the
// keep-warm protocol.
//
// A warm-up ping ({"warmer": true, "concurrency": N}) warms the receiving
// environment and, for N > 1, re-invokes the same function N-1 times so that
// N environments are busy at the same time. Any other payload is decoded and
// passed to the business handler.
package warmup

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"github.com/pricofy/lambda-warmer/internal/domain"
)

// Handler is the business logic behind a warmed function.
type Handler[Req, Resp any] interface {
	// WarmUp prepares the environment without serving a request.
	WarmUp(ctx context.Context) error
	// Handle serves one request.
	Handle(ctx context.Context, req Req) (Resp, error)
}

// Invoker issues remote invocations of a function.
type Invoker interface {
	Invoke(ctx context.Context, functionName string, payload []byte, mode domain.InvocationMode) error
}

// Warmer wraps a Handler. It implements lambda.Handler so it can be passed to
// lambda.Start directly.
type Warmer[Req, Resp any] struct {
	handler      Handler[Req, Resp]
	invoker      Invoker
	codec        Codec
	config       Config
	logger       logrus.FieldLogger
	functionName string
	now          func() time.Time

	state State
}

var _ lambda.Handler = (*Warmer[struct{}, struct{}])(nil)

// Option configures a Warmer.
type Option func(*options)

type options struct {
	codec        Codec
	config       Config
	logger       logrus.FieldLogger
	functionName string
	now          func() time.Time
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithCodec replaces the JSON codec used for payloads and responses.
func WithCodec(c Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithLogger sets the logger receiving warm-up records.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithFunctionName forces the function identity used for re-invocation and
// logging instead of the one found in the invocation context.
func WithFunctionName(name string) Option {
	return func(o *options) { o.functionName = name }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a Warmer for handler, re-invoking the function through inv.
func New[Req, Resp any](handler Handler[Req, Resp], inv Invoker, opts ...Option) *Warmer[Req, Resp] {
	o := options{
		codec:  JSONCodec{},
		config: DefaultConfig(),
		logger: logrus.StandardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Warmer[Req, Resp]{
		handler:      handler,
		invoker:      inv,
		codec:        o.codec,
		config:       o.config,
		logger:       o.logger,
		functionName: o.functionName,
		now:          o.now,
	}
}

// State returns a snapshot of the environment state.
func (w *Warmer[Req, Resp]) State() State {
	return w.state
}

// Invoke handles one raw invocation. Warm-up pings always answer with an
// empty body.
func (w *Warmer[Req, Resp]) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	event, req, err := Decode[Req](w.codec, payload)
	if err != nil {
		return nil, err
	}

	if event.Warmer {
		return nil, w.warmUp(ctx, event)
	}

	return w.serve(ctx, req)
}

// serve runs the business handler for a real request.
func (w *Warmer[Req, Resp]) serve(ctx context.Context, req Req) ([]byte, error) {
	w.state.touch(w.now())

	resp, err := w.handler.Handle(ctx, req)
	if err != nil {
		return nil, err
	}

	return w.codec.Marshal(resp)
}

// warmUp drives one warm-up ping to completion.
func (w *Warmer[Req, Resp]) warmUp(ctx context.Context, event domain.WarmerEvent) error {
	var requestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	params := Normalize(event.Concurrency, event.InvocationNumber, event.TotalInvocation, event.CorrelationID, requestID)
	function := w.function(ctx)

	// The record shows the state as it was before this ping.
	if w.config.LogEnabled {
		w.logRecord(newRecord(function, params, w.state, w.now()))
	}

	w.state.markWarm()

	if err := sleep(ctx, w.config.Delay); err != nil {
		return err
	}

	if params.Concurrency == 1 {
		return w.handler.WarmUp(ctx)
	}

	return w.fanOut(ctx, function, params)
}

func (w *Warmer[Req, Resp]) function(ctx context.Context) string {
	if w.functionName != "" {
		return w.functionName
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.InvokedFunctionArn != "" {
		return lc.InvokedFunctionArn
	}
	return lambdacontext.FunctionName
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
