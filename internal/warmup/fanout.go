package warmup

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pricofy/lambda-warmer/internal/domain"
)

// fanOut warms this environment and params.Concurrency-1 others.
//
// The last remote leg is request-response so the root invocation lasts until
// at least one other environment has run; the rest are events. All legs run
// concurrently and a failing leg does not stop the others.
func (w *Warmer[Req, Resp]) fanOut(ctx context.Context, function string, params domain.Params) error {
	var g errgroup.Group
	total := params.Concurrency

	g.Go(func() error {
		return w.handler.WarmUp(ctx)
	})

	for i := 2; i <= total; i++ {
		n := i
		mode := domain.ModeEvent
		if n == total {
			mode = domain.ModeRequestResponse
		}

		g.Go(func() error {
			payload, err := w.codec.Marshal(domain.FanOutPing(n, total, params.CorrelationID))
			if err != nil {
				return fmt.Errorf("failed to encode warm-up ping %d/%d: %w", n, total, err)
			}

			w.logger.WithFields(logrus.Fields{
				"correlationId": params.CorrelationID,
				"count":         n,
				"mode":          mode.String(),
			}).Debug("invoking warm-up leg")

			if err := w.invoker.Invoke(ctx, function, payload, mode); err != nil {
				return fmt.Errorf("warm-up invocation %d/%d: %w", n, total, err)
			}
			return nil
		})
	}

	return g.Wait()
}
