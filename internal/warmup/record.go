package warmup

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pricofy/lambda-warmer/internal/domain"
)

const recordAction = "warmer"

// record is the log entry written for each warm-up ping. Concurrency carries
// the total invocation count of the fan-out.
type record struct {
	Function            string
	CorrelationID       string
	Count               int
	Concurrency         int
	Warm                bool
	LastAccessed        *string
	LastAccessedSeconds *int64
}

func newRecord(function string, params domain.Params, state State, now time.Time) record {
	r := record{
		Function:      function,
		CorrelationID: params.CorrelationID,
		Count:         params.InvocationNumber,
		Concurrency:   params.TotalInvocation,
		Warm:          state.Warm,
	}

	if state.LastAccess != nil {
		accessed := state.LastAccess.Format(time.RFC3339)
		seconds := int64(now.Sub(*state.LastAccess).Seconds())
		r.LastAccessed = &accessed
		r.LastAccessedSeconds = &seconds
	}

	return r
}

func (r record) fields() logrus.Fields {
	f := logrus.Fields{
		"action":              recordAction,
		"function":            r.Function,
		"correlationId":       r.CorrelationID,
		"count":               r.Count,
		"concurrency":         r.Concurrency,
		"warm":                r.Warm,
		"lastAccessed":        nil,
		"lastAccessedSeconds": nil,
	}
	if r.LastAccessed != nil {
		f["lastAccessed"] = *r.LastAccessed
	}
	if r.LastAccessedSeconds != nil {
		f["lastAccessedSeconds"] = *r.LastAccessedSeconds
	}
	return f
}

func (w *Warmer[Req, Resp]) logRecord(r record) {
	w.logger.WithFields(r.fields()).Info(recordAction)
}
