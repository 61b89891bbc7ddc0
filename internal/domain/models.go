// Package domain contains the wire types shared by the warmer, the invoker and
// the warm-up trigger.
package domain

import "encoding/json"

// WarmerEvent is the envelope every invocation of a warmed function receives.
// Request is kept raw so the caller can decode it into its own type.
// Field names are matched case-insensitively on decode.
type WarmerEvent struct {
	Warmer           bool            `json:"warmer"`
	Concurrency      int             `json:"concurrency,omitempty"`
	InvocationNumber int             `json:"invocationNumber,omitempty"`
	TotalInvocation  int             `json:"totalInvocation,omitempty"`
	CorrelationID    string          `json:"correlationId,omitempty"`
	Request          json.RawMessage `json:"request,omitempty"`
}

// Params are the effective warm-up parameters of one ping after defaults
// have been applied.
type Params struct {
	Concurrency      int
	InvocationNumber int
	TotalInvocation  int
	CorrelationID    string
}

// InvocationMode selects how a remote function invocation is issued.
type InvocationMode int

const (
	// ModeEvent submits the invocation and only waits for it to be accepted.
	ModeEvent InvocationMode = iota
	// ModeRequestResponse waits for the invoked function to finish.
	ModeRequestResponse
)

// String returns the Lambda invocation type name for the mode.
func (m InvocationMode) String() string {
	switch m {
	case ModeEvent:
		return "Event"
	case ModeRequestResponse:
		return "RequestResponse"
	default:
		return "Unknown"
	}
}

// NewPing builds a root warm-up ping asking for concurrency warm environments.
func NewPing(concurrency int, correlationID string) WarmerEvent {
	return WarmerEvent{
		Warmer:        true,
		Concurrency:   concurrency,
		CorrelationID: correlationID,
	}
}

// FanOutPing builds the ping sent to the n-th environment of a fan-out of size total.
// Concurrency is left unset so the receiving environment never fans out again.
func FanOutPing(n, total int, correlationID string) WarmerEvent {
	return WarmerEvent{
		Warmer:           true,
		InvocationNumber: n,
		TotalInvocation:  total,
		CorrelationID:    correlationID,
	}
}
