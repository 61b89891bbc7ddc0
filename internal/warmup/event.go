package warmup

import (
	"bytes"
	"fmt"

	"github.com/pricofy/lambda-warmer/internal/domain"
)

// DecodeError reports a payload that could not be decoded.
type DecodeError struct {
	// Part is "envelope" or "request".
	Part string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Part, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var jsonNull = []byte("null")

// Decode classifies a raw payload. The request is only decoded for non warm-up
// events: from the "request" field when present, otherwise from the whole payload.
func Decode[Req any](codec Codec, payload []byte) (domain.WarmerEvent, Req, error) {
	var (
		event domain.WarmerEvent
		req   Req
	)

	if err := codec.Unmarshal(payload, &event); err != nil {
		return event, req, &DecodeError{Part: "envelope", Err: err}
	}

	if event.Warmer {
		return event, req, nil
	}

	raw := payload
	if body := bytes.TrimSpace(event.Request); len(body) > 0 && !bytes.Equal(body, jsonNull) {
		raw = body
	}

	if err := codec.Unmarshal(raw, &req); err != nil {
		return event, req, &DecodeError{Part: "request", Err: err}
	}

	return event, req, nil
}
