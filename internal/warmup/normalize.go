package warmup

import "github.com/pricofy/lambda-warmer/internal/domain"

// Normalize applies the warm-up defaults to possibly unset ping fields.
//
// Concurrency below 2 means a single environment, invocation numbers and
// totals fall back to 1 and the effective concurrency, and an empty
// correlation id is replaced by fallbackCorrelationID. Each field is
// defaulted on its own: an invocation number larger than the total is kept
// as received.
func Normalize(concurrency, invocationNumber, totalInvocation int, correlationID, fallbackCorrelationID string) domain.Params {
	p := domain.Params{
		Concurrency:      1,
		InvocationNumber: 1,
		CorrelationID:    fallbackCorrelationID,
	}

	if concurrency > 1 {
		p.Concurrency = concurrency
	}
	if invocationNumber > 0 {
		p.InvocationNumber = invocationNumber
	}

	p.TotalInvocation = p.Concurrency
	if totalInvocation > 0 {
		p.TotalInvocation = totalInvocation
	}

	if correlationID != "" {
		p.CorrelationID = correlationID
	}

	return p
}
