package types

import "time"

// RetryPolicy configures the opt-in retry loop for recoverable failures
// (5xx responses, 408/429, network errors). Zero-valued fields fall back
// to the defaults below when the policy is applied.
type RetryPolicy struct {
	// InitialInterval is the first backoff delay.
	InitialInterval time.Duration
	// MaxInterval caps the delay between attempts.
	MaxInterval time.Duration
	// MaxElapsedTime bounds the total time spent retrying. Zero means no
	// elapsed-time bound; MaxAttempts still applies.
	MaxElapsedTime time.Duration
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts uint64
}

// WithDefaults returns a copy of p with zero-valued fields filled in.
func (p RetryPolicy) WithDefaults() RetryPolicy {
	if p.InitialInterval <= 0 {
		p.InitialInterval = 100 * time.Millisecond
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = 20 * time.Second
	}
	if p.MaxAttempts == 0 {
		p.MaxAttempts = 4
	}
	return p
}
