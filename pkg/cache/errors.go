package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrNetwork marks failures to reach a remote backend.
var ErrNetwork = errors.New("network error")

// RetryableError marks a transient failure worth another attempt.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or anything it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// classify turns connection failures into retryable ErrNetwork errors and
// passes everything else through.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	return err
}

// retryPolicy bounds how often a backend connection is attempted. The delay
// doubles after each retryable failure.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

var connectRetry = retryPolicy{attempts: 3, delay: 250 * time.Millisecond}

// do calls fn until it succeeds, returns a non-retryable error, or the
// attempts run out. The last error is returned.
func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	delay := p.delay
	var err error
	for i := range p.attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == p.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}
