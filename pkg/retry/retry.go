package retry

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Attempt describes one call made by Do.
type Attempt struct {
	Number     int
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Policy controls how Do repeats a call.
// The zero value makes exactly one call.
type Policy struct {
	MaxRetries int
	Backoff    Backoff
	// Classify decides whether a failed call may be repeated.
	// Nil means Retriable(statusCode).
	Classify func(statusCode int, err error) bool
	// OnAttempt, if set, is called after every call.
	OnAttempt func(Attempt)
}

// Func is a single HTTP exchange. It returns the response status code,
// or 0 when no response was received, together with any error.
type Func func(ctx context.Context) (int, error)

// Do runs fn until it succeeds, fails permanently or the retry budget is spent.
// The error of the last call is returned unchanged so callers can keep
// matching their own sentinels.
func Do(ctx context.Context, p Policy, fn Func) error {
	backoff := p.Backoff
	if backoff == nil {
		backoff = DefaultBackoff()
	}
	classify := p.Classify
	if classify == nil {
		classify = func(status int, _ error) bool { return Retriable(status) }
	}

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(backoff.NextInterval(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("%w: %w", ctx.Err(), lastErr)
			case <-timer.C:
			}
		}

		start := time.Now()
		status, err := fn(ctx)
		if p.OnAttempt != nil {
			p.OnAttempt(Attempt{
				Number:     attempt + 1,
				StatusCode: status,
				Duration:   time.Since(start),
				Err:        err,
			})
		}

		if err == nil {
			return nil
		}
		lastErr = err

		if !classify(status, err) || ctx.Err() != nil {
			return err
		}
	}

	return lastErr
}

// Retriable reports whether a call that ended with statusCode is worth repeating.
// Missing responses, 5xx and the transient 4xx codes (408, 425, 429) are;
// every other status means the request itself is wrong.
func Retriable(statusCode int) bool {
	switch {
	case statusCode == 0:
		return true
	case statusCode >= http.StatusInternalServerError:
		return true
	}

	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return true
	default:
		return false
	}
}
