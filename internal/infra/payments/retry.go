package payments

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bounce-booking/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/stripe/stripe-go/v82"
)

type retryPolicy struct {
	maxRetries uint64
	initial    time.Duration
	max        time.Duration
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	p := retryPolicy{maxRetries: 3, initial: 200 * time.Millisecond, max: 2 * time.Second}
	if cfg.MaxRetries > 0 {
		p.maxRetries = cfg.MaxRetries
	}
	if cfg.InitialInterval > 0 {
		p.initial = cfg.InitialInterval
	}
	if cfg.MaxInterval > 0 {
		p.max = cfg.MaxInterval
	}
	return p
}

// do runs op until it succeeds, fails permanently, or retries run out.
func (p retryPolicy) do(ctx context.Context, name string, op func() error) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = p.initial
	expBackoff.MaxInterval = p.max

	attempt := 0
	wrapped := func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return backoff.Permanent(err)
		}
		slog.Warn("stripe call failed, retrying", "operation", name, "attempt", attempt, "error", err.Error())
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(expBackoff, p.maxRetries), ctx))
}

// isTransient reports rate limiting, server errors and connection failures.
func isTransient(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == http.StatusTooManyRequests ||
			stripeErr.HTTPStatusCode >= http.StatusInternalServerError ||
			stripeErr.HTTPStatusCode == 0
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
