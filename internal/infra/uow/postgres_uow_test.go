//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped serialization failure", err: errs.Wrap(&pgconn.PgError{Code: "40001"}, "commit"), want: true},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestNewPostgresUoW_RetryDefaults(t *testing.T) {
	u := NewPostgresUoW(nil, nil, config.RetryConfig{}).(*PostgresUoW)

	assert.Equal(t, uint64(3), u.retry.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, u.retry.InitialInterval)
	assert.Equal(t, 2*time.Second, u.retry.MaxInterval)
}

func TestPostgresUoW_BackOff(t *testing.T) {
	u := NewPostgresUoW(nil, nil, config.RetryConfig{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     4 * time.Millisecond,
	}).(*PostgresUoW)

	t.Run("stops after max retries", func(t *testing.T) {
		b := u.backOff(context.Background())
		assert.NotEqual(t, backoff.Stop, b.NextBackOff())
		assert.NotEqual(t, backoff.Stop, b.NextBackOff())
		assert.Equal(t, backoff.Stop, b.NextBackOff())
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, backoff.Stop, u.backOff(ctx).NextBackOff())
	})
}
