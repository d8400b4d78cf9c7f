package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/seguro-calcio/roster-service/internal/logging"
)

const defaultRetryAttempts = 3

// Do runs fn with exponential backoff until it succeeds, the retry limit is
// reached, or the context is canceled.
func Do(ctx context.Context, logger *slog.Logger, name string, fn func(context.Context) error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), defaultRetryAttempts),
		ctx,
	)

	return backoff.RetryNotify(
		func() error { return fn(ctx) },
		policy,
		func(err error, wait time.Duration) {
			logging.Warn(logger, "provider call failed, retrying",
				slog.String(logging.FieldProvider, name),
				slog.String("wait", wait.String()),
				slog.String("error", err.Error()),
			)
		},
	)
}
