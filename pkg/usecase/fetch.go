package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// RetryPolicy bounds entity fetch retries. Waits grow linearly with the attempt number.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BackoffBase: 2 * time.Second,
}

// Wait returns the pause after the given failed attempt (1-origin), e.g. 2s, 4s with the
// default policy.
func (x RetryPolicy) Wait(attempt int) time.Duration {
	return x.BackoffBase * time.Duration(attempt)
}

func (x RetryPolicy) attempts() int {
	if x.MaxAttempts < 1 {
		return 1
	}
	return x.MaxAttempts
}

// IsTransient reports whether err is a connection failure or timeout worth retrying. API
// errors with a status code and cancellation are not.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Fetch calls fn until it succeeds, fails permanently or the policy is exhausted. A failure
// wraps types.ErrFetchFailed with the entity id and the number of attempts; callers skip the
// entity on such an error.
func Fetch[T any](ctx context.Context, policy RetryPolicy, sleep Sleeper, id string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := policy.attempts()

	for attempt := 1; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, goerr.Wrap(ctxErr, "fetch interrupted", goerr.V("id", id), goerr.V("cause", err))
		}

		if !IsTransient(err) {
			return zero, goerr.Wrap(types.ErrFetchFailed, "permanent fetch failure",
				goerr.V("id", id),
				goerr.V("attempts", attempt),
				goerr.V("cause", err),
			)
		}
		if attempt >= maxAttempts {
			return zero, goerr.Wrap(types.ErrFetchFailed, "retries exhausted",
				goerr.V("id", id),
				goerr.V("attempts", attempt),
				goerr.V("cause", err),
			)
		}

		wait := policy.Wait(attempt)
		logging.From(ctx).Warn("transient fetch failure, retrying",
			slog.String("id", id),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
		if err := sleep(ctx, wait); err != nil {
			return zero, goerr.Wrap(err, "interrupted while waiting retry", goerr.V("id", id))
		}
	}
}
