package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

const (
	// DefaultLowWaterMark is the remaining request count below which the caller is paused
	DefaultLowWaterMark = 10

	// reset is reported in whole seconds
	resetMargin = time.Second
)

// QuotaGuard pauses the caller until the rate limit window resets when the remaining budget
// is low. It is the only component that paces requests.
type QuotaGuard struct {
	github       interfaces.GitHub
	sleep        Sleeper
	lowWaterMark int
	bucket       model.RateBucket
}

type QuotaGuardOption func(*QuotaGuard)

// WithBucket selects the rate limit window the guard watches. Default is the core bucket.
func WithBucket(bucket model.RateBucket) QuotaGuardOption {
	return func(x *QuotaGuard) {
		x.bucket = bucket
	}
}

func NewQuotaGuard(github interfaces.GitHub, sleep Sleeper, lowWaterMark int, options ...QuotaGuardOption) *QuotaGuard {
	x := &QuotaGuard{
		github:       github,
		sleep:        sleep,
		lowWaterMark: lowWaterMark,
		bucket:       model.RateBucketCore,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// CheckBudget returns an error wrapping types.ErrQuotaUnavailable if the status can not be
// retrieved. That error is fatal for the run.
func (x *QuotaGuard) CheckBudget(ctx context.Context) error {
	status, err := x.github.RateLimit(ctx, x.bucket)
	if err != nil {
		return goerr.Wrap(types.ErrQuotaUnavailable, "failed to query rate limit status",
			goerr.V("bucket", x.bucket.String()), goerr.V("cause", err))
	}

	logger := logging.From(ctx)
	if status.Remaining >= x.lowWaterMark {
		logger.Debug("requests remaining",
			slog.String("bucket", x.bucket.String()),
			slog.Int("remaining", status.Remaining),
			slog.Int("limit", status.Limit),
		)
		return nil
	}

	wait := status.Reset.Sub(logging.CtxTime(ctx))
	if wait <= 0 {
		return nil
	}
	wait += resetMargin

	logger.Warn("approaching rate limit, pausing until reset",
		slog.String("bucket", x.bucket.String()),
		slog.Int("remaining", status.Remaining),
		slog.Time("reset", status.Reset),
		slog.Duration("wait", wait),
	)

	if err := x.sleep(ctx, wait); err != nil {
		return goerr.Wrap(err, "interrupted while waiting rate limit reset")
	}
	return nil
}
