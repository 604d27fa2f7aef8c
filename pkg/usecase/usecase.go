package usecase

import (
	"context"
	"time"

	"github.com/keertidamani/ghcensus/pkg/analysis"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/infra"
)

const (
	DefaultUsersTable types.BQTableID = "users"
	DefaultReposTable types.BQTableID = "repositories"
)

// Sleeper suspends the caller for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type UseCase struct {
	clients *infra.Clients

	sleep        Sleeper
	retry        RetryPolicy
	lowWaterMark int

	usersTable   types.BQTableID
	reposTable   types.BQTableID
	analysisOpts []analysis.Option
}

type Option func(*UseCase)

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		sleep:        Sleep,
		retry:        DefaultRetryPolicy,
		lowWaterMark: DefaultLowWaterMark,
		usersTable:   DefaultUsersTable,
		reposTable:   DefaultReposTable,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// WithSleeper replaces the function used for quota pauses and retry backoff
func WithSleeper(sleep Sleeper) Option {
	return func(x *UseCase) {
		x.sleep = sleep
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(x *UseCase) {
		x.retry = policy
	}
}

func WithLowWaterMark(n int) Option {
	return func(x *UseCase) {
		x.lowWaterMark = n
	}
}

func WithBigQueryTables(users, repos types.BQTableID) Option {
	return func(x *UseCase) {
		if users != "" {
			x.usersTable = users
		}
		if repos != "" {
			x.reposTable = repos
		}
	}
}

func WithAnalysisOptions(opts ...analysis.Option) Option {
	return func(x *UseCase) {
		x.analysisOpts = append(x.analysisOpts, opts...)
	}
}
