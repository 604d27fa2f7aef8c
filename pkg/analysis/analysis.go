// Package analysis computes the fixed set of sixteen statistics over a harvested dataset.
// Inputs are never modified; derived values are computed per call.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

const (
	topUsers    = 5
	topLicenses = 3
)

// RecentUserSince is the account creation cutoff of the second-language statistic
var RecentUserSince = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

type config struct {
	singleTokenSurname bool
}

type Option func(*config)

// WithSingleTokenSurname counts a one-token name as a surname. By default a name needs at
// least two tokens.
func WithSingleTokenSurname(enabled bool) Option {
	return func(c *config) {
		c.singleTokenSurname = enabled
	}
}

// Run computes all statistics. The sixteen computations run concurrently over the same
// read-only dataset and each writes its own field of the report.
func Run(ctx context.Context, ds *model.Dataset, options ...Option) *model.Report {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	users, repos := ds.Users, ds.Repositories
	report := &model.Report{}
	started := time.Now()

	var eg errgroup.Group
	run := func(fn func()) {
		eg.Go(func() error {
			fn()
			return nil
		})
	}

	run(func() { report.TopFollowers = TopFollowers(users) })
	run(func() { report.EarliestUsers = EarliestUsers(users) })
	run(func() { report.PopularLicenses = PopularLicenses(repos) })
	run(func() { report.CommonCompany = CommonCompany(users) })
	run(func() { report.PopularLanguage = PopularLanguage(repos) })
	run(func() { report.SecondLanguageSince2020 = SecondLanguageSince(users, repos, RecentUserSince) })
	run(func() { report.HighestAvgStarsLanguage = HighestAvgStarsLanguage(repos) })
	run(func() { report.TopLeaderStrength = TopLeaderStrength(users) })
	run(func() { report.FollowersReposCorrelation = FollowersReposCorrelation(users) })
	run(func() { report.FollowersReposSlope = FollowersReposSlope(users) })
	run(func() { report.ProjectsWikiCorrelation = ProjectsWikiCorrelation(repos) })
	run(func() { report.HireableFollowingDiff = HireableFollowingDiff(users) })
	run(func() { report.BioFollowersSlope = BioFollowersSlope(users) })
	run(func() { report.WeekendCreators = WeekendCreators(repos) })
	run(func() { report.HireableEmailDiff = HireableEmailDiff(users) })
	run(func() { report.CommonSurnames = CommonSurnames(users, cfg.singleTokenSurname) })

	// computations never fail
	_ = eg.Wait()

	logging.From(ctx).Debug("analysis completed",
		slog.Int("users", len(users)),
		slog.Int("repositories", len(repos)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return report
}
