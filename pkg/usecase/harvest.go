package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// Harvest builds Users and Repositories for the accounts matching input. Accounts whose detail
// fetch fails are dropped and never have repositories fetched. Users and repositories are
// processed one at a time. If a DatasetRepository is configured, both relations replace the
// previous ones in a single step.
func (x *UseCase) Harvest(ctx context.Context, input *model.HarvestInput) (*model.Dataset, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)
	guard := NewQuotaGuard(gh, x.sleep, x.lowWaterMark)
	searchGuard := NewQuotaGuard(gh, x.sleep, x.lowWaterMark, WithBucket(model.RateBucketSearch))

	if err := guard.CheckBudget(ctx); err != nil {
		return nil, err
	}

	query := input.SearchQuery()
	logger.Info("Starting harvest", slog.String("query", query), slog.Int("max_repos", input.MaxRepositories))

	candidates := NewCollector("search users",
		func(ctx context.Context, page, perPage int) ([]*github.User, error) {
			return gh.SearchUsers(ctx, query, page, perPage)
		}, searchGuard)

	ds := &model.Dataset{}
	seen := make(map[string]struct{})
	var candidateCount, failureCount int

	for candidate, err := range candidates.All(ctx) {
		if err != nil {
			return nil, err
		}
		candidateCount++

		login := candidate.GetLogin()
		if login == "" {
			continue
		}
		if _, ok := seen[login]; ok {
			logger.Debug("Skipping duplicated candidate", slog.String("login", login))
			continue
		}
		seen[login] = struct{}{}

		// detail requests are not paged, so the budget is checked per account
		if err := guard.CheckBudget(ctx); err != nil {
			return nil, err
		}

		raw, err := Fetch(ctx, x.retry, x.sleep, login, func(ctx context.Context) (*github.User, error) {
			return gh.GetUser(ctx, login)
		})
		if err != nil {
			if !errors.Is(err, types.ErrFetchFailed) {
				return nil, err
			}
			failureCount++
			logger.Warn("Dropping user", slog.String("login", login), slog.Any("error", err))
			continue
		}

		user := model.NewUser(raw)
		if user.Login == "" {
			user.Login = login
		}
		ds.Users = append(ds.Users, user)

		logger.Info("Fetched user", slog.String("login", user.Login), slog.Int("followers", user.Followers))
	}

	for i, user := range ds.Users {
		login := user.Login
		repos := NewCollector("list repositories",
			func(ctx context.Context, page, perPage int) ([]*github.Repository, error) {
				return gh.ListUserRepos(ctx, login, page, perPage)
			}, guard, WithMaxItems(input.MaxRepositories))

		count := 0
		for raw, err := range repos.All(ctx) {
			if err != nil {
				return nil, err
			}
			ds.Repositories = append(ds.Repositories, model.NewRepository(raw, login))
			count++
		}

		logger.Info("Fetched repositories",
			slog.Int("progress", i+1),
			slog.Int("total", len(ds.Users)),
			slog.String("login", login),
			slog.Int("count", count),
		)
	}

	logger.Info("Completed harvest",
		slog.Int("candidates", candidateCount),
		slog.Int("users", len(ds.Users)),
		slog.Int("dropped", failureCount),
		slog.Int("repositories", len(ds.Repositories)),
	)

	if repo := x.clients.DatasetRepository(); repo != nil {
		if err := repo.PutDataset(ctx, ds); err != nil {
			return nil, goerr.Wrap(err, "failed to save dataset")
		}
	}

	return ds, nil
}
