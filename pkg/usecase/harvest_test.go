package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"
	"golang.org/x/sync/errgroup"

	"github.com/keertidamani/ghcensus/pkg/domain/mock"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/infra"
	"github.com/keertidamani/ghcensus/pkg/repository/memory"
	"github.com/keertidamani/ghcensus/pkg/usecase"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

func noSleep(ctx context.Context, d time.Duration) error {
	return nil
}

func newHarvestMock() *mock.GitHubMock {
	created := &github.Timestamp{Time: time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC)}
	details := map[string]*github.User{
		"alice": {
			Login:     github.String("alice"),
			Name:      github.String("Alice Liddell"),
			Company:   github.String(" @wonderland "),
			Hireable:  github.Bool(true),
			Followers: github.Int(500),
			CreatedAt: created,
		},
		"carol": {
			Login:     github.String("carol"),
			Followers: github.Int(120),
			CreatedAt: created,
		},
	}

	return &mock.GitHubMock{
		RateLimitFunc: func(ctx context.Context, bucket model.RateBucket) (*model.RateStatus, error) {
			return &model.RateStatus{Limit: 5000, Remaining: 4000}, nil
		},
		SearchUsersFunc: func(ctx context.Context, query string, page, perPage int) ([]*github.User, error) {
			if page > 1 {
				return nil, nil
			}
			return []*github.User{
				{Login: github.String("alice")},
				{Login: github.String("bob")},
				{Login: github.String("alice")},
				{Login: github.String("carol")},
			}, nil
		},
		GetUserFunc: func(ctx context.Context, login string) (*github.User, error) {
			if login == "bob" {
				return nil, transientError()
			}
			return details[login], nil
		},
		ListUserReposFunc: func(ctx context.Context, login string, page, perPage int) ([]*github.Repository, error) {
			if page > 2 {
				return nil, nil
			}
			repos := make([]*github.Repository, perPage)
			for i := range repos {
				repos[i] = &github.Repository{
					FullName: github.String(login + "/repo"),
					Language: github.String("Go"),
					License:  &github.License{Key: github.String("mit")},
				}
			}
			return repos, nil
		},
	}
}

func TestHarvest(t *testing.T) {
	ctx := context.Background()

	t.Run("build users and repositories", func(t *testing.T) {
		gh := newHarvestMock()
		repo := memory.New()
		var sleeper sleepRecorder
		uc := usecase.New(infra.New(
			infra.WithGitHub(gh),
			infra.WithDatasetRepository(repo),
		), usecase.WithSleeper(sleeper.Sleep))

		ds := gt.R1(uc.Harvest(ctx, &model.HarvestInput{
			Location:        "Toronto",
			MinFollowers:    100,
			MaxRepositories: 150,
		})).NoError(t)
		gt.NoError(t, ds.Validate())

		gt.A(t, ds.Users).Length(2)
		gt.V(t, ds.Users[0].Login).Equal("alice")
		gt.V(t, ds.Users[0].Company).Equal("WONDERLAND")
		gt.V(t, ds.Users[0].Hireable).Equal(model.HireableTrue)
		gt.V(t, ds.Users[1].Login).Equal("carol")
		gt.V(t, ds.Users[1].Hireable).Equal(model.HireableUnknown)

		// capped per user and in user order
		gt.A(t, ds.Repositories).Length(300)
		gt.V(t, ds.Repositories[0].Login).Equal("alice")
		gt.V(t, ds.Repositories[299].Login).Equal("carol")
		gt.V(t, ds.Repositories[0].LicenseName).Equal("mit")

		gt.V(t, gh.SearchUsersCalls()[0].Query).Equal("location:Toronto followers:>100")

		// bob is retried with backoff, dropped and never has repositories fetched
		bobCalls := 0
		for _, c := range gh.GetUserCalls() {
			if c.Login == "bob" {
				bobCalls++
			}
		}
		gt.V(t, bobCalls).Equal(3)
		gt.V(t, sleeper.waits).Equal([]time.Duration{2 * time.Second, 4 * time.Second})
		for _, c := range gh.ListUserReposCalls() {
			gt.V(t, c.Login).NotEqual("bob")
		}
		// the duplicated candidate is fetched once
		gt.A(t, gh.GetUserCalls()).Length(5)

		stored := gt.R1(repo.GetUsers(ctx)).NoError(t)
		gt.A(t, stored).Length(2)
		storedRepos := gt.R1(repo.GetRepositories(ctx)).NoError(t)
		gt.A(t, storedRepos).Length(300)
	})

	t.Run("search pages are paced on the search bucket", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(ctx, func() time.Time { return now })

		gh := newHarvestMock()
		gh.RateLimitFunc = func(ctx context.Context, bucket model.RateBucket) (*model.RateStatus, error) {
			if bucket == model.RateBucketSearch {
				return &model.RateStatus{Limit: 30, Remaining: 1, Reset: now.Add(20 * time.Second)}, nil
			}
			return &model.RateStatus{Limit: 5000, Remaining: 4000, Reset: now.Add(time.Hour)}, nil
		}
		var sleeper sleepRecorder
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithSleeper(sleeper.Sleep))

		gt.R1(uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MinFollowers: 100, MaxRepositories: 10})).NoError(t)

		var searchChecks int
		for _, c := range gh.RateLimitCalls() {
			if c.Bucket == model.RateBucketSearch {
				searchChecks++
			}
		}
		// checked once between the two search pages, the core bucket never pauses
		gt.V(t, searchChecks).Equal(1)
		// bob is retried while the first page is consumed
		gt.V(t, sleeper.waits).Equal([]time.Duration{2 * time.Second, 4 * time.Second, 21 * time.Second})
	})

	t.Run("dataset is saved in a single step", func(t *testing.T) {
		repo := &mock.DatasetRepositoryMock{
			PutDatasetFunc: func(ctx context.Context, ds *model.Dataset) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithGitHub(newHarvestMock()),
			infra.WithDatasetRepository(repo),
		), usecase.WithSleeper(noSleep))

		ds := gt.R1(uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MinFollowers: 100, MaxRepositories: 10})).NoError(t)
		gt.A(t, repo.PutDatasetCalls()).Length(1)
		gt.V(t, repo.PutDatasetCalls()[0].Ds).Equal(ds)
		gt.A(t, repo.PutUsersCalls()).Length(0)
		gt.A(t, repo.PutRepositoriesCalls()).Length(0)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		repo := &mock.DatasetRepositoryMock{
			PutDatasetFunc: func(ctx context.Context, ds *model.Dataset) error {
				return errors.New("disk full")
			},
		}
		uc := usecase.New(infra.New(
			infra.WithGitHub(newHarvestMock()),
			infra.WithDatasetRepository(repo),
		), usecase.WithSleeper(noSleep))

		_, err := uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MinFollowers: 100, MaxRepositories: 10})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("disk full")
	})

	t.Run("report while harvest saves sees one dataset", func(t *testing.T) {
		repo := memory.New()
		// the previous run stored a dataset that shares no login with the new one
		gt.NoError(t, repo.PutDataset(ctx, &model.Dataset{
			Users:        []*model.User{{Login: "old"}},
			Repositories: []*model.Repository{{Login: "old", FullName: "old/repo"}},
		}))
		uc := usecase.New(infra.New(
			infra.WithGitHub(newHarvestMock()),
			infra.WithDatasetRepository(repo),
		), usecase.WithSleeper(noSleep))

		var running atomic.Bool
		running.Store(true)
		var eg errgroup.Group
		eg.Go(func() error {
			defer running.Store(false)
			for range 20 {
				if _, err := uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MinFollowers: 100, MaxRepositories: 5}); err != nil {
					return err
				}
			}
			return nil
		})
		eg.Go(func() error {
			for running.Load() {
				if _, err := uc.Report(ctx); err != nil {
					return err
				}
			}
			return nil
		})
		gt.NoError(t, eg.Wait())

		report := gt.R1(uc.Report(ctx)).NoError(t)
		gt.V(t, report.TopFollowers[0]).Equal("alice")
	})

	t.Run("quota failure aborts the run", func(t *testing.T) {
		gh := newHarvestMock()
		gh.RateLimitFunc = func(ctx context.Context, bucket model.RateBucket) (*model.RateStatus, error) {
			return nil, errors.New("unreachable")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MinFollowers: 100, MaxRepositories: 500})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrQuotaUnavailable))
		gt.A(t, gh.SearchUsersCalls()).Length(0)
	})

	t.Run("failed search page keeps partial candidates", func(t *testing.T) {
		gh := newHarvestMock()
		gh.SearchUsersFunc = func(ctx context.Context, query string, page, perPage int) ([]*github.User, error) {
			if page == 1 {
				return []*github.User{{Login: github.String("carol")}}, nil
			}
			return nil, errors.New("422 Only the first 1000 search results are available")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		ds := gt.R1(uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MinFollowers: 100, MaxRepositories: 10})).NoError(t)
		gt.A(t, ds.Users).Length(1)
		gt.A(t, ds.Repositories).Length(10)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHub(newHarvestMock())))
		_, err := uc.Harvest(ctx, &model.HarvestInput{MaxRepositories: 500})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("GitHub client is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.Harvest(ctx, &model.HarvestInput{Location: "Toronto", MaxRepositories: 500})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
