package testhelper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"golang.org/x/sync/errgroup"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/repository"
)

// Factory returns an empty DatasetRepository for a single test case
type Factory func(t *testing.T) interfaces.DatasetRepository

// TestAll runs all test cases for DatasetRepository
// This is the main entry point for testing any DatasetRepository implementation
func TestAll(t *testing.T, newRepo Factory) {
	t.Run("NotFoundBeforePut", func(t *testing.T) {
		TestNotFoundBeforePut(t, newRepo(t))
	})
	t.Run("UsersRoundTrip", func(t *testing.T) {
		TestUsersRoundTrip(t, newRepo(t))
	})
	t.Run("RepositoriesRoundTrip", func(t *testing.T) {
		TestRepositoriesRoundTrip(t, newRepo(t))
	})
	t.Run("PutReplacesRelation", func(t *testing.T) {
		TestPutReplacesRelation(t, newRepo(t))
	})
	t.Run("EmptyRelation", func(t *testing.T) {
		TestEmptyRelation(t, newRepo(t))
	})
	t.Run("NilRecord", func(t *testing.T) {
		TestNilRecord(t, newRepo(t))
	})
	t.Run("DatasetRoundTrip", func(t *testing.T) {
		TestDatasetRoundTrip(t, newRepo(t))
	})
	t.Run("DatasetNilRecordKeepsStored", func(t *testing.T) {
		TestDatasetNilRecordKeepsStored(t, newRepo(t))
	})
	t.Run("DatasetReplacedConsistently", func(t *testing.T) {
		TestDatasetReplacedConsistently(t, newRepo(t))
	})
}

// SampleUsers returns users covering empty optional fields, each hireable state and text that
// needs quoting.
func SampleUsers() []*model.User {
	return []*model.User{
		{
			Login:       "ada",
			Name:        "Ada Lovelace",
			Company:     "ANALYTICAL ENGINES",
			Location:    "Toronto, ON",
			Email:       "ada@example.com",
			Hireable:    model.HireableTrue,
			Bio:         "Writes \"programs\",\nfor engines",
			PublicRepos: 12,
			Followers:   540,
			Following:   3,
			CreatedAt:   time.Date(2010, 12, 10, 8, 30, 0, 0, time.UTC),
		},
		{
			Login:       "grace",
			Name:        "Grace Hopper",
			Hireable:    model.HireableFalse,
			PublicRepos: 0,
			Followers:   101,
			Following:   0,
			CreatedAt:   time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Login:     "吉田",
			Name:      "吉田 花子",
			Hireable:  model.HireableUnknown,
			Followers: 250,
			Following: 17,
			CreatedAt: time.Date(2021, 2, 28, 23, 59, 59, 0, time.UTC),
		},
	}
}

func SampleRepositories() []*model.Repository {
	return []*model.Repository{
		{
			Login:           "ada",
			FullName:        "ada/engine",
			CreatedAt:       time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC),
			StargazersCount: 42,
			WatchersCount:   42,
			Language:        "Go",
			HasProjects:     true,
			HasWiki:         false,
			LicenseName:     "mit",
		},
		{
			Login:     "ada",
			FullName:  "ada/notes",
			CreatedAt: time.Date(2019, 3, 4, 5, 6, 7, 0, time.UTC),
			HasWiki:   true,
		},
		{
			Login:           "grace",
			FullName:        "navy/cobol",
			CreatedAt:       time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC),
			StargazersCount: 7,
			WatchersCount:   7,
			Language:        "COBOL",
			LicenseName:     "apache-2.0",
		},
	}
}

func TestNotFoundBeforePut(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()

	_, err := repo.GetUsers(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.GetRepositories(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.GetDataset(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUsersRoundTrip(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()
	users := SampleUsers()

	gt.NoError(t, repo.PutUsers(ctx, users))

	retrieved := gt.R1(repo.GetUsers(ctx)).NoError(t)
	gt.A(t, retrieved).Length(len(users))
	for i, u := range users {
		got := retrieved[i]
		gt.V(t, got.Login).Equal(u.Login)
		gt.V(t, got.Name).Equal(u.Name)
		gt.V(t, got.Company).Equal(u.Company)
		gt.V(t, got.Location).Equal(u.Location)
		gt.V(t, got.Email).Equal(u.Email)
		gt.V(t, got.Hireable).Equal(u.Hireable)
		gt.V(t, got.Bio).Equal(u.Bio)
		gt.V(t, got.PublicRepos).Equal(u.PublicRepos)
		gt.V(t, got.Followers).Equal(u.Followers)
		gt.V(t, got.Following).Equal(u.Following)
		gt.True(t, got.CreatedAt.Equal(u.CreatedAt))
	}

	// Modifying returned records must not affect stored ones
	retrieved[0].Followers = 0
	again := gt.R1(repo.GetUsers(ctx)).NoError(t)
	gt.V(t, again[0].Followers).Equal(users[0].Followers)
}

func TestRepositoriesRoundTrip(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()
	repos := SampleRepositories()

	gt.NoError(t, repo.PutRepositories(ctx, repos))

	retrieved := gt.R1(repo.GetRepositories(ctx)).NoError(t)
	gt.A(t, retrieved).Length(len(repos))
	for i, r := range repos {
		got := retrieved[i]
		gt.V(t, got.Login).Equal(r.Login)
		gt.V(t, got.FullName).Equal(r.FullName)
		gt.True(t, got.CreatedAt.Equal(r.CreatedAt))
		gt.V(t, got.StargazersCount).Equal(r.StargazersCount)
		gt.V(t, got.WatchersCount).Equal(r.WatchersCount)
		gt.V(t, got.Language).Equal(r.Language)
		gt.V(t, got.HasProjects).Equal(r.HasProjects)
		gt.V(t, got.HasWiki).Equal(r.HasWiki)
		gt.V(t, got.LicenseName).Equal(r.LicenseName)
		gt.V(t, got.Weekday()).Equal(r.Weekday())
	}
}

func TestPutReplacesRelation(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()

	gt.NoError(t, repo.PutUsers(ctx, SampleUsers()))
	gt.NoError(t, repo.PutUsers(ctx, SampleUsers()[:1]))

	retrieved := gt.R1(repo.GetUsers(ctx)).NoError(t)
	gt.A(t, retrieved).Length(1)
	gt.V(t, retrieved[0].Login).Equal("ada")
}

func TestEmptyRelation(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()

	gt.NoError(t, repo.PutUsers(ctx, nil))
	gt.NoError(t, repo.PutRepositories(ctx, []*model.Repository{}))

	gt.A(t, gt.R1(repo.GetUsers(ctx)).NoError(t)).Length(0)
	gt.A(t, gt.R1(repo.GetRepositories(ctx)).NoError(t)).Length(0)
}

func TestNilRecord(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()

	err := repo.PutUsers(ctx, []*model.User{SampleUsers()[0], nil})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.PutRepositories(ctx, []*model.Repository{nil})
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

func TestDatasetRoundTrip(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()
	ds := &model.Dataset{Users: SampleUsers(), Repositories: SampleRepositories()}

	gt.NoError(t, repo.PutDataset(ctx, ds))

	retrieved := gt.R1(repo.GetDataset(ctx)).NoError(t)
	gt.NoError(t, retrieved.Validate())
	gt.A(t, retrieved.Users).Length(len(ds.Users))
	gt.A(t, retrieved.Repositories).Length(len(ds.Repositories))
	for i, u := range ds.Users {
		gt.V(t, retrieved.Users[i].Login).Equal(u.Login)
		gt.V(t, retrieved.Users[i].Followers).Equal(u.Followers)
	}
	for i, r := range ds.Repositories {
		gt.V(t, retrieved.Repositories[i].FullName).Equal(r.FullName)
		gt.V(t, retrieved.Repositories[i].Login).Equal(r.Login)
	}

	// the per relation view reads the same data
	users := gt.R1(repo.GetUsers(ctx)).NoError(t)
	gt.A(t, users).Length(len(ds.Users))

	err := repo.PutDataset(ctx, nil)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

func TestDatasetNilRecordKeepsStored(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()
	gt.NoError(t, repo.PutDataset(ctx, &model.Dataset{Users: SampleUsers(), Repositories: SampleRepositories()}))

	// a broken repository relation must not replace the users either
	err := repo.PutDataset(ctx, &model.Dataset{
		Users:        SampleUsers()[:1],
		Repositories: []*model.Repository{nil},
	})
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	retrieved := gt.R1(repo.GetDataset(ctx)).NoError(t)
	gt.A(t, retrieved.Users).Length(len(SampleUsers()))
	gt.A(t, retrieved.Repositories).Length(len(SampleRepositories()))
}

// TestDatasetReplacedConsistently reads while another goroutine keeps replacing the dataset.
// Every read must see users and repositories of the same write.
func TestDatasetReplacedConsistently(t *testing.T, repo interfaces.DatasetRepository) {
	ctx := context.Background()
	users := SampleUsers()
	repos := SampleRepositories()

	datasets := []*model.Dataset{
		{Users: users[:1], Repositories: repos[:2]},
		{Users: users[1:2], Repositories: repos[2:]},
	}
	gt.NoError(t, repo.PutDataset(ctx, datasets[0]))

	const writes = 50
	done := make(chan struct{})
	var eg errgroup.Group

	eg.Go(func() error {
		defer close(done)
		for i := range writes {
			if err := repo.PutDataset(ctx, datasets[(i+1)%2]); err != nil {
				return err
			}
		}
		return nil
	})

	eg.Go(func() error {
		for reads := 0; ; reads++ {
			select {
			case <-done:
				return nil
			default:
			}

			ds, err := repo.GetDataset(ctx)
			if err != nil {
				return err
			}
			if err := ds.Validate(); err != nil {
				return goerr.Wrap(err, "read a mixed dataset", goerr.V("reads", reads))
			}
			if len(ds.Users) != 1 {
				return goerr.New("unexpected user count", goerr.V("count", len(ds.Users)))
			}
		}
	})

	gt.NoError(t, eg.Wait())
}
