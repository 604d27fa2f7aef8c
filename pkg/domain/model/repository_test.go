package model_test

import (
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
)

func TestNewRepository(t *testing.T) {
	t.Run("license key is extracted", func(t *testing.T) {
		repo := model.NewRepository(&github.Repository{
			FullName:        github.String("octocat/hello"),
			CreatedAt:       &github.Timestamp{Time: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)},
			StargazersCount: github.Int(42),
			WatchersCount:   github.Int(42),
			Language:        github.String("Go"),
			HasProjects:     github.Bool(true),
			HasWiki:         github.Bool(false),
			License:         &github.License{Key: github.String("mit"), Name: github.String("MIT License")},
		}, "octocat")

		gt.V(t, repo.Login).Equal("octocat")
		gt.V(t, repo.FullName).Equal("octocat/hello")
		gt.V(t, repo.StargazersCount).Equal(42)
		gt.V(t, repo.Language).Equal("Go")
		gt.True(t, repo.HasProjects)
		gt.False(t, repo.HasWiki)
		gt.V(t, repo.LicenseName).Equal("mit")
	})

	t.Run("owner login is kept even for other namespaces", func(t *testing.T) {
		repo := model.NewRepository(&github.Repository{
			FullName: github.String("some-org/fork"),
		}, "octocat")
		gt.V(t, repo.Login).Equal("octocat")
	})

	t.Run("missing fields degrade to defaults", func(t *testing.T) {
		repo := model.NewRepository(&github.Repository{}, "octocat")
		gt.V(t, repo.LicenseName).Equal("")
		gt.V(t, repo.Language).Equal("")
		gt.False(t, repo.HasProjects)
		gt.False(t, repo.HasWiki)
	})

	t.Run("nil record does not panic", func(t *testing.T) {
		repo := model.NewRepository(nil, "octocat")
		gt.V(t, repo.Login).Equal("octocat")
	})
}

func TestRepositoryWeekday(t *testing.T) {
	testCases := []struct {
		date    time.Time
		weekday int
		weekend bool
	}{
		{date: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), weekday: 0},
		{date: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC), weekday: 2},
		{date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), weekday: 5, weekend: true},
		{date: time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), weekday: 6, weekend: true},
		// Sunday 23:00 in UTC-5 is Monday in UTC
		{date: time.Date(2024, 1, 7, 23, 0, 0, 0, time.FixedZone("EST", -5*3600)), weekday: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.date.String(), func(t *testing.T) {
			repo := &model.Repository{CreatedAt: tc.date}
			gt.V(t, repo.Weekday()).Equal(tc.weekday)
			gt.V(t, repo.CreatedOnWeekend()).Equal(tc.weekend)
		})
	}
}
