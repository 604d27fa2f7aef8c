package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/keertidamani/ghcensus/pkg/domain/mock"
	"github.com/keertidamani/ghcensus/pkg/infra"
	"github.com/keertidamani/ghcensus/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// All clients should be nil without configuration
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.DatasetRepository()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithBigQuery option sets BigQuery client", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{}
		clients := infra.New(infra.WithBigQuery(mockBQ))
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockBQ := &mock.BigQueryMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithDatasetRepository(repo),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.DatasetRepository()).Equal(repo)
	})
}
