package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-github/v53/github"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
)

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, tableID types.BQTableID, schema bigquery.Schema, data []any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, tableID types.BQTableID, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error
}

// GitHub is the subset of the platform REST API used by harvesting. Page numbers start at 1.
type GitHub interface {
	RateLimit(ctx context.Context, bucket model.RateBucket) (*model.RateStatus, error)
	SearchUsers(ctx context.Context, query string, page, perPage int) ([]*github.User, error)
	GetUser(ctx context.Context, login string) (*github.User, error)
	ListUserRepos(ctx context.Context, login string, page, perPage int) ([]*github.Repository, error)
}
