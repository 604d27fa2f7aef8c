package interfaces

import (
	"context"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
)

//go:generate moq -out ../mock/dataset_repository_mock.go -pkg mock . DatasetRepository

// DatasetRepository persists the two harvested relations. Put replaces the stored relation
// as a whole. PutDataset replaces both relations at once and GetDataset never observes one
// relation from an older dataset than the other.
type DatasetRepository interface {
	PutUsers(ctx context.Context, users []*model.User) error
	PutRepositories(ctx context.Context, repos []*model.Repository) error
	PutDataset(ctx context.Context, ds *model.Dataset) error

	GetUsers(ctx context.Context) ([]*model.User, error)
	GetRepositories(ctx context.Context) ([]*model.Repository, error)
	GetDataset(ctx context.Context) (*model.Dataset, error)
}
