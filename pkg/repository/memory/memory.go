package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/repository"
)

type datasetRepository struct {
	mu    sync.RWMutex
	users []*model.User
	repos []*model.Repository

	hasUsers bool
	hasRepos bool
}

// New creates a new in-memory repository
func New() interfaces.DatasetRepository {
	return &datasetRepository{}
}

func (r *datasetRepository) PutUsers(ctx context.Context, users []*model.User) error {
	copied, err := copyAll(users, "user")
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = copied
	r.hasUsers = true
	return nil
}

func (r *datasetRepository) PutRepositories(ctx context.Context, repos []*model.Repository) error {
	copied, err := copyAll(repos, "repository")
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.repos = copied
	r.hasRepos = true
	return nil
}

// PutDataset swaps both relations under one lock
func (r *datasetRepository) PutDataset(ctx context.Context, ds *model.Dataset) error {
	if ds == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "nil dataset")
	}
	users, err := copyAll(ds.Users, "user")
	if err != nil {
		return err
	}
	repos, err := copyAll(ds.Repositories, "repository")
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users, r.repos = users, repos
	r.hasUsers, r.hasRepos = true, true
	return nil
}

func (r *datasetRepository) GetUsers(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasUsers {
		return nil, goerr.Wrap(repository.ErrNotFound, "users are not stored yet")
	}
	return copyAll(r.users, "user")
}

func (r *datasetRepository) GetRepositories(ctx context.Context) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasRepos {
		return nil, goerr.Wrap(repository.ErrNotFound, "repositories are not stored yet")
	}
	return copyAll(r.repos, "repository")
}

func copyAll[T any](src []*T, kind string) ([]*T, error) {
	resp := make([]*T, len(src))
	for i, v := range src {
		if v == nil {
			return nil, goerr.Wrap(repository.ErrInvalidInput, "nil record", goerr.V("kind", kind), goerr.V("index", i))
		}
		cpy := *v
		resp[i] = &cpy
	}
	return resp, nil
}

func (r *datasetRepository) GetDataset(ctx context.Context) (*model.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasUsers || !r.hasRepos {
		return nil, goerr.Wrap(repository.ErrNotFound, "dataset is not stored yet")
	}
	users, err := copyAll(r.users, "user")
	if err != nil {
		return nil, err
	}
	repos, err := copyAll(r.repos, "repository")
	if err != nil {
		return nil, err
	}
	return &model.Dataset{Users: users, Repositories: repos}, nil
}
