package infra

import (
	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
)

type Clients struct {
	github   interfaces.GitHub
	bqClient interfaces.BigQuery
	dataset  interfaces.DatasetRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) DatasetRepository() interfaces.DatasetRepository {
	return x.dataset
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithDatasetRepository(repo interfaces.DatasetRepository) Option {
	return func(x *Clients) {
		x.dataset = repo
	}
}
