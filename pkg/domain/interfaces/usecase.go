package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
)

type UseCase interface {
	Harvest(ctx context.Context, input *model.HarvestInput) (*model.Dataset, error)
	Export(ctx context.Context, ds *model.Dataset) error
	Report(ctx context.Context) (*model.Report, error)
}
