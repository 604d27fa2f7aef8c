package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/analysis"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
)

// Report loads the stored relations and computes the analysis over them
func (x *UseCase) Report(ctx context.Context) (*model.Report, error) {
	repo := x.clients.DatasetRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "dataset repository is not configured")
	}

	ds, err := repo.GetDataset(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset")
	}
	if err := ds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "stored dataset is inconsistent")
	}

	return analysis.Run(ctx, ds, x.analysisOpts...), nil
}
