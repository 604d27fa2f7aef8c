package server

import (
	"context"
	"log/slog"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/utils/errutil"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// runHarvest is called from a background goroutine. The result is stored by the usecase.
func runHarvest(ctx context.Context, uc interfaces.UseCase, input *model.HarvestInput) {
	logger := logging.From(ctx).With(slog.String("location", input.Location))
	logger.Info("Starting background harvest")

	ds, err := uc.Harvest(ctx, input)
	if err != nil {
		errutil.HandleError(ctx, "background harvest failed", err)
		return
	}

	logger.Info("Background harvest completed",
		slog.Int("users", len(ds.Users)),
		slog.Int("repositories", len(ds.Repositories)),
	)
}
