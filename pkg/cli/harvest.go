package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/keertidamani/ghcensus/pkg/cli/config"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/infra"
	"github.com/keertidamani/ghcensus/pkg/usecase"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

func harvestCommand() *cli.Command {
	var (
		input    model.HarvestInput
		github   config.GitHub
		dataset  config.Dataset
		bigQuery config.BigQuery
		sentry   config.Sentry
	)

	return &cli.Command{
		Name:    "harvest",
		Aliases: []string{"h"},
		Usage:   "Collect users of a location and their repositories, then store them as CSV files",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "location",
				Usage:       "Location filter of the user search",
				Sources:     cli.EnvVars("GHCENSUS_LOCATION"),
				Destination: &input.Location,
				Required:    true,
			},
			&cli.IntFlag{
				Name:        "min-followers",
				Usage:       "Users must have more followers than this",
				Sources:     cli.EnvVars("GHCENSUS_MIN_FOLLOWERS"),
				Destination: &input.MinFollowers,
				Value:       model.DefaultMinFollowers,
			},
			&cli.IntFlag{
				Name:        "max-repos",
				Usage:       "Maximum number of repositories per user",
				Sources:     cli.EnvVars("GHCENSUS_MAX_REPOS"),
				Destination: &input.MaxRepositories,
				Value:       model.DefaultMaxRepositories,
			},
		},
			github.Flags(true),
			dataset.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting harvest",
				slog.String("Location", input.Location),
				slog.Int("MinFollowers", input.MinFollowers),
				slog.Int("MaxRepos", input.MaxRepositories),
				slog.Any("GitHub", github),
				slog.Any("Dataset", &dataset),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghClient),
				infra.WithDatasetRepository(dataset.NewRepository()),
			}

			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create BigQuery client")
			}
			if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc := usecase.New(infra.New(infraOptions...),
				usecase.WithBigQueryTables(bigQuery.Tables()),
			)

			ds, err := uc.Harvest(ctx, &input)
			if err != nil {
				return err
			}

			if bqClient != nil {
				if err := uc.Export(ctx, ds); err != nil {
					return err
				}
			}

			logging.Default().Info("harvest completed",
				slog.Int("users", len(ds.Users)),
				slog.Int("repositories", len(ds.Repositories)),
			)
			return nil
		},
	}
}
