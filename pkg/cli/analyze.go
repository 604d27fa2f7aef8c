package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/keertidamani/ghcensus/pkg/analysis"
	"github.com/keertidamani/ghcensus/pkg/cli/config"
	"github.com/keertidamani/ghcensus/pkg/infra"
	"github.com/keertidamani/ghcensus/pkg/usecase"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

func analyzeCommand() *cli.Command {
	var (
		dataset            config.Dataset
		format             string
		singleTokenSurname bool
	)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Compute statistics over the stored users and repositories",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format [text|json]",
				Value:       formatText,
				Sources:     cli.EnvVars("GHCENSUS_FORMAT"),
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "surname-single-token",
				Usage:       "Count a single-word name as a surname",
				Sources:     cli.EnvVars("GHCENSUS_SURNAME_SINGLE_TOKEN"),
				Destination: &singleTokenSurname,
			},
		}, dataset.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting analyze",
				slog.Any("Dataset", &dataset),
				slog.String("Format", format),
				slog.Bool("SingleTokenSurname", singleTokenSurname),
			)

			clients := infra.New(infra.WithDatasetRepository(dataset.NewRepository()))
			uc := usecase.New(clients,
				usecase.WithAnalysisOptions(analysis.WithSingleTokenSurname(singleTokenSurname)),
			)

			report, err := uc.Report(ctx)
			if err != nil {
				return err
			}

			return writeReport(c.Root().Writer, report, format)
		},
	}
}
