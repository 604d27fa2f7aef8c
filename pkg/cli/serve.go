package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/keertidamani/ghcensus/pkg/cli/config"
	"github.com/keertidamani/ghcensus/pkg/controller/server"
	"github.com/keertidamani/ghcensus/pkg/infra"
	"github.com/keertidamani/ghcensus/pkg/usecase"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr string

		github  config.GitHub
		dataset config.Dataset
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GHCENSUS_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the analysis report over HTTP. Harvest is enabled if a GitHub token is given",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(false),
			dataset.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Dataset", &dataset),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithDatasetRepository(dataset.NewRepository()),
			}
			var serverOptions []server.Option

			if github.Enabled() {
				ghClient, err := github.New()
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithGitHub(ghClient))
				serverOptions = append(serverOptions, server.WithHarvest())
			}

			uc := usecase.New(infra.New(infraOptions...))
			s := server.New(uc, serverOptions...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
