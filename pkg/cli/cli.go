package cli

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/keertidamani/ghcensus/pkg/utils/errutil"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	writer io.Writer
}

type Option func(*CLI)

// WithWriter sets the destination of command output such as the analysis report
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.writer = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:   "ghcensus",
		Usage:  "Harvest GitHub users of a location and analyze them with their repositories",
		Writer: x.writer,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHCENSUS_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GHCENSUS_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("GHCENSUS_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			harvestCommand(),
			analyzeCommand(),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		errutil.HandleError(context.Background(), "fatal error", err)
		return err
	}

	return nil
}
