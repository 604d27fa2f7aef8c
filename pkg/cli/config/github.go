package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/infra/gh"
)

type GitHub struct {
	token  types.GitHubToken `masq:"secret"`
	apiURL string
}

// Flags returns GitHub flags. The token is required only when required is true; serve mode
// runs without harvest if it is not given.
func (x *GitHub) Flags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHCENSUS_GITHUB_TOKEN"),
			Required:    required,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("GHCENSUS_GITHUB_API_URL"),
			Value:       gh.DefaultBaseURL,
		},
	}
}

func (x *GitHub) Enabled() bool {
	return x.token != ""
}

func (x *GitHub) New() (*gh.Client, error) {
	return gh.New(x.token, gh.WithBaseURL(x.apiURL))
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("APIURL", x.apiURL),
	)
}
