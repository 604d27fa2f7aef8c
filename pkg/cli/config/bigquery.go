package config

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"

	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/infra/bq"
)

type BigQuery struct {
	projectID                 types.GoogleProjectID
	datasetID                 types.BQDatasetID
	usersTable                types.BQTableID
	reposTable                types.BQTableID
	impersonateServiceAccount string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID. Export is disabled if not set",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("GHCENSUS_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("GHCENSUS_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-users-table",
			Usage:       "BigQuery table for users",
			Category:    "BigQuery",
			Destination: (*string)(&x.usersTable),
			Sources:     cli.EnvVars("GHCENSUS_BIGQUERY_USERS_TABLE"),
			Value:       "users",
		},
		&cli.StringFlag{
			Name:        "bigquery-repos-table",
			Usage:       "BigQuery table for repositories",
			Category:    "BigQuery",
			Destination: (*string)(&x.reposTable),
			Sources:     cli.EnvVars("GHCENSUS_BIGQUERY_REPOS_TABLE"),
			Value:       "repositories",
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account email to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAccount,
			Sources:     cli.EnvVars("GHCENSUS_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

func (x *BigQuery) Tables() (users, repos types.BQTableID) {
	return x.usersTable, x.reposTable
}

// NewClient returns nil without error if BigQuery is not configured
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	if x.datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bigquery-dataset-id is required with bigquery-project-id")
	}

	var options []option.ClientOption
	if x.impersonateServiceAccount != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAccount,
			Scopes:          []string{bigquery.Scope},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create impersonated token source",
				goerr.V("service_account", x.impersonateServiceAccount))
		}
		options = append(options, option.WithTokenSource(ts))
	}

	return bq.New(ctx, x.projectID, x.datasetID, options...)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("UsersTable", x.usersTable),
		slog.Any("ReposTable", x.reposTable),
		slog.String("ImpersonateServiceAccount", x.impersonateServiceAccount),
	)
}
