package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// Export appends both relations to their BigQuery tables. Tables are created on first use and
// their schema is extended when the model has new columns.
func (x *UseCase) Export(ctx context.Context, ds *model.Dataset) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return goerr.Wrap(types.ErrInvalidOption, "BigQuery is not configured")
	}

	users := make([]any, len(ds.Users))
	for i, u := range ds.Users {
		users[i] = u.RawRecord()
	}
	if err := exportTable(ctx, bq, x.usersTable, &model.User{}, users); err != nil {
		return goerr.Wrap(err, "failed to export users")
	}

	repos := make([]any, len(ds.Repositories))
	for i, r := range ds.Repositories {
		repos[i] = r.RawRecord()
	}
	if err := exportTable(ctx, bq, x.reposTable, &model.Repository{}, repos); err != nil {
		return goerr.Wrap(err, "failed to export repositories")
	}

	return nil
}

func exportTable(ctx context.Context, bq interfaces.BigQuery, tableID types.BQTableID, sample any, rows []any) error {
	schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, bq, tableID, sample)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, tableID, schema, rows, interfaces.WithRetry(schemaUpdated)); err != nil {
		return goerr.Wrap(err, "failed to insert rows", goerr.V("table", tableID))
	}

	logging.From(ctx).Info("Exported rows to BigQuery",
		slog.Any("table", tableID),
		slog.Int("rows", len(rows)),
		slog.Bool("schema_updated", schemaUpdated),
	)
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, tableID types.BQTableID, sample any) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(sample)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer schema", goerr.V("table", tableID))
	}

	metaData, err := bq.GetMetadata(ctx, tableID)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, tableID, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, tableID, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
