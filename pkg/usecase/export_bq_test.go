package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/mock"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/infra"
	"github.com/keertidamani/ghcensus/pkg/usecase"
)

func sampleDataset() *model.Dataset {
	created := time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC)
	return &model.Dataset{
		Users: []*model.User{
			{Login: "alice", Followers: 500, CreatedAt: created},
			{Login: "carol", Followers: 120, CreatedAt: created},
		},
		Repositories: []*model.Repository{
			{Login: "alice", FullName: "alice/a", CreatedAt: created},
		},
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("create tables and insert rows", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, tableID types.BQTableID, schema bigquery.Schema, data []any, opts ...interfaces.BigQueryInsertOption) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(infra.WithBigQuery(mockBQ)),
			usecase.WithBigQueryTables("toronto_users", ""))

		gt.NoError(t, uc.Export(ctx, sampleDataset()))

		created := mockBQ.CreateTableCalls()
		gt.A(t, created).Length(2)
		gt.V(t, created[0].TableID).Equal(types.BQTableID("toronto_users"))
		gt.V(t, created[1].TableID).Equal(usecase.DefaultReposTable)

		inserts := mockBQ.InsertCalls()
		gt.A(t, inserts).Length(2)
		gt.A(t, inserts[0].Data).Length(2)
		gt.A(t, inserts[1].Data).Length(1)

		row, ok := inserts[0].Data[0].(*model.UserRawRecord)
		gt.True(t, ok)
		gt.V(t, row.CreatedAt).Equal(time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC).UnixMicro())
	})

	t.Run("insert failure", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, tableID types.BQTableID, schema bigquery.Schema, data []any, opts ...interfaces.BigQueryInsertOption) error {
				return errors.New("quota exceeded")
			},
		}
		uc := usecase.New(infra.New(infra.WithBigQuery(mockBQ)))
		gt.Error(t, uc.Export(ctx, sampleDataset()))
		gt.A(t, mockBQ.InsertCalls()).Length(1)
	})

	t.Run("BigQuery is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		err := uc.Export(ctx, sampleDataset())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestCreateOrUpdateBigQueryTable(t *testing.T) {
	ctx := context.Background()

	t.Run("create then keep same schema", func(t *testing.T) {
		var current *bigquery.TableMetadata
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return current, nil
			},
			CreateTableFunc: func(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error {
				current = md
				return nil
			},
		}
		schema, updated, err := usecase.CreateOrUpdateBigQueryTableForTest(ctx, mockBQ, "users", &model.User{})
		gt.NoError(t, err)
		gt.False(t, updated)
		gt.A(t, schema).Longer(0)
		gt.A(t, mockBQ.CreateTableCalls()).Length(1)

		_, updated, err = usecase.CreateOrUpdateBigQueryTableForTest(ctx, mockBQ, "users", &model.User{})
		gt.NoError(t, err)
		gt.False(t, updated)
		gt.A(t, mockBQ.CreateTableCalls()).Length(1)
		gt.A(t, mockBQ.UpdateTableCalls()).Length(0)
	})

	t.Run("missing columns are merged", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{
					Schema: bigquery.Schema{{Name: "login", Type: bigquery.StringFieldType}},
					ETag:   "etag-1",
				}, nil
			},
			UpdateTableFunc: func(ctx context.Context, tableID types.BQTableID, md bigquery.TableMetadataToUpdate, eTag string) error {
				return nil
			},
		}
		schema, updated, err := usecase.CreateOrUpdateBigQueryTableForTest(ctx, mockBQ, "users", &model.User{})
		gt.NoError(t, err)
		gt.True(t, updated)
		gt.A(t, schema).Longer(1)

		calls := mockBQ.UpdateTableCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].ETag).Equal("etag-1")
	})
}
