package bq

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
	"github.com/keertidamani/ghcensus/pkg/utils/safe"
)

const (
	schemaRetryLimit    = 6
	schemaRetryInterval = 5 * time.Second
)

type Client struct {
	bqClient *bigquery.Client
	mwClient *managedwriter.Client
	project  string
	dataset  string
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, options ...option.ClientOption) (*Client, error) {
	if projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bigquery project ID is empty")
	}
	if datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bigquery dataset ID is empty")
	}

	mwClient, err := managedwriter.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bigquery client", goerr.V("projectID", projectID))
	}

	bqClient, err := bigquery.NewClient(ctx, string(projectID), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		mwClient: mwClient,
		project:  projectID.String(),
		dataset:  datasetID.String(),
	}, nil
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, tableID types.BQTableID, md *bigquery.TableMetadata) error {
	if err := x.bqClient.Dataset(x.dataset).Table(tableID.String()).Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context, tableID types.BQTableID) (*bigquery.TableMetadata, error) {
	md, err := x.bqClient.Dataset(x.dataset).Table(tableID.String()).Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", tableID))
	}

	return md, nil
}

// Insert implements interfaces.BigQuery. All rows are appended in one request to the default
// stream. With WithRetry(true), the append is retried while the backend has not yet picked up a
// freshly updated table schema.
func (x *Client) Insert(ctx context.Context, tableID types.BQTableID, schema bigquery.Schema, data []any, opts ...interfaces.BigQueryInsertOption) error {
	var cfg interfaces.BigQueryInsertConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) == 0 {
		return nil
	}

	convertedSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return goerr.Wrap(err, "failed to convert schema")
	}

	descriptor, err := adapt.StorageSchemaToProto2Descriptor(convertedSchema, "root")
	if err != nil {
		return goerr.Wrap(err, "failed to convert schema to descriptor")
	}
	messageDescriptor, ok := descriptor.(protoreflect.MessageDescriptor)
	if !ok {
		return goerr.New("adapted descriptor is not a message descriptor")
	}
	descriptorProto, err := adapt.NormalizeDescriptor(messageDescriptor)
	if err != nil {
		return goerr.Wrap(err, "failed to normalize descriptor")
	}

	rows := make([][]byte, 0, len(data))
	for i, v := range data {
		b, err := encodeRow(messageDescriptor, v)
		if err != nil {
			return goerr.Wrap(err, "failed to encode row", goerr.V("index", i))
		}
		rows = append(rows, b)
	}

	for attempt := 1; ; attempt++ {
		err := x.appendRows(ctx, tableID, descriptorProto, rows)
		if err == nil {
			return nil
		}
		if !cfg.EnableRetry || !IsSchemaNotFoundError(err) || attempt >= schemaRetryLimit {
			return err
		}

		logging.From(ctx).Warn("table schema is not propagated yet, retrying",
			slog.Any("table", tableID),
			slog.Int("attempt", attempt),
		)

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "canceled while waiting schema propagation")
		case <-time.After(schemaRetryInterval):
		}
	}
}

func encodeRow(md protoreflect.MessageDescriptor, v any) ([]byte, error) {
	message := dynamicpb.NewMessage(md)

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to Marshal json message", goerr.V("v", v))
	}
	sanitizedRaw, err := sanitizeProtoJSON(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sanitize json message", goerr.V("raw", string(raw)))
	}

	// First, json->proto message
	if err := protojson.Unmarshal(sanitizedRaw, message); err != nil {
		return nil, goerr.Wrap(err, "failed to Unmarshal json message", goerr.V("raw", string(raw)))
	}
	// Then, proto message -> bytes.
	b, err := proto.Marshal(message)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to Marshal proto message")
	}
	return b, nil
}

func (x *Client) appendRows(ctx context.Context, tableID types.BQTableID, descriptorProto *descriptorpb.DescriptorProto, rows [][]byte) error {
	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(
			managedwriter.TableParentFromParts(
				x.project,
				x.dataset,
				tableID.String(),
			),
		),
		managedwriter.WithSchemaDescriptor(descriptorProto),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream")
	}
	defer safe.Close(ctx, ms)

	arResult, err := ms.AppendRows(ctx, rows)
	if err != nil {
		return goerr.Wrap(err, "failed to append rows", goerr.V("table", tableID))
	}

	if _, err := arResult.FullResponse(ctx); err != nil {
		return goerr.Wrap(err, "failed to get append result", goerr.V("table", tableID), goerr.V("rows", len(rows)))
	}

	return nil
}

// IsSchemaNotFoundError reports whether err is the storage write API's rejection of rows that
// carry columns the table schema does not know yet.
func IsSchemaNotFoundError(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.InvalidArgument &&
		strings.Contains(st.Message(), "Input schema has more fields than BigQuery schema")
}

func sanitizeProtoJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	sanitized := sanitizeProtoJSONValue(data)

	buf, err := json.Marshal(sanitized)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func sanitizeProtoJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for key, value := range val {
			res[protoFieldJSONName(key)] = sanitizeProtoJSONValue(value)
		}
		return res
	case []any:
		for i := range val {
			val[i] = sanitizeProtoJSONValue(val[i])
		}
		return val
	default:
		return v
	}
}

func protoFieldJSONName(name string) string {
	if protoreflect.Name(name).IsValid() {
		return name
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(name))
	encoded = strings.NewReplacer("+", "_", "/", "_", "=", "").Replace(encoded)
	return "col_" + encoded
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, tableID types.BQTableID, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.bqClient.Dataset(x.dataset).Table(tableID.String()).Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", tableID), goerr.V("meta", md))
	}

	return nil
}
