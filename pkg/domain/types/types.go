package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken     string
	RequestID       string
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string {
	return string(x)
}

func (x GoogleProjectID) String() string {
	return string(x)
}

func (x BQDatasetID) String() string {
	return string(x)
}

func (x BQTableID) String() string {
	return string(x)
}
