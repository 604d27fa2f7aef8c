package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned for bad flags or input values
	ErrInvalidOption = goerr.New("invalid option")

	// ErrQuotaUnavailable means the rate limit status could not be queried. It aborts a harvest run.
	ErrQuotaUnavailable = goerr.New("rate limit status unavailable")

	// ErrFetchFailed means a single entity could not be fetched. Callers skip the entity.
	ErrFetchFailed = goerr.New("entity fetch failed")

	// ErrInvalidDataset is returned when persisted relations can not be decoded
	ErrInvalidDataset = goerr.New("invalid dataset")
)
