package model

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/types"
)

const (
	DefaultMinFollowers    = 100
	DefaultMaxRepositories = 500
)

type HarvestInput struct {
	Location        string
	MinFollowers    int
	MaxRepositories int
}

func (x *HarvestInput) Validate() error {
	if strings.TrimSpace(x.Location) == "" {
		return goerr.Wrap(types.ErrInvalidOption, "location is empty")
	}
	if x.MinFollowers < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "min followers must not be negative", goerr.V("value", x.MinFollowers))
	}
	if x.MaxRepositories <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "max repositories must be positive", goerr.V("value", x.MaxRepositories))
	}
	return nil
}

// SearchQuery builds the user search query, e.g. `location:Toronto followers:>100`.
// Multi-word locations are quoted so the platform keeps them as one qualifier.
func (x *HarvestInput) SearchQuery() string {
	location := strings.TrimSpace(x.Location)
	if strings.ContainsAny(location, " \t") {
		location = strconv.Quote(location)
	}
	return "location:" + location + " followers:>" + strconv.Itoa(x.MinFollowers)
}
