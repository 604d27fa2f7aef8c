package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/types"
)

// Dataset is the pair of relations built by one harvest run. It is not modified after being
// handed to analysis.
type Dataset struct {
	Users        []*User
	Repositories []*Repository
}

// Validate checks login uniqueness and that every repository belongs to a known user.
func (x *Dataset) Validate() error {
	logins := make(map[string]struct{}, len(x.Users))
	for i, u := range x.Users {
		if u.Login == "" {
			return goerr.Wrap(types.ErrInvalidDataset, "user login is empty", goerr.V("index", i))
		}
		if _, ok := logins[u.Login]; ok {
			return goerr.Wrap(types.ErrInvalidDataset, "duplicated user login", goerr.V("login", u.Login), goerr.V("index", i))
		}
		logins[u.Login] = struct{}{}
	}

	for i, r := range x.Repositories {
		if _, ok := logins[r.Login]; !ok {
			return goerr.Wrap(types.ErrInvalidDataset, "repository owner is not in users",
				goerr.V("login", r.Login),
				goerr.V("full_name", r.FullName),
				goerr.V("index", i),
			)
		}
	}

	return nil
}

// ReposByLogin groups repositories by owning login
func (x *Dataset) ReposByLogin() map[string][]*Repository {
	resp := make(map[string][]*Repository)
	for _, r := range x.Repositories {
		resp[r.Login] = append(resp[r.Login], r)
	}
	return resp
}
