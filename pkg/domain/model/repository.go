package model

import (
	"time"

	"github.com/google/go-github/v53/github"
)

// Repository is one repository owned by a harvested User.
type Repository struct {
	Login           string    `json:"login" bigquery:"login"`
	FullName        string    `json:"full_name" bigquery:"full_name"`
	CreatedAt       time.Time `json:"created_at" bigquery:"created_at"`
	StargazersCount int       `json:"stargazers_count" bigquery:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count" bigquery:"watchers_count"`
	Language        string    `json:"language" bigquery:"language"`
	HasProjects     bool      `json:"has_projects" bigquery:"has_projects"`
	HasWiki         bool      `json:"has_wiki" bigquery:"has_wiki"`
	LicenseName     string    `json:"license_name" bigquery:"license_name"`
}

type RepositoryRawRecord struct {
	Repository
	CreatedAt int64 `json:"created_at" bigquery:"created_at"`
}

func (x *Repository) RawRecord() *RepositoryRawRecord {
	return &RepositoryRawRecord{
		Repository: *x,
		CreatedAt:  x.CreatedAt.UnixMicro(),
	}
}

// NewRepository maps a repository record of the platform API. ownerLogin is the harvested
// account the repository was listed for, not necessarily the namespace owner.
func NewRepository(raw *github.Repository, ownerLogin string) *Repository {
	if raw == nil {
		raw = &github.Repository{}
	}
	return &Repository{
		Login:           ownerLogin,
		FullName:        raw.GetFullName(),
		CreatedAt:       raw.GetCreatedAt().Time.UTC(),
		StargazersCount: raw.GetStargazersCount(),
		WatchersCount:   raw.GetWatchersCount(),
		Language:        raw.GetLanguage(),
		HasProjects:     raw.GetHasProjects(),
		HasWiki:         raw.GetHasWiki(),
		LicenseName:     raw.GetLicense().GetKey(),
	}
}

// Weekday of CreatedAt in UTC, Monday=0 .. Sunday=6.
func (x *Repository) Weekday() int {
	return (int(x.CreatedAt.UTC().Weekday()) + 6) % 7
}

func (x *Repository) CreatedOnWeekend() bool {
	return x.Weekday() >= 5
}
