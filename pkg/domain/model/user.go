package model

import (
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/types"
)

// Hireable keeps the platform's tri-state flag. Unknown is written as an empty string and
// counts as not hireable in analysis.
type Hireable string

const (
	HireableUnknown Hireable = ""
	HireableTrue    Hireable = "true"
	HireableFalse   Hireable = "false"
)

func NewHireable(v *bool) Hireable {
	switch {
	case v == nil:
		return HireableUnknown
	case *v:
		return HireableTrue
	default:
		return HireableFalse
	}
}

// ParseHireable accepts the values written by this tool and by Python's csv module (True/False).
func ParseHireable(s string) (Hireable, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return HireableUnknown, nil
	case "true", "t", "1":
		return HireableTrue, nil
	case "false", "f", "0":
		return HireableFalse, nil
	}
	return HireableUnknown, goerr.Wrap(types.ErrInvalidDataset, "invalid hireable value", goerr.V("value", s))
}

func (x Hireable) Bool() bool {
	return x == HireableTrue
}

func (x Hireable) String() string {
	return string(x)
}

// User is one harvested account in canonical form.
type User struct {
	Login       string    `json:"login" bigquery:"login"`
	Name        string    `json:"name" bigquery:"name"`
	Company     string    `json:"company" bigquery:"company"`
	Location    string    `json:"location" bigquery:"location"`
	Email       string    `json:"email" bigquery:"email"`
	Hireable    Hireable  `json:"hireable" bigquery:"hireable"`
	Bio         string    `json:"bio" bigquery:"bio"`
	PublicRepos int       `json:"public_repos" bigquery:"public_repos"`
	Followers   int       `json:"followers" bigquery:"followers"`
	Following   int       `json:"following" bigquery:"following"`
	CreatedAt   time.Time `json:"created_at" bigquery:"created_at"`
}

// UserRawRecord is the row shape sent to BigQuery. The storage write API takes timestamps as
// unix microseconds.
type UserRawRecord struct {
	User
	CreatedAt int64 `json:"created_at" bigquery:"created_at"`
}

func (x *User) RawRecord() *UserRawRecord {
	return &UserRawRecord{
		User:      *x,
		CreatedAt: x.CreatedAt.UnixMicro(),
	}
}

// NewUser maps an account record of the platform API into canonical form. Missing optional
// fields become empty strings.
func NewUser(raw *github.User) *User {
	if raw == nil {
		raw = &github.User{}
	}
	return &User{
		Login:       raw.GetLogin(),
		Name:        raw.GetName(),
		Company:     NormalizeCompany(raw.Company),
		Location:    raw.GetLocation(),
		Email:       raw.GetEmail(),
		Hireable:    NewHireable(raw.Hireable),
		Bio:         raw.GetBio(),
		PublicRepos: raw.GetPublicRepos(),
		Followers:   raw.GetFollowers(),
		Following:   raw.GetFollowing(),
		CreatedAt:   raw.GetCreatedAt().Time.UTC(),
	}
}

// NormalizeCompany trims whitespace, strips one leading '@' and upper-cases the rest.
// An absent company is an empty string.
func NormalizeCompany(company *string) string {
	if company == nil {
		return ""
	}
	v := strings.TrimSpace(*company)
	v = strings.TrimPrefix(v, "@")
	return strings.ToUpper(v)
}

// LeaderStrength is followers / (1 + following).
func (x *User) LeaderStrength() float64 {
	return float64(x.Followers) / float64(1+x.Following)
}

// BioWordCount counts whitespace separated tokens of bio.
func (x *User) BioWordCount() int {
	return len(strings.Fields(x.Bio))
}

// Surname returns the last token of name. Names with a single token only yield a surname if
// allowSingle is set.
func (x *User) Surname(allowSingle bool) (string, bool) {
	tokens := strings.Fields(x.Name)
	switch {
	case len(tokens) == 0:
		return "", false
	case len(tokens) == 1 && !allowSingle:
		return "", false
	}
	return tokens[len(tokens)-1], true
}
