package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NoCommonSurname is reported when no user name yields a surname
const NoCommonSurname = "No common surname found"

// Stat is a rounded statistic. NaN means the statistic is undefined for the input, e.g.
// correlation over a constant column. It is encoded as null in JSON.
type Stat float64

func (x Stat) IsNaN() bool {
	return math.IsNaN(float64(x))
}

func (x Stat) String() string {
	if x.IsNaN() {
		return "nan"
	}
	return strconv.FormatFloat(float64(x), 'f', -1, 64)
}

func (x Stat) MarshalJSON() ([]byte, error) {
	if x.IsNaN() || math.IsInf(float64(x), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(x))
}

func (x *Stat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*x = Stat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*x = Stat(v)
	return nil
}

// Report holds the sixteen analysis results in their fixed order.
type Report struct {
	TopFollowers              []string `json:"top_followers"`
	EarliestUsers             []string `json:"earliest_users"`
	PopularLicenses           []string `json:"popular_licenses"`
	CommonCompany             string   `json:"common_company"`
	PopularLanguage           string   `json:"popular_language"`
	SecondLanguageSince2020   string   `json:"second_language_since_2020"`
	HighestAvgStarsLanguage   string   `json:"highest_avg_stars_language"`
	TopLeaderStrength         []string `json:"top_leader_strength"`
	FollowersReposCorrelation Stat     `json:"followers_repos_correlation"`
	FollowersReposSlope       Stat     `json:"followers_repos_slope"`
	ProjectsWikiCorrelation   Stat     `json:"projects_wiki_correlation"`
	HireableFollowingDiff     Stat     `json:"hireable_following_diff"`
	BioFollowersSlope         Stat     `json:"bio_followers_slope"`
	WeekendCreators           []string `json:"weekend_creators"`
	HireableEmailDiff         Stat     `json:"hireable_email_diff"`
	CommonSurnames            []string `json:"common_surnames"`
}

type ReportItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Items returns labeled results in order 1 to 16.
func (x *Report) Items() []ReportItem {
	surnames := NoCommonSurname
	if len(x.CommonSurnames) > 0 {
		surnames = strings.Join(x.CommonSurnames, ", ")
	}

	return []ReportItem{
		{Label: "Top 5 users by followers", Value: strings.Join(x.TopFollowers, ", ")},
		{Label: "Earliest registered users", Value: strings.Join(x.EarliestUsers, ", ")},
		{Label: "Most popular licenses", Value: strings.Join(x.PopularLicenses, ", ")},
		{Label: "Most common company", Value: x.CommonCompany},
		{Label: "Most popular language", Value: x.PopularLanguage},
		{Label: "Second most popular language after 2020", Value: x.SecondLanguageSince2020},
		{Label: "Language with highest average stars", Value: x.HighestAvgStarsLanguage},
		{Label: "Top 5 in leader strength", Value: strings.Join(x.TopLeaderStrength, ", ")},
		{Label: "Correlation between followers and public repos", Value: x.FollowersReposCorrelation.String()},
		{Label: "Slope of followers on public repos", Value: x.FollowersReposSlope.String()},
		{Label: "Correlation between projects and wiki enabled", Value: x.ProjectsWikiCorrelation.String()},
		{Label: "Difference in following (hireable vs. non-hireable)", Value: x.HireableFollowingDiff.String()},
		{Label: "Slope of followers on bio word count", Value: x.BioFollowersSlope.String()},
		{Label: "Users with most weekend-created repos", Value: strings.Join(x.WeekendCreators, ", ")},
		{Label: "Difference in email sharing (hireable vs. non-hireable)", Value: x.HireableEmailDiff.String()},
		{Label: "Most common surname(s)", Value: surnames},
	}
}
