package analysis

import (
	"time"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
)

// TopFollowers returns the five logins with the most followers
func TopFollowers(users []*model.User) []string {
	items := make([]scored, len(users))
	for i, u := range users {
		items[i] = scored{key: u.Login, score: float64(u.Followers)}
	}
	return topN(items, topUsers, false)
}

// EarliestUsers returns the five earliest registered logins
func EarliestUsers(users []*model.User) []string {
	items := make([]scored, len(users))
	for i, u := range users {
		items[i] = scored{key: u.Login, score: float64(u.CreatedAt.UnixMicro())}
	}
	return topN(items, topUsers, true)
}

// PopularLicenses returns the three most used license keys. No license (empty key) counts as
// a value of its own.
func PopularLicenses(repos []*model.Repository) []string {
	values := make([]string, len(repos))
	for i, r := range repos {
		values[i] = r.LicenseName
	}
	return topN(frequency(values, true), topLicenses, false)
}

// CommonCompany returns the most frequent non-empty company
func CommonCompany(users []*model.User) string {
	values := make([]string, len(users))
	for i, u := range users {
		values[i] = u.Company
	}
	return mostFrequent(values, 0)
}

// PopularLanguage returns the most frequent non-empty repository language
func PopularLanguage(repos []*model.Repository) string {
	values := make([]string, len(repos))
	for i, r := range repos {
		values[i] = r.Language
	}
	return mostFrequent(values, 0)
}

// SecondLanguageSince returns the runner-up language among repositories of users created
// after since. It is empty if fewer than two languages appear.
func SecondLanguageSince(users []*model.User, repos []*model.Repository, since time.Time) string {
	recent := make(map[string]struct{})
	for _, u := range users {
		if u.CreatedAt.After(since) {
			recent[u.Login] = struct{}{}
		}
	}

	var values []string
	for _, r := range repos {
		if _, ok := recent[r.Login]; ok {
			values = append(values, r.Language)
		}
	}
	return mostFrequent(values, 1)
}

// HighestAvgStarsLanguage returns the language with the highest mean stargazers count
func HighestAvgStarsLanguage(repos []*model.Repository) string {
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	var order []string
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		g, ok := groups[r.Language]
		if !ok {
			g = &acc{}
			groups[r.Language] = g
			order = append(order, r.Language)
		}
		g.sum += float64(r.StargazersCount)
		g.count++
	}

	items := make([]scored, len(order))
	for i, lang := range order {
		items[i] = scored{key: lang, score: groups[lang].sum / float64(groups[lang].count)}
	}
	top := topN(items, 1, false)
	if len(top) == 0 {
		return ""
	}
	return top[0]
}

// TopLeaderStrength returns the five logins with the highest followers / (1 + following)
func TopLeaderStrength(users []*model.User) []string {
	items := make([]scored, len(users))
	for i, u := range users {
		items[i] = scored{key: u.Login, score: u.LeaderStrength()}
	}
	return topN(items, topUsers, false)
}

func FollowersReposCorrelation(users []*model.User) model.Stat {
	followers, publicRepos := followersAndRepos(users)
	return round3(pearson(followers, publicRepos))
}

// FollowersReposSlope regresses followers on public_repos
func FollowersReposSlope(users []*model.User) model.Stat {
	followers, publicRepos := followersAndRepos(users)
	return round3(slope(publicRepos, followers))
}

func followersAndRepos(users []*model.User) (followers, publicRepos []float64) {
	followers = make([]float64, len(users))
	publicRepos = make([]float64, len(users))
	for i, u := range users {
		followers[i] = float64(u.Followers)
		publicRepos[i] = float64(u.PublicRepos)
	}
	return followers, publicRepos
}

func ProjectsWikiCorrelation(repos []*model.Repository) model.Stat {
	projects := make([]float64, len(repos))
	wiki := make([]float64, len(repos))
	for i, r := range repos {
		projects[i] = boolFloat(r.HasProjects)
		wiki[i] = boolFloat(r.HasWiki)
	}
	return round3(pearson(projects, wiki))
}

// HireableFollowingDiff is mean following of hireable users minus that of the others.
// Unknown hireable counts as not hireable.
func HireableFollowingDiff(users []*model.User) model.Stat {
	var hireable, others []float64
	for _, u := range users {
		if u.Hireable.Bool() {
			hireable = append(hireable, float64(u.Following))
		} else {
			others = append(others, float64(u.Following))
		}
	}
	return round3(mean(hireable) - mean(others))
}

// BioFollowersSlope regresses followers on bio word count
func BioFollowersSlope(users []*model.User) model.Stat {
	words := make([]float64, len(users))
	followers := make([]float64, len(users))
	for i, u := range users {
		words[i] = float64(u.BioWordCount())
		followers[i] = float64(u.Followers)
	}
	return round3(slope(words, followers))
}

// WeekendCreators returns the five logins owning most repositories created on Saturday or
// Sunday (UTC). Logins without such repositories are not ranked.
func WeekendCreators(repos []*model.Repository) []string {
	var values []string
	for _, r := range repos {
		if r.CreatedOnWeekend() {
			values = append(values, r.Login)
		}
	}
	return topN(frequency(values, true), topUsers, false)
}

// HireableEmailDiff is the share of hireable users with an email minus that of the others
func HireableEmailDiff(users []*model.User) model.Stat {
	var hireable, others []float64
	for _, u := range users {
		hasEmail := boolFloat(u.Email != "")
		if u.Hireable.Bool() {
			hireable = append(hireable, hasEmail)
		} else {
			others = append(others, hasEmail)
		}
	}
	return round3(mean(hireable) - mean(others))
}

// CommonSurnames returns all surnames tied for the highest count in alphabetical order. It is
// empty if no name yields a surname.
func CommonSurnames(users []*model.User, singleToken bool) []string {
	var values []string
	for _, u := range users {
		if surname, ok := u.Surname(singleToken); ok {
			values = append(values, surname)
		}
	}

	ranked := topN(frequency(values, false), len(values), false)
	if len(ranked) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	best := counts[ranked[0]]

	var resp []string
	for _, s := range ranked {
		if counts[s] != best {
			break
		}
		resp = append(resp, s)
	}
	return resp
}
