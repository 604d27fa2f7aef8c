package model_test

import (
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
)

func TestNormalizeCompany(t *testing.T) {
	testCases := []struct {
		name   string
		input  *string
		expect string
	}{
		{name: "absent company", input: nil, expect: ""},
		{name: "empty company", input: github.String(""), expect: ""},
		{name: "whitespace only", input: github.String("   "), expect: ""},
		{name: "plain name", input: github.String("Shopify"), expect: "SHOPIFY"},
		{name: "leading at sign", input: github.String("@shopify"), expect: "SHOPIFY"},
		{name: "surrounding whitespace", input: github.String("  @shopify \n"), expect: "SHOPIFY"},
		{name: "only one at sign is stripped", input: github.String("@@acme"), expect: "@ACME"},
		{name: "inner at sign is kept", input: github.String("foo @bar"), expect: "FOO @BAR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, model.NormalizeCompany(tc.input)).Equal(tc.expect)
		})
	}
}

func TestNewUser(t *testing.T) {
	createdAt := time.Date(2011, 3, 4, 5, 6, 7, 0, time.UTC)

	t.Run("full record", func(t *testing.T) {
		raw := &github.User{
			Login:       github.String("octocat"),
			Name:        github.String("The Octocat"),
			Company:     github.String(" @github "),
			Location:    github.String("Toronto"),
			Email:       github.String("octo@example.com"),
			Hireable:    github.Bool(true),
			Bio:         github.String("I like cats"),
			PublicRepos: github.Int(8),
			Followers:   github.Int(120),
			Following:   github.Int(9),
			CreatedAt:   &github.Timestamp{Time: createdAt},
		}

		user := model.NewUser(raw)
		gt.V(t, user.Login).Equal("octocat")
		gt.V(t, user.Name).Equal("The Octocat")
		gt.V(t, user.Company).Equal("GITHUB")
		gt.V(t, user.Location).Equal("Toronto")
		gt.V(t, user.Email).Equal("octo@example.com")
		gt.V(t, user.Hireable).Equal(model.HireableTrue)
		gt.V(t, user.Bio).Equal("I like cats")
		gt.V(t, user.PublicRepos).Equal(8)
		gt.V(t, user.Followers).Equal(120)
		gt.V(t, user.Following).Equal(9)
		gt.True(t, user.CreatedAt.Equal(createdAt))
	})

	t.Run("missing optional fields degrade to defaults", func(t *testing.T) {
		user := model.NewUser(&github.User{
			Login:     github.String("ghost"),
			Followers: github.Int(101),
		})
		gt.V(t, user.Name).Equal("")
		gt.V(t, user.Company).Equal("")
		gt.V(t, user.Email).Equal("")
		gt.V(t, user.Bio).Equal("")
		gt.V(t, user.Hireable).Equal(model.HireableUnknown)
		gt.False(t, user.Hireable.Bool())
		gt.V(t, user.PublicRepos).Equal(0)
	})

	t.Run("nil record does not panic", func(t *testing.T) {
		user := model.NewUser(nil)
		gt.V(t, user.Login).Equal("")
	})

	t.Run("explicit false hireable", func(t *testing.T) {
		user := model.NewUser(&github.User{Hireable: github.Bool(false)})
		gt.V(t, user.Hireable).Equal(model.HireableFalse)
	})
}

func TestParseHireable(t *testing.T) {
	for input, expect := range map[string]model.Hireable{
		"":      model.HireableUnknown,
		"true":  model.HireableTrue,
		"True":  model.HireableTrue,
		"false": model.HireableFalse,
		"False": model.HireableFalse,
	} {
		t.Run(input, func(t *testing.T) {
			v := gt.R1(model.ParseHireable(input)).NoError(t)
			gt.V(t, v).Equal(expect)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := model.ParseHireable("maybe")
		gt.Error(t, err)
	})
}

func TestUserDerivedValues(t *testing.T) {
	t.Run("leader strength", func(t *testing.T) {
		gt.V(t, (&model.User{Followers: 10, Following: 0}).LeaderStrength()).Equal(10.0)
		gt.V(t, (&model.User{Followers: 5, Following: 4}).LeaderStrength()).Equal(1.0)
	})

	t.Run("bio word count", func(t *testing.T) {
		gt.V(t, (&model.User{Bio: ""}).BioWordCount()).Equal(0)
		gt.V(t, (&model.User{Bio: "  go \t and\nrust  "}).BioWordCount()).Equal(3)
	})

	t.Run("surname", func(t *testing.T) {
		surname, ok := (&model.User{Name: "Ada  Lovelace"}).Surname(false)
		gt.True(t, ok)
		gt.V(t, surname).Equal("Lovelace")

		_, ok = (&model.User{Name: "Prince"}).Surname(false)
		gt.False(t, ok)

		surname, ok = (&model.User{Name: "Prince"}).Surname(true)
		gt.True(t, ok)
		gt.V(t, surname).Equal("Prince")

		_, ok = (&model.User{Name: "   "}).Surname(true)
		gt.False(t, ok)
	})
}
