package gh_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/infra/gh"
)

func newTestServer(t *testing.T) (*httptest.Server, *gh.Client) {
	mux := http.NewServeMux()

	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resources":{"core":{"limit":5000,"remaining":42,"reset":1700000000},"search":{"limit":30,"remaining":7,"reset":1700000060}}}`))
	})
	mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
		gt.V(t, r.URL.Query().Get("q")).Equal("location:Toronto followers:>100")
		gt.V(t, r.URL.Query().Get("per_page")).Equal("100")

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			_, _ = w.Write([]byte(`{"total_count":2,"items":[{"login":"alice"},{"login":"bob"}]}`))
		default:
			_, _ = w.Write([]byte(`{"total_count":2,"items":[]}`))
		}
	})
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"alice","name":"Alice Liddell","company":"@wonder ","hireable":null,"followers":150,"following":3,"public_repos":12,"created_at":"2012-06-01T10:00:00Z"}`))
	})
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("sort")).Equal("pushed")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"full_name":"alice/rabbit-hole","language":"Go","stargazers_count":7,"has_wiki":true,"license":{"key":"mit","name":"MIT License"}}]`))
	})
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := gt.R1(gh.New("test-token", gh.WithBaseURL(srv.URL))).NoError(t)
	return srv, client
}

func TestNew(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		client, err := gh.New("")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		_, err := gh.New("x", gh.WithBaseURL("://broken"))
		gt.Error(t, err)
	})
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	_, client := newTestServer(t)

	t.Run("rate limit", func(t *testing.T) {
		status := gt.R1(client.RateLimit(ctx, model.RateBucketCore)).NoError(t)
		gt.V(t, status.Limit).Equal(5000)
		gt.V(t, status.Remaining).Equal(42)
		gt.True(t, status.Reset.Equal(time.Unix(1700000000, 0)))
	})

	t.Run("search rate limit", func(t *testing.T) {
		status := gt.R1(client.RateLimit(ctx, model.RateBucketSearch)).NoError(t)
		gt.V(t, status.Limit).Equal(30)
		gt.V(t, status.Remaining).Equal(7)
		gt.True(t, status.Reset.Equal(time.Unix(1700000060, 0)))
	})

	t.Run("unknown rate limit bucket", func(t *testing.T) {
		_, err := client.RateLimit(ctx, model.RateBucket(99))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("search users", func(t *testing.T) {
		users := gt.R1(client.SearchUsers(ctx, "location:Toronto followers:>100", 1, 100)).NoError(t)
		gt.A(t, users).Length(2)
		gt.V(t, users[0].GetLogin()).Equal("alice")

		users = gt.R1(client.SearchUsers(ctx, "location:Toronto followers:>100", 2, 100)).NoError(t)
		gt.A(t, users).Length(0)
	})

	t.Run("get user", func(t *testing.T) {
		user := gt.R1(client.GetUser(ctx, "alice")).NoError(t)
		gt.V(t, user.GetName()).Equal("Alice Liddell")
		gt.V(t, user.Hireable).Equal(nil)
		gt.V(t, user.GetFollowers()).Equal(150)
	})

	t.Run("missing user is an API error, not a transport error", func(t *testing.T) {
		_, err := client.GetUser(ctx, "ghost")
		gt.Error(t, err)

		var apiErr *github.ErrorResponse
		gt.True(t, errors.As(err, &apiErr))
		gt.V(t, apiErr.Response.StatusCode).Equal(http.StatusNotFound)

		var urlErr *url.Error
		gt.False(t, errors.As(err, &urlErr))
	})

	t.Run("list repositories", func(t *testing.T) {
		repos := gt.R1(client.ListUserRepos(ctx, "alice", 1, 100)).NoError(t)
		gt.A(t, repos).Length(1)
		gt.V(t, repos[0].GetLicense().GetKey()).Equal("mit")
	})
}

func TestClientTimeout(t *testing.T) {
	var stdlog bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&stdlog)
	defer log.SetOutput(orig)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := gt.R1(gh.New("test-token",
		gh.WithBaseURL(srv.URL),
		gh.WithTimeout(20*time.Millisecond),
	)).NoError(t)

	_, err := client.GetUser(context.Background(), "alice")
	gt.Error(t, err)

	var urlErr *url.Error
	gt.True(t, errors.As(err, &urlErr))
	gt.True(t, urlErr.Timeout())

	// nothing bypasses the structured logger on timeout
	gt.V(t, stdlog.String()).Equal("")
}

func TestClientBodyWithinTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"alice","followers":150}`))
	}))
	t.Cleanup(srv.Close)

	client := gt.R1(gh.New("test-token",
		gh.WithBaseURL(srv.URL),
		gh.WithTimeout(time.Second),
	)).NoError(t)

	for range 3 {
		user := gt.R1(client.GetUser(context.Background(), "alice")).NoError(t)
		gt.V(t, user.GetFollowers()).Equal(150)
	}
}
