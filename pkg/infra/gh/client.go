package gh

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	DefaultTimeout = 10 * time.Second
)

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL replaces the REST API endpoint, e.g. for GitHub Enterprise Server or tests.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout. Default is 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(c *config) {
		c.transport = tr
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github token is empty")
	}

	cfg := &config{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	baseURL := cfg.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid github api url", goerr.V("url", cfg.baseURL), goerr.V("cause", err))
	}

	httpClient := &http.Client{
		Transport: &deadlineTransport{
			base: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
				Base:   cfg.transport,
			},
			timeout: cfg.timeout,
		},
	}

	client := github.NewClient(httpClient)
	client.BaseURL = u

	return &Client{client: client}, nil
}

// deadlineTransport bounds each request, including reading its body, with a context deadline.
// http.Client.Timeout is not used because on expiry net/http calls CancelRequest of the
// oauth2 transport, which only prints a deprecation notice through the standard logger.
type deadlineTransport struct {
	base    http.RoundTripper
	timeout time.Duration
}

func (x *deadlineTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if x.timeout <= 0 {
		return x.base.RoundTrip(req)
	}

	ctx, cancel := context.WithTimeout(req.Context(), x.timeout)
	resp, err := x.base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (x *cancelOnClose) Close() error {
	err := x.ReadCloser.Close()
	x.cancel()
	return err
}

// RateLimit implements interfaces.GitHub. The core bucket covers the account and repository
// endpoints, the search bucket covers user search.
func (x *Client) RateLimit(ctx context.Context, bucket model.RateBucket) (*model.RateStatus, error) {
	limits, _, err := x.client.RateLimits(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get rate limit")
	}

	var rate *github.Rate
	if limits != nil {
		switch bucket {
		case model.RateBucketCore:
			rate = limits.Core
		case model.RateBucketSearch:
			rate = limits.Search
		default:
			return nil, goerr.Wrap(types.ErrInvalidOption, "unknown rate limit bucket", goerr.V("bucket", bucket))
		}
	}
	if rate == nil {
		return nil, goerr.New("rate limit response has no such bucket", goerr.V("bucket", bucket.String()))
	}

	return &model.RateStatus{
		Limit:     rate.Limit,
		Remaining: rate.Remaining,
		Reset:     rate.Reset.Time,
	}, nil
}

// SearchUsers implements interfaces.GitHub.
func (x *Client) SearchUsers(ctx context.Context, query string, page, perPage int) ([]*github.User, error) {
	opt := &github.SearchOptions{
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}

	result, _, err := x.client.Search.Users(ctx, query, opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search users", goerr.V("query", query), goerr.V("page", page))
	}

	logging.From(ctx).Debug("searched users",
		slog.String("query", query),
		slog.Int("page", page),
		slog.Int("total", result.GetTotal()),
		slog.Int("count", len(result.Users)),
	)

	return result.Users, nil
}

// GetUser implements interfaces.GitHub.
func (x *Client) GetUser(ctx context.Context, login string) (*github.User, error) {
	user, _, err := x.client.Users.Get(ctx, login)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("login", login))
	}
	return user, nil
}

// ListUserRepos implements interfaces.GitHub. Repositories are sorted by last push, newest first.
func (x *Client) ListUserRepos(ctx context.Context, login string, page, perPage int) ([]*github.Repository, error) {
	opt := &github.RepositoryListOptions{
		Sort:        "pushed",
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}

	repos, _, err := x.client.Repositories.List(ctx, login, opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("login", login), goerr.V("page", page))
	}
	return repos, nil
}
