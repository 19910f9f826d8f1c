// Package github fetches the public profile shown on the home page
package github

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v57/github"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
)

const (
	defaultTimeout = 10 * time.Second
	defaultTTL     = 10 * time.Minute
)

// Profile is the subset of a GitHub user the page shows
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	HTMLURL     string `json:"htmlUrl"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"publicRepos"`
	PublicGists int    `json:"publicGists"`
}

// Options configures the Client
type Options struct {
	Token   string
	BaseURL string
	Timeout time.Duration
	// TTL is how long a fetched profile is reused
	TTL time.Duration
}

// Client wraps go-github with a small per-user cache
type Client struct {
	gh  *gh.Client
	ttl time.Duration
	now func() time.Time
	log logger.Logger

	mu    sync.Mutex
	cache map[string]cached
}

type cached struct {
	p   Profile
	exp time.Time
}

// NewClient builds a client; an empty token uses anonymous quota
func NewClient(o Options) (*Client, error) {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	c := gh.NewClient(&http.Client{Timeout: o.Timeout})
	if tok := strings.TrimSpace(o.Token); tok != "" {
		c = c.WithAuthToken(tok)
	}
	if o.BaseURL != "" {
		var err error
		if c, err = c.WithEnterpriseURLs(o.BaseURL, o.BaseURL); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "github: base url")
		}
	}
	return &Client{
		gh:    c,
		ttl:   o.TTL,
		now:   time.Now,
		log:   *logger.Named("github"),
		cache: make(map[string]cached),
	}, nil
}

// Profile returns the user's public profile, served from cache while fresh
func (c *Client) Profile(ctx context.Context, username string) (Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Profile{}, perr.InvalidArgf("github: empty username")
	}

	c.mu.Lock()
	if hit, ok := c.cache[username]; ok && c.now().Before(hit.exp) {
		c.mu.Unlock()
		return hit.p, nil
	}
	c.mu.Unlock()

	u, resp, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return Profile{}, perr.NotFoundf("github: user %q not found", username)
		}
		return Profile{}, perr.Wrap(err, perr.ErrorCodeUpstream, "github: fetch user")
	}
	p := Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		AvatarURL:   u.GetAvatarURL(),
		HTMLURL:     u.GetHTMLURL(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
	}
	if resp != nil {
		c.log.Debug().Str("user", username).Int("remaining", resp.Rate.Remaining).Msg("github profile fetched")
	}

	c.mu.Lock()
	c.cache[username] = cached{p: p, exp: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return p, nil
}
