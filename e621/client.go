// Package e621 provides a typed Go client for e621-flavoured imageboard
// REST APIs (e621.net itself, YiffyAPI mirrors, and local e621ng
// development instances). The client wraps HTTP transport, Basic
// authentication, form and multipart encoding, error classification, and
// static image URL reconstruction behind strongly-typed resource modules.
//
// The client never retries a failed request; every failure is terminal and
// carries enough context for the caller to decide what to do next.
package e621

import (
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultHost is the instance targeted when no host override is given.
const DefaultHost = "e621.net"

const defaultUserAgent = "e621-go/1.0 (+https://github.com/DonovanDMC/e621-go)"

// StaticURLFunc overrides the built-in static URL reconstruction. It
// receives the content md5, the rendition kind, and the file extension,
// and must return a browsable URL.
type StaticURLFunc func(md5 string, kind Rendition, ext string) string

// Client contains the frozen connection configuration and the resource
// modules. Construct it with New; the configuration cannot be changed
// afterwards, so a Client is safe for unsynchronized concurrent use.
type Client struct {
	host           string
	port           int
	ssl            bool
	authUser       string
	authKey        string
	userAgent      string
	requestTimeout time.Duration
	mode           ReconstructionMode
	staticURLFunc  StaticURLFunc
	blacklist      []string
	httpClient     *http.Client
	log            zerolog.Logger

	// Resource modules. Each holds an immutable reference back to the
	// shared client.
	Posts        *Posts
	Pools        *Pools
	Tags         *Tags
	Users        *Users
	Artists      *Artists
	WikiPages    *WikiPages
	Notes        *Notes
	Blips        *Blips
	PostSets     *PostSets
	PostFlags    *PostFlags
	Takedowns    *Takedowns
	UserFeedback *UserFeedback
}

// New constructs a Client with safe defaults. Options can override defaults.
func New(opts ...Option) *Client {
	c := &Client{
		host:           DefaultHost,
		ssl:            true,
		userAgent:      defaultUserAgent,
		requestTimeout: 30 * time.Second,
		mode:           modeUnset,
		log:            zerolog.Nop(),
		httpClient: &http.Client{
			// Redirects are never followed; a 302 is classified as a
			// response in its own right.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
	for _, f := range opts {
		f(c)
	}
	if c.port == 0 {
		if c.ssl {
			c.port = 443
		} else {
			c.port = 80
		}
	}
	if c.mode == modeUnset {
		c.mode = modeForHost(c.host)
	}

	c.Posts = &Posts{client: c}
	c.Pools = &Pools{client: c}
	c.Tags = &Tags{client: c}
	c.Users = &Users{client: c}
	c.Artists = &Artists{client: c}
	c.WikiPages = &WikiPages{client: c}
	c.Notes = &Notes{client: c}
	c.Blips = &Blips{client: c}
	c.PostSets = &PostSets{client: c}
	c.PostFlags = &PostFlags{client: c}
	c.Takedowns = &Takedowns{client: c}
	c.UserFeedback = &UserFeedback{client: c}
	return c
}

// Authenticated reports whether both a username and an API key are
// configured.
func (c *Client) Authenticated() bool {
	return basicAuth(c.authUser, c.authKey) != ""
}

// basicAuth derives the Authorization header value from a username/key
// pair. An empty string means the header should be omitted entirely. It is
// recomputed per request rather than cached.
func basicAuth(user, key string) string {
	if user == "" || key == "" {
		return ""
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+key))
}

// requireAuth fails an operation up front when no credentials are
// configured, before any network traffic happens.
func (c *Client) requireAuth(op string) error {
	if !c.Authenticated() {
		return fmt.Errorf("%s: %w", op, ErrAuthRequired)
	}
	return nil
}

// blacklisted reports whether any of the post's tags appear on the
// configured blacklist.
func (c *Client) blacklisted(p *Post) bool {
	if len(c.blacklist) == 0 {
		return false
	}
	for _, tag := range c.blacklist {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}
