package e621

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option customizes a Client at construction time. Once New returns, the
// configuration is frozen.
type Option func(*Client)

// WithHost targets a different instance. The reconstruction mode default
// follows the host unless WithReconstructionMode is also given.
func WithHost(host string) Option { return func(c *Client) { c.host = host } }

// WithPort overrides the effective port, which otherwise defaults to 443
// with TLS and 80 without.
func WithPort(port int) Option { return func(c *Client) { c.port = port } }

// WithSSL toggles TLS for the instance connection.
func WithSSL(ssl bool) Option { return func(c *Client) { c.ssl = ssl } }

// WithAuth configures Basic authentication. Requests carry an
// Authorization header only when both values are non-empty.
func WithAuth(user, key string) Option {
	return func(c *Client) {
		c.authUser = user
		c.authKey = key
	}
}

func WithUserAgent(ua string) Option { return func(c *Client) { c.userAgent = ua } }

// WithRequestTimeout bounds each request end to end. The default is 30s.
func WithRequestTimeout(d time.Duration) Option { return func(c *Client) { c.requestTimeout = d } }

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.httpClient = h } }

// WithReconstructionMode picks the static-asset URL convention used when
// the API returns null image URLs.
func WithReconstructionMode(m ReconstructionMode) Option { return func(c *Client) { c.mode = m } }

// WithStaticURLFunc installs a reconstruction override. When set it always
// takes precedence over the mode dispatch.
func WithStaticURLFunc(fn StaticURLFunc) Option { return func(c *Client) { c.staticURLFunc = fn } }

// WithBlacklist filters posts carrying any of the given tags out of
// Posts.Search results.
func WithBlacklist(tags ...string) Option { return func(c *Client) { c.blacklist = tags } }

// WithLogger enables request/response tracing. Credentials are never
// logged. Tracing is diagnostic only; no behavior depends on it.
func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.log = l } }
