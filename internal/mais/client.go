// Package mais is a credentialed client for the MaIS ORCID integration
// service, which tracks which institutional users have linked an ORCID
// iD and what delegated scopes they granted.
package mais

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"
)

const (
	// servicePath prefixes every resource call, relative to the base URL.
	servicePath = "/mais/orcid/v1"

	// userAgent identifies this client to MaIS.
	userAgent = "orcidlink-go"
)

// Config carries the credentials and deployment location for a MaIS
// client. All fields are required.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// Client fetches ORCID linkage records from MaIS. The authenticated
// transport is built lazily on the first network call and reused for
// the client's lifetime; each construction performs a fresh token
// exchange.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter

	mu   sync.Mutex
	conn *transport
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit overrides the default client-side request rate.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// NewClient creates a MaIS client. No network traffic happens until
// the first fetch.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(RateLimit), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pageLinks is the set of named URLs the server embeds in each
// collection page.
type pageLinks struct {
	Self string `json:"self"`
	Next string `json:"next"`
	Last string `json:"last"`
}

// userPage is one page of the users collection.
type userPage struct {
	Results []Record  `json:"results"`
	Links   pageLinks `json:"links"`
}

// connect returns the authenticated transport, building it on first
// use. A failed build leaves the client unconnected so the next call
// retries the token exchange.
func (c *Client) connect(ctx context.Context) (*transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn, nil
	}

	provider := &TokenProvider{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		BaseURL:      c.cfg.BaseURL,
		HTTPClient:   c.httpClient,
	}
	auth, err := provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring token: %w", err)
	}

	conn, err := newTransport(c.cfg.BaseURL, auth, userAgent, c.httpClient, c.limiter)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

// FetchAll walks the users collection and returns records in
// server-delivered order. A positive limit caps the result, stopping
// mid-page once reached; limit <= 0 fetches the whole collection. A
// positive pageSize is passed through to the server.
//
// The walk advances via each page's next link verbatim and stops when
// a page's self link equals its last link. The server includes a next
// link even on the terminal page, so self == last is the authoritative
// end-of-collection signal.
func (c *Client) FetchAll(ctx context.Context, limit, pageSize int) ([]Record, error) {
	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	ref := servicePath + "/users?scope=ANY"
	if pageSize > 0 {
		ref += "&page_size=" + strconv.Itoa(pageSize)
	}

	var records []Record
	for {
		resp, err := conn.Get(ctx, ref)
		if err != nil {
			return nil, err
		}
		var page userPage
		if _, err := decode(resp, false, &page); err != nil {
			return nil, err
		}
		for _, rec := range page.Results {
			records = append(records, rec)
			if limit > 0 && len(records) >= limit {
				return records, nil
			}
		}
		if page.Links.Self == page.Links.Last {
			return records, nil
		}
		ref = page.Links.Next
	}
}

// FetchOne looks up a single user's linkage record by sunet id or,
// when that is empty, by ORCID iD. The ORCID key is normalized first;
// if nothing resembling an ORCID iD remains, the lookup returns absent
// without a network call. Returns (nil, nil) when the user is unknown
// to MaIS.
func (c *Client) FetchOne(ctx context.Context, sunetID, orcidID string) (*Record, error) {
	var key string
	switch {
	case sunetID != "":
		key = sunetID
	case orcidID != "":
		key = NormalizeOrcidID(orcidID)
		if key == "" {
			return nil, nil
		}
	default:
		return nil, ErrMissingLookupKey
	}

	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := conn.Get(ctx, servicePath+"/users/"+key)
	if err != nil {
		return nil, err
	}
	var rec Record
	found, err := decode(resp, true, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}
