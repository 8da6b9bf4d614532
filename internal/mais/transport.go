package mais

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a whole request. MaIS pagination can be slow
	// on large collections, so this is generous.
	DefaultTimeout = 3 * time.Minute

	// dialTimeout bounds connection establishment only.
	dialTimeout = 10 * time.Second

	// RateLimit is the client-side request ceiling in requests per second.
	RateLimit = 10.0

	maxRetries        = 3
	retryInitialDelay = 500 * time.Millisecond
	retryMultiplier   = 2.0
	retryJitter       = 0.5
)

// Response is a raw HTTP result: the status code and the full body.
// Status interpretation is left to the decode layer.
type Response struct {
	StatusCode int
	Body       []byte
}

// transport issues authenticated GETs against a MaIS deployment,
// retrying transient network failures with exponential backoff. A
// successfully received response is returned whatever its status; only
// connection and timeout failures are retried.
type transport struct {
	base       *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	auth       string

	retryInitial time.Duration // shortened in tests
}

func newTransport(baseURL, auth, userAgent string, httpClient *http.Client, limiter *rate.Limiter) (*transport, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: dialTimeout}).DialContext,
			},
		}
	}
	return &transport{
		base:         base,
		httpClient:   httpClient,
		limiter:      limiter,
		userAgent:    userAgent,
		auth:         auth,
		retryInitial: retryInitialDelay,
	}, nil
}

// Get fetches ref, which may be an absolute URL or a server-supplied
// path such as a pagination link, resolved against the base URL.
func (t *transport) Get(ctx context.Context, ref string) (*Response, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parsing request url %q: %w", ref, err)
	}
	target := t.base.ResolveReference(u).String()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = t.retryInitial
	policy.RandomizationFactor = retryJitter
	policy.Multiplier = retryMultiplier

	return backoff.RetryWithData(func() (*Response, error) {
		return t.get(ctx, target)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
}

func (t *transport) get(ctx context.Context, target string) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("rate limiter: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", t.auth)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetworkError, err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
