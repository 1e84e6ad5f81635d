package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kerbaras/quotes/pkg/data"
	"golang.org/x/time/rate"
)

// maxBodySize caps how much of a response is read before decoding.
const maxBodySize = 1 << 20

type API struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

type Option func(*API)

// WithTimeout sets a client timeout. Zero keeps the platform default (none).
func WithTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.client = &http.Client{Timeout: d}
		}
	}
}

// WithRateLimit throttles outgoing requests to rps per second. Zero disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(a *API) {
		if rps <= 0 {
			a.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(a *API) {
		a.client = c
	}
}

func NewAPI(baseURL string, opts ...Option) *API {
	a := &API{client: http.DefaultClient, baseURL: baseURL}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Get issues a GET for path and decodes the JSON body into v. Transport
// failures and non-2xx statuses are network errors; bodies that do not fit v
// are decode errors.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return data.NewError(data.KindNetwork, "fetch", err)
	}
	req.Header.Set("Accept", "application/json")

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return data.NewError(data.KindNetwork, "fetch", err)
		}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return data.NewError(data.KindNetwork, "fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return data.NewError(data.KindNetwork, "fetch", fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return data.NewError(data.KindNetwork, "fetch", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return data.NewError(data.KindDecode, "fetch", err)
	}
	return nil
}
