// Package http provides a net/http implementation of notekit.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/notekit"
)

const (
	// DefaultFetchTimeout bounds a whole request, body included.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxBodySize caps how much of a page is read.
	DefaultMaxBodySize = 10 << 20

	// DefaultUserAgent identifies notekit to the sites it scrapes.
	DefaultUserAgent = "notekit/1.0 (+https://github.com/fwojciec/notekit)"
)

// Ensure Fetcher implements notekit.Fetcher at compile time.
var _ notekit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs with a single GET request.
// It does not retry and does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest body Fetch accepts. Larger pages fail
// with EINVALID.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Any status other than 200 is returned as *notekit.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", notekit.Errorf(notekit.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &notekit.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.maxBodySize {
		return "", notekit.Errorf(notekit.EINVALID, "page exceeds %d bytes", f.maxBodySize)
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
