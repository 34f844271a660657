package notekit

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET request and returns the response body.
	// A response with a status other than 200 is reported as *FetchError.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
