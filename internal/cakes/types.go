package cakes

import "context"

// Record is one decoded catalogue entry. Records have no identity beyond
// their position in the list they were decoded from.
type Record struct {
	Title       string
	Description string
	ImageURL    string
}

// Wire keys of a catalogue entry.
const (
	keyTitle       = "title"
	keyDescription = "desc"
	keyImage       = "image"
)

// Fetcher retrieves the raw catalogue body. It is implemented by *Client
// and can be replaced in tests.
type Fetcher interface {
	FetchBody(ctx context.Context) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (string, error)

// FetchBody calls f(ctx).
func (f FetcherFunc) FetchBody(ctx context.Context) (string, error) {
	return f(ctx)
}
