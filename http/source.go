// Package http provides an HTTP-based implementation of readaloud.PageSource
// for observing static pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/readaloudhq/readaloud"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultPollRate is the default request rate in requests per second.
// The watcher polls the same origin repeatedly, so the source throttles
// itself regardless of the poll bucket it is driven from.
const DefaultPollRate = 1.0

// Ensure Source implements readaloud.PageSource at compile time.
var _ readaloud.PageSource = (*Source)(nil)

// Source observes a page over plain HTTP. Unlike rod.Source, this does not
// execute JavaScript and is suitable for static pages only.
type Source struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	pollRPS float64
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithPollRate sets the maximum request rate in requests per second.
// Defaults to DefaultPollRate (1 rps) if not specified.
func WithPollRate(rps float64) Option {
	return func(s *Source) {
		s.pollRPS = rps
	}
}

// NewSource creates a Source observing the given URL.
func NewSource(url string, opts ...Option) *Source {
	s := &Source{
		url:     url,
		timeout: DefaultFetchTimeout,
		pollRPS: DefaultPollRate,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}
	s.limiter = rate.NewLimiter(rate.Limit(s.pollRPS), 1)

	return s
}

// State implements readaloud.PageSource. It waits for the rate limiter
// before each request.
func (s *Source) State(ctx context.Context) (*readaloud.PageState, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readaloud.Errorf(readaloud.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &readaloud.PageState{
		URL:       s.url,
		HTML:      string(body),
		FetchedAt: time.Now(),
	}, nil
}

// Close releases resources. For the HTTP source this is a no-op since
// http.Client doesn't require explicit cleanup.
func (s *Source) Close() error {
	return nil
}
