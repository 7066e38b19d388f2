package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsviewer/format"
	"newsviewer/types"
)

var (
	// ErrUnexpectedStatus is returned for non-2xx responses
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedFeed is returned when the body is not a feed object
	ErrMalformedFeed = errors.New("malformed feed")
)

// maxFeedBytes bounds the articles response body
const maxFeedBytes = 16 << 20

// Source produces the feed for one page view
type Source interface {
	Fetch(ctx context.Context) (*types.Feed, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) (*types.Feed, error)

// Fetch implements Source
func (f SourceFunc) Fetch(ctx context.Context) (*types.Feed, error) {
	return f(ctx)
}

// HTTPSource loads the feed with a single GET
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url. The timeout is the transport's; there are no retries.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL is the endpoint the source reads from
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch implements Source
func (s *HTTPSource) Fetch(ctx context.Context) (*types.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: server returned %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	feed, err := types.DecodeFeed(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	return feed, nil
}

// Loader performs the one load of a page view and projects its outcome
type Loader struct {
	source Source
	limit  int
}

// NewLoader creates a loader that shows at most limit cards
func NewLoader(source Source, limit int) *Loader {
	return &Loader{source: source, limit: limit}
}

// Fetch runs the network call. It is safe to call off the event loop.
func (l *Loader) Fetch(ctx context.Context) (*types.Feed, error) {
	if l.source == nil {
		return nil, errors.New("no article source configured")
	}
	return l.source.Fetch(ctx)
}

// Apply folds a fetch outcome into st. On failure st is returned unchanged,
// the grid shows the load-error message and the error is returned for logging.
func (l *Loader) Apply(st State, r *Renderer, feed *types.Feed, fetchErr error) (State, error) {
	if fetchErr == nil && feed == nil {
		fetchErr = ErrMalformedFeed
	}
	if fetchErr != nil {
		r.RenderError(r.formatter.Catalog().Text(format.MsgLoadError))
		return st, fetchErr
	}

	articles := feed.Articles
	if articles == nil {
		articles = []types.Article{}
	}
	next := State{Articles: articles}

	if feed.LastUpdate != nil {
		r.RenderLastUpdate(feed.LastUpdate.Time)
	}

	shown := articles
	if l.limit > 0 && len(shown) > l.limit {
		shown = shown[:l.limit]
	}
	r.RenderGrid(shown)
	return next, nil
}
