package viewer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ImageProbe decides whether an image URL can be displayed
type ImageProbe interface {
	Check(ctx context.Context, url string) error
}

// HTTPImageProbe checks images with a GET, accepting 2xx image/* responses
type HTTPImageProbe struct {
	client *http.Client
}

// NewHTTPImageProbe creates a probe with a per-request timeout
func NewHTTPImageProbe(timeout time.Duration) *HTTPImageProbe {
	return &HTTPImageProbe{client: &http.Client{Timeout: timeout}}
}

// Check implements ImageProbe
func (p *HTTPImageProbe) Check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid image url: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: image returned %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(strings.ToLower(ct), "image/") {
		return fmt.Errorf("not an image: %s", ct)
	}
	return nil
}

// FailedImages probes refs and returns the slots whose image cannot be shown
func FailedImages(ctx context.Context, probe ImageProbe, refs []ImageRef) []ImageSlot {
	var failed []ImageSlot
	for _, ref := range refs {
		if err := probe.Check(ctx, ref.URL); err != nil {
			failed = append(failed, ref.Slot)
		}
	}
	return failed
}
