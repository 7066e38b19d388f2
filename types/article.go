package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Article is a single entry of the articles endpoint. Text fields are untrusted.
type Article struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	Content string    `json:"content"`
	Date    Timestamp `json:"date"`
	Image   string    `json:"image"`
}

// Feed is the top-level payload served by the articles endpoint
type Feed struct {
	Articles   []Article  `json:"articles"`
	LastUpdate *Timestamp `json:"lastUpdate,omitempty"`

	// Skipped counts entries DecodeFeed dropped because they did not decode
	Skipped int `json:"-"`
}

// Timestamp wraps time.Time with lenient ISO-8601 decoding.
// Unparseable or empty values decode to the zero time instead of failing the whole feed.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a Timestamp for t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses an ISO-8601 (or otherwise recognizable) date string
func ParseTimestamp(raw string) (Timestamp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return Timestamp{Time: t}, nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return Timestamp{}, fmt.Errorf("failed to parse timestamp %q: %w", raw, err)
	}
	return Timestamp{Time: t}, nil
}

// UnmarshalJSON accepts a date string, null, or a number of milliseconds since the epoch
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := ParseTimestamp(raw)
		if err != nil {
			*t = Timestamp{}
			return nil
		}
		*t = parsed
		return nil
	}

	var millis int64
	if err := json.Unmarshal(data, &millis); err != nil {
		*t = Timestamp{}
		return nil
	}
	*t = Timestamp{Time: time.UnixMilli(millis).UTC()}
	return nil
}

// MarshalJSON writes RFC 3339 in UTC, or null for the zero time
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// DecodeFeed parses an endpoint payload. A missing articles field yields an
// empty list. Entries that are not valid articles are dropped and counted in
// Skipped; the rest of the feed is kept.
func DecodeFeed(data []byte) (*Feed, error) {
	var payload struct {
		Articles   []json.RawMessage `json:"articles"`
		LastUpdate *Timestamp        `json:"lastUpdate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	feed := &Feed{Articles: make([]Article, 0, len(payload.Articles)), LastUpdate: payload.LastUpdate}
	for _, raw := range payload.Articles {
		var a Article
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &a) != nil {
			feed.Skipped++
			continue
		}
		feed.Articles = append(feed.Articles, a)
	}
	if feed.LastUpdate != nil && feed.LastUpdate.IsZero() {
		feed.LastUpdate = nil
	}
	return feed, nil
}

// FindArticle returns the first article in list order with the given id
func FindArticle(articles []Article, id int) (Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}
