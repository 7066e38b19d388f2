package rssfeeds

import (
	"context"
	"time"

	"go.uber.org/zap"

	"newsviewer/types"
)

// MockSourceName selects the built-in sample set
const MockSourceName = "mock"

// Source produces the articles of a snapshot
type Source interface {
	Articles(ctx context.Context) ([]types.Article, error)
}

// MockSource serves three sample articles dated relative to Now
type MockSource struct {
	Now func() time.Time
}

// Articles implements Source
func (s MockSource) Articles(context.Context) ([]types.Article, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return MockArticles(now()), nil
}

// RSSSource reads a feed and extracts full text for every entry
type RSSSource struct {
	URL       string
	Count     int
	Extractor *Extractor
}

// Articles implements Source
func (s RSSSource) Articles(ctx context.Context) ([]types.Article, error) {
	items, err := FetchFeed(ctx, s.URL, s.Count)
	if err != nil {
		return nil, err
	}
	if s.Extractor != nil {
		s.Extractor.ExtractAll(items)
	}

	articles := make([]types.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, item.Article)
	}
	return articles, nil
}

// NewSource resolves a FEED_SOURCE value: "mock", a preset name or a feed URL
func NewSource(name string, count int, logger *zap.Logger) Source {
	if name == MockSourceName {
		return MockSource{}
	}
	return RSSSource{
		URL:       ResolveFeedURL(name),
		Count:     count,
		Extractor: NewExtractor(logger),
	}
}
