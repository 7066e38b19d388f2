package rssfeeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"newsviewer/config"
	"newsviewer/types"
)

// Item is a feed entry on its way to becoming an article
type Item struct {
	Article types.Article
	Link    string
	// ExtractionError records why full text could not be fetched
	ExtractionError string
}

// FetchFeed retrieves and parses an RSS/Atom feed, returning at most maxCount items
func FetchFeed(ctx context.Context, feedURL string, maxCount int) ([]*Item, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return itemsFromFeed(feed, maxCount), nil
}

// itemsFromFeed converts parsed entries; entries sharing an id are dropped
func itemsFromFeed(feed *gofeed.Feed, maxCount int) []*Item {
	count := min(len(feed.Items), maxCount)
	items := make([]*Item, 0, count)
	seen := make(map[int]bool, count)

	for _, entry := range feed.Items {
		if len(items) == count {
			break
		}

		// Use the link for the id, falling back to the GUID
		key := entry.Link
		if key == "" {
			key = entry.GUID
		}
		if key == "" {
			continue
		}
		id := GenerateID(key)
		if seen[id] {
			continue
		}
		seen[id] = true

		summary := plainText(entry.Description)
		if summary == "" {
			summary = plainText(entry.Content)
		}

		items = append(items, &Item{
			Article: types.Article{
				ID:      id,
				Title:   strings.TrimSpace(entry.Title),
				Summary: truncateRunes(summary, config.SummaryMaxRunes),
				Content: summary,
				Date:    entryDate(entry),
				Image:   entryImage(entry),
			},
			Link: entry.Link,
		})
	}
	return items
}

// entryDate prefers the parsed published date, then updated, then a lenient parse
func entryDate(entry *gofeed.Item) types.Timestamp {
	switch {
	case entry.PublishedParsed != nil:
		return types.NewTimestamp(entry.PublishedParsed.UTC())
	case entry.UpdatedParsed != nil:
		return types.NewTimestamp(entry.UpdatedParsed.UTC())
	}
	for _, raw := range []string{entry.Published, entry.Updated} {
		if ts, err := types.ParseTimestamp(raw); err == nil {
			return types.NewTimestamp(ts.UTC())
		}
	}
	return types.Timestamp{}
}

func entryImage(entry *gofeed.Item) string {
	if entry.Image != nil && entry.Image.URL != "" {
		return entry.Image.URL
	}
	for _, enc := range entry.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}
