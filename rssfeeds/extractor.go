package rssfeeds

import (
	"fmt"
	"strings"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"
	"go.uber.org/zap"

	"newsviewer/config"
)

// ExtractFunc fetches the readable version of a page
type ExtractFunc func(pageURL string, timeout time.Duration) (readability.Article, error)

// Extractor fills in full article text using a worker pool
type Extractor struct {
	Workers int
	Timeout time.Duration
	Extract ExtractFunc
	Logger  *zap.Logger
}

// NewExtractor creates an extractor backed by go-readability
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		Workers: config.ExtractorWorkers,
		Timeout: config.ExtractorTimeout,
		Extract: func(pageURL string, timeout time.Duration) (readability.Article, error) {
			return readability.FromURL(pageURL, timeout)
		},
		Logger: logger,
	}
}

// ExtractAll fetches and extracts full content for all items. Items that fail
// keep their summary as content.
func (e *Extractor) ExtractAll(items []*Item) {
	var wg sync.WaitGroup
	itemChan := make(chan *Item, len(items))

	// Start worker pool
	for i := 0; i < max(e.Workers, 1); i++ {
		go func(workerID int) {
			for item := range itemChan {
				if err := e.extract(item); err != nil {
					item.ExtractionError = err.Error()
					e.Logger.Warn("failed to extract article",
						zap.Int("worker", workerID),
						zap.String("url", item.Link),
						zap.Error(err))
				}
				wg.Done()
			}
		}(i)
	}

	// Queue items for extraction
	for _, item := range items {
		wg.Add(1)
		itemChan <- item
	}

	// Wait for all extractions to complete
	wg.Wait()
	close(itemChan)
}

// extract fetches and extracts full content for a single item
func (e *Extractor) extract(item *Item) error {
	if item.Link == "" {
		return fmt.Errorf("article URL is empty")
	}

	page, err := e.Extract(item.Link, e.Timeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	if text := strings.TrimSpace(page.TextContent); text != "" {
		item.Article.Content = text
	}
	if item.Article.Image == "" {
		item.Article.Image = page.Image
	}
	if item.Article.Summary == "" {
		item.Article.Summary = truncateRunes(strings.TrimSpace(page.Excerpt), config.SummaryMaxRunes)
	}

	e.Logger.Debug("extracted article", zap.String("title", item.Article.Title))
	return nil
}
