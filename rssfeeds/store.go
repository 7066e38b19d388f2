package rssfeeds

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"newsviewer/types"
)

// ErrRefreshInProgress is returned when a refresh is requested while one runs
var ErrRefreshInProgress = errors.New("refresh already in progress")

// Sink receives every new snapshot (cache, static publisher)
type Sink interface {
	Save(ctx context.Context, feed types.Feed) error
}

// Store holds the current snapshot served by the articles endpoint
type Store struct {
	mu   sync.RWMutex
	feed types.Feed

	refreshing sync.Mutex
	source     Source
	sinks      []Sink
	logger     *zap.Logger
	now        func() time.Time
}

// NewStore creates an empty store refreshed from source
func NewStore(source Source, logger *zap.Logger, sinks ...Sink) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		feed:   types.Feed{Articles: []types.Article{}},
		source: source,
		sinks:  sinks,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot returns a copy of the current snapshot
func (s *Store) Snapshot() types.Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feed := types.Feed{Articles: append([]types.Article{}, s.feed.Articles...)}
	if s.feed.LastUpdate != nil {
		ts := *s.feed.LastUpdate
		feed.LastUpdate = &ts
	}
	return feed
}

// Fetch serves the snapshot to an in-process viewer
func (s *Store) Fetch(context.Context) (*types.Feed, error) {
	feed := s.Snapshot()
	return &feed, nil
}

// Restore replaces the snapshot, e.g. with one read back from a cache
func (s *Store) Restore(feed types.Feed) {
	if feed.Articles == nil {
		feed.Articles = []types.Article{}
	}
	s.mu.Lock()
	s.feed = feed
	s.mu.Unlock()
}

// Refresh rebuilds the snapshot from the source and hands it to every sink.
// On failure the previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.refreshing.TryLock() {
		return ErrRefreshInProgress
	}
	defer s.refreshing.Unlock()

	if s.source == nil {
		return fmt.Errorf("no feed source configured")
	}

	started := s.now()
	articles, err := s.source.Articles(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh articles: %w", err)
	}

	updated := types.NewTimestamp(s.now().UTC())
	feed := types.Feed{Articles: dedupe(articles), LastUpdate: &updated}
	s.Restore(feed)

	s.logger.Info("snapshot refreshed",
		zap.Int("count", len(feed.Articles)),
		zap.Duration("took", s.now().Sub(started)))

	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Save(ctx, s.Snapshot()); err != nil {
			s.logger.Warn("failed to save snapshot", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// dedupe keeps the first article for every id
func dedupe(articles []types.Article) []types.Article {
	out := make([]types.Article, 0, len(articles))
	seen := make(map[int]bool, len(articles))
	for _, a := range articles {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}
