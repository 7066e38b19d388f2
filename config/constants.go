package config

import "time"

// Viewer Constants
const (
	// GridLimit is the hard cap on cards shown in the grid view (no pagination)
	GridLimit = 6

	// FragmentPrefix selects the detail view: #article-<id>
	FragmentPrefix = "article-"

	// DefaultPlaceholderImage replaces missing or unreachable article images
	DefaultPlaceholderImage = "https://via.placeholder.com/800x400?text=Sin+Imagen"

	// DefaultLocale is the fixed display locale for dates and UI text
	DefaultLocale = "es"

	// DefaultTimezone is used to display timestamps
	DefaultTimezone = "UTC"
)

// Network Constants
const (
	// DefaultArticlesURL is the data endpoint the viewer loads from
	DefaultArticlesURL = "http://localhost:8080/api/articles"

	// DefaultHTTPTimeout bounds the single articles request
	DefaultHTTPTimeout = 30 * time.Second

	// ImageProbeTimeout bounds each image reachability check
	ImageProbeTimeout = 5 * time.Second

	// DefaultPort is the feed server listen port
	DefaultPort = "8080"
)

// Feed Server Constants
const (
	// DefaultFeedSource is the snapshot source: a preset name, a feed URL, or "mock"
	DefaultFeedSource = "mock"

	// DefaultFeedCount is the number of feed items turned into articles
	DefaultFeedCount = 12

	// DefaultRefreshInterval is how often the snapshot is rebuilt
	DefaultRefreshInterval = 15 * time.Minute

	// ExtractorWorkers is the size of the readability worker pool
	ExtractorWorkers = 5

	// ExtractorTimeout bounds a single readability fetch
	ExtractorTimeout = 30 * time.Second

	// SummaryMaxRunes truncates generated summaries
	SummaryMaxRunes = 160
)

// Sink Constants
const (
	// DefaultRedisKey stores the serialized snapshot
	DefaultRedisKey = "newsviewer:feed"

	// DefaultRedisTTL expires a cached snapshot nobody refreshed
	DefaultRedisTTL = 24 * time.Hour

	// S3ObjectName is the key (under S3_PREFIX) the snapshot is published to
	S3ObjectName = "articles.json"

	// S3CacheControl is set on the published snapshot
	S3CacheControl = "public, max-age=300"

	// DefaultKafkaTopic carries refresh requests
	DefaultKafkaTopic = "articles.refresh"

	// DefaultKafkaGroup is the consumer group of the feed server
	DefaultKafkaGroup = "newsviewer-feedserver"
)
