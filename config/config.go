package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings for both the viewer and the feed server
type Config struct {
	// Viewer
	ArticlesURL      string
	Locale           string
	Timezone         string
	PlaceholderImage string
	HTTPTimeout      time.Duration

	// Logging
	LogLevel string
	LogFile  string

	// LogDevelopment selects human-readable console logs
	LogDevelopment bool

	// Feed server
	Port            string
	FeedSource      string
	FeedCount       int
	RefreshInterval time.Duration

	Redis RedisConfig
	S3    S3Config
	Kafka KafkaConfig
}

// RedisConfig enables the snapshot cache when Addr is set
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

// S3Config enables snapshot publishing when Bucket is set
type S3Config struct {
	Bucket       string
	Region       string
	Profile      string
	Prefix       string
	UsePathStyle bool
}

// KafkaConfig enables the refresh consumer when Brokers is non-empty
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Load reads configuration from the environment, loading .env first if present
func Load() Config {
	// Non-fatal if missing
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		ArticlesURL:      get("ARTICLES_URL", DefaultArticlesURL),
		Locale:           get("LOCALE", DefaultLocale),
		Timezone:         get("TIMEZONE", DefaultTimezone),
		PlaceholderImage: get("PLACEHOLDER_IMAGE", DefaultPlaceholderImage),
		HTTPTimeout:      secondsOrDefault(getenv("HTTP_TIMEOUT_SECONDS"), DefaultHTTPTimeout),
		LogLevel:         get("LOG_LEVEL", "info"),
		LogFile:          get("LOG_FILE", ""),
		LogDevelopment:   strings.EqualFold(strings.TrimSpace(getenv("LOG_DEVELOPMENT")), "true"),
		Port:             get("PORT", DefaultPort),
		FeedSource:       get("FEED_SOURCE", DefaultFeedSource),
		FeedCount:        positiveIntOrDefault(getenv("FEED_COUNT"), DefaultFeedCount),
		RefreshInterval:  durationOrDefault(getenv("REFRESH_INTERVAL"), DefaultRefreshInterval),
		Redis: RedisConfig{
			Addr:     get("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASS"),
			DB:       intOrDefault(getenv("REDIS_DB"), 0),
			Key:      get("REDIS_KEY", DefaultRedisKey),
			TTL:      secondsOrDefault(getenv("REDIS_TTL_SECONDS"), DefaultRedisTTL),
		},
		S3: S3Config{
			Bucket:       get("S3_BUCKET", ""),
			Region:       get("S3_REGION", ""),
			Profile:      get("S3_PROFILE", ""),
			Prefix:       normalizePrefix(getenv("S3_PREFIX")),
			UsePathStyle: strings.EqualFold(strings.TrimSpace(getenv("S3_USE_PATH_STYLE")), "true"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getenv("KAFKA_BROKERS")),
			Topic:   get("KAFKA_TOPIC", DefaultKafkaTopic),
			GroupID: get("KAFKA_GROUP", DefaultKafkaGroup),
		},
	}
	return cfg
}

func secondsOrDefault(raw string, def time.Duration) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func durationOrDefault(raw string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(raw)); err == nil && d > 0 {
		return d
	}
	return def
}

func intOrDefault(raw string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v >= 0 {
		return v
	}
	return def
}

func positiveIntOrDefault(raw string, def int) int {
	if v := intOrDefault(raw, def); v > 0 {
		return v
	}
	return def
}

func normalizePrefix(raw string) string {
	prefix := strings.Trim(strings.TrimSpace(raw), "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
