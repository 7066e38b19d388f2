package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(func(string) string { return "" })

	if cfg.ArticlesURL != DefaultArticlesURL {
		t.Errorf("ArticlesURL = %q", cfg.ArticlesURL)
	}
	if cfg.Locale != "es" || cfg.Timezone != "UTC" {
		t.Errorf("locale/timezone = %q/%q", cfg.Locale, cfg.Timezone)
	}
	if cfg.HTTPTimeout != DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.Redis.Addr != "" || cfg.S3.Bucket != "" || len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("optional sinks must be disabled by default: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	env := map[string]string{
		"ARTICLES_URL":         "https://example.com/feed.json",
		"HTTP_TIMEOUT_SECONDS": "7",
		"FEED_COUNT":           "3",
		"REFRESH_INTERVAL":     "90s",
		"S3_PREFIX":            "/public/news/",
		"S3_USE_PATH_STYLE":    "TRUE",
		"KAFKA_BROKERS":        "a:9092, b:9092,,",
		"REDIS_TTL_SECONDS":    "-1",
	}
	cfg := FromEnv(func(k string) string { return env[k] })

	if cfg.ArticlesURL != "https://example.com/feed.json" {
		t.Errorf("ArticlesURL = %q", cfg.ArticlesURL)
	}
	if cfg.HTTPTimeout != 7*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.FeedCount != 3 || cfg.RefreshInterval != 90*time.Second {
		t.Errorf("FeedCount/RefreshInterval = %d/%v", cfg.FeedCount, cfg.RefreshInterval)
	}
	if cfg.S3.Prefix != "public/news/" || !cfg.S3.UsePathStyle {
		t.Errorf("S3 = %+v", cfg.S3)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Errorf("Brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Redis.TTL != DefaultRedisTTL {
		t.Errorf("invalid TTL should fall back to default, got %v", cfg.Redis.TTL)
	}
}

func TestFromEnvFeedCountMustBePositive(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", DefaultFeedCount},
		{"0", DefaultFeedCount},
		{"-2", DefaultFeedCount},
		{"many", DefaultFeedCount},
		{" 4 ", 4},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			cfg := FromEnv(func(k string) string {
				if k == "FEED_COUNT" {
					return c.raw
				}
				return ""
			})
			if cfg.FeedCount != c.want {
				t.Fatalf("FeedCount = %d; want %d", cfg.FeedCount, c.want)
			}
		})
	}
}

func TestFromEnvZeroIsValidRedisDB(t *testing.T) {
	env := map[string]string{"REDIS_DB": "0", "LOG_DEVELOPMENT": "True"}
	cfg := FromEnv(func(k string) string { return env[k] })

	if cfg.Redis.DB != 0 {
		t.Errorf("Redis.DB = %d", cfg.Redis.DB)
	}
	if !cfg.LogDevelopment {
		t.Errorf("LogDevelopment = false; want true")
	}
}
