package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newsviewer/api"
	"newsviewer/common"
	"newsviewer/config"
	"newsviewer/format"
	"newsviewer/kafka"
	"newsviewer/logging"
	"newsviewer/rssfeeds"
	"newsviewer/types"
)

func main() {
	cfg := config.Load()

	logger := logging.Must(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile, Development: cfg.LogDevelopment})
	defer func() { _ = logger.Sync() }()

	formatter, err := format.NewFormatter(cfg.Locale, cfg.Timezone)
	if err != nil {
		logger.Fatal("invalid locale settings", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional sinks: the snapshot is cached in Redis and published to S3 when configured
	var sinks []rssfeeds.Sink
	var restorers []restorer

	if cfg.Redis.Addr != "" {
		cache, err := common.NewFeedCache(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis cache disabled", zap.Error(err))
		} else {
			defer cache.Close()
			sinks = append(sinks, cache)
			restorers = append(restorers, restorer{name: "redis", load: cache.Load})
		}
	}

	if cfg.S3.Bucket != "" {
		s3c, err := common.NewS3(ctx, common.S3Config{
			Region:       cfg.S3.Region,
			Profile:      cfg.S3.Profile,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
		if err != nil {
			logger.Warn("s3 publishing disabled", zap.Error(err))
		} else {
			pub := common.NewFeedPublisher(s3c, cfg.S3.Bucket, cfg.S3.Prefix)
			sinks = append(sinks, pub)
			restorers = append(restorers, restorer{name: "s3", load: pub.Load})
			logger.Info("publishing snapshots", zap.String("bucket", cfg.S3.Bucket), zap.String("key", pub.Key()))
		}
	}

	source := rssfeeds.NewSource(cfg.FeedSource, cfg.FeedCount, logger)
	store := rssfeeds.NewStore(source, logger, sinks...)
	restoreSnapshot(ctx, store, restorers, logger)

	// Refresh once at startup, then on every tick
	go refreshLoop(ctx, store, cfg.RefreshInterval, logger)

	if len(cfg.Kafka.Brokers) > 0 {
		consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
			Handler: kafka.NewRefreshHandler(store, rssfeeds.ErrRefreshInProgress, logger),
			Logger:  logger,
		})
		if err != nil {
			logger.Warn("kafka refresh requests disabled", zap.Error(err))
		} else {
			defer consumer.Close()
			go func() {
				if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("kafka consumer failed to start", zap.Error(err))
				}
			}()
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Deps{
		Store:       store,
		Formatter:   formatter,
		Placeholder: cfg.PlaceholderImage,
		Logger:      logger,
		Background:  ctx,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting feed server",
			zap.String("address", srv.Addr),
			zap.String("source", cfg.FeedSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down feed server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// restorer reads back a previously saved snapshot
type restorer struct {
	name string
	load func(ctx context.Context) (*types.Feed, error)
}

// restoreSnapshot serves the first saved snapshot found until the first refresh lands
func restoreSnapshot(ctx context.Context, store *rssfeeds.Store, restorers []restorer, logger *zap.Logger) {
	for _, r := range restorers {
		feed, err := r.load(ctx)
		if err != nil {
			logger.Warn("failed to restore snapshot", zap.String("from", r.name), zap.Error(err))
			continue
		}
		if feed == nil {
			continue
		}
		store.Restore(*feed)
		logger.Info("restored snapshot", zap.String("from", r.name), zap.Int("count", len(feed.Articles)))
		return
	}
}

// refreshLoop refreshes immediately and then every interval until ctx ends
func refreshLoop(ctx context.Context, store *rssfeeds.Store, interval time.Duration, logger *zap.Logger) {
	refresh := func() {
		if err := store.Refresh(ctx); err != nil {
			logger.Error("refresh failed", zap.Error(err))
		}
	}

	refresh()
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
