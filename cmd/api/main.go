package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"movie-review/cmd/api/clients/tmdbclient"
	"movie-review/cmd/api/clients/youtubeclient"
	"movie-review/cmd/api/router"
	"movie-review/cmd/api/services"
	"movie-review/cmd/internal/logger"
	"movie-review/config"
	"movie-review/db"
	"movie-review/eventbus"
	"movie-review/repositories"
)

// @title           Movie Review API
// @version         1.0
// @description     Movie discovery and review sentiment analysis backend
// @BasePath        /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 키가 없으면 nil 클라이언트로 두고, 해당 엔드포인트가 500 으로 응답한다.
	tmdb, err := tmdbclient.New(cfg.TMDB)
	if err != nil {
		logger.Log.Warnf("tmdb disabled: %v", err)
	}
	youtube, err := youtubeclient.New(cfg.YouTube)
	if err != nil {
		logger.Log.Warnf("youtube disabled: %v", err)
	}

	classifier, err := services.NewClassifier(ctx, cfg.Sentiment)
	if err != nil {
		logger.Log.Errorf("failed to create sentiment classifier: %v", err)
		os.Exit(1)
	}

	collector := services.NewReviewCollector(tmdb, youtube, services.ReviewCollectorOptions{
		MinReviewLength: cfg.Analysis.MinReviewLength,
		MaxReviewPages:  cfg.TMDB.MaxReviewPages,
		CommentLimit:    cfg.YouTube.CommentLimit,
	})
	analysis := services.NewAnalysisService(collector, classifier, services.AnalysisServiceConfig{
		ServiceName:       cfg.ServiceName,
		ClassifierTimeout: cfg.Sentiment.Timeout,
		PreviewSize:       cfg.Analysis.PreviewSize,
	})

	// MongoDB (선택)
	if cfg.Mongo.URI != "" {
		if err := db.Init(ctx, cfg.Mongo); err != nil {
			logger.Log.Errorf("mongo disabled: %v", err)
		} else {
			analysis.WithRecorder(repositories.NewAnalysisLogRepository(db.Database()))
			defer func() {
				shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
				defer done()
				if err := db.Disconnect(shutdownCtx); err != nil {
					logger.Log.Warnf("mongo disconnect: %v", err)
				}
			}()
		}
	}

	// Kafka (선택)
	if cfg.Kafka.BootstrapServers != "" {
		topic := eventbus.TopicAnalysisEvents
		if cfg.Kafka.Topic != "" {
			topic = eventbus.NewTopic(cfg.Kafka.Topic)
		}
		if err := eventbus.EnsureTopics(cfg.Kafka.BootstrapServers, 3, topic); err != nil {
			logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
		}
		bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.BootstrapServers)
		if err != nil {
			logger.Log.Errorf("kafka disabled: %v", err)
		} else {
			analysis.WithPublisher(eventbus.NewAnalysisEventPublisher(bus, topic))
			defer bus.Close()
		}
	}

	engine := router.New(router.Services{
		Movies:   services.NewMovieService(tmdb),
		Analysis: analysis,
		YouTube:  services.NewYouTubeService(youtube, cfg.YouTube.CommentLimit),
		Health:   services.NewHealthService(cfg, classifier),
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
		MaxAge:         300,
	}).Handler(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("http server started", logger.Fields{
			"addr":               srv.Addr,
			"sentiment_provider": classifier.Provider(),
			"tmdb_configured":    cfg.TMDBConfigured(),
			"youtube_configured": cfg.YouTubeConfigured(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("http server error: %v", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Log.Infof("received signal %s, shutting down", sig)
	case <-ctx.Done():
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("http server shutdown: %v", err)
	}
}
