package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"go-gin-calendar/config"
	"go-gin-calendar/internal/cache"
	"go-gin-calendar/internal/classifier"
	"go-gin-calendar/internal/database"
	"go-gin-calendar/internal/handler"
	"go-gin-calendar/internal/metrics"
	"go-gin-calendar/internal/queue"
	"go-gin-calendar/internal/repository"
	"go-gin-calendar/internal/service"
	"go-gin-calendar/internal/storage"
	"go-gin-calendar/internal/worker"
	"go-gin-calendar/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()

	if err := run(); err != nil {
		logger.WithComponent("main").Fatal("Server exited with error", zap.Error(err))
	}
}

func run() error {
	log := logger.WithComponent("main")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openEventRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	images, err := storage.NewLocalImageStore(cfg.Storage.UploadDir)
	if err != nil {
		return err
	}

	m := metrics.New()

	var imageClassifier classifier.ImageClassifier = classifier.NewAnthropicClassifier(&cfg.Classifier)
	if cfg.Classifier.APIKey == "" {
		log.Warn("ANTHROPIC_API_KEY is not set, image uploads will fail extraction")
	}

	var cleanupQueue queue.CleanupQueue
	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer rdb.Close()

		imageClassifier = classifier.NewCachedClassifier(imageClassifier, cache.NewRedisAnalysisCache(rdb), cfg.Classifier.CacheTTL)
		cleanupQueue, err = queue.NewRedisStreamCleanupQueue(ctx, rdb, "", nil)
		if err != nil {
			return fmt.Errorf("init cleanup queue: %w", err)
		}
	} else {
		cleanupQueue = queue.NewMemoryCleanupQueue(100, queue.DefaultRetryDelay)
	}

	eventService := service.NewEventService(repo, images, imageClassifier, cleanupQueue, m)

	cleanupWorker := worker.NewCleanupWorker(images, cleanupQueue, m)
	if err := cleanupWorker.Start(ctx); err != nil {
		return fmt.Errorf("start cleanup worker: %w", err)
	}
	sweeper := worker.NewUploadSweeper(repo, images, cfg.Storage.OrphanGrace, m)
	if err := sweeper.Start(ctx, cfg.Storage.SweepCron); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(&cfg.Server, images.Dir(), handler.NewEventHandler(eventService, &cfg.Server), m)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver), zap.Bool("redis", cfg.Redis.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	stop()
	select {
	case <-cleanupWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Cleanup worker did not stop in time")
	}
	return nil
}

// openEventRepository 依 STORE_DRIVER 建立事件儲存，回傳的 close 負責釋放連線
func openEventRepository(ctx context.Context, cfg *config.Config) (repository.EventRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		client, db, err := database.InitMongo(&cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("init mongo: %w", err)
		}
		return repository.NewMongoEventRepository(db), func() {
			_ = client.Disconnect(context.Background())
		}, nil

	case config.StoreDriverPostgres:
		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return repository.NewPostgresEventRepository(pool), pool.Close, nil

	default:
		logger.WithComponent("main").Warn("Using in-memory event store, events are lost on restart")
		return repository.NewMemoryEventRepository(), func() {}, nil
	}
}
