package cmd

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/lingua-service/internal/cache"
	"github.com/SAP-F-2025/lingua-service/internal/config"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/repositories/filestore"
	"github.com/SAP-F-2025/lingua-service/internal/repositories/memory"
	"github.com/SAP-F-2025/lingua-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/lingua-service/internal/repositories/redisstore"
	"github.com/SAP-F-2025/lingua-service/internal/services"
	"github.com/SAP-F-2025/lingua-service/internal/utils"
	"github.com/SAP-F-2025/lingua-service/pkg"
	"github.com/redis/go-redis/v9"
)

const cachePrefix = "lingua:content:"

// app holds the wired dependencies of a running server.
type app struct {
	services services.ServiceManager
	closers  []func() error
}

func (a *app) Close(logger utils.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("Failed to release resource", "error", err)
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config, logger utils.Logger) (*app, error) {
	a := &app{}

	content, err := openContent(cfg, a, logger)
	if err != nil {
		a.Close(logger)
		return nil, err
	}

	client, err := pkg.NewRedisClient(ctx, cfg)
	if err != nil {
		a.Close(logger)
		return nil, err
	}
	sessions, contentCache := sessionBackends(client, a, logger)

	publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
	if err != nil {
		a.Close(logger)
		return nil, err
	}
	a.closers = append(a.closers, publisher.Close)

	a.services = services.NewServiceManager(services.Dependencies{
		Content:    content,
		Sessions:   sessions,
		Cache:      contentCache,
		Publisher:  publisher,
		Logger:     logger.Slog(),
		CacheTTL:   cfg.CacheTTL,
		SessionTTL: cfg.SessionTTL,
	})
	return a, nil
}

func openContent(cfg *config.Config, a *app, logger utils.Logger) (repositories.ContentRepository, error) {
	switch cfg.ContentSource {
	case config.ContentSourcePostgres:
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)

		if err := pkg.MigrateContent(db); err != nil {
			return nil, err
		}
		logger.Info("Serving content from PostgreSQL")
		return postgres.NewContentPostgreSQL(db), nil
	default:
		store, err := filestore.LoadFile(cfg.ContentFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Serving content from file", "path", cfg.ContentFile)
		return store, nil
	}
}

// sessionBackends keeps sessions and the content cache in Redis when a client
// is configured, and in process memory otherwise.
func sessionBackends(client *redis.Client, a *app, logger utils.Logger) (repositories.SessionRepository, cache.CacheService) {
	if client == nil {
		logger.Info("REDIS_URL not set, keeping sessions in memory")
		return memory.NewSessionStore(), cache.NewNoopCache()
	}
	a.closers = append(a.closers, client.Close)
	return redisstore.NewSessionRedis(client), cache.NewRedisCache(client, cachePrefix, logger)
}
