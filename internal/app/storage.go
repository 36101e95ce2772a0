package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/config"
	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"github.com/Freeeeeet/repair_booking_bot/internal/repository"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	redisPingTimeout = 2 * time.Second
	redisKeyPrefix   = "repair_booking:"
)

// Storage - открытое хранилище снимков и функция его закрытия
type Storage struct {
	KV    repository.KVStore
	close func()
}

// Close освобождает соединения драйвера
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage подключает драйвер, выбранный в STORAGE_DRIVER.
// Для postgres перед стартом применяются миграции.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgres(ctx, cfg, logger)
	case config.StorageRedis:
		return openRedis(ctx, cfg, logger)
	case config.StorageMemory:
		logger.Warn("⚠️ Using in-memory storage, data will be lost on restart")
		return &Storage{KV: repository.NewMemoryKV()}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	migrator, err := NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("✅ Connected to PostgreSQL")
	return &Storage{KV: repository.NewPostgresKV(pool), close: pool.Close}, nil
}

func openRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if _, err := client.Ping(pingCtx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("✅ Connected to Redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	return &Storage{
		KV: repository.NewRedisKV(client, redisKeyPrefix),
		close: func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close redis client", zap.Error(err))
			}
		},
	}, nil
}

// Stores - три хранилища данных сайта
type Stores struct {
	Content      *service.ContentService
	Catalog      *service.CatalogService
	Availability *service.AvailabilityService
}

// LoadStores параллельно читает снимки и создаёт сервисы поверх них.
// Повреждённый снимок - ошибка запуска.
func LoadStores(ctx context.Context, repo *repository.SnapshotRepository, logger *zap.Logger) (*Stores, error) {
	var (
		content      *model.SiteContent
		catalog      *model.Catalog
		availability *model.Availability
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = repo.LoadContent(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = repo.LoadCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		availability, err = repo.LoadAvailability(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	logger.Info("✅ Snapshots loaded",
		zap.Int("content_entries", len(content.Texts)),
		zap.Int("brand_categories", len(catalog.Brands)),
		zap.Int("default_slots", len(availability.TimeSlots)))

	return &Stores{
		Content:      service.NewContentService(content, repo, logger),
		Catalog:      service.NewCatalogService(catalog, repo, logger),
		Availability: service.NewAvailabilityService(availability, repo, logger),
	}, nil
}
