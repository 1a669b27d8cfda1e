package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	newsusecase "market_dashboard/internal/feature/news/usecase"
	secusecase "market_dashboard/internal/feature/securities/usecase"
	wlusecase "market_dashboard/internal/feature/watchlist/usecase"
	"market_dashboard/internal/platform/cache"
	"market_dashboard/internal/platform/db"
	"market_dashboard/internal/platform/store"
)

// Store はRepository実装一式と、そのライフサイクル操作をまとめたものです。
type Store struct {
	Securities secusecase.SecurityRepository
	Watchlist  wlusecase.WatchlistRepository
	News       newsusecase.NewsRepository

	// Ping はバックエンドの疎通確認です。メモリストアではnil。
	Ping  func(ctx context.Context) error
	close func() error
}

// Close releases the underlying connection, if any.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewStore creates the Repository selected by driver and populates it from seed.
// For StoreGorm the connection settings are read from the DB_* environment variables.
func NewStore(ctx context.Context, driver string, seed store.Seed) (*Store, error) {
	switch driver {
	case StoreMemory, "":
		ms := store.NewMemoryStore(seed)
		slog.Info("using in-memory store", "securities", len(seed.Securities), "news", len(seed.News))
		return &Store{Securities: ms, Watchlist: ms, News: ms}, nil
	case StoreGorm:
		gdb, err := db.Open(db.LoadConfigFromEnv())
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		gs := store.NewGormStore(gdb)
		if err := gs.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		if err := gs.Seed(ctx, seed); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return &Store{
			Securities: gs,
			Watchlist:  gs,
			News:       gs,
			Ping:       sqlDB.PingContext,
			close:      sqlDB.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// NewSecurityRepository wraps inner with the Redis cache when rdb is available.
// Otherwise inner is returned unchanged. Stale entries from a previous run are dropped.
func NewSecurityRepository(ctx context.Context, rdb *redis.Client, ttl time.Duration, inner secusecase.SecurityRepository) secusecase.SecurityRepository {
	if rdb == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = cache.TimeUntilNextMarketOpen(time.Now())
	}
	cached := cache.NewCachingSecurityRepository(rdb, ttl, inner, "securities")
	if err := cached.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate securities cache", "error", err)
	}
	slog.Info("securities cache enabled", "ttl", ttl)
	return cached
}
