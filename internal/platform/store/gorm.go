package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	newsentity "market_dashboard/internal/feature/news/domain/entity"
	newsusecase "market_dashboard/internal/feature/news/usecase"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
	secusecase "market_dashboard/internal/feature/securities/usecase"
	wlentity "market_dashboard/internal/feature/watchlist/domain/entity"
	wlusecase "market_dashboard/internal/feature/watchlist/usecase"
)

// GormStore はgormで接続したデータベースに3つのコレクションを保持するリポジトリ実装です。
// 書き込みの直列化はデータベースに委ねます。
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

var (
	_ secusecase.SecurityRepository = (*GormStore)(nil)
	_ wlusecase.WatchlistRepository = (*GormStore)(nil)
	_ newsusecase.NewsRepository    = (*GormStore)(nil)
)

// NewGormStore は指定されたDB接続でGormStoreを生成します。
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// Migrate creates or updates the tables backing the store.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&SecurityModel{}, &WatchlistModel{}, &NewsModel{}); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}
	return nil
}

// Seed loads seed data in a single transaction. Rows whose id already exists are left untouched,
// so seeding an already populated database is a no-op.
func (s *GormStore) Seed(ctx context.Context, seed Seed) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(seed.Securities) > 0 {
			secs := make([]SecurityModel, 0, len(seed.Securities))
			for i, e := range seed.Securities {
				secs = append(secs, toSecurityModel(i, e))
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&secs).Error; err != nil {
				return fmt.Errorf("seed securities: %w", err)
			}
		}
		if len(seed.News) > 0 {
			news := make([]NewsModel, 0, len(seed.News))
			for i, e := range seed.News {
				news = append(news, toNewsModel(i, e))
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&news).Error; err != nil {
				return fmt.Errorf("seed news: %w", err)
			}
		}
		return nil
	})
}

// ListSecurities returns all securities in seed order.
func (s *GormStore) ListSecurities(ctx context.Context) ([]secentity.Security, error) {
	var rows []SecurityModel
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]secentity.Security, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// GetSecurity looks up a security by id. A missing id is reported as found == false.
func (s *GormStore) GetSecurity(ctx context.Context, id string) (secentity.Security, bool, error) {
	var rows []SecurityModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return secentity.Security{}, false, err
	}
	if len(rows) == 0 {
		return secentity.Security{}, false, nil
	}
	return rows[0].toEntity(), true, nil
}

// ListWatchlist returns watchlist entries in insertion order.
func (s *GormStore) ListWatchlist(ctx context.Context) ([]wlentity.Entry, error) {
	var rows []WatchlistModel
	if err := s.db.WithContext(ctx).Order("seq ASC").Order("added_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]wlentity.Entry, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// AddWatchlistEntry stores a new entry for stockID with a fresh UUID and timestamp.
func (s *GormStore) AddWatchlistEntry(ctx context.Context, stockID string) (wlentity.Entry, error) {
	m := WatchlistModel{
		ID:      uuid.NewString(),
		StockID: stockID,
		AddedAt: s.now().UTC(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int64
		if err := tx.Model(&WatchlistModel{}).Select("COALESCE(MAX(seq), 0)").Scan(&last).Error; err != nil {
			return err
		}
		m.Seq = last + 1
		return tx.Create(&m).Error
	})
	if err != nil {
		return wlentity.Entry{}, err
	}
	return m.toEntity(), nil
}

// RemoveWatchlistEntry deletes the entry with the given id. Unknown ids are a no-op.
func (s *GormStore) RemoveWatchlistEntry(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&WatchlistModel{}).Error
}

// ListNews returns news newest first; ties keep seed order.
func (s *GormStore) ListNews(ctx context.Context) ([]newsentity.Item, error) {
	var rows []NewsModel
	if err := s.db.WithContext(ctx).Order("published_at DESC").Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]newsentity.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
