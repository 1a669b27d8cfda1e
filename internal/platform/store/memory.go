// Package store provides the Repository implementations that own the securities,
// watchlist and news collections. MemoryStore keeps everything in process memory;
// GormStore keeps the same collections in a gorm database.
package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	newsentity "market_dashboard/internal/feature/news/domain/entity"
	newsusecase "market_dashboard/internal/feature/news/usecase"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
	secusecase "market_dashboard/internal/feature/securities/usecase"
	wlentity "market_dashboard/internal/feature/watchlist/domain/entity"
	wlusecase "market_dashboard/internal/feature/watchlist/usecase"
)

// MemoryStore はすべてのコレクションをメモリ上に保持するリポジトリ実装です。
// 単一のRWMutexで3つのコレクションを保護し、書き込みは直列化されます。
// プロセス再起動でウォッチリストは失われます。
type MemoryStore struct {
	mu sync.RWMutex

	securities    map[string]secentity.Security
	securityOrder []string

	watchlist      map[string]wlentity.Entry
	watchlistOrder []string

	news []newsentity.Item

	newID func() string
	now   func() time.Time
}

var (
	_ secusecase.SecurityRepository = (*MemoryStore)(nil)
	_ wlusecase.WatchlistRepository = (*MemoryStore)(nil)
	_ newsusecase.NewsRepository    = (*MemoryStore)(nil)
)

// NewMemoryStore creates a MemoryStore populated from seed.
// Securities with a duplicate id keep the first occurrence.
func NewMemoryStore(seed Seed) *MemoryStore {
	s := &MemoryStore{
		securities: make(map[string]secentity.Security, len(seed.Securities)),
		watchlist:  make(map[string]wlentity.Entry),
		news:       make([]newsentity.Item, 0, len(seed.News)),
		newID:      func() string { return uuid.NewString() },
		now:        time.Now,
	}
	for _, sec := range seed.Securities {
		if _, ok := s.securities[sec.ID]; ok {
			continue
		}
		s.securities[sec.ID] = sec
		s.securityOrder = append(s.securityOrder, sec.ID)
	}
	for _, n := range seed.News {
		n.RelatedStocks = slices.Clone(n.RelatedStocks)
		s.news = append(s.news, n)
	}
	return s
}

// ListSecurities returns all securities in seed order.
func (s *MemoryStore) ListSecurities(_ context.Context) ([]secentity.Security, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]secentity.Security, 0, len(s.securityOrder))
	for _, id := range s.securityOrder {
		out = append(out, s.securities[id])
	}
	return out, nil
}

// GetSecurity looks up a security by id. A missing id is reported as found == false.
func (s *MemoryStore) GetSecurity(_ context.Context, id string) (secentity.Security, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec, ok := s.securities[id]
	return sec, ok, nil
}

// ListWatchlist returns the watchlist entries in insertion order.
func (s *MemoryStore) ListWatchlist(_ context.Context) ([]wlentity.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]wlentity.Entry, 0, len(s.watchlistOrder))
	for _, id := range s.watchlistOrder {
		out = append(out, s.watchlist[id])
	}
	return out, nil
}

// AddWatchlistEntry stores a new entry for stockID with a fresh id and timestamp.
// Duplicates and unknown stock ids are accepted.
func (s *MemoryStore) AddWatchlistEntry(_ context.Context, stockID string) (wlentity.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := wlentity.Entry{
		ID:      s.newID(),
		StockID: stockID,
		AddedAt: s.now(),
	}
	s.watchlist[e.ID] = e
	s.watchlistOrder = append(s.watchlistOrder, e.ID)
	return e, nil
}

// RemoveWatchlistEntry deletes the entry with the given id. Unknown ids are a no-op.
func (s *MemoryStore) RemoveWatchlistEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.watchlist[id]; !ok {
		return nil
	}
	delete(s.watchlist, id)
	if i := slices.Index(s.watchlistOrder, id); i >= 0 {
		s.watchlistOrder = slices.Delete(s.watchlistOrder, i, i+1)
	}
	return nil
}

// ListNews returns news items ordered by PublishedAt, newest first.
// Items with equal timestamps keep their seed order.
func (s *MemoryStore) ListNews(_ context.Context) ([]newsentity.Item, error) {
	s.mu.RLock()
	out := make([]newsentity.Item, len(s.news))
	for i, n := range s.news {
		n.RelatedStocks = slices.Clone(n.RelatedStocks)
		out[i] = n
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}
