// Package usecase implements the watchlist operations, including the toggle convenience.
package usecase

import (
	"context"
	"fmt"
	"strings"

	secentity "market_dashboard/internal/feature/securities/domain/entity"
	"market_dashboard/internal/feature/watchlist/domain"
	"market_dashboard/internal/feature/watchlist/domain/entity"
)

// WatchlistRepository abstracts storage of watchlist entries.
type WatchlistRepository interface {
	ListWatchlist(ctx context.Context) ([]entity.Entry, error)
	AddWatchlistEntry(ctx context.Context, stockID string) (entity.Entry, error)
	// RemoveWatchlistEntry must treat an unknown id as a successful no-op.
	RemoveWatchlistEntry(ctx context.Context, id string) error
}

// SecurityLister is the read access to securities needed to resolve watchlist entries.
type SecurityLister interface {
	ListSecurities(ctx context.Context) ([]secentity.Security, error)
}

// ToggleRecorder receives the outcome of every toggle. It may be nil.
type ToggleRecorder interface {
	RecordToggle(added bool)
}

// ToggleResult describes the outcome of Toggle.
// Entry is the newly created entry when InWatchlist is true, or the removed one otherwise.
type ToggleResult struct {
	StockID     string
	InWatchlist bool
	Entry       entity.Entry
}

// WatchlistUsecase provides the watchlist business logic.
type WatchlistUsecase struct {
	repo       WatchlistRepository
	securities SecurityLister
	recorder   ToggleRecorder
}

// NewWatchlistUsecase creates a new WatchlistUsecase. recorder may be nil.
func NewWatchlistUsecase(repo WatchlistRepository, securities SecurityLister, recorder ToggleRecorder) *WatchlistUsecase {
	return &WatchlistUsecase{repo: repo, securities: securities, recorder: recorder}
}

// List returns all watchlist entries.
func (u *WatchlistUsecase) List(ctx context.Context) ([]entity.Entry, error) {
	entries, err := u.repo.ListWatchlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return entries, nil
}

// Add creates an entry for stockID. No duplicate or existence check is made.
func (u *WatchlistUsecase) Add(ctx context.Context, stockID string) (entity.Entry, error) {
	if strings.TrimSpace(stockID) == "" {
		return entity.Entry{}, domain.ErrInvalidStockID
	}
	e, err := u.repo.AddWatchlistEntry(ctx, stockID)
	if err != nil {
		return entity.Entry{}, fmt.Errorf("add watchlist entry: %w", err)
	}
	return e, nil
}

// Remove deletes the entry with the given id; an unknown id is not an error.
func (u *WatchlistUsecase) Remove(ctx context.Context, id string) error {
	if err := u.repo.RemoveWatchlistEntry(ctx, id); err != nil {
		return fmt.Errorf("remove watchlist entry %q: %w", id, err)
	}
	return nil
}

// Toggle はstockIDがウォッチリストにあれば最初に見つかったエントリを削除し、なければ追加します。
// 読み取りと書き込みは別操作のため、同一stockIDへの同時トグルでは二重追加が起こり得ます。
func (u *WatchlistUsecase) Toggle(ctx context.Context, stockID string) (ToggleResult, error) {
	if strings.TrimSpace(stockID) == "" {
		return ToggleResult{}, domain.ErrInvalidStockID
	}
	entries, err := u.repo.ListWatchlist(ctx)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("list watchlist: %w", err)
	}

	for _, e := range entries {
		if e.StockID != stockID {
			continue
		}
		if err := u.repo.RemoveWatchlistEntry(ctx, e.ID); err != nil {
			return ToggleResult{}, fmt.Errorf("remove watchlist entry %q: %w", e.ID, err)
		}
		u.record(false)
		return ToggleResult{StockID: stockID, InWatchlist: false, Entry: e}, nil
	}

	e, err := u.repo.AddWatchlistEntry(ctx, stockID)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("add watchlist entry: %w", err)
	}
	u.record(true)
	return ToggleResult{StockID: stockID, InWatchlist: true, Entry: e}, nil
}

// ListSecurities resolves watchlist entries to securities with price change.
// The result follows security order; entries referencing unknown securities are skipped
// and each security appears once.
func (u *WatchlistUsecase) ListSecurities(ctx context.Context) ([]secentity.SecurityWithChange, error) {
	entries, err := u.repo.ListWatchlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	secs, err := u.securities.ListSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list securities: %w", err)
	}

	watched := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		watched[e.StockID] = struct{}{}
	}

	out := make([]secentity.SecurityWithChange, 0, len(watched))
	for _, s := range secs {
		if _, ok := watched[s.ID]; ok {
			out = append(out, s.WithChange())
		}
	}
	return out, nil
}

func (u *WatchlistUsecase) record(added bool) {
	if u.recorder != nil {
		u.recorder.RecordToggle(added)
	}
}
