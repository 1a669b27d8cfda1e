// Package usecase implements the news feed queries.
package usecase

import (
	"context"
	"fmt"

	"market_dashboard/internal/feature/news/domain/entity"
)

// NewsRepository abstracts storage of news items.
// ListNews must return items newest first.
type NewsRepository interface {
	ListNews(ctx context.Context) ([]entity.Item, error)
}

// NewsUsecase provides the news feed.
type NewsUsecase struct {
	repo NewsRepository
}

// NewNewsUsecase creates a new NewsUsecase with the given repository.
func NewNewsUsecase(r NewsRepository) *NewsUsecase {
	return &NewsUsecase{repo: r}
}

// ListNews returns all news items, newest first.
func (u *NewsUsecase) ListNews(ctx context.Context) ([]entity.Item, error) {
	items, err := u.repo.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// ListBySecurity returns the news items that mention stockID, newest first.
func (u *NewsUsecase) ListBySecurity(ctx context.Context, stockID string) ([]entity.Item, error) {
	items, err := u.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Item, 0)
	for _, n := range items {
		if n.Mentions(stockID) {
			out = append(out, n)
		}
	}
	return out, nil
}
