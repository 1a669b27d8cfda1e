// Package usecase implements the read-side business logic for securities.
package usecase

import (
	"context"
	"fmt"

	"market_dashboard/internal/feature/securities/domain"
	"market_dashboard/internal/feature/securities/domain/entity"
)

// SecurityRepository abstracts the storage of seeded securities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (store).
type SecurityRepository interface {
	ListSecurities(ctx context.Context) ([]entity.Security, error)
	// GetSecurity returns found == false with a nil error when id does not exist.
	GetSecurity(ctx context.Context, id string) (entity.Security, bool, error)
}

// SecuritiesUsecase derives price movement for securities read from the repository.
type SecuritiesUsecase struct {
	repo SecurityRepository
}

// NewSecuritiesUsecase creates a new SecuritiesUsecase with the given repository.
func NewSecuritiesUsecase(r SecurityRepository) *SecuritiesUsecase {
	return &SecuritiesUsecase{repo: r}
}

// ListSecuritiesWithChange returns every security with change, changePercent and isPositive computed.
func (u *SecuritiesUsecase) ListSecuritiesWithChange(ctx context.Context) ([]entity.SecurityWithChange, error) {
	secs, err := u.repo.ListSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list securities: %w", err)
	}
	return WithChanges(secs), nil
}

// GetSecurity は指定IDの銘柄を変動情報付きで返します。
// 存在しない場合は domain.ErrSecurityNotFound を返します。
func (u *SecuritiesUsecase) GetSecurity(ctx context.Context, id string) (entity.SecurityWithChange, error) {
	sec, found, err := u.repo.GetSecurity(ctx, id)
	if err != nil {
		return entity.SecurityWithChange{}, fmt.Errorf("get security %q: %w", id, err)
	}
	if !found {
		return entity.SecurityWithChange{}, domain.ErrSecurityNotFound
	}
	return sec.WithChange(), nil
}

// WithChanges maps securities to their derived views, preserving order.
func WithChanges(secs []entity.Security) []entity.SecurityWithChange {
	out := make([]entity.SecurityWithChange, 0, len(secs))
	for _, s := range secs {
		out = append(out, s.WithChange())
	}
	return out
}
