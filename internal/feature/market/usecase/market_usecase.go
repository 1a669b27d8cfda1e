// Package usecase computes market-wide views (summary, trending, search, sectors)
// from the derived security data.
package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"market_dashboard/internal/feature/market/domain/entity"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
	secusecase "market_dashboard/internal/feature/securities/usecase"
)

const (
	// DefaultTrendingLimit はトレンド銘柄のデフォルト返却件数です。
	DefaultTrendingLimit = 9
	// MaxTrendingLimit はトレンド銘柄の最大返却件数です。
	MaxTrendingLimit = 100

	// DefaultSearchLimit は検索結果のデフォルト返却件数です。
	DefaultSearchLimit = 8
	// MaxSearchLimit は検索結果の最大返却件数です。
	MaxSearchLimit = 100
)

// SecurityLister is the read access to securities needed by the market views.
type SecurityLister interface {
	ListSecurities(ctx context.Context) ([]secentity.Security, error)
}

// MarketUsecase builds market-wide views.
type MarketUsecase struct {
	securities SecurityLister
}

// NewMarketUsecase creates a new MarketUsecase.
func NewMarketUsecase(s SecurityLister) *MarketUsecase {
	return &MarketUsecase{securities: s}
}

func (u *MarketUsecase) load(ctx context.Context) ([]secentity.SecurityWithChange, error) {
	secs, err := u.securities.ListSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list securities: %w", err)
	}
	return secusecase.WithChanges(secs), nil
}

// Summary returns the market summary. Ties for top gainer/loser keep the first security seen.
func (u *MarketUsecase) Summary(ctx context.Context) (entity.Summary, error) {
	secs, err := u.load(ctx)
	if err != nil {
		return entity.Summary{}, err
	}
	return Summarize(secs), nil
}

// Summarize aggregates secs into a Summary.
func Summarize(secs []secentity.SecurityWithChange) entity.Summary {
	var sum entity.Summary
	if len(secs) == 0 {
		return sum
	}

	var pctTotal float64
	gainer, loser := secs[0], secs[0]
	for _, s := range secs {
		sum.TotalVolume += s.Volume
		pctTotal += s.ChangePercent
		switch {
		case s.Change > 0:
			sum.Advancers++
		case s.Change < 0:
			sum.Decliners++
		default:
			sum.Unchanged++
		}
		if s.ChangePercent > gainer.ChangePercent {
			gainer = s
		}
		if s.ChangePercent < loser.ChangePercent {
			loser = s
		}
	}
	sum.SecurityCount = len(secs)
	sum.AverageChangePercent = pctTotal / float64(len(secs))
	sum.TopGainer = &gainer
	sum.TopLoser = &loser
	return sum
}

// Trending returns the securities with the largest absolute percentage move.
// limit <= 0 uses DefaultTrendingLimit; limits above MaxTrendingLimit are capped.
func (u *MarketUsecase) Trending(ctx context.Context, limit int) ([]secentity.SecurityWithChange, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	if limit > MaxTrendingLimit {
		limit = MaxTrendingLimit
	}
	secs, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(secs, func(i, j int) bool {
		return math.Abs(secs[i].ChangePercent) > math.Abs(secs[j].ChangePercent)
	})
	if len(secs) > limit {
		secs = secs[:limit]
	}
	return secs, nil
}

// Search はティッカーまたは銘柄名に query を含む銘柄を返します（大文字小文字を区別しません）。
// sector が指定された場合はそのセクターに絞り込みます。
// query と sector が両方とも空の場合は空の結果を返します。
// limit が0以下の場合は DefaultSearchLimit 件、最大 MaxSearchLimit 件までを返します。
func (u *MarketUsecase) Search(ctx context.Context, query, sector string, limit int) ([]secentity.SecurityWithChange, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))
	sector = strings.TrimSpace(sector)
	if q == "" && sector == "" {
		return []secentity.SecurityWithChange{}, nil
	}
	secs, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]secentity.SecurityWithChange, 0)
	for _, s := range secs {
		if len(out) == limit {
			break
		}
		if sector != "" && !strings.EqualFold(s.Sector, sector) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Ticker), q) &&
			!strings.Contains(strings.ToLower(s.Name), q) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Sectors returns per-sector statistics sorted by sector name.
func (u *MarketUsecase) Sectors(ctx context.Context) ([]entity.SectorStat, error) {
	secs, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	stats := map[string]*entity.SectorStat{}
	pct := map[string]float64{}
	for _, s := range secs {
		st, ok := stats[s.Sector]
		if !ok {
			st = &entity.SectorStat{Sector: s.Sector}
			stats[s.Sector] = st
		}
		st.SecurityCount++
		st.TotalVolume += s.Volume
		pct[s.Sector] += s.ChangePercent
	}

	out := make([]entity.SectorStat, 0, len(stats))
	for name, st := range stats {
		st.AverageChangePercent = pct[name] / float64(st.SecurityCount)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sector < out[j].Sector })
	return out, nil
}
