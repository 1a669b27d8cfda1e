package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	newsusecase "market_dashboard/internal/feature/news/usecase"
	secusecase "market_dashboard/internal/feature/securities/usecase"
	wlusecase "market_dashboard/internal/feature/watchlist/usecase"
)

// repository は両ストア実装が満たすべきインターフェースの合成です。
type repository interface {
	secusecase.SecurityRepository
	wlusecase.WatchlistRepository
	newsusecase.NewsRepository
}

var seedTime = time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC)

// clock は呼び出しごとに1秒進む時刻を返します。
func clock() func() time.Time {
	t := seedTime
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// runRepositoryContract はストア実装に共通する振る舞いを検証します。
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T, seed Seed) repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("securities keep seed order", func(t *testing.T) {
		seed := DefaultSeed(seedTime)
		r := newRepo(t, seed)

		secs, err := r.ListSecurities(ctx)
		require.NoError(t, err)
		require.Len(t, secs, len(seed.Securities))
		for i := range secs {
			assert.Equal(t, seed.Securities[i].ID, secs[i].ID)
		}
	})

	t.Run("derived fields are exact for every seeded security", func(t *testing.T) {
		r := newRepo(t, DefaultSeed(seedTime))

		secs, err := r.ListSecurities(ctx)
		require.NoError(t, err)
		for _, s := range secusecase.WithChanges(secs) {
			change := s.CurrentPrice - s.PreviousClose
			assert.Equal(t, change, s.Change, s.ID)
			assert.Equal(t, change/s.PreviousClose*100, s.ChangePercent, s.ID)
			assert.Equal(t, s.ChangePercent >= 0, s.IsPositive, s.ID)
		}
	})

	t.Run("get security", func(t *testing.T) {
		seed := DefaultSeed(seedTime)
		r := newRepo(t, seed)

		sec, found, err := r.GetSecurity(ctx, "EQTY")
		require.NoError(t, err)
		require.True(t, found)
		want := seed.Securities[0]
		assert.Equal(t, "EQTY", sec.Ticker)
		assert.Equal(t, want.Name, sec.Name)
		assert.Equal(t, want.CurrentPrice, sec.CurrentPrice)
		assert.Equal(t, want.PreviousClose, sec.PreviousClose)
		assert.Equal(t, want.Volume, sec.Volume)
		require.NotNil(t, sec.MarketCap)
		assert.Equal(t, *want.MarketCap, *sec.MarketCap)
		assert.True(t, want.LastUpdated.Equal(sec.LastUpdated))

		_, found, err = r.GetSecurity(ctx, "NOPE")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("add list remove", func(t *testing.T) {
		r := newRepo(t, DefaultSeed(seedTime))

		e, err := r.AddWatchlistEntry(ctx, "SCOM")
		require.NoError(t, err)
		assert.Equal(t, "SCOM", e.StockID)
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.AddedAt.IsZero())

		entries, err := r.ListWatchlist(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, e.ID, entries[0].ID)
		assert.Equal(t, "SCOM", entries[0].StockID)
		assert.True(t, e.AddedAt.Equal(entries[0].AddedAt))

		require.NoError(t, r.RemoveWatchlistEntry(ctx, e.ID))
		entries, err = r.ListWatchlist(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("remove unknown id is a no-op", func(t *testing.T) {
		r := newRepo(t, DefaultSeed(seedTime))

		kept, err := r.AddWatchlistEntry(ctx, "KCB")
		require.NoError(t, err)

		require.NoError(t, r.RemoveWatchlistEntry(ctx, "does-not-exist"))
		entries, err := r.ListWatchlist(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, kept.ID, entries[0].ID)
	})

	t.Run("duplicates and dangling ids are accepted in insertion order", func(t *testing.T) {
		r := newRepo(t, DefaultSeed(seedTime))

		var want []string
		for _, id := range []string{"SCOM", "SCOM", "GHOST", "EQTY"} {
			e, err := r.AddWatchlistEntry(ctx, id)
			require.NoError(t, err)
			want = append(want, e.ID)
		}
		ids := make(map[string]struct{}, len(want))
		for _, id := range want {
			ids[id] = struct{}{}
		}
		assert.Len(t, ids, len(want), "entry ids are unique")

		entries, err := r.ListWatchlist(ctx)
		require.NoError(t, err)
		got := make([]string, 0, len(entries))
		for _, e := range entries {
			got = append(got, e.ID)
		}
		assert.Equal(t, want, got)
	})

	t.Run("news newest first", func(t *testing.T) {
		r := newRepo(t, DefaultSeed(seedTime))

		items, err := r.ListNews(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, items)
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i].PublishedAt.After(items[i-1].PublishedAt),
				"item %d (%s) is newer than item %d (%s)", i, items[i].ID, i-1, items[i-1].ID)
		}
	})

	t.Run("news ties keep seed order", func(t *testing.T) {
		same := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
		seed := Seed{News: DefaultSeed(seedTime).News[:3]}
		for i := range seed.News {
			seed.News[i].PublishedAt = same
		}
		r := newRepo(t, seed)

		items, err := r.ListNews(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		for i := range items {
			assert.Equal(t, seed.News[i].ID, items[i].ID)
		}
	})

	t.Run("news fields survive storage", func(t *testing.T) {
		seed := DefaultSeed(seedTime)
		r := newRepo(t, seed)

		items, err := r.ListNews(ctx)
		require.NoError(t, err)
		byID := make(map[string]int, len(items))
		for i, n := range items {
			byID[n.ID] = i
		}
		for _, want := range seed.News {
			i, ok := byID[want.ID]
			require.True(t, ok, want.ID)
			got := items[i]
			assert.Equal(t, want.Title, got.Title)
			if len(want.RelatedStocks) == 0 {
				assert.Empty(t, got.RelatedStocks)
			} else {
				assert.Equal(t, want.RelatedStocks, got.RelatedStocks)
			}
			assert.Equal(t, want.ImageURL, got.ImageURL)
			assert.True(t, want.PublishedAt.Equal(got.PublishedAt))
		}
	})

	t.Run("read after write", func(t *testing.T) {
		r := newRepo(t, DefaultSeed(seedTime))

		for i := 0; i < 5; i++ {
			e, err := r.AddWatchlistEntry(ctx, fmt.Sprintf("S%d", i))
			require.NoError(t, err)
			entries, err := r.ListWatchlist(ctx)
			require.NoError(t, err)
			require.Len(t, entries, i+1)
			assert.Equal(t, e.ID, entries[i].ID)
		}
	})
}
