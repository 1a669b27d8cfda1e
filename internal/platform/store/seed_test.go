package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSeed(t *testing.T) {
	t.Parallel()

	seed := DefaultSeed(seedTime)

	assert.Len(t, seed.Securities, 51)
	assert.Len(t, seed.News, 10)

	ids := make(map[string]struct{}, len(seed.Securities))
	tickers := make(map[string]struct{}, len(seed.Securities))
	for _, s := range seed.Securities {
		_, dup := ids[s.ID]
		assert.False(t, dup, "duplicate security id %s", s.ID)
		ids[s.ID] = struct{}{}
		_, dup = tickers[s.Ticker]
		assert.False(t, dup, "duplicate ticker %s", s.Ticker)
		tickers[s.Ticker] = struct{}{}

		assert.NotEmpty(t, s.Ticker, s.ID)
		assert.NotEmpty(t, s.Sector, s.ID)
		assert.Greater(t, s.PreviousClose, 0.0, s.ID)
		assert.GreaterOrEqual(t, s.Volume, int64(0), s.ID)
		assert.True(t, s.LastUpdated.Equal(seedTime), s.ID)
	}

	newsIDs := make(map[string]struct{}, len(seed.News))
	for _, n := range seed.News {
		_, dup := newsIDs[n.ID]
		assert.False(t, dup, "duplicate news id %s", n.ID)
		newsIDs[n.ID] = struct{}{}
		assert.False(t, n.PublishedAt.IsZero(), n.ID)
	}
}

func TestDefaultSeed_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	a := DefaultSeed(seedTime)
	b := DefaultSeed(seedTime)
	a.Securities[0].Name = "changed"
	assert.NotEqual(t, a.Securities[0].Name, b.Securities[0].Name)
}
