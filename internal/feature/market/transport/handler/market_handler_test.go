package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_dashboard/internal/feature/market/domain/entity"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
)

// mockMarketUsecase はMarketUsecaseインターフェースのモック実装です。
type mockMarketUsecase struct {
	SummaryFunc  func(ctx context.Context) (entity.Summary, error)
	TrendingFunc func(ctx context.Context, limit int) ([]secentity.SecurityWithChange, error)
	SearchFunc   func(ctx context.Context, query, sector string, limit int) ([]secentity.SecurityWithChange, error)
	SectorsFunc  func(ctx context.Context) ([]entity.SectorStat, error)
}

func (m *mockMarketUsecase) Summary(ctx context.Context) (entity.Summary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return entity.Summary{}, nil
}

func (m *mockMarketUsecase) Trending(ctx context.Context, limit int) ([]secentity.SecurityWithChange, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockMarketUsecase) Search(ctx context.Context, query, sector string, limit int) ([]secentity.SecurityWithChange, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, sector, limit)
	}
	return nil, nil
}

func (m *mockMarketUsecase) Sectors(ctx context.Context) ([]entity.SectorStat, error) {
	if m.SectorsFunc != nil {
		return m.SectorsFunc(ctx)
	}
	return nil, nil
}

func newRouter(uc MarketUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMarketHandler(uc)
	r := gin.New()
	r.GET("/api/market/summary", h.Summary)
	r.GET("/api/market/trending", h.Trending)
	r.GET("/api/market/search", h.Search)
	r.GET("/api/market/sectors", h.Sectors)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestMarketHandler_Summary(t *testing.T) {
	t.Run("empty market has null movers", func(t *testing.T) {
		w := get(newRouter(&mockMarketUsecase{}), "/api/market/summary")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"securityCount":0,"totalVolume":0,"averageChangePercent":0,
"advancers":0,"decliners":0,"unchanged":0,"topGainer":null,"topLoser":null}`, w.Body.String())
	})

	t.Run("movers are encoded", func(t *testing.T) {
		g := secentity.Security{ID: "BAT", CurrentPrice: 105, PreviousClose: 100}.WithChange()
		w := get(newRouter(&mockMarketUsecase{
			SummaryFunc: func(ctx context.Context) (entity.Summary, error) {
				return entity.Summary{SecurityCount: 1, Advancers: 1, TopGainer: &g, TopLoser: &g}, nil
			},
		}), "/api/market/summary")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"topGainer":{"id":"BAT"`)
	})

	t.Run("failure", func(t *testing.T) {
		w := get(newRouter(&mockMarketUsecase{
			SummaryFunc: func(ctx context.Context) (entity.Summary, error) { return entity.Summary{}, errors.New("db down") },
		}), "/api/market/summary")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch market summary"}`, w.Body.String())
	})
}

func TestMarketHandler_Trending_Limit(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLimit int
	}{
		{name: "no limit", path: "/api/market/trending", wantLimit: 0},
		{name: "explicit limit", path: "/api/market/trending?limit=5", wantLimit: 5},
		{name: "non-numeric limit", path: "/api/market/trending?limit=abc", wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLimit := -1
			w := get(newRouter(&mockMarketUsecase{
				TrendingFunc: func(ctx context.Context, limit int) ([]secentity.SecurityWithChange, error) {
					gotLimit = limit
					return nil, nil
				},
			}), tt.path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestMarketHandler_Search(t *testing.T) {
	var gotQuery, gotSector string
	gotLimit := -1
	w := get(newRouter(&mockMarketUsecase{
		SearchFunc: func(ctx context.Context, query, sector string, limit int) ([]secentity.SecurityWithChange, error) {
			gotQuery, gotSector, gotLimit = query, sector, limit
			return []secentity.SecurityWithChange{secentity.Security{ID: "KCB"}.WithChange()}, nil
		},
	}), "/api/market/search?q=kcb&sector=Banking&limit=3")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "kcb", gotQuery)
	assert.Equal(t, "Banking", gotSector)
	assert.Equal(t, 3, gotLimit)
	assert.Contains(t, w.Body.String(), `"id":"KCB"`)
}

func TestMarketHandler_Sectors(t *testing.T) {
	w := get(newRouter(&mockMarketUsecase{
		SectorsFunc: func(ctx context.Context) ([]entity.SectorStat, error) {
			return []entity.SectorStat{{Sector: "Banking", SecurityCount: 2, TotalVolume: 3000, AverageChangePercent: -0.5}}, nil
		},
	}), "/api/market/sectors")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"sector":"Banking","securityCount":2,"totalVolume":3000,"averageChangePercent":-0.5}]`, w.Body.String())
}

func TestMarketHandler_Errors(t *testing.T) {
	boom := errors.New("db down")
	r := newRouter(&mockMarketUsecase{
		TrendingFunc: func(ctx context.Context, limit int) ([]secentity.SecurityWithChange, error) { return nil, boom },
		SearchFunc: func(ctx context.Context, query, sector string, limit int) ([]secentity.SecurityWithChange, error) {
			return nil, boom
		},
		SectorsFunc: func(ctx context.Context) ([]entity.SectorStat, error) { return nil, boom },
	})

	for _, path := range []string{"/api/market/trending", "/api/market/search?q=x", "/api/market/sectors"} {
		w := get(r, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), `"error"`)
	}
}
