// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/feature/market/domain/entity"
	"market_dashboard/internal/feature/market/transport/http/dto"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
	secdto "market_dashboard/internal/feature/securities/transport/http/dto"
)

// MarketUsecase は市場全体の集計ビューを提供するユースケースです。
type MarketUsecase interface {
	Summary(ctx context.Context) (entity.Summary, error)
	Trending(ctx context.Context, limit int) ([]secentity.SecurityWithChange, error)
	Search(ctx context.Context, query, sector string, limit int) ([]secentity.SecurityWithChange, error)
	Sectors(ctx context.Context) ([]entity.SectorStat, error)
}

// MarketHandler は市場集計のHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は新しい MarketHandler を作成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// Summary handles GET /api/market/summary.
func (h *MarketHandler) Summary(c *gin.Context) {
	sum, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		slog.Error("failed to build market summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch market summary"})
		return
	}
	c.JSON(http.StatusOK, dto.FromSummary(sum))
}

// Trending は変動率の絶対値が大きい順に銘柄を返します。
//
// GET /api/market/trending?limit=9
func (h *MarketHandler) Trending(c *gin.Context) {
	// 数値でない場合は0となり、ユースケース側でデフォルト値が使われる
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	secs, err := h.uc.Trending(c.Request.Context(), limit)
	if err != nil {
		slog.Error("failed to list trending stocks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, secdto.FromSecurities(secs))
}

// Search handles GET /api/market/search?q=&sector=&limit=.
func (h *MarketHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	secs, err := h.uc.Search(c.Request.Context(), c.Query("q"), c.Query("sector"), limit)
	if err != nil {
		slog.Error("failed to search stocks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, secdto.FromSecurities(secs))
}

// Sectors handles GET /api/market/sectors.
func (h *MarketHandler) Sectors(c *gin.Context) {
	stats, err := h.uc.Sectors(c.Request.Context())
	if err != nil {
		slog.Error("failed to list sectors", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sectors"})
		return
	}
	c.JSON(http.StatusOK, dto.FromSectors(stats))
}
