// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	secentity "market_dashboard/internal/feature/securities/domain/entity"
	secdto "market_dashboard/internal/feature/securities/transport/http/dto"
	"market_dashboard/internal/feature/watchlist/domain"
	"market_dashboard/internal/feature/watchlist/domain/entity"
	"market_dashboard/internal/feature/watchlist/transport/http/dto"
	"market_dashboard/internal/feature/watchlist/usecase"
)

// WatchlistUsecase はウォッチリスト操作のユースケースを定義します。
type WatchlistUsecase interface {
	List(ctx context.Context) ([]entity.Entry, error)
	Add(ctx context.Context, stockID string) (entity.Entry, error)
	Remove(ctx context.Context, id string) error
	Toggle(ctx context.Context, stockID string) (usecase.ToggleResult, error)
	ListSecurities(ctx context.Context) ([]secentity.SecurityWithChange, error)
}

// WatchlistHandler はウォッチリストのHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は新しい WatchlistHandler を作成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List handles GET /api/watchlist.
func (h *WatchlistHandler) List(c *gin.Context) {
	entries, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list watchlist", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntries(entries))
}

// Add はウォッチリストにエントリを追加します。
// - リクエストJSONをAddWatchlistReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時は201と作成したエントリを返却
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("watchlist add validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	e, err := h.uc.Add(c.Request.Context(), req.StockID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStockID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
			return
		}
		slog.Error("failed to add to watchlist", "stock_id", req.StockID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromEntry(e))
}

// Remove handles DELETE /api/watchlist/:id. Unknown ids still answer 204.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.Remove(c.Request.Context(), id); err != nil {
		slog.Error("failed to remove from watchlist", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle handles POST /api/watchlist/toggle.
func (h *WatchlistHandler) Toggle(c *gin.Context) {
	var req dto.AddWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("watchlist toggle validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	res, err := h.uc.Toggle(c.Request.Context(), req.StockID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStockID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
			return
		}
		slog.Error("failed to toggle watchlist", "stock_id", req.StockID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watchlist"})
		return
	}
	c.JSON(http.StatusOK, dto.ToggleResponse{
		StockID:     res.StockID,
		InWatchlist: res.InWatchlist,
		Entry:       dto.FromEntry(res.Entry),
	})
}

// Securities handles GET /api/watchlist/stocks.
func (h *WatchlistHandler) Securities(c *gin.Context) {
	secs, err := h.uc.ListSecurities(c.Request.Context())
	if err != nil {
		slog.Error("failed to list watchlist stocks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}
	c.JSON(http.StatusOK, secdto.FromSecurities(secs))
}
