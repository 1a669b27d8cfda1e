// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/feature/news/domain/entity"
	"market_dashboard/internal/feature/news/transport/http/dto"
)

// NewsUsecase はニュース取得のユースケースを定義します。
type NewsUsecase interface {
	ListNews(ctx context.Context) ([]entity.Item, error)
	ListBySecurity(ctx context.Context, stockID string) ([]entity.Item, error)
}

// NewsHandler はニュースのHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler は新しい NewsHandler を作成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// List は新しい順にニュースを返します。
//
// GET /api/news
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.uc.ListNews(c.Request.Context())
	if err != nil {
		slog.Error("failed to list news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	c.JSON(http.StatusOK, dto.FromItems(items))
}

// ListForSecurity は指定銘柄に関連するニュースを返します。
//
// GET /api/stocks/:id/news
func (h *NewsHandler) ListForSecurity(c *gin.Context) {
	id := c.Param("id")
	items, err := h.uc.ListBySecurity(c.Request.Context(), id)
	if err != nil {
		slog.Error("failed to list news for stock", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	c.JSON(http.StatusOK, dto.FromItems(items))
}
