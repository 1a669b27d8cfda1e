// Package handler はsecuritiesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_dashboard/internal/feature/securities/domain"
	"market_dashboard/internal/feature/securities/domain/entity"
	"market_dashboard/internal/feature/securities/transport/http/dto"
)

// SecuritiesUsecase は銘柄情報に関するユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SecuritiesUsecase interface {
	ListSecuritiesWithChange(ctx context.Context) ([]entity.SecurityWithChange, error)
	GetSecurity(ctx context.Context, id string) (entity.SecurityWithChange, error)
}

// SecurityHandler は銘柄情報に関するHTTPリクエストを処理します。
type SecurityHandler struct {
	uc SecuritiesUsecase
}

// NewSecurityHandler は新しい SecurityHandler を作成します。
func NewSecurityHandler(uc SecuritiesUsecase) *SecurityHandler {
	return &SecurityHandler{uc: uc}
}

// List は変動情報付きの全銘柄を返します。
//
// GET /api/stocks
func (h *SecurityHandler) List(c *gin.Context) {
	secs, err := h.uc.ListSecuritiesWithChange(c.Request.Context())
	if err != nil {
		slog.Error("failed to list stocks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, dto.FromSecurities(secs))
}

// Get は指定IDの銘柄を返します。存在しない場合は404を返します。
//
// GET /api/stocks/:id
func (h *SecurityHandler) Get(c *gin.Context) {
	id := c.Param("id")
	sec, err := h.uc.GetSecurity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSecurityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			return
		}
		slog.Error("failed to get stock", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock"})
		return
	}
	c.JSON(http.StatusOK, dto.FromSecurity(sec))
}
