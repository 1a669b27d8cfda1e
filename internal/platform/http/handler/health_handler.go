// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout は依存先ごとの疎通確認の上限時間です。
const readyTimeout = 2 * time.Second

// Check は依存先（DB、Redisなど）の疎通を確認します。
type Check func(ctx context.Context) error

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// 依存先は確認せず、プロセスが応答できることだけを示します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadinessHandler は登録された依存先を確認する /readyz エンドポイントです。
type ReadinessHandler struct {
	checks map[string]Check
}

// NewReadinessHandler creates a ReadinessHandler. nil checks are ignored.
func NewReadinessHandler(checks map[string]Check) *ReadinessHandler {
	h := &ReadinessHandler{checks: make(map[string]Check, len(checks))}
	for name, fn := range checks {
		if fn != nil {
			h.checks[name] = fn
		}
	}
	return h
}

// Ready runs every check and responds 200 when all pass, 503 otherwise.
func (h *ReadinessHandler) Ready(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	results := make(gin.H, len(names))
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		err := h.checks[name](ctx)
		cancel()
		if err != nil {
			status = http.StatusServiceUnavailable
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}

	body := gin.H{"status": "ok", "checks": results}
	if status != http.StatusOK {
		body["status"] = "unavailable"
	}
	c.JSON(status, body)
}
