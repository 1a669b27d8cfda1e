// Package ratelimiter はクライアント単位の固定ウィンドウ方式レートリミッターを提供します。
package ratelimiter

import (
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultLimit はウィンドウあたりのデフォルト上限です。
const DefaultLimit = 60

// window はキーごとのカウンタです。
type window struct {
	start time.Time
	count int
}

// RateLimiter は、キー（通常はクライアントIP）ごとに interval あたり limit 回まで操作を許可します。
// 上限を超えた呼び出しは待機せず拒否されます。
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// LoadLimitFromEnv は RATE_LIMIT_PER_MINUTE を読み込みます。
// 未設定や不正な値の場合は DefaultLimit、0 以下はレート制限なしを意味します。
func LoadLimitFromEnv() int {
	v := os.Getenv("RATE_LIMIT_PER_MINUTE")
	if v == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid RATE_LIMIT_PER_MINUTE, using default", "value", v, "default", DefaultLimit)
		return DefaultLimit
	}
	return n
}

// Allow は key の呼び出しを1回分消費します。
// 拒否した場合は、ウィンドウがリセットされるまでの時間を返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.start) >= rl.interval {
		w = &window{start: now}
		rl.windows[key] = w
		rl.evict(now)
	}

	if w.count >= rl.limit {
		return false, rl.interval - now.Sub(w.start)
	}
	w.count++
	return true, 0
}

// evict drops windows that have already expired. Caller must hold mu.
func (rl *RateLimiter) evict(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}

// Middleware はクライアントIP単位でリクエストを制限するginミドルウェアを返します。
// 上限超過時は 429 と Retry-After ヘッダーを返します。
func Middleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retry := rl.Allow(c.ClientIP())
		if !ok {
			secs := int(math.Ceil(retry.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			slog.Warn("[RATE LIMIT] request rejected", "client", c.ClientIP(), "path", c.FullPath(), "retry_after", retry)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
