package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	markethandler "market_dashboard/internal/feature/market/transport/handler"
	newshandler "market_dashboard/internal/feature/news/transport/handler"
	sechandler "market_dashboard/internal/feature/securities/transport/handler"
	wlhandler "market_dashboard/internal/feature/watchlist/transport/handler"
	"market_dashboard/internal/platform/http/handler"
	"market_dashboard/internal/platform/metrics"
	"market_dashboard/internal/shared/ratelimiter"
)

// Handlers はルーティング対象のハンドラー一式です。
type Handlers struct {
	Securities *sechandler.SecurityHandler
	Watchlist  *wlhandler.WatchlistHandler
	News       *newshandler.NewsHandler
	Market     *markethandler.MarketHandler
	Readiness  *handler.ReadinessHandler
}

// Options はルーター全体に適用するミドルウェアの設定です。
type Options struct {
	CORSEnabled bool
	// WriteLimiter はウォッチリストの書き込み系エンドポイントに適用されます。nilの場合は無制限。
	WriteLimiter *ratelimiter.RateLimiter
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()

	// ミドルウェアはルート登録より前に適用する
	// Recovery をメトリクスの内側に置き、panic による500も計測されるようにする
	r.Use(gin.Logger(), metrics.Middleware(), gin.Recovery())
	if opts.CORSEnabled {
		// ブラウザのダッシュボードから直接呼ばれる場合に有効化
		r.Use(cors.Default())
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	if h.Readiness != nil {
		r.GET("/readyz", h.Readiness.Ready)
	}
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	write := []gin.HandlerFunc{}
	if opts.WriteLimiter != nil {
		write = append(write, ratelimiter.Middleware(opts.WriteLimiter))
	}

	api := r.Group("/api")
	{
		api.GET("/stocks", h.Securities.List)
		api.GET("/stocks/:id", h.Securities.Get)
		api.GET("/stocks/:id/news", h.News.ListForSecurity)

		watchlist := api.Group("/watchlist")
		watchlist.GET("", h.Watchlist.List)
		watchlist.GET("/stocks", h.Watchlist.Securities)
		// 書き込み系のみレート制限
		writes := watchlist.Group("", write...)
		writes.POST("", h.Watchlist.Add)
		writes.POST("/toggle", h.Watchlist.Toggle)
		writes.DELETE("/:id", h.Watchlist.Remove)

		api.GET("/news", h.News.List)

		market := api.Group("/market")
		market.GET("/summary", h.Market.Summary)
		market.GET("/trending", h.Market.Trending)
		market.GET("/search", h.Market.Search)
		market.GET("/sectors", h.Market.Sectors)
	}

	return r
}
