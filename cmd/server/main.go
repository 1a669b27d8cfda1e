package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"market_dashboard/internal/app/di"
	"market_dashboard/internal/app/router"
	markethandler "market_dashboard/internal/feature/market/transport/handler"
	marketusecase "market_dashboard/internal/feature/market/usecase"
	newshandler "market_dashboard/internal/feature/news/transport/handler"
	newsusecase "market_dashboard/internal/feature/news/usecase"
	sechandler "market_dashboard/internal/feature/securities/transport/handler"
	secusecase "market_dashboard/internal/feature/securities/usecase"
	wlhandler "market_dashboard/internal/feature/watchlist/transport/handler"
	wlusecase "market_dashboard/internal/feature/watchlist/usecase"
	"market_dashboard/internal/platform/http/handler"
	"market_dashboard/internal/platform/metrics"
	infraredis "market_dashboard/internal/platform/redis"
	"market_dashboard/internal/platform/store"
	"market_dashboard/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	cfg := di.LoadConfig()
	ctx := context.Background()

	// Repository（起動時に一度だけシード）
	st, err := di.NewStore(ctx, cfg.StoreDriver, store.DefaultSeed(time.Now().UTC()))
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Println("[ERROR] Failed to close store:", err)
		}
	}()

	checks := map[string]handler.Check{"store": st.Ping}

	// Redis（未設定または接続失敗時はキャッシュなしで起動）
	var rdb *redisv9.Client
	if rcfg := infraredis.LoadConfig(); rcfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, rcfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Redisキャッシュでラップ
	securities := di.NewSecurityRepository(ctx, rdb, cfg.CacheTTL, st.Securities)

	// Usecase
	secUC := secusecase.NewSecuritiesUsecase(securities)
	wlUC := wlusecase.NewWatchlistUsecase(st.Watchlist, securities, metrics.ToggleRecorder{})
	newsUC := newsusecase.NewNewsUsecase(st.News)
	marketUC := marketusecase.NewMarketUsecase(securities)

	opts := router.Options{CORSEnabled: cfg.CORSEnabled}
	if limit := ratelimiter.LoadLimitFromEnv(); limit > 0 {
		opts.WriteLimiter = ratelimiter.NewRateLimiter(limit, time.Minute)
	}

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Securities: sechandler.NewSecurityHandler(secUC),
		Watchlist:  wlhandler.NewWatchlistHandler(wlUC),
		News:       newshandler.NewNewsHandler(newsUC),
		Market:     markethandler.NewMarketHandler(marketUC),
		Readiness:  handler.NewReadinessHandler(checks),
	}, opts)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("[INFO] listening on %s (store=%s)", srv.Addr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERROR] Server shutdown failed:", err)
	}
	log.Println("[INFO] server stopped")
}
