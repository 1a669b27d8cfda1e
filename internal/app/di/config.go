// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// StoreMemory はプロセス内メモリにコレクションを保持します（デフォルト）。
	StoreMemory = "memory"
	// StoreGorm はgorm経由でデータベースにコレクションを保持します。DB_DRIVERでsqlite/postgresを選択します。
	StoreGorm = "gorm"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Port        string
	StoreDriver string
	// CacheTTL が0の場合、次の取引開始までをTTLとして使用します。
	CacheTTL    time.Duration
	CORSEnabled bool
}

// LoadConfig は環境変数から設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		StoreDriver: os.Getenv("STORE_DRIVER"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreMemory
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid CACHE_TTL, falling back to market open", "value", v, "error", err)
		} else {
			cfg.CacheTTL = d
		}
	}
	if v := os.Getenv("CORS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid CORS_ENABLED, CORS disabled", "value", v, "error", err)
		}
		cfg.CORSEnabled = enabled
	}
	return cfg
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
