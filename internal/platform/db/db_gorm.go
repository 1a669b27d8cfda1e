// Package db はgormによるデータベース接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverSQLite はSQLite（デフォルトはインメモリ）を使用します。
	DriverSQLite = "sqlite"
	// DriverPostgres はPostgreSQLを使用します。
	DriverPostgres = "postgres"

	// DefaultSQLiteDSN は共有キャッシュのインメモリSQLiteです。プロセス終了で消えます。
	DefaultSQLiteDSN = "file::memory:?cache=shared"

	retryInterval = 3 * time.Second
)

// Config holds database connection settings.
type Config struct {
	Driver       string
	SQLiteDSN    string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance; takes precedence over Host/Port
	ConnTimeout  time.Duration
}

// Opener opens a gorm connection for a DSN. It is replaceable for tests.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:       os.Getenv("DB_DRIVER"),
		SQLiteDSN:    os.Getenv("DB_DSN"),
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		ConnTimeout:  60 * time.Second,
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.SQLiteDSN == "" {
		cfg.SQLiteDSN = DefaultSQLiteDSN
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if d, err := time.ParseDuration(os.Getenv("DB_CONN_TIMEOUT")); err == nil && d > 0 {
		cfg.ConnTimeout = d
	}
	return cfg
}

// BuildDSN はPostgreSQL接続用のDSN文字列を生成します。
// InstanceName が設定されている場合はCloud SQLのUnixソケットを使用します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// ConnectWithRetry は接続に成功するか timeout を過ぎるまで opener を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// Open は cfg.Driver に応じたgorm接続を開きます。
func Open(cfg Config) (*gorm.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		dsn := cfg.SQLiteDSN
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite pool: %w", err)
		}
		// 共有キャッシュのSQLiteは同時書き込みを待たずに SQLITE_LOCKED を返すため1接続に固定
		sqlDB.SetMaxOpenConns(1)
		slog.Info("using sqlite", "dsn", dsn)
		return db, nil
	case DriverPostgres:
		return ConnectWithRetry(BuildDSN(cfg), cfg.ConnTimeout, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), &gorm.Config{})
		})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
