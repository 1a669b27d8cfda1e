// Package entity defines the domain models for the securities feature.
package entity

import (
	"math"
	"time"
)

// Security represents a tradable instrument listed on the exchange.
// Prices are quoted in the exchange's local currency (KES).
type Security struct {
	ID            string
	Ticker        string
	Name          string
	Sector        string
	CurrentPrice  float64
	PreviousClose float64
	DayHigh       float64
	DayLow        float64
	Volume        int64
	MarketCap     *float64
	Week52High    *float64
	Week52Low     *float64
	PERatio       *float64
	LastUpdated   time.Time
}

// SecurityWithChange is a Security together with its price movement since the previous close.
// It is computed on every read and never stored.
type SecurityWithChange struct {
	Security
	Change        float64
	ChangePercent float64
	IsPositive    bool
}

// WithChange は前日終値からの変動額・変動率を計算します。
// previousClose が 0 の場合や結果が有限でない場合、変動率は 0 として扱います。
func (s Security) WithChange() SecurityWithChange {
	change := s.CurrentPrice - s.PreviousClose
	var pct float64
	if s.PreviousClose != 0 {
		pct = change / s.PreviousClose * 100
	}
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	return SecurityWithChange{
		Security:      s,
		Change:        change,
		ChangePercent: pct,
		IsPositive:    pct >= 0,
	}
}
