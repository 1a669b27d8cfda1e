// Package dto defines data transfer objects for the securities HTTP API.
package dto

import (
	"time"

	"market_dashboard/internal/feature/securities/domain/entity"
)

// SecurityResponse is the JSON shape of a security with its derived price change.
// Nullable figures are encoded as null.
type SecurityResponse struct {
	ID            string    `json:"id"`
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name"`
	Sector        string    `json:"sector"`
	CurrentPrice  float64   `json:"currentPrice"`
	PreviousClose float64   `json:"previousClose"`
	DayHigh       float64   `json:"dayHigh"`
	DayLow        float64   `json:"dayLow"`
	Volume        int64     `json:"volume"`
	MarketCap     *float64  `json:"marketCap"`
	Week52High    *float64  `json:"week52High"`
	Week52Low     *float64  `json:"week52Low"`
	PERatio       *float64  `json:"peRatio"`
	LastUpdated   time.Time `json:"lastUpdated"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	IsPositive    bool      `json:"isPositive"`
}

// FromSecurity converts a derived view into its response DTO.
func FromSecurity(s entity.SecurityWithChange) SecurityResponse {
	return SecurityResponse{
		ID:            s.ID,
		Ticker:        s.Ticker,
		Name:          s.Name,
		Sector:        s.Sector,
		CurrentPrice:  s.CurrentPrice,
		PreviousClose: s.PreviousClose,
		DayHigh:       s.DayHigh,
		DayLow:        s.DayLow,
		Volume:        s.Volume,
		MarketCap:     s.MarketCap,
		Week52High:    s.Week52High,
		Week52Low:     s.Week52Low,
		PERatio:       s.PERatio,
		LastUpdated:   s.LastUpdated.UTC(),
		Change:        s.Change,
		ChangePercent: s.ChangePercent,
		IsPositive:    s.IsPositive,
	}
}

// FromSecurities converts a list of derived views. The result is never nil so it encodes as [].
func FromSecurities(secs []entity.SecurityWithChange) []SecurityResponse {
	out := make([]SecurityResponse, 0, len(secs))
	for _, s := range secs {
		out = append(out, FromSecurity(s))
	}
	return out
}
