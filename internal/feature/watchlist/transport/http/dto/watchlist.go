// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

import (
	"time"

	"market_dashboard/internal/feature/watchlist/domain/entity"
)

// AddWatchlistReq is the request body for POST /api/watchlist and POST /api/watchlist/toggle.
type AddWatchlistReq struct {
	StockID string `json:"stockId" binding:"required"`
}

// EntryResponse is the JSON shape of a watchlist entry.
type EntryResponse struct {
	ID      string    `json:"id"`
	StockID string    `json:"stockId"`
	AddedAt time.Time `json:"addedAt"`
}

// ToggleResponse reports whether the stock is in the watchlist after a toggle.
// Entry is the entry that was created or removed.
type ToggleResponse struct {
	StockID     string        `json:"stockId"`
	InWatchlist bool          `json:"inWatchlist"`
	Entry       EntryResponse `json:"entry"`
}

// FromEntry converts a watchlist entry into its response DTO.
func FromEntry(e entity.Entry) EntryResponse {
	return EntryResponse{ID: e.ID, StockID: e.StockID, AddedAt: e.AddedAt.UTC()}
}

// FromEntries converts entries; the result is never nil.
func FromEntries(es []entity.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEntry(e))
	}
	return out
}
