// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// Entry is a user-selected reference to a security.
// StockID is not validated against the securities collection and may dangle.
type Entry struct {
	ID      string
	StockID string
	AddedAt time.Time
}
