// Package entity defines the domain models for the news feature.
package entity

import (
	"slices"
	"time"
)

// Item is a market news article.
// Category is an open label set such as "IPO", "Market News" or "Company News".
type Item struct {
	ID            string
	Title         string
	Description   string
	Source        string
	Category      string
	ImageURL      *string
	PublishedAt   time.Time
	RelatedStocks []string
}

// Mentions reports whether the article lists stockID among its related securities.
func (n Item) Mentions(stockID string) bool {
	return slices.Contains(n.RelatedStocks, stockID)
}
