// Package dto defines data transfer objects for the news HTTP API.
package dto

import (
	"time"

	"market_dashboard/internal/feature/news/domain/entity"
)

// NewsResponse is the JSON shape of a news item.
type NewsResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Source        string    `json:"source"`
	Category      string    `json:"category"`
	ImageURL      *string   `json:"imageUrl"`
	PublishedAt   time.Time `json:"publishedAt"`
	RelatedStocks []string  `json:"relatedStocks"`
}

// FromItems converts news items, keeping their order. Missing related stocks encode as [].
func FromItems(items []entity.Item) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		related := n.RelatedStocks
		if related == nil {
			related = []string{}
		}
		out = append(out, NewsResponse{
			ID:            n.ID,
			Title:         n.Title,
			Description:   n.Description,
			Source:        n.Source,
			Category:      n.Category,
			ImageURL:      n.ImageURL,
			PublishedAt:   n.PublishedAt.UTC(),
			RelatedStocks: related,
		})
	}
	return out
}
