package store

import (
	"time"

	newsentity "market_dashboard/internal/feature/news/domain/entity"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
	wlentity "market_dashboard/internal/feature/watchlist/domain/entity"
)

// SecurityModel is the gorm row for a security. Seq preserves seed order.
type SecurityModel struct {
	ID            string    `gorm:"primaryKey;size:32"`
	Seq           int       `gorm:"not null;index"`
	Ticker        string    `gorm:"size:32;not null;uniqueIndex"`
	Name          string    `gorm:"size:255;not null"`
	Sector        string    `gorm:"size:100;not null;index"`
	CurrentPrice  float64   `gorm:"not null"`
	PreviousClose float64   `gorm:"not null"`
	DayHigh       float64   `gorm:"not null"`
	DayLow        float64   `gorm:"not null"`
	Volume        int64     `gorm:"not null;default:0"`
	MarketCap     *float64  `gorm:"column:market_cap"`
	Week52High    *float64  `gorm:"column:week_52_high"`
	Week52Low     *float64  `gorm:"column:week_52_low"`
	PERatio       *float64  `gorm:"column:pe_ratio"`
	LastUpdated   time.Time `gorm:"not null"`
}

func (SecurityModel) TableName() string {
	return "securities"
}

// WatchlistModel is the gorm row for a watchlist entry. Seq preserves insertion order.
type WatchlistModel struct {
	ID      string    `gorm:"primaryKey;size:36"`
	Seq     int64     `gorm:"not null;default:0;index"`
	StockID string    `gorm:"size:32;not null;index"`
	AddedAt time.Time `gorm:"not null;index"`
}

func (WatchlistModel) TableName() string {
	return "watchlist_entries"
}

// NewsModel is the gorm row for a news item. RelatedStocks is stored as a JSON array.
type NewsModel struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Seq           int       `gorm:"not null"`
	Title         string    `gorm:"not null"`
	Description   string    `gorm:"type:text;not null"`
	Source        string    `gorm:"size:255;not null"`
	Category      string    `gorm:"size:64;not null;index"`
	ImageURL      *string   `gorm:"column:image_url"`
	PublishedAt   time.Time `gorm:"not null;index"`
	RelatedStocks []string  `gorm:"type:text;serializer:json"`
}

func (NewsModel) TableName() string {
	return "news"
}

func toSecurityModel(seq int, e secentity.Security) SecurityModel {
	return SecurityModel{
		ID:            e.ID,
		Seq:           seq,
		Ticker:        e.Ticker,
		Name:          e.Name,
		Sector:        e.Sector,
		CurrentPrice:  e.CurrentPrice,
		PreviousClose: e.PreviousClose,
		DayHigh:       e.DayHigh,
		DayLow:        e.DayLow,
		Volume:        e.Volume,
		MarketCap:     e.MarketCap,
		Week52High:    e.Week52High,
		Week52Low:     e.Week52Low,
		PERatio:       e.PERatio,
		LastUpdated:   e.LastUpdated,
	}
}

func (m SecurityModel) toEntity() secentity.Security {
	return secentity.Security{
		ID:            m.ID,
		Ticker:        m.Ticker,
		Name:          m.Name,
		Sector:        m.Sector,
		CurrentPrice:  m.CurrentPrice,
		PreviousClose: m.PreviousClose,
		DayHigh:       m.DayHigh,
		DayLow:        m.DayLow,
		Volume:        m.Volume,
		MarketCap:     m.MarketCap,
		Week52High:    m.Week52High,
		Week52Low:     m.Week52Low,
		PERatio:       m.PERatio,
		LastUpdated:   m.LastUpdated,
	}
}

func (m WatchlistModel) toEntity() wlentity.Entry {
	return wlentity.Entry{ID: m.ID, StockID: m.StockID, AddedAt: m.AddedAt}
}

func toNewsModel(seq int, e newsentity.Item) NewsModel {
	return NewsModel{
		ID:            e.ID,
		Seq:           seq,
		Title:         e.Title,
		Description:   e.Description,
		Source:        e.Source,
		Category:      e.Category,
		ImageURL:      e.ImageURL,
		PublishedAt:   e.PublishedAt,
		RelatedStocks: e.RelatedStocks,
	}
}

func (m NewsModel) toEntity() newsentity.Item {
	related := m.RelatedStocks
	if related == nil {
		related = []string{}
	}
	return newsentity.Item{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Source:        m.Source,
		Category:      m.Category,
		ImageURL:      m.ImageURL,
		PublishedAt:   m.PublishedAt,
		RelatedStocks: related,
	}
}
