// Package entity defines the aggregate views produced by the market feature.
package entity

import secentity "market_dashboard/internal/feature/securities/domain/entity"

// Summary aggregates the whole market for the dashboard header.
// TopGainer and TopLoser are nil when there are no securities.
type Summary struct {
	SecurityCount        int
	TotalVolume          int64
	AverageChangePercent float64
	Advancers            int
	Decliners            int
	Unchanged            int
	TopGainer            *secentity.SecurityWithChange
	TopLoser             *secentity.SecurityWithChange
}

// SectorStat summarises the securities of one sector.
type SectorStat struct {
	Sector               string
	SecurityCount        int
	TotalVolume          int64
	AverageChangePercent float64
}
