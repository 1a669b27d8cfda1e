// Package dto defines data transfer objects for the market HTTP API.
package dto

import (
	"market_dashboard/internal/feature/market/domain/entity"
	secdto "market_dashboard/internal/feature/securities/transport/http/dto"
)

// SummaryResponse is the JSON shape of the market summary.
type SummaryResponse struct {
	SecurityCount        int                      `json:"securityCount"`
	TotalVolume          int64                    `json:"totalVolume"`
	AverageChangePercent float64                  `json:"averageChangePercent"`
	Advancers            int                      `json:"advancers"`
	Decliners            int                      `json:"decliners"`
	Unchanged            int                      `json:"unchanged"`
	TopGainer            *secdto.SecurityResponse `json:"topGainer"`
	TopLoser             *secdto.SecurityResponse `json:"topLoser"`
}

// SectorResponse is the JSON shape of one sector's statistics.
type SectorResponse struct {
	Sector               string  `json:"sector"`
	SecurityCount        int     `json:"securityCount"`
	TotalVolume          int64   `json:"totalVolume"`
	AverageChangePercent float64 `json:"averageChangePercent"`
}

// FromSummary converts a Summary into its response DTO.
func FromSummary(s entity.Summary) SummaryResponse {
	out := SummaryResponse{
		SecurityCount:        s.SecurityCount,
		TotalVolume:          s.TotalVolume,
		AverageChangePercent: s.AverageChangePercent,
		Advancers:            s.Advancers,
		Decliners:            s.Decliners,
		Unchanged:            s.Unchanged,
	}
	if s.TopGainer != nil {
		g := secdto.FromSecurity(*s.TopGainer)
		out.TopGainer = &g
	}
	if s.TopLoser != nil {
		l := secdto.FromSecurity(*s.TopLoser)
		out.TopLoser = &l
	}
	return out
}

// FromSectors converts sector statistics; the result is never nil.
func FromSectors(stats []entity.SectorStat) []SectorResponse {
	out := make([]SectorResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, SectorResponse{
			Sector:               s.Sector,
			SecurityCount:        s.SecurityCount,
			TotalVolume:          s.TotalVolume,
			AverageChangePercent: s.AverageChangePercent,
		})
	}
	return out
}
