package store

import (
	"time"

	newsentity "market_dashboard/internal/feature/news/domain/entity"
	secentity "market_dashboard/internal/feature/securities/domain/entity"
)

// Seed is the fixed data loaded into a store once at startup.
type Seed struct {
	Securities []secentity.Security
	News       []newsentity.Item
}

// DefaultSeed はNSE上場銘柄とニュースの初期データを返します。
// 全銘柄の LastUpdated には asOf が設定されます。
func DefaultSeed(asOf time.Time) Seed {
	securities := defaultSecurities()
	for i := range securities {
		securities[i].LastUpdated = asOf
	}
	return Seed{Securities: securities, News: defaultNews()}
}

func ptr(v float64) *float64 { return &v }

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func defaultSecurities() []secentity.Security {
	return []secentity.Security{
		{ID: "EQTY", Ticker: "EQTY", Name: "Equity Group Holdings", Sector: "Banking", CurrentPrice: 52.50, PreviousClose: 51.25, DayHigh: 53.00, DayLow: 51.80, Volume: 2450000, MarketCap: ptr(198500000000), Week52High: ptr(58.00), Week52Low: ptr(45.00), PERatio: ptr(4.8)},
		{ID: "KCB", Ticker: "KCB", Name: "KCB Group", Sector: "Banking", CurrentPrice: 38.75, PreviousClose: 39.50, DayHigh: 39.25, DayLow: 38.50, Volume: 1850000, MarketCap: ptr(154200000000), Week52High: ptr(42.00), Week52Low: ptr(35.00), PERatio: ptr(3.9)},
		{ID: "COOP", Ticker: "COOP", Name: "Co-operative Bank", Sector: "Banking", CurrentPrice: 16.20, PreviousClose: 16.00, DayHigh: 16.35, DayLow: 15.95, Volume: 3200000, MarketCap: ptr(98400000000), Week52High: ptr(17.50), Week52Low: ptr(14.00), PERatio: ptr(5.2)},
		{ID: "ABSA", Ticker: "ABSA", Name: "Absa Bank Kenya", Sector: "Banking", CurrentPrice: 14.85, PreviousClose: 15.20, DayHigh: 15.30, DayLow: 14.70, Volume: 980000, MarketCap: ptr(54300000000), Week52High: ptr(16.50), Week52Low: ptr(13.00), PERatio: ptr(4.1)},
		{ID: "SCBK", Ticker: "SCBK", Name: "Standard Chartered Bank", Sector: "Banking", CurrentPrice: 158.00, PreviousClose: 160.00, DayHigh: 161.00, DayLow: 157.50, Volume: 125000, MarketCap: ptr(68900000000), Week52High: ptr(175.00), Week52Low: ptr(145.00), PERatio: ptr(6.3)},
		{ID: "DTBK", Ticker: "DTBK", Name: "Diamond Trust Bank", Sector: "Banking", CurrentPrice: 75.00, PreviousClose: 74.00, DayHigh: 76.00, DayLow: 74.50, Volume: 420000, MarketCap: ptr(29800000000), Week52High: ptr(82.00), Week52Low: ptr(68.00), PERatio: ptr(4.5)},
		{ID: "I&M", Ticker: "I&M", Name: "I&M Holdings", Sector: "Banking", CurrentPrice: 22.50, PreviousClose: 23.00, DayHigh: 23.25, DayLow: 22.25, Volume: 680000, MarketCap: ptr(27100000000), Week52High: ptr(25.00), Week52Low: ptr(20.00), PERatio: ptr(3.8)},
		{ID: "NCBA", Ticker: "NCBA", Name: "NCBA Group", Sector: "Banking", CurrentPrice: 35.25, PreviousClose: 35.00, DayHigh: 35.75, DayLow: 34.90, Volume: 520000, MarketCap: ptr(40200000000), Week52High: ptr(38.00), Week52Low: ptr(31.00), PERatio: ptr(4.2)},
		{ID: "SCOM", Ticker: "SCOM", Name: "Safaricom", Sector: "Telecommunications", CurrentPrice: 18.95, PreviousClose: 18.50, DayHigh: 19.10, DayLow: 18.70, Volume: 8500000, MarketCap: ptr(758400000000), Week52High: ptr(21.00), Week52Low: ptr(16.50), PERatio: ptr(7.2)},
		{ID: "EABL", Ticker: "EABL", Name: "East African Breweries", Sector: "Manufacturing", CurrentPrice: 142.00, PreviousClose: 145.00, DayHigh: 145.50, DayLow: 141.00, Volume: 340000, MarketCap: ptr(109400000000), Week52High: ptr(160.00), Week52Low: ptr(135.00), PERatio: ptr(11.5)},
		{ID: "BAT", Ticker: "BAT", Name: "British American Tobacco", Sector: "Manufacturing", CurrentPrice: 385.00, PreviousClose: 390.00, DayHigh: 392.00, DayLow: 383.00, Volume: 45000, MarketCap: ptr(76500000000), Week52High: ptr(420.00), Week52Low: ptr(360.00), PERatio: ptr(8.9)},
		{ID: "UNGA", Ticker: "UNGA", Name: "Unga Group", Sector: "Manufacturing", CurrentPrice: 28.50, PreviousClose: 27.75, DayHigh: 28.80, DayLow: 27.90, Volume: 280000, MarketCap: ptr(11400000000), Week52High: ptr(32.00), Week52Low: ptr(24.00), PERatio: ptr(15.3)},
		{ID: "CARB", Ticker: "CARB", Name: "Carbacid Investments", Sector: "Manufacturing", CurrentPrice: 9.85, PreviousClose: 9.50, DayHigh: 10.00, DayLow: 9.60, Volume: 150000, MarketCap: ptr(1970000000), Week52High: ptr(11.00), Week52Low: ptr(8.50), PERatio: ptr(12.1)},
		{ID: "MUMIAS", Ticker: "MUMIAS", Name: "Mumias Sugar Company", Sector: "Manufacturing", CurrentPrice: 0.45, PreviousClose: 0.48, DayHigh: 0.49, DayLow: 0.44, Volume: 5200000, MarketCap: ptr(900000000), Week52High: ptr(0.75), Week52Low: ptr(0.35), PERatio: nil},
		{ID: "BOC", Ticker: "BOC", Name: "BOC Kenya", Sector: "Manufacturing", CurrentPrice: 32.00, PreviousClose: 31.50, DayHigh: 32.50, DayLow: 31.75, Volume: 95000, MarketCap: ptr(4800000000), Week52High: ptr(35.00), Week52Low: ptr(28.00), PERatio: ptr(9.8)},
		{ID: "BAMB", Ticker: "BAMB", Name: "Bamburi Cement", Sector: "Construction", CurrentPrice: 42.50, PreviousClose: 43.25, DayHigh: 43.50, DayLow: 42.00, Volume: 380000, MarketCap: ptr(25500000000), Week52High: ptr(48.00), Week52Low: ptr(38.00), PERatio: ptr(14.2)},
		{ID: "FIRE", Ticker: "FIRE", Name: "East African Cables", Sector: "Construction", CurrentPrice: 2.18, PreviousClose: 2.20, DayHigh: 2.25, DayLow: 2.15, Volume: 420000, MarketCap: ptr(872000000), Week52High: ptr(2.60), Week52Low: ptr(1.95), PERatio: nil},
		{ID: "ARMCM", Ticker: "ARMCM", Name: "ARM Cement", Sector: "Construction", CurrentPrice: 1.85, PreviousClose: 1.90, DayHigh: 1.95, DayLow: 1.82, Volume: 680000, MarketCap: ptr(740000000), Week52High: ptr(2.50), Week52Low: ptr(1.60), PERatio: nil},
		{ID: "KPLC", Ticker: "KPLC", Name: "Kenya Power & Lighting", Sector: "Energy", CurrentPrice: 2.45, PreviousClose: 2.50, DayHigh: 2.55, DayLow: 2.42, Volume: 4500000, MarketCap: ptr(4900000000), Week52High: ptr(3.20), Week52Low: ptr(2.10), PERatio: nil},
		{ID: "KEGN", Ticker: "KEGN", Name: "KenGen", Sector: "Energy", CurrentPrice: 3.82, PreviousClose: 3.75, DayHigh: 3.88, DayLow: 3.76, Volume: 2100000, MarketCap: ptr(38200000000), Week52High: ptr(4.50), Week52Low: ptr(3.20), PERatio: ptr(8.5)},
		{ID: "TOTL", Ticker: "TOTL", Name: "Total Energies Kenya", Sector: "Energy", CurrentPrice: 18.50, PreviousClose: 18.25, DayHigh: 18.75, DayLow: 18.30, Volume: 180000, MarketCap: ptr(7400000000), Week52High: ptr(20.00), Week52Low: ptr(16.50), PERatio: ptr(10.2)},
		{ID: "KENOL", Ticker: "KENOL", Name: "KenolKobil", Sector: "Energy", CurrentPrice: 14.20, PreviousClose: 14.50, DayHigh: 14.65, DayLow: 14.10, Volume: 220000, MarketCap: ptr(5680000000), Week52High: ptr(16.00), Week52Low: ptr(12.50), PERatio: ptr(9.1)},
		{ID: "BRIT", Ticker: "BRIT", Name: "Britam Holdings", Sector: "Insurance", CurrentPrice: 6.95, PreviousClose: 6.80, DayHigh: 7.05, DayLow: 6.85, Volume: 1450000, MarketCap: ptr(13900000000), Week52High: ptr(8.00), Week52Low: ptr(5.80), PERatio: ptr(11.6)},
		{ID: "CIC", Ticker: "CIC", Name: "CIC Insurance Group", Sector: "Insurance", CurrentPrice: 2.85, PreviousClose: 2.90, DayHigh: 2.95, DayLow: 2.82, Volume: 950000, MarketCap: ptr(5700000000), Week52High: ptr(3.40), Week52Low: ptr(2.50), PERatio: ptr(8.9)},
		{ID: "JUBI", Ticker: "JUBI", Name: "Jubilee Holdings", Sector: "Insurance", CurrentPrice: 285.00, PreviousClose: 290.00, DayHigh: 292.00, DayLow: 283.00, Volume: 38000, MarketCap: ptr(22800000000), Week52High: ptr(320.00), Week52Low: ptr(265.00), PERatio: ptr(7.4)},
		{ID: "LIBERTY", Ticker: "LIBERTY", Name: "Liberty Holdings", Sector: "Insurance", CurrentPrice: 9.40, PreviousClose: 9.25, DayHigh: 9.50, DayLow: 9.30, Volume: 125000, MarketCap: ptr(3760000000), Week52High: ptr(10.50), Week52Low: ptr(8.00), PERatio: ptr(10.8)},
		{ID: "CENTUM", Ticker: "CENTUM", Name: "Centum Investment", Sector: "Investment", CurrentPrice: 18.75, PreviousClose: 19.00, DayHigh: 19.20, DayLow: 18.60, Volume: 420000, MarketCap: ptr(7500000000), Week52High: ptr(22.00), Week52Low: ptr(16.00), PERatio: nil},
		{ID: "OLYMP", Ticker: "OLYMP", Name: "Olympia Capital Holdings", Sector: "Investment", CurrentPrice: 3.25, PreviousClose: 3.20, DayHigh: 3.30, DayLow: 3.18, Volume: 180000, MarketCap: ptr(1300000000), Week52High: ptr(3.80), Week52Low: ptr(2.80), PERatio: ptr(6.5)},
		{ID: "BRITAM", Ticker: "BRITAM", Name: "Britam Asset Managers", Sector: "Investment", CurrentPrice: 4.55, PreviousClose: 4.50, DayHigh: 4.62, DayLow: 4.48, Volume: 95000, MarketCap: ptr(1820000000), Week52High: ptr(5.20), Week52Low: ptr(4.00), PERatio: ptr(8.2)},
		{ID: "CMC", Ticker: "CMC", Name: "CMC Holdings", Sector: "Automobile", CurrentPrice: 6.80, PreviousClose: 7.00, DayHigh: 7.05, DayLow: 6.75, Volume: 280000, MarketCap: ptr(2720000000), Week52High: ptr(8.50), Week52Low: ptr(6.00), PERatio: nil},
		{ID: "SAMEER", Ticker: "SAMEER", Name: "Sameer Africa", Sector: "Automobile", CurrentPrice: 2.95, PreviousClose: 3.00, DayHigh: 3.05, DayLow: 2.90, Volume: 150000, MarketCap: ptr(885000000), Week52High: ptr(3.60), Week52Low: ptr(2.50), PERatio: nil},
		{ID: "SCAN", Ticker: "SCAN", Name: "Scangroup", Sector: "Commercial Services", CurrentPrice: 14.50, PreviousClose: 14.25, DayHigh: 14.70, DayLow: 14.30, Volume: 85000, MarketCap: ptr(2900000000), Week52High: ptr(16.00), Week52Low: ptr(12.50), PERatio: ptr(12.3)},
		{ID: "NATION", Ticker: "NATION", Name: "Nation Media Group", Sector: "Commercial Services", CurrentPrice: 18.20, PreviousClose: 18.50, DayHigh: 18.65, DayLow: 18.05, Volume: 320000, MarketCap: ptr(7280000000), Week52High: ptr(22.00), Week52Low: ptr(16.00), PERatio: ptr(9.8)},
		{ID: "SKAN", Ticker: "SKAN", Name: "Longhorn Publishers", Sector: "Commercial Services", CurrentPrice: 8.45, PreviousClose: 8.30, DayHigh: 8.55, DayLow: 8.35, Volume: 65000, MarketCap: ptr(1690000000), Week52High: ptr(9.50), Week52Low: ptr(7.00), PERatio: ptr(11.2)},
		{ID: "TPS", Ticker: "TPS", Name: "TPS Eastern Africa (Serena)", Sector: "Commercial Services", CurrentPrice: 15.80, PreviousClose: 16.00, DayHigh: 16.10, DayLow: 15.70, Volume: 92000, MarketCap: ptr(6320000000), Week52High: ptr(18.00), Week52Low: ptr(14.00), PERatio: ptr(13.5)},
		{ID: "KAKUZI", Ticker: "KAKUZI", Name: "Kakuzi", Sector: "Agricultural", CurrentPrice: 385.00, PreviousClose: 380.00, DayHigh: 388.00, DayLow: 382.00, Volume: 12000, MarketCap: ptr(9240000000), Week52High: ptr(420.00), Week52Low: ptr(350.00), PERatio: ptr(15.4)},
		{ID: "SASINI", Ticker: "SASINI", Name: "Sasini", Sector: "Agricultural", CurrentPrice: 22.50, PreviousClose: 22.00, DayHigh: 22.75, DayLow: 22.20, Volume: 48000, MarketCap: ptr(4500000000), Week52High: ptr(25.00), Week52Low: ptr(19.00), PERatio: ptr(12.8)},
		{ID: "KAPC", Ticker: "KAPC", Name: "Kapchorua Tea", Sector: "Agricultural", CurrentPrice: 42.00, PreviousClose: 41.50, DayHigh: 42.50, DayLow: 41.75, Volume: 28000, MarketCap: ptr(3360000000), Week52High: ptr(46.00), Week52Low: ptr(38.00), PERatio: ptr(14.1)},
		{ID: "LIMT", Ticker: "LIMT", Name: "Limuru Tea", Sector: "Agricultural", CurrentPrice: 285.00, PreviousClose: 280.00, DayHigh: 287.00, DayLow: 283.00, Volume: 5500, MarketCap: ptr(2565000000), Week52High: ptr(310.00), Week52Low: ptr(260.00), PERatio: ptr(16.2)},
		{ID: "WILLIAMSON", Ticker: "WTK", Name: "Williamson Tea Kenya", Sector: "Agricultural", CurrentPrice: 155.00, PreviousClose: 152.00, DayHigh: 157.00, DayLow: 153.50, Volume: 8200, MarketCap: ptr(3100000000), Week52High: ptr(175.00), Week52Low: ptr(140.00), PERatio: ptr(13.9)},
		{ID: "ILAM", Ticker: "ILAM", Name: "Acorn I-REIT", Sector: "REIT", CurrentPrice: 22.50, PreviousClose: 22.25, DayHigh: 22.70, DayLow: 22.30, Volume: 125000, MarketCap: ptr(4500000000), Week52High: ptr(24.00), Week52Low: ptr(20.00), PERatio: ptr(11.3)},
		{ID: "FAHARI", Ticker: "FAHARI", Name: "Fahari I-REIT", Sector: "REIT", CurrentPrice: 6.85, PreviousClose: 7.00, DayHigh: 7.05, DayLow: 6.80, Volume: 95000, MarketCap: ptr(1370000000), Week52High: ptr(8.50), Week52Low: ptr(6.00), PERatio: ptr(8.9)},
		{ID: "HOME", Ticker: "HOME", Name: "Home Afrika", Sector: "Real Estate", CurrentPrice: 1.25, PreviousClose: 1.28, DayHigh: 1.30, DayLow: 1.23, Volume: 380000, MarketCap: ptr(500000000), Week52High: ptr(1.60), Week52Low: ptr(1.00), PERatio: nil},
		{ID: "KURWITU", Ticker: "KURWITU", Name: "Kurwitu Ventures", Sector: "Investment", CurrentPrice: 3.50, PreviousClose: 3.45, DayHigh: 3.58, DayLow: 3.47, Volume: 42000, MarketCap: ptr(700000000), Week52High: ptr(4.00), Week52Low: ptr(3.00), PERatio: nil},
		{ID: "STANLIB", Ticker: "STANLIB", Name: "Stanlib Fahari I-REIT", Sector: "REIT", CurrentPrice: 5.40, PreviousClose: 5.50, DayHigh: 5.55, DayLow: 5.38, Volume: 68000, MarketCap: ptr(1080000000), Week52High: ptr(6.20), Week52Low: ptr(4.80), PERatio: ptr(9.4)},
		{ID: "EVEREADY", Ticker: "EVEREADY", Name: "Eveready East Africa", Sector: "Manufacturing", CurrentPrice: 0.95, PreviousClose: 1.00, DayHigh: 1.02, DayLow: 0.93, Volume: 520000, MarketCap: ptr(380000000), Week52High: ptr(1.35), Week52Low: ptr(0.80), PERatio: nil},
		{ID: "EXPRESS", Ticker: "EXPRESS", Name: "Express Kenya", Sector: "Commercial Services", CurrentPrice: 3.85, PreviousClose: 3.90, DayHigh: 3.95, DayLow: 3.82, Volume: 145000, MarketCap: ptr(770000000), Week52High: ptr(4.50), Week52Low: ptr(3.20), PERatio: ptr(10.5)},
		{ID: "TRANS", Ticker: "TRANS", Name: "TransCentury", Sector: "Investment", CurrentPrice: 2.40, PreviousClose: 2.45, DayHigh: 2.50, DayLow: 2.38, Volume: 280000, MarketCap: ptr(960000000), Week52High: ptr(3.00), Week52Low: ptr(2.00), PERatio: nil},
		{ID: "UCHUMI", Ticker: "UCHUMI", Name: "Uchumi Supermarkets", Sector: "Commercial Services", CurrentPrice: 0.38, PreviousClose: 0.40, DayHigh: 0.42, DayLow: 0.37, Volume: 1200000, MarketCap: ptr(152000000), Week52High: ptr(0.65), Week52Low: ptr(0.30), PERatio: nil},
		{ID: "CROWN", Ticker: "CROWN", Name: "Crown Paints Kenya", Sector: "Manufacturing", CurrentPrice: 28.50, PreviousClose: 28.00, DayHigh: 28.75, DayLow: 27.95, Volume: 75000, MarketCap: ptr(5700000000), Week52High: ptr(32.00), Week52Low: ptr(25.00), PERatio: ptr(11.8)},
		{ID: "KENYA", Ticker: "KENYA", Name: "Kenya Airways", Sector: "Automobile", CurrentPrice: 3.58, PreviousClose: 3.65, DayHigh: 3.70, DayLow: 3.55, Volume: 1850000, MarketCap: ptr(1432000000), Week52High: ptr(4.50), Week52Low: ptr(2.80), PERatio: nil},
	}
}

func defaultNews() []newsentity.Item {
	return []newsentity.Item{
		{
			ID:            "news-001",
			Title:         "Kenya Pipeline Company IPO Set for March 2026, Expected to Raise KES 149 Billion",
			Description:   "The government plans to list Kenya Pipeline Company (KPC) on the Nairobi Securities Exchange, offering up to 65% stake. This will be Kenya's largest IPO since Safaricom in 2008.",
			Source:        "Kenyan Wall Street",
			Category:      "IPO",
			PublishedAt:   mustParse("2024-11-20T10:30:00Z"),
			RelatedStocks: []string{"SCOM"},
		},
		{
			ID:            "news-002",
			Title:         "NSE 20 Index Gains 2.3% on Strong Banking Sector Performance",
			Description:   "The Nairobi Securities Exchange's NSE 20 index recorded its biggest weekly gain in three months, driven by strong performances from banking stocks including Equity Group and KCB.",
			Source:        "Capital Business",
			Category:      "Market News",
			PublishedAt:   mustParse("2024-11-22T14:15:00Z"),
			RelatedStocks: []string{"EQTY", "KCB", "COOP"},
		},
		{
			ID:            "news-003",
			Title:         "Safaricom Reports 15% Growth in M-Pesa Revenue",
			Description:   "Safaricom's mobile money platform M-Pesa continues to drive growth, with transaction value increasing to KES 26 trillion. The telco also announced plans to expand its fiber network.",
			Source:        "Business Daily Africa",
			Category:      "Company News",
			PublishedAt:   mustParse("2024-11-21T09:45:00Z"),
			RelatedStocks: []string{"SCOM"},
		},
		{
			ID:            "news-004",
			Title:         "Government Privatization Plan Includes National Oil, Kenya Literature Bureau",
			Description:   "Following the Kenya Pipeline Company IPO announcement, the government has revealed plans to privatize National Oil Corporation, New Kenya Cooperative Creameries, Kenya Literature Bureau, and Rivatex East Africa.",
			Source:        "The Nation",
			Category:      "IPO",
			PublishedAt:   mustParse("2024-11-19T16:20:00Z"),
			RelatedStocks: []string{},
		},
		{
			ID:            "news-005",
			Title:         "Equity Group Expands to Ethiopia, Eyes DRC Market Entry",
			Description:   "Equity Group Holdings announced it has received approval to commence banking operations in Ethiopia and is in advanced negotiations for market entry into the Democratic Republic of Congo.",
			Source:        "Capital FM Business",
			Category:      "Company News",
			PublishedAt:   mustParse("2024-11-18T11:30:00Z"),
			RelatedStocks: []string{"EQTY"},
		},
		{
			ID:            "news-006",
			Title:         "East African Breweries Launches New Premium Beer Line",
			Description:   "EABL has introduced a new premium beer range targeting Kenya's growing middle class. The company reported a 12% increase in revenue for the first half of 2024.",
			Source:        "Business Today",
			Category:      "Company News",
			PublishedAt:   mustParse("2024-11-17T13:00:00Z"),
			RelatedStocks: []string{"EABL"},
		},
		{
			ID:            "news-007",
			Title:         "NSE Introduces New Trading Rules to Boost Market Liquidity",
			Description:   "The Nairobi Securities Exchange has announced new trading rules including extended trading hours and reduced minimum trade sizes to attract more retail investors and improve market liquidity.",
			Source:        "Kenyan Wall Street",
			Category:      "Market News",
			PublishedAt:   mustParse("2024-11-16T08:45:00Z"),
			RelatedStocks: []string{},
		},
		{
			ID:            "news-008",
			Title:         "Foreign Investors Increase Stakes in Kenyan Banking Stocks",
			Description:   "Foreign institutional investors have increased their holdings in Kenyan banking stocks by 18% in the past quarter, citing improved economic outlook and attractive valuations.",
			Source:        "African Markets",
			Category:      "Market News",
			PublishedAt:   mustParse("2024-11-15T10:15:00Z"),
			RelatedStocks: []string{"EQTY", "KCB", "COOP", "ABSA"},
		},
		{
			ID:            "news-009",
			Title:         "KenGen Secures $500M Financing for Renewable Energy Projects",
			Description:   "Kenya's largest power producer has secured financing from international development banks for new geothermal and wind energy projects, expected to add 400MW to the national grid.",
			Source:        "Energy Africa",
			Category:      "Company News",
			PublishedAt:   mustParse("2024-11-14T15:30:00Z"),
			RelatedStocks: []string{"KEGN"},
		},
		{
			ID:            "news-010",
			Title:         "Britam Holdings Reports Strong Growth in Bancassurance Partnerships",
			Description:   "Britam announced a 25% increase in premium income from its bancassurance partnerships, with plans to expand distribution channels across East Africa.",
			Source:        "Insurance News Kenya",
			Category:      "Company News",
			PublishedAt:   mustParse("2024-11-13T12:00:00Z"),
			RelatedStocks: []string{"BRIT"},
		},
	}
}
