package cache

import (
	"time"
)

// marketOpenHour はNSE（ナイロビ証券取引所）の取引開始時刻です。
const marketOpenHour = 9

// nairobi returns the exchange's time zone, falling back to a fixed EAT offset
// when the tz database is unavailable.
func nairobi() *time.Location {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		return time.FixedZone("EAT", 3*60*60)
	}
	return loc
}

// TimeUntilNextMarketOpen は now から次の取引開始（東アフリカ時間 午前9時）までの期間を返します。
// ちょうど取引開始時刻の場合は翌日の取引開始までの期間を返します。
func TimeUntilNextMarketOpen(now time.Time) time.Duration {
	loc := nairobi()
	local := now.In(loc)

	next := time.Date(local.Year(), local.Month(), local.Day(), marketOpenHour, 0, 0, 0, loc)
	// 今日の取引開始時刻を過ぎている場合は翌日を使用
	if !local.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}
