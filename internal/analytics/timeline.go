package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
)

// RollingPnL returns the cumulative PnL after each trade. Trades must already be ordered by
// close time, which the statement normalizer guarantees.
func RollingPnL(trades []*domain.Trade) []decimal.Decimal {
	rolling := make([]decimal.Decimal, len(trades))
	running := decimal.Zero
	for i, t := range trades {
		running = running.Add(t.PnL)
		rolling[i] = running
	}
	return rolling
}

// DailySeries groups trades by close date and accumulates PnL across dates in ascending order.
// Input order does not matter. Dates without a close are absent from the result.
func DailySeries(trades []*domain.Trade) []domain.DailyPnL {
	ordered := make([]*domain.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CloseDate().Before(ordered[j].CloseDate())
	})

	var daily []domain.DailyPnL
	for _, t := range ordered {
		date := t.CloseDate()
		if n := len(daily); n > 0 && daily[n-1].Date.Equal(date) {
			daily[n-1].PnL = daily[n-1].PnL.Add(t.PnL)
			continue
		}
		daily = append(daily, domain.DailyPnL{Date: date, PnL: t.PnL})
	}

	running := decimal.Zero
	for i := range daily {
		running = running.Add(daily[i].PnL)
		daily[i].RollingPnL = running
	}
	return daily
}
