package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
)

var day0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTrade(asset string, open, close time.Time, pnl string) *domain.Trade {
	return &domain.Trade{
		OpenTime:  open,
		CloseTime: close,
		Type:      domain.TypeBuy,
		Size:      dec("1"),
		Asset:     asset,
		PnL:       dec(pnl),
	}
}

// closedOn returns a one-hour trade closing at the given hour of day n after day0.
func closedOn(n, hour int, asset, pnl string) *domain.Trade {
	closeAt := day0.AddDate(0, 0, n).Add(time.Duration(hour) * time.Hour)
	return newTrade(asset, closeAt.Add(-time.Hour), closeAt, pnl)
}

// dailyFromRolling builds a consecutive-day series with the given rolling values.
func dailyFromRolling(values ...int64) []domain.DailyPnL {
	daily := make([]domain.DailyPnL, len(values))
	prev := decimal.Zero
	for i, v := range values {
		rolling := decimal.NewFromInt(v)
		daily[i] = domain.DailyPnL{
			Date:       day0.AddDate(0, 0, i),
			PnL:        rolling.Sub(prev),
			RollingPnL: rolling,
		}
		prev = rolling
	}
	return daily
}
