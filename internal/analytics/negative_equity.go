package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
)

// EquityPoint is a dated rolling PnL value.
type EquityPoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// NegativeEquityReport describes the days the account spent below its starting balance.
// Lowest, Recovery and RecoveryDays are nil when undefined.
type NegativeEquityReport struct {
	NegativeDays []domain.DailyPnL
	Lowest       *EquityPoint
	Recovery     *EquityPoint
	RecoveryDays *int
}

// NegativeEquity scans the daily series for days with rolling PnL below zero.
// The lowest point is the first day on which the minimum is reached; recovery is the first
// later day whose rolling PnL is above zero.
func NegativeEquity(daily []domain.DailyPnL) NegativeEquityReport {
	var report NegativeEquityReport

	lowestIdx := -1
	for i, d := range daily {
		if !d.RollingPnL.IsNegative() {
			continue
		}
		report.NegativeDays = append(report.NegativeDays, d)
		if lowestIdx < 0 || d.RollingPnL.LessThan(daily[lowestIdx].RollingPnL) {
			lowestIdx = i
		}
	}
	if lowestIdx < 0 {
		return report
	}

	low := daily[lowestIdx]
	report.Lowest = &EquityPoint{Date: low.Date, Value: low.RollingPnL}

	for _, d := range daily[lowestIdx+1:] {
		if d.RollingPnL.IsPositive() {
			report.Recovery = &EquityPoint{Date: d.Date, Value: d.RollingPnL}
			days := domain.DaysBetween(low.Date, d.Date)
			report.RecoveryDays = &days
			break
		}
	}
	return report
}
