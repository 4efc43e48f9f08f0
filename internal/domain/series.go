package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPnL is one calendar day that contains at least one closed trade.
type DailyPnL struct {
	Date       time.Time       // Midnight of the close date
	PnL        decimal.Decimal // Sum of the day's trade PnL
	RollingPnL decimal.Decimal // Cumulative PnL up to and including this day
}

// DrawdownEvent is a completed peak -> trough -> new high cycle on the daily rolling PnL.
type DrawdownEvent struct {
	PeakValue    decimal.Decimal // The equity high that was later exceeded
	TroughValue  decimal.Decimal // Lowest rolling PnL before the new high
	StartDate    time.Time       // Date of the high
	TroughDate   time.Time       // Date of the lowest point
	EndDate      time.Time       // Date the series exceeded the high
	Magnitude    decimal.Decimal // PeakValue - TroughValue
	DurationDays int             // Whole days from StartDate to EndDate
}
