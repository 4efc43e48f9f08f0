package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents one closed position from a broker statement.
type Trade struct {
	OpenTime    time.Time       // Timestamp when the position was opened
	CloseTime   time.Time       // Timestamp when the position was closed
	Type        TradeType       // Normalized order type
	Size        decimal.Decimal // Lot size, always positive
	Asset       string          // Symbol as printed in the statement, used verbatim as grouping key
	OpenPrice   decimal.Decimal
	StopLoss    decimal.Decimal // Zero when no stop loss was placed
	TakeProfit  decimal.Decimal // Zero when no take profit was placed
	ClosePrice  decimal.Decimal
	Commissions decimal.Decimal // Usually <= 0
	Swap        decimal.Decimal // Usually <= 0
	PnL         decimal.Decimal // Net result including costs
}

// DisplayAsset returns the symbol upper-cased for presentation.
func (t *Trade) DisplayAsset() string {
	return strings.ToUpper(t.Asset)
}

// HoldTime returns how long the position was open.
func (t *Trade) HoldTime() time.Duration {
	return t.CloseTime.Sub(t.OpenTime)
}

// CloseDate returns midnight of the close timestamp's calendar date, in the timestamp's own location.
func (t *Trade) CloseDate() time.Time {
	return DateOf(t.CloseTime)
}

// DateOf truncates ts to its calendar date without any timezone conversion.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return Ordinal(b) - Ordinal(a)
}

// unixEpochOrdinal is the proleptic Gregorian ordinal of 1970-01-01, where 0001-01-01 is day 1.
const unixEpochOrdinal = 719163

// Ordinal maps the calendar date of ts to its proleptic Gregorian day number (0001-01-01 = 1).
func Ordinal(ts time.Time) int {
	y, m, d := ts.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	return int(days) + unixEpochOrdinal
}
