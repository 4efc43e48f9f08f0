package analytics

import (
	"fmt"
	"time"

	"statementAnalyzer/internal/domain"
)

// HoldTimeStats summarizes hold times for one side (winners or losers).
// Mean and Max are nil when the side has no trades.
type HoldTimeStats struct {
	Trades int
	Mean   *time.Duration
	Max    *time.Duration
}

// HoldTimeReport splits hold times by outcome. Trades with exactly zero PnL are in neither side.
type HoldTimeReport struct {
	Winners HoldTimeStats
	Losers  HoldTimeStats
}

// HoldTimes computes mean and maximum hold time for winning and losing trades.
func HoldTimes(trades []*domain.Trade) HoldTimeReport {
	var winners, losers []time.Duration
	for _, t := range trades {
		switch {
		case t.PnL.IsPositive():
			winners = append(winners, t.HoldTime())
		case t.PnL.IsNegative():
			losers = append(losers, t.HoldTime())
		}
	}
	return HoldTimeReport{
		Winners: holdTimeStats(winners),
		Losers:  holdTimeStats(losers),
	}
}

func holdTimeStats(durations []time.Duration) HoldTimeStats {
	stats := HoldTimeStats{Trades: len(durations)}
	if len(durations) == 0 {
		return stats
	}
	var total, longest time.Duration
	for i, d := range durations {
		total += d
		if i == 0 || d > longest {
			longest = d
		}
	}
	mean := total / time.Duration(len(durations))
	stats.Mean = &mean
	stats.Max = &longest
	return stats
}

// FormatHoldTime renders d as whole hours and minutes, truncating seconds.
func FormatHoldTime(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d hours and %d minutes", secs/3600, (secs%3600)/60)
}
