package analytics

import "statementAnalyzer/internal/domain"

// RealDrawdowns detects completed peak -> trough -> new high cycles on the daily rolling PnL.
//
// The first day seeds the high. A day strictly above the current high closes the cycle and,
// if the series dipped below the high in between, records an event measured from the high
// being exceeded down to the lowest value since it. A cycle still open when the series ends
// is not reported.
func RealDrawdowns(daily []domain.DailyPnL) []domain.DrawdownEvent {
	if len(daily) == 0 {
		return nil
	}

	var events []domain.DrawdownEvent
	high := daily[0].RollingPnL
	highDate := daily[0].Date
	lowest := high
	lowestDate := highDate

	for _, d := range daily[1:] {
		switch {
		case d.RollingPnL.GreaterThan(high):
			if lowest.LessThan(high) {
				events = append(events, domain.DrawdownEvent{
					PeakValue:    high,
					TroughValue:  lowest,
					StartDate:    highDate,
					TroughDate:   lowestDate,
					EndDate:      d.Date,
					Magnitude:    high.Sub(lowest),
					DurationDays: domain.DaysBetween(highDate, d.Date),
				})
			}
			high, highDate = d.RollingPnL, d.Date
			lowest, lowestDate = high, highDate
		case d.RollingPnL.LessThan(lowest):
			lowest, lowestDate = d.RollingPnL, d.Date
		}
	}
	return events
}

// LargestDrawdown returns the event with the greatest magnitude, the earliest one on ties.
// It returns nil when there are no events.
func LargestDrawdown(events []domain.DrawdownEvent) *domain.DrawdownEvent {
	var largest *domain.DrawdownEvent
	for i := range events {
		if largest == nil || events[i].Magnitude.GreaterThan(largest.Magnitude) {
			largest = &events[i]
		}
	}
	return largest
}

// AverageDrawdownDays is the mean duration of the events, nil when there are none.
func AverageDrawdownDays(events []domain.DrawdownEvent) *float64 {
	if len(events) == 0 {
		return nil
	}
	total := 0
	for _, e := range events {
		total += e.DurationDays
	}
	avg := float64(total) / float64(len(events))
	return &avg
}
