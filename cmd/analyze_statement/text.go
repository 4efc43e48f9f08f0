package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/analytics"
)

const absent = "-"

func printText(out io.Writer, s *analytics.Summary, a *analytics.Analysis, dateLayout string) error {
	if s.Trades == 0 {
		fmt.Fprintln(out, "No trades to analyze.")
		return nil
	}

	date := func(t *time.Time) string {
		if t == nil {
			return absent
		}
		return t.Format(dateLayout)
	}
	str := func(v *string) string {
		if v == nil {
			return absent
		}
		return *v
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "## Totals")
	fmt.Fprintf(w, "Total Profit\t%s\n", money(s.TotalProfit))
	fmt.Fprintf(w, "Total Loss\t%s\n", money(s.TotalLoss))
	fmt.Fprintf(w, "Net PnL\t%s\n", money(s.NetPnL))
	fmt.Fprintf(w, "Trades\t%d (%d won, %d lost, win rate %.2f%%)\n", s.Trades, s.WinningTrades, s.LosingTrades, s.WinRate*100)

	fmt.Fprintln(w, "\n## Negative Equity")
	fmt.Fprintf(w, "Lowest PnL\t%s\n", optionalMoney(s.LowestPnL))
	fmt.Fprintf(w, "Lowest PnL date\t%s\n", date(s.LowestPnLDate))
	fmt.Fprintf(w, "Recovery Date\t%s\n", date(s.RecoveryDate))
	if s.RecoveryDays != nil {
		fmt.Fprintf(w, "Recovery Duration from lowest PnL\t%d DAYS\n", *s.RecoveryDays)
	} else {
		fmt.Fprintf(w, "Recovery Duration from lowest PnL\t%s\n", absent)
	}

	fmt.Fprintln(w, "\n## Drawdowns")
	fmt.Fprintf(w, "Completed drawdowns\t%d\n", s.Drawdowns)
	if dd := s.LargestDrawdown; dd != nil {
		fmt.Fprintf(w, "Largest drawdown\t%s (%s to %s, %d DAYS)\n",
			money(dd.Magnitude), dd.StartDate.Format(dateLayout), dd.EndDate.Format(dateLayout), dd.DurationDays)
	} else {
		fmt.Fprintf(w, "Largest drawdown\t%s\n", absent)
	}
	if s.AverageDrawdownDays != nil {
		fmt.Fprintf(w, "Average drawdown duration\t%.1f DAYS\n", *s.AverageDrawdownDays)
	} else {
		fmt.Fprintf(w, "Average drawdown duration\t%s\n", absent)
	}

	fmt.Fprintln(w, "\n## Assets")
	fmt.Fprintf(w, "Top asset\t%s %s\n", str(s.TopAsset), optionalMoney(s.TopAssetPnL))
	fmt.Fprintf(w, "Best day\t%s %s\n", date(s.BestDay), optionalMoney(s.BestDayPnL))
	for _, r := range a.AssetPnL() {
		fmt.Fprintf(w, "  %s\t%s\t%d trades\n", r.Symbol, money(r.PnL), r.Trades)
	}

	fmt.Fprintln(w, "\n## Hold Times")
	fmt.Fprintf(w, "Average winner\t%s\n", str(s.WinnerHoldMean))
	fmt.Fprintf(w, "Longest winner\t%s\n", str(s.WinnerHoldMax))
	fmt.Fprintf(w, "Average loser\t%s\n", str(s.LoserHoldMean))
	fmt.Fprintf(w, "Longest loser\t%s\n", str(s.LoserHoldMax))

	fmt.Fprintln(w, "\n## Trend")
	fmt.Fprintf(w, "Projected PnL on %s\t%s\n", date(s.ForecastDate), optionalMoney(s.ForecastValue))
	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "Warning\t%s\n", warning)
	}
	return w.Flush()
}

// money renders a value as $1234.50 or -$1234.50.
func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) string {
	if d == nil {
		return absent
	}
	return money(*d)
}
