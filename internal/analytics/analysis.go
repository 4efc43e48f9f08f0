package analytics

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
	"statementAnalyzer/internal/ports"
)

// Options tunes the trend projection of an Analysis. Zero values are taken literally: a zero
// horizon ends the projection on the last close date.
type Options struct {
	TrendDegree int                     // Polynomial degree
	HorizonDays int                     // Days projected past the last close date
	TrendModel  func() ports.TrendModel // Overrides the polynomial model when set
}

// DefaultOptions returns the cubic trend projected DefaultHorizonDays ahead.
func DefaultOptions() Options {
	return Options{
		TrendDegree: DefaultTrendDegree,
		HorizonDays: DefaultHorizonDays,
	}
}

// Analysis holds one statement's trades and lazily computes each derived series once.
// An empty trade list is valid: every metric reports absent.
type Analysis struct {
	trades []*domain.Trade
	opts   Options

	dailyOnce sync.Once
	daily     []domain.DailyPnL

	rollingOnce sync.Once
	rolling     []decimal.Decimal

	drawdownOnce sync.Once
	drawdowns    []domain.DrawdownEvent

	negativeOnce sync.Once
	negative     NegativeEquityReport

	trendOnce sync.Once
	trend     *Projection
	trendErr  error
}

// NewAnalysis copies trades, sorting the copy by close time (stable) so callers that bypass the
// normalizer still get ordered series.
func NewAnalysis(trades []*domain.Trade, opts Options) *Analysis {
	sorted := make([]*domain.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CloseTime.Before(sorted[j].CloseTime)
	})

	return &Analysis{trades: sorted, opts: opts}
}

// Trades returns the ordered trade sequence.
func (a *Analysis) Trades() []*domain.Trade { return a.trades }

// IsEmpty reports whether there is nothing to analyze.
func (a *Analysis) IsEmpty() bool { return len(a.trades) == 0 }

// Daily returns the daily PnL series.
func (a *Analysis) Daily() []domain.DailyPnL {
	a.dailyOnce.Do(func() { a.daily = DailySeries(a.trades) })
	return a.daily
}

// RollingPnL returns the per-trade cumulative PnL.
func (a *Analysis) RollingPnL() []decimal.Decimal {
	a.rollingOnce.Do(func() { a.rolling = RollingPnL(a.trades) })
	return a.rolling
}

// NegativeEquity returns the below-starting-balance analysis.
func (a *Analysis) NegativeEquity() NegativeEquityReport {
	a.negativeOnce.Do(func() { a.negative = NegativeEquity(a.Daily()) })
	return a.negative
}

// Drawdowns returns the completed peak to new-high cycles.
func (a *Analysis) Drawdowns() []domain.DrawdownEvent {
	a.drawdownOnce.Do(func() { a.drawdowns = RealDrawdowns(a.Daily()) })
	return a.drawdowns
}

// LargestDrawdown returns the deepest drawdown, or nil.
func (a *Analysis) LargestDrawdown() *domain.DrawdownEvent {
	return LargestDrawdown(a.Drawdowns())
}

// AverageDrawdownDays returns the mean drawdown duration, or nil.
func (a *Analysis) AverageDrawdownDays() *float64 {
	return AverageDrawdownDays(a.Drawdowns())
}

// Totals returns profit, loss and net PnL.
func (a *Analysis) Totals() Totals { return ComputeTotals(a.trades) }

// AssetPnL returns PnL per asset, best first.
func (a *Analysis) AssetPnL() []AssetTotal { return AssetPnL(a.trades) }

// WinningAssetPnL returns winners-only PnL per asset with shares.
func (a *Analysis) WinningAssetPnL() []AssetTotal { return WinningAssetPnL(a.trades) }

// BestDay returns the most profitable day, or nil.
func (a *Analysis) BestDay() *domain.DailyPnL { return BestDay(a.Daily()) }

// HoldTimes returns hold-time statistics for winners and losers.
func (a *Analysis) HoldTimes() HoldTimeReport { return HoldTimes(a.trades) }

// Trend fits the trend model once and returns the projection (nil for an empty statement).
func (a *Analysis) Trend() (*Projection, error) {
	a.trendOnce.Do(func() {
		var model ports.TrendModel
		if a.opts.TrendModel != nil {
			model = a.opts.TrendModel()
		} else {
			model = NewPolynomialModel(a.opts.TrendDegree)
		}
		a.trend, a.trendErr = ProjectTrend(a.Daily(), model, a.opts.HorizonDays)
	})
	return a.trend, a.trendErr
}
