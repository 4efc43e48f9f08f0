package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one dated value of a chartable series.
type SeriesPoint struct {
	Date  time.Time `json:"date" yaml:"date"`
	Value float64   `json:"value" yaml:"value"`
}

// NamedValue is one labelled value of a chartable series.
type NamedValue struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// DrawdownSummary is the presentation form of a drawdown event.
type DrawdownSummary struct {
	Peak         decimal.Decimal `json:"peak" yaml:"peak"`
	Trough       decimal.Decimal `json:"trough" yaml:"trough"`
	Magnitude    decimal.Decimal `json:"magnitude" yaml:"magnitude"`
	StartDate    time.Time       `json:"start_date" yaml:"start_date"`
	TroughDate   time.Time       `json:"trough_date" yaml:"trough_date"`
	EndDate      time.Time       `json:"end_date" yaml:"end_date"`
	DurationDays int             `json:"duration_days" yaml:"duration_days"`
}

// Series carries the named data series a dashboard charts.
type Series struct {
	RollingPnL        []SeriesPoint `json:"rolling_pnl" yaml:"rolling_pnl"`
	DailyRollingPnL   []SeriesPoint `json:"daily_rolling_pnl" yaml:"daily_rolling_pnl"`
	NegativeDays      []SeriesPoint `json:"negative_days" yaml:"negative_days"`
	AssetPnL          []NamedValue  `json:"asset_pnl" yaml:"asset_pnl"`
	WinningAssetShare []NamedValue  `json:"winning_asset_share" yaml:"winning_asset_share"`
	Trend             []SeriesPoint `json:"trend" yaml:"trend"`
}

// Summary flattens an Analysis into scalar metrics plus chart series.
// Pointer fields are nil when the metric is undefined for the statement.
type Summary struct {
	Trades        int             `json:"trades" yaml:"trades"`
	WinningTrades int             `json:"winning_trades" yaml:"winning_trades"`
	LosingTrades  int             `json:"losing_trades" yaml:"losing_trades"`
	WinRate       float64         `json:"win_rate" yaml:"win_rate"`
	TotalProfit   decimal.Decimal `json:"total_profit" yaml:"total_profit"`
	TotalLoss     decimal.Decimal `json:"total_loss" yaml:"total_loss"`
	NetPnL        decimal.Decimal `json:"net_pnl" yaml:"net_pnl"`

	LowestPnL     *decimal.Decimal `json:"lowest_pnl,omitempty" yaml:"lowest_pnl,omitempty"`
	LowestPnLDate *time.Time       `json:"lowest_pnl_date,omitempty" yaml:"lowest_pnl_date,omitempty"`
	RecoveryDate  *time.Time       `json:"recovery_date,omitempty" yaml:"recovery_date,omitempty"`
	RecoveryDays  *int             `json:"recovery_days,omitempty" yaml:"recovery_days,omitempty"`

	Drawdowns           int              `json:"drawdowns" yaml:"drawdowns"`
	LargestDrawdown     *DrawdownSummary `json:"largest_drawdown,omitempty" yaml:"largest_drawdown,omitempty"`
	AverageDrawdownDays *float64         `json:"average_drawdown_days,omitempty" yaml:"average_drawdown_days,omitempty"`

	TopAsset    *string          `json:"top_asset,omitempty" yaml:"top_asset,omitempty"`
	TopAssetPnL *decimal.Decimal `json:"top_asset_pnl,omitempty" yaml:"top_asset_pnl,omitempty"`
	BestDay     *time.Time       `json:"best_day,omitempty" yaml:"best_day,omitempty"`
	BestDayPnL  *decimal.Decimal `json:"best_day_pnl,omitempty" yaml:"best_day_pnl,omitempty"`

	WinnerHoldMean *string `json:"winner_hold_mean,omitempty" yaml:"winner_hold_mean,omitempty"`
	WinnerHoldMax  *string `json:"winner_hold_max,omitempty" yaml:"winner_hold_max,omitempty"`
	LoserHoldMean  *string `json:"loser_hold_mean,omitempty" yaml:"loser_hold_mean,omitempty"`
	LoserHoldMax   *string `json:"loser_hold_max,omitempty" yaml:"loser_hold_max,omitempty"`

	ForecastDate  *time.Time       `json:"forecast_date,omitempty" yaml:"forecast_date,omitempty"`
	ForecastValue *decimal.Decimal `json:"forecast_value,omitempty" yaml:"forecast_value,omitempty"`

	Series   Series   `json:"series" yaml:"series"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Summary computes every metric. A trend fit failure is reported in Warnings rather than
// failing the whole summary.
func (a *Analysis) Summary() *Summary {
	totals := a.Totals()
	s := &Summary{
		Trades:        totals.TotalTrades,
		WinningTrades: totals.WinningTrades,
		LosingTrades:  totals.LosingTrades,
		WinRate:       totals.WinRate,
		TotalProfit:   totals.TotalProfit,
		TotalLoss:     totals.TotalLoss,
		NetPnL:        totals.NetPnL,
	}

	neg := a.NegativeEquity()
	if neg.Lowest != nil {
		s.LowestPnL = &neg.Lowest.Value
		s.LowestPnLDate = &neg.Lowest.Date
	}
	if neg.Recovery != nil {
		s.RecoveryDate = &neg.Recovery.Date
		s.RecoveryDays = neg.RecoveryDays
	}

	s.Drawdowns = len(a.Drawdowns())
	if dd := a.LargestDrawdown(); dd != nil {
		s.LargestDrawdown = &DrawdownSummary{
			Peak:         dd.PeakValue,
			Trough:       dd.TroughValue,
			Magnitude:    dd.Magnitude,
			StartDate:    dd.StartDate,
			TroughDate:   dd.TroughDate,
			EndDate:      dd.EndDate,
			DurationDays: dd.DurationDays,
		}
	}
	s.AverageDrawdownDays = a.AverageDrawdownDays()

	assets := a.AssetPnL()
	if top := TopAsset(a.trades); top != nil {
		s.TopAsset = &top.Symbol
		s.TopAssetPnL = &top.PnL
	}
	if best := a.BestDay(); best != nil {
		s.BestDay = &best.Date
		s.BestDayPnL = &best.PnL
	}

	holds := a.HoldTimes()
	s.WinnerHoldMean = formatOptional(holds.Winners.Mean)
	s.WinnerHoldMax = formatOptional(holds.Winners.Max)
	s.LoserHoldMean = formatOptional(holds.Losers.Mean)
	s.LoserHoldMax = formatOptional(holds.Losers.Max)

	trend, err := a.Trend()
	if err != nil {
		s.Warnings = append(s.Warnings, err.Error())
	} else if trend != nil {
		s.ForecastDate = &trend.ForecastDate
		s.ForecastValue = &trend.ForecastValue
	}

	s.Series = a.series(assets, trend, neg)
	return s
}

func (a *Analysis) series(assets []AssetTotal, trend *Projection, neg NegativeEquityReport) Series {
	var out Series
	rolling := a.RollingPnL()
	for i, t := range a.trades {
		out.RollingPnL = append(out.RollingPnL, SeriesPoint{Date: t.CloseTime, Value: rolling[i].InexactFloat64()})
	}
	for _, d := range a.Daily() {
		out.DailyRollingPnL = append(out.DailyRollingPnL, SeriesPoint{Date: d.Date, Value: d.RollingPnL.InexactFloat64()})
	}
	for _, d := range neg.NegativeDays {
		out.NegativeDays = append(out.NegativeDays, SeriesPoint{Date: d.Date, Value: d.RollingPnL.InexactFloat64()})
	}
	for _, r := range assets {
		out.AssetPnL = append(out.AssetPnL, NamedValue{Name: r.Symbol, Value: r.PnL.InexactFloat64()})
	}
	for _, r := range a.WinningAssetPnL() {
		out.WinningAssetShare = append(out.WinningAssetShare, NamedValue{Name: r.Symbol, Value: r.Share})
	}
	if trend != nil {
		for _, p := range trend.Points {
			out.Trend = append(out.Trend, SeriesPoint{Date: p.Date, Value: p.Value})
		}
	}
	return out
}

func formatOptional(d *time.Duration) *string {
	if d == nil {
		return nil
	}
	s := FormatHoldTime(*d)
	return &s
}
