package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
)

// AssetTotal is the summed PnL of one asset.
type AssetTotal struct {
	Asset  string          // Grouping key, verbatim from the statement
	Symbol string          // Upper-cased for display
	PnL    decimal.Decimal // Summed PnL
	Trades int             // Number of trades included
	Share  float64         // Fraction of the sum over all rows; only set for winners-only breakdowns
}

// Totals holds the headline profit and loss figures.
type Totals struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	TotalProfit   decimal.Decimal // Sum of positive PnL
	TotalLoss     decimal.Decimal // Sum of negative PnL, <= 0
	NetPnL        decimal.Decimal
	WinRate       float64
}

// AssetPnL sums PnL per asset, sorted by PnL descending and then by asset key.
func AssetPnL(trades []*domain.Trade) []AssetTotal {
	return groupByAsset(trades, func(*domain.Trade) bool { return true })
}

// WinningAssetPnL is AssetPnL restricted to profitable trades, with each asset's share of the total.
func WinningAssetPnL(trades []*domain.Trade) []AssetTotal {
	rows := groupByAsset(trades, func(t *domain.Trade) bool { return t.PnL.IsPositive() })
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.PnL)
	}
	if total.IsZero() {
		return rows
	}
	for i := range rows {
		rows[i].Share = rows[i].PnL.Div(total).InexactFloat64()
	}
	return rows
}

// TopAsset returns the most profitable asset, or nil when there are no trades.
func TopAsset(trades []*domain.Trade) *AssetTotal {
	rows := AssetPnL(trades)
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

func groupByAsset(trades []*domain.Trade, include func(*domain.Trade) bool) []AssetTotal {
	index := make(map[string]int)
	var rows []AssetTotal
	for _, t := range trades {
		if !include(t) {
			continue
		}
		i, ok := index[t.Asset]
		if !ok {
			i = len(rows)
			index[t.Asset] = i
			rows = append(rows, AssetTotal{Asset: t.Asset, Symbol: strings.ToUpper(t.Asset), PnL: decimal.Zero})
		}
		rows[i].PnL = rows[i].PnL.Add(t.PnL)
		rows[i].Trades++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].PnL.Cmp(rows[j].PnL); c != 0 {
			return c > 0
		}
		return rows[i].Asset < rows[j].Asset
	})
	return rows
}

// BestDay returns the day with the highest PnL, the earliest on ties, or nil for an empty series.
func BestDay(daily []domain.DailyPnL) *domain.DailyPnL {
	var best *domain.DailyPnL
	for i := range daily {
		if best == nil || daily[i].PnL.GreaterThan(best.PnL) {
			best = &daily[i]
		}
	}
	return best
}

// ComputeTotals sums profits and losses. Zero-PnL trades count toward neither side.
func ComputeTotals(trades []*domain.Trade) Totals {
	totals := Totals{
		TotalTrades: len(trades),
		TotalProfit: decimal.Zero,
		TotalLoss:   decimal.Zero,
		NetPnL:      decimal.Zero,
	}
	for _, t := range trades {
		switch {
		case t.PnL.IsPositive():
			totals.WinningTrades++
			totals.TotalProfit = totals.TotalProfit.Add(t.PnL)
		case t.PnL.IsNegative():
			totals.LosingTrades++
			totals.TotalLoss = totals.TotalLoss.Add(t.PnL)
		}
		totals.NetPnL = totals.NetPnL.Add(t.PnL)
	}
	if totals.TotalTrades > 0 {
		totals.WinRate = float64(totals.WinningTrades) / float64(totals.TotalTrades)
	}
	return totals
}
