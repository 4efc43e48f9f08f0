package statement

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"statementAnalyzer/internal/domain"
	"statementAnalyzer/internal/ports"
)

const (
	// DefaultHeaderRow is the zero-based index of the row holding column names.
	DefaultHeaderRow = 2
	// DefaultTimeLayout is the broker timestamp format (YYYY.MM.DD HH:MM:SS).
	DefaultTimeLayout = "2006.01.02 15:04:05"

	cancelledToken = "cancelled"
)

// Canonical column order once the ticket and taxes columns are removed.
const (
	colOpenTime = iota
	colType
	colSize
	colAsset
	colOpenPrice
	colStopLoss
	colTakeProfit
	colCloseTime
	colClosePrice
	colCommissions
	colSwap
	colPnL
	columnCount
)

var droppedHeaders = []string{"ticket", "taxes"}

// Config holds configuration for the Normalizer.
type Config struct {
	HeaderRow  int
	TimeLayout string
	Location   *time.Location // Defaults to UTC
	Logger     ports.Logger
}

// Normalizer turns the raw statement grid into a sorted, typed trade sequence.
type Normalizer struct {
	headerRow  int
	timeLayout string
	location   *time.Location
	logger     ports.Logger
}

// NewNormalizer creates a Normalizer, filling defaults for unset fields.
func NewNormalizer(cfg Config) (*Normalizer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for statement normalizer")
	}
	if cfg.HeaderRow < 0 {
		return nil, fmt.Errorf("%w: header row cannot be negative", ports.ErrConfigurationError)
	}
	n := &Normalizer{
		headerRow:  cfg.HeaderRow,
		timeLayout: cfg.TimeLayout,
		location:   cfg.Location,
		logger:     cfg.Logger,
	}
	if n.timeLayout == "" {
		n.timeLayout = DefaultTimeLayout
	}
	if n.location == nil {
		n.location = time.UTC
	}
	return n, nil
}

// Normalize converts rows into trades sorted by close time (stable).
// Structural problems return an error wrapping ports.ErrDataFormat and no trades; rows whose
// fields cannot be parsed are dropped and logged.
func (n *Normalizer) Normalize(ctx context.Context, rows [][]string) ([]*domain.Trade, error) {
	keep, err := n.columnIndexes(rows)
	if err != nil {
		n.logger.Error(ctx, err, "Statement table rejected")
		return nil, err
	}

	trades := make([]*domain.Trade, 0, len(rows)-n.headerRow-1)
	var skipped, dropped int
	for i := n.headerRow + 1; i < len(rows); i++ {
		cells, ok := project(rows[i], keep)
		if !ok {
			skipped++ // short rows are section breaks or summary lines
			continue
		}
		tradeType, ok := domain.ParseTradeType(cells[colType])
		if !ok {
			skipped++
			continue
		}
		if strings.EqualFold(strings.TrimSpace(cells[colPnL]), cancelledToken) {
			skipped++
			continue
		}

		trade, err := n.parseTrade(cells, tradeType)
		if err != nil {
			dropped++
			n.logger.Debug(ctx, "Statement row dropped", map[string]interface{}{
				"row":   i,
				"error": err.Error(),
			})
			continue
		}
		trades = append(trades, trade)
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].CloseTime.Before(trades[j].CloseTime)
	})

	n.logger.Info(ctx, "Statement normalized", map[string]interface{}{
		"trades":  len(trades),
		"skipped": skipped,
		"dropped": dropped,
	})
	return trades, nil
}

// columnIndexes validates the header row and returns the source index of each canonical column.
func (n *Normalizer) columnIndexes(rows [][]string) ([]int, error) {
	if len(rows) <= n.headerRow {
		return nil, fmt.Errorf("%w: expected header at row %d, table has %d rows", ports.ErrDataFormat, n.headerRow, len(rows))
	}
	header := rows[n.headerRow]

	drop := make(map[int]bool, len(droppedHeaders))
	for _, name := range droppedHeaders {
		idx := -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: column %q not found in header %v", ports.ErrDataFormat, name, header)
		}
		drop[idx] = true
	}

	keep := make([]int, 0, columnCount)
	for i := range header {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	if len(keep) != columnCount {
		return nil, fmt.Errorf("%w: expected %d data columns, found %d", ports.ErrDataFormat, columnCount, len(keep))
	}
	return keep, nil
}

func project(row []string, keep []int) ([]string, bool) {
	if len(row) <= keep[len(keep)-1] {
		return nil, false
	}
	cells := make([]string, len(keep))
	for i, idx := range keep {
		cells[i] = row[idx]
	}
	return cells, true
}

func (n *Normalizer) parseTrade(cells []string, tradeType domain.TradeType) (*domain.Trade, error) {
	t := &domain.Trade{
		Type:  tradeType,
		Asset: strings.TrimSpace(cells[colAsset]),
	}

	var err error
	if t.OpenTime, err = n.parseTime(cells[colOpenTime]); err != nil {
		return nil, fmt.Errorf("open time: %w", err)
	}
	if t.CloseTime, err = n.parseTime(cells[colCloseTime]); err != nil {
		return nil, fmt.Errorf("close time: %w", err)
	}
	if t.CloseTime.Before(t.OpenTime) {
		return nil, fmt.Errorf("%w: close time %s before open time %s", ports.ErrCoercion, t.CloseTime, t.OpenTime)
	}

	required := []struct {
		name string
		cell int
		dst  *decimal.Decimal
	}{
		{"size", colSize, &t.Size},
		{"open price", colOpenPrice, &t.OpenPrice},
		{"close price", colClosePrice, &t.ClosePrice},
		{"commissions", colCommissions, &t.Commissions},
		{"swap", colSwap, &t.Swap},
		{"pnl", colPnL, &t.PnL},
	}
	for _, f := range required {
		if *f.dst, err = ParseDecimal(cells[f.cell]); err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if !t.Size.IsPositive() {
		return nil, fmt.Errorf("%w: size must be positive, got %s", ports.ErrCoercion, t.Size)
	}

	// No order placed leaves these cells empty.
	if t.StopLoss, err = parseOptionalDecimal(cells[colStopLoss]); err != nil {
		return nil, fmt.Errorf("stop loss: %w", err)
	}
	if t.TakeProfit, err = parseOptionalDecimal(cells[colTakeProfit]); err != nil {
		return nil, fmt.Errorf("take profit: %w", err)
	}
	return t, nil
}

func (n *Normalizer) parseTime(s string) (time.Time, error) {
	ts, err := time.ParseInLocation(n.timeLayout, strings.TrimSpace(s), n.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ports.ErrCoercion, err)
	}
	return ts, nil
}

// ParseDecimal parses a statement number after removing every whitespace rune, so thousands
// separators such as "1 250.50" or a non-breaking space are accepted.
func ParseDecimal(s string) (decimal.Decimal, error) {
	cleaned := stripSpace(s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ports.ErrCoercion)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ports.ErrCoercion, s)
	}
	return d, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if stripSpace(s) == "" {
		return decimal.Zero, nil
	}
	return ParseDecimal(s)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
