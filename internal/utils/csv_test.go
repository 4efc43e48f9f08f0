package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statementAnalyzer/internal/domain"
)

func TestWriteDailyPnL(t *testing.T) {
	daily := []domain.DailyPnL{
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), PnL: decimal.RequireFromString("10.5"), RollingPnL: decimal.RequireFromString("10.5")},
		{Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), PnL: decimal.RequireFromString("-20"), RollingPnL: decimal.RequireFromString("-9.5")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDailyPnL(&buf, daily))
	assert.Equal(t, "date,pnl,rolling_pnl\n2024-01-02,10.5,10.5\n2024-01-04,-20,-9.5\n", buf.String())
}

func TestWriteTradesToCSV(t *testing.T) {
	trades := []*domain.Trade{{
		OpenTime:  time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		CloseTime: time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		Type:      domain.TypeSellLimit,
		Size:      decimal.RequireFromString("0.5"),
		Asset:     "XAUUSD",
		OpenPrice: decimal.RequireFromString("2050"),
		PnL:       decimal.RequireFromString("-12.25"),
	}}

	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, WriteTradesToCSV(trades, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-01-02 09:00:00,sell-limit,0.5,XAUUSD,2050,0,0,2024-01-02 10:30:00,0,0,0,-12.25", string(lines[1]))
}

func TestWriteDailyPnLToCSV_BadPath(t *testing.T) {
	err := WriteDailyPnLToCSV(nil, filepath.Join(t.TempDir(), "missing", "daily.csv"))
	assert.Error(t, err)
}
