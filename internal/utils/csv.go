package utils

import (
	"encoding/csv"
	"io"
	"os"

	"statementAnalyzer/internal/domain"
)

const csvTimeLayout = "2006-01-02 15:04:05"

// WriteDailyPnLToCSV writes the daily series to filename.
func WriteDailyPnLToCSV(daily []domain.DailyPnL, filename string) error {
	return writeFile(filename, func(w io.Writer) error { return WriteDailyPnL(w, daily) })
}

// WriteTradesToCSV writes normalized trades to filename.
func WriteTradesToCSV(trades []*domain.Trade, filename string) error {
	return writeFile(filename, func(w io.Writer) error { return WriteTrades(w, trades) })
}

// WriteDailyPnL writes date, pnl, rolling_pnl rows.
func WriteDailyPnL(w io.Writer, daily []domain.DailyPnL) error {
	writer := csv.NewWriter(w)

	// Write header
	writer.Write([]string{"date", "pnl", "rolling_pnl"})

	for _, d := range daily {
		writer.Write([]string{
			d.Date.Format("2006-01-02"),
			d.PnL.String(),
			d.RollingPnL.String(),
		})
	}
	writer.Flush()
	return writer.Error()
}

// WriteTrades writes one row per trade in canonical column order.
func WriteTrades(w io.Writer, trades []*domain.Trade) error {
	writer := csv.NewWriter(w)

	writer.Write([]string{"open_time", "type", "size", "asset", "open_price", "stop_loss", "take_profit",
		"close_time", "close_price", "commissions", "swap", "pnl"})

	for _, t := range trades {
		writer.Write([]string{
			t.OpenTime.Format(csvTimeLayout),
			string(t.Type),
			t.Size.String(),
			t.Asset,
			t.OpenPrice.String(),
			t.StopLoss.String(),
			t.TakeProfit.String(),
			t.CloseTime.Format(csvTimeLayout),
			t.ClosePrice.String(),
			t.Commissions.String(),
			t.Swap.String(),
			t.PnL.String(),
		})
	}
	writer.Flush()
	return writer.Error()
}

func writeFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
