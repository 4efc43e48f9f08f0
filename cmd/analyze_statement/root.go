package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"statementAnalyzer/config"
	"statementAnalyzer/internal/adapters/htmltable"
	"statementAnalyzer/internal/adapters/logger"
	"statementAnalyzer/internal/app"
	"statementAnalyzer/internal/ports"
	"statementAnalyzer/internal/utils"
)

type options struct {
	format    string
	dailyCSV  string
	tradesCSV string
	horizon   int

	horizonSet bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "analyze-statement <statement.html>",
		Short:         "Derive PnL, drawdown and trend metrics from a broker trade history export",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().StringVar(&opts.dailyCSV, "daily-csv", "", "write the daily PnL series to this CSV file")
	cmd.Flags().StringVar(&opts.tradesCSV, "trades-csv", "", "write the normalized trades to this CSV file")
	cmd.Flags().IntVar(&opts.horizon, "horizon", 0, "trend projection horizon in days (overrides TREND_HORIZON_DAYS)")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		opts.horizonSet = cmd.Flags().Changed("horizon")
		if opts.horizonSet && opts.horizon < 0 {
			return fmt.Errorf("--horizon must not be negative, got %d", opts.horizon)
		}
		return nil
	}
	return cmd
}

func run(ctx context.Context, out io.Writer, path string, opts *options) error {
	switch opts.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.horizonSet {
		cfg.HorizonDays = opts.horizon
	}

	appLogger, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	reader, err := htmltable.NewReader(appLogger)
	if err != nil {
		return err
	}
	svc, err := app.NewAnalysisService(cfg, appLogger, reader)
	if err != nil {
		return err
	}

	analysis, err := svc.AnalyzeFile(ctx, path)
	if err != nil {
		if errors.Is(err, ports.ErrDataFormat) {
			return fmt.Errorf("the file does not look like a broker trade history export: %w", err)
		}
		return err
	}

	if opts.dailyCSV != "" {
		if err := utils.WriteDailyPnLToCSV(analysis.Daily(), opts.dailyCSV); err != nil {
			return fmt.Errorf("failed to write daily CSV: %w", err)
		}
		appLogger.Info(ctx, "Daily series written", map[string]interface{}{"path": opts.dailyCSV})
	}
	if opts.tradesCSV != "" {
		if err := utils.WriteTradesToCSV(analysis.Trades(), opts.tradesCSV); err != nil {
			return fmt.Errorf("failed to write trades CSV: %w", err)
		}
		appLogger.Info(ctx, "Trades written", map[string]interface{}{"path": opts.tradesCSV})
	}

	summary := analysis.Summary()
	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	default:
		return printText(out, summary, analysis, cfg.DisplayDateLayout)
	}
}
