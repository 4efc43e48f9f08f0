package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"statementAnalyzer/config"
	"statementAnalyzer/internal/analytics"
	"statementAnalyzer/internal/ports"
	"statementAnalyzer/internal/statement"
)

// AnalysisService runs the statement pipeline: read table, normalize, analyze.
type AnalysisService struct {
	cfg        *config.Config
	logger     ports.Logger
	source     ports.TableSource
	normalizer *statement.Normalizer
}

// NewAnalysisService creates a new application service instance.
func NewAnalysisService(cfg *config.Config, logger ports.Logger, source ports.TableSource) (*AnalysisService, error) {
	// Validate dependencies
	if cfg == nil || logger == nil || source == nil {
		return nil, fmt.Errorf("missing required dependencies for AnalysisService")
	}

	normalizer, err := statement.NewNormalizer(statement.Config{
		HeaderRow:  cfg.HeaderRow,
		TimeLayout: cfg.TimeLayout,
		Location:   cfg.Location,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create statement normalizer: %w", err)
	}

	return &AnalysisService{
		cfg:        cfg,
		logger:     logger,
		source:     source,
		normalizer: normalizer,
	}, nil
}

// Analyze runs the pipeline over one statement document.
//
// A statement with the wrong structure yields an empty Analysis together with an error wrapping
// ports.ErrDataFormat, so a front end can show one message and still render empty metrics.
func (s *AnalysisService) Analyze(ctx context.Context, r io.Reader) (*analytics.Analysis, error) {
	rows, err := s.source.ReadTable(ctx, r)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to read statement table")
		return s.empty(), s.wrapFormatError(err)
	}

	trades, err := s.normalizer.Normalize(ctx, rows)
	if err != nil {
		return s.empty(), s.wrapFormatError(err)
	}
	if len(trades) == 0 {
		s.logger.Warn(ctx, "Statement contains no trades to analyze")
	}

	return analytics.NewAnalysis(trades, s.options()), nil
}

// AnalyzeFile opens path and runs Analyze on it.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*analytics.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement '%s': %w", path, err)
	}
	defer f.Close()

	s.logger.Info(ctx, "Analyzing statement", map[string]interface{}{"path": path})
	return s.Analyze(ctx, f)
}

func (s *AnalysisService) options() analytics.Options {
	return analytics.Options{
		TrendDegree: s.cfg.TrendDegree,
		HorizonDays: s.cfg.HorizonDays,
	}
}

func (s *AnalysisService) empty() *analytics.Analysis {
	return analytics.NewAnalysis(nil, s.options())
}

func (s *AnalysisService) wrapFormatError(err error) error {
	if errors.Is(err, ports.ErrDataFormat) {
		return err
	}
	return fmt.Errorf("%w: %w", ports.ErrDataFormat, err)
}
