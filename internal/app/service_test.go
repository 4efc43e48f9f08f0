package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statementAnalyzer/config"
	"statementAnalyzer/internal/adapters/htmltable"
	"statementAnalyzer/internal/ports"
)

// Mock implementations
type mockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.debugMsgs = append(m.debugMsgs, msg)
}

func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
}

type mockSource struct {
	rows [][]string
	err  error
}

func (m *mockSource) ReadTable(ctx context.Context, r io.Reader) ([][]string, error) {
	return m.rows, m.err
}

func testConfig() *config.Config {
	return &config.Config{
		HeaderRow:         2,
		TimeLayout:        "2006.01.02 15:04:05",
		Location:          time.UTC,
		TrendDegree:       3,
		HorizonDays:       30,
		DisplayDateLayout: "02 January 2006",
	}
}

const statementHTML = `<html><body><table>
<tr><td colspan="14">Trade History Report</td></tr>
<tr><td colspan="14">Positions</td></tr>
<tr><th>Ticket</th><th>Open Time</th><th>Type</th><th>Volume</th><th>Symbol</th><th>Price</th><th>S / L</th><th>T / P</th><th>Close Time</th><th>Price</th><th>Commission</th><th>Taxes</th><th>Swap</th><th>Profit</th></tr>
<tr><td>1</td><td>2024.02.01 09:00:00</td><td>buy</td><td>1.00</td><td>xauusd</td><td>2 030.00</td><td></td><td></td><td>2024.02.01 11:10:00</td><td>2 031.00</td><td>-7.00</td><td>0.00</td><td>0.00</td><td>93.00</td></tr>
<tr><td>2</td><td>2024.02.02 09:00:00</td><td>sell</td><td>0.50</td><td>eurusd</td><td>1.0800</td><td></td><td></td><td>2024.02.02 09:50:00</td><td>1.0850</td><td>-3.50</td><td>0.00</td><td>0.00</td><td>-253.50</td></tr>
<tr><td>3</td><td>2024.02.05 09:00:00</td><td>buy limit</td><td>0.50</td><td>eurusd</td><td>1.0700</td><td></td><td></td><td></td><td></td><td></td><td>0.00</td><td></td><td>cancelled</td></tr>
<tr><td>4</td><td>2024.02.06 09:00:00</td><td>buy</td><td>1.00</td><td>xauusd</td><td>2 010.00</td><td></td><td></td><td>2024.02.06 10:00:00</td><td>2 040.00</td><td>-7.00</td><td>0.00</td><td>-1.00</td><td>3 000.00</td></tr>
</table></body></html>`

func TestNewAnalysisService_MissingDependencies(t *testing.T) {
	_, err := NewAnalysisService(nil, &mockLogger{}, &mockSource{})
	assert.Error(t, err)
	_, err = NewAnalysisService(testConfig(), nil, &mockSource{})
	assert.Error(t, err)
	_, err = NewAnalysisService(testConfig(), &mockLogger{}, nil)
	assert.Error(t, err)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	logger := &mockLogger{}
	reader, err := htmltable.NewReader(logger)
	require.NoError(t, err)
	svc, err := NewAnalysisService(testConfig(), logger, reader)
	require.NoError(t, err)

	a, err := svc.Analyze(context.Background(), strings.NewReader(statementHTML))
	require.NoError(t, err)
	require.Len(t, a.Trades(), 3)

	s := a.Summary()
	assert.Equal(t, "2839.5", s.NetPnL.String())
	require.NotNil(t, s.LowestPnL)
	assert.Equal(t, "-160.5", s.LowestPnL.String())
	require.NotNil(t, s.RecoveryDays)
	assert.Equal(t, 4, *s.RecoveryDays)
	require.NotNil(t, s.LargestDrawdown)
	assert.Equal(t, "253.5", s.LargestDrawdown.Magnitude.String())
	require.NotNil(t, s.TopAsset)
	assert.Equal(t, "XAUUSD", *s.TopAsset)
	require.NotNil(t, s.WinnerHoldMean)
	assert.Equal(t, "1 hours and 35 minutes", *s.WinnerHoldMean)
	require.NotNil(t, s.ForecastDate)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), *s.ForecastDate)
	assert.Empty(t, logger.errorMsgs)
}

func TestAnalyze_DataFormatError(t *testing.T) {
	tests := []struct {
		name   string
		source *mockSource
	}{
		{name: "source failure", source: &mockSource{err: errors.New("read failed")}},
		{name: "missing header", source: &mockSource{rows: [][]string{{"only one row"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			svc, err := NewAnalysisService(testConfig(), logger, tt.source)
			require.NoError(t, err)

			a, err := svc.Analyze(context.Background(), strings.NewReader(""))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ports.ErrDataFormat))
			require.NotNil(t, a, "callers still get an empty analysis")
			assert.True(t, a.IsEmpty())
			assert.Nil(t, a.Summary().TopAsset)
			assert.Len(t, logger.errorMsgs, 1)
		})
	}
}

func TestAnalyze_NoTrades(t *testing.T) {
	logger := &mockLogger{}
	header := []string{"Ticket", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "Taxes", "k", "l"}
	svc, err := NewAnalysisService(testConfig(), logger, &mockSource{rows: [][]string{{"x"}, {"y"}, header}})
	require.NoError(t, err)

	a, err := svc.Analyze(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, a.IsEmpty())
	assert.Len(t, logger.warnMsgs, 1)
}

func TestAnalyzeFile(t *testing.T) {
	logger := &mockLogger{}
	reader, err := htmltable.NewReader(logger)
	require.NoError(t, err)
	svc, err := NewAnalysisService(testConfig(), logger, reader)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "statement.html")
	require.NoError(t, os.WriteFile(path, []byte(statementHTML), 0o644))

	a, err := svc.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, a.Trades(), 3)

	_, err = svc.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}
