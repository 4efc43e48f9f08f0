package htmltable

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statementAnalyzer/internal/ports"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

func TestNewReader_RequiresLogger(t *testing.T) {
	_, err := NewReader(nil)
	assert.Error(t, err)
}

func TestReadTable(t *testing.T) {
	const doc = `<html><body>
<table>
  <tr><td colspan="3">Account: 12345</td></tr>
  <tr><th>Positions</th></tr>
  <tr><th>Ticket</th><th>Open Time</th><th>PnL</th></tr>
  <tr><td> 1 </td><td>2024.01.02 10:00:00</td><td>1 250.50</td></tr>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`

	rd, err := NewReader(&mockLogger{})
	require.NoError(t, err)

	rows, err := rd.ReadTable(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Account: 12345", "Account: 12345", "Account: 12345"}, rows[0])
	assert.Equal(t, []string{"Positions"}, rows[1])
	assert.Equal(t, []string{"Ticket", "Open Time", "PnL"}, rows[2])
	assert.Equal(t, []string{"1", "2024.01.02 10:00:00", "1 250.50"}, rows[3])
}

func TestReadTable_NoTable(t *testing.T) {
	rd, err := NewReader(&mockLogger{})
	require.NoError(t, err)

	_, err = rd.ReadTable(context.Background(), strings.NewReader("<html><body><p>empty</p></body></html>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrDataFormat))
	assert.True(t, errors.Is(err, ports.ErrTableMissing))
}
