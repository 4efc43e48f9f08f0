package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTradeType(t *testing.T) {
	tests := []struct {
		in     string
		want   TradeType
		wantOK bool
	}{
		{"Buy", TypeBuy, true},
		{" SELL ", TypeSell, true},
		{"buy limit", TypeBuyLimit, true},
		{"Sell_Limit", TypeSellLimit, true},
		{"buy-stop", TypeBuyStop, true},
		{"sell  stop", TypeSellStop, true},
		{"Buy\u00a0Limit", TypeBuyLimit, true},
		{"sell\tstop", TypeSellStop, true},
		{"balance", "", false},
		{"buy market", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTradeType(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, 1, Ordinal(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 719163, Ordinal(time.Date(1970, 1, 1, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 738886, Ordinal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))

	loc := time.FixedZone("UTC+3", 3*3600)
	assert.Equal(t, 738886, Ordinal(time.Date(2024, 1, 1, 1, 0, 0, 0, loc)), "uses the local calendar date")
}

func TestTradeHelpers(t *testing.T) {
	tr := &Trade{
		Asset:     "eurusd",
		OpenTime:  time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC),
		CloseTime: time.Date(2024, 1, 2, 1, 15, 45, 0, time.UTC),
	}
	assert.Equal(t, "EURUSD", tr.DisplayAsset())
	assert.Equal(t, 2*time.Hour+45*time.Minute+45*time.Second, tr.HoldTime())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), tr.CloseDate())
	assert.Equal(t, 1, DaysBetween(tr.OpenTime, tr.CloseTime))
}
