package domain

import (
	"strings"
	"unicode"
)

// TradeType is the order type of a closed position as printed in the broker statement.
type TradeType string

const (
	TypeBuy       TradeType = "buy"
	TypeSell      TradeType = "sell"
	TypeBuyLimit  TradeType = "buy-limit"
	TypeSellLimit TradeType = "sell-limit"
	TypeBuyStop   TradeType = "buy-stop"
	TypeSellStop  TradeType = "sell-stop"
)

var tradeTypes = map[string]TradeType{
	"buy":        TypeBuy,
	"sell":       TypeSell,
	"buy-limit":  TypeBuyLimit,
	"sell-limit": TypeSellLimit,
	"buy-stop":   TypeBuyStop,
	"sell-stop":  TypeSellStop,
}

// ParseTradeType normalizes a statement cell ("Buy Limit", "sell_stop", "SELL") into a TradeType.
// The second return value is false when the cell is not a trade type (balance rows, deposits, etc).
func ParseTradeType(s string) (TradeType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.Join(strings.FieldsFunc(key, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	}), "-")
	t, ok := tradeTypes[key]
	return t, ok
}
