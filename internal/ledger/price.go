package ledger

import "github.com/shopspring/decimal"

// Currency is appended to formatted prices
const Currency = "грн"

// FormatPrice renders minor units as major units with two decimals
func FormatPrice(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2) + Currency
}
