package exchangerate

import "github.com/shopspring/decimal"

// Convert turns a USD amount into local currency at the given rate.
// A nil rate means the rate is unavailable: the result is nil and the
// caller must block whatever depends on the converted amount instead of
// assuming zero or 1:1.
func Convert(amountUSD decimal.Decimal, rate *decimal.Decimal) *decimal.Decimal {
	if rate == nil {
		return nil
	}
	local := amountUSD.Mul(*rate)
	return &local
}
