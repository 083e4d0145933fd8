package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is fetched from the external pricing service and cached
// per session; it is never persisted alongside payments. The locked-in
// rate a payment was built with lives on the Payment record itself.
type ExchangeRate struct {
	CurrencyID string          `json:"currency_id"`
	Value      decimal.Decimal `json:"value"`
	AsOf       time.Time       `json:"as_of"`
}
