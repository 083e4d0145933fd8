package contracts

import (
	"casepay-service/internal/app/models"
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateProvider is injected wherever a USD→local conversion
// happens, so no component reads rate state ambiently. GetRate returns
// the cached session rate, refreshing from the pricing service when the
// cache is cold.
type ExchangeRateProvider interface {
	GetRate(ctx context.Context) (decimal.Decimal, error)
	Current(ctx context.Context) (*models.ExchangeRate, error)
}
