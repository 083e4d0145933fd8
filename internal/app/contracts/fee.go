package contracts

import (
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"
	"context"
)

type FeeRuleRepository interface {
	FindActive(ctx context.Context, countryID, category string) ([]models.FeeRule, error)
	InsertMany(ctx context.Context, rules []models.FeeRule) error
}

type FeeUsecase interface {
	ResolveFee(ctx context.Context, request *requests.ResolveFee) (*responses.ResolveFee, error)
	ResolveCashFee(ctx context.Context, request *requests.CashFee) (*responses.CashFee, error)
}
