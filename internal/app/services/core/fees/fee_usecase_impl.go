package fees

import (
	"context"
	"sync"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type feeUsecase struct {
	FeeRuleRepository contracts.FeeRuleRepository
	Logger            *zap.Logger
}

var (
	feeUsecaseInstance contracts.FeeUsecase
	onceFeeUsecase     sync.Once
)

func NewFeeUsecase(feeRuleRepository contracts.FeeRuleRepository, logger *zap.Logger) contracts.FeeUsecase {
	onceFeeUsecase.Do(func() {
		feeUsecaseInstance = &feeUsecase{
			FeeRuleRepository: feeRuleRepository,
			Logger:            logger,
		}
	})
	return feeUsecaseInstance
}

func (u *feeUsecase) ResolveFee(ctx context.Context, request *requests.ResolveFee) (*responses.ResolveFee, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("feeUsecase.ResolveFee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCountryKey, request.CountryID),
		zap.String(constvars.LoggingServiceCategoryKey, request.ServiceCategory),
	)

	rules, err := u.FeeRuleRepository.FindActive(ctx, request.CountryID, request.ServiceCategory)
	if err != nil {
		return nil, err
	}

	ageMonths := request.AgeYears * monthsPerYear
	rule, found := ResolveRuleFee(rules, request.CountryID, request.AgeYears, request.ServiceCode, request.SpecialCase)
	if !found {
		u.Logger.Warn("feeUsecase.ResolveFee no matching rule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCountryKey, request.CountryID),
			zap.Int("age_months", ageMonths),
		)
		return nil, exceptions.ErrFeeNotFound(request.CountryID, request.ServiceCategory, ageMonths)
	}

	return &responses.ResolveFee{
		CountryID:       request.CountryID,
		ServiceCategory: request.ServiceCategory,
		AgeMonths:       ageMonths,
		FeeAmountUSD:    rule.FeeAmountUSD,
		RuleID:          rule.ID,
	}, nil
}

func (u *feeUsecase) ResolveCashFee(ctx context.Context, request *requests.CashFee) (*responses.CashFee, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("feeUsecase.ResolveCashFee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCountryKey, request.CountryCode),
	)

	fee, found := LookupCashFee(request.CountryCode, request.AgeYears, request.VisaSubclass)
	if !found {
		return nil, exceptions.ErrCashFeeTableMissing(request.CountryCode)
	}

	return &responses.CashFee{
		CountryCode:  request.CountryCode,
		AgeYears:     request.AgeYears,
		FeeAmountUSD: fee,
	}, nil
}
