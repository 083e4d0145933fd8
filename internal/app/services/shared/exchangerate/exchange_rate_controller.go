package exchangerate

import (
	"context"
	"net/http"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExchangeRateController struct {
	Log          *zap.Logger
	RateProvider contracts.ExchangeRateProvider
}

func NewExchangeRateController(logger *zap.Logger, rateProvider contracts.ExchangeRateProvider) *ExchangeRateController {
	return &ExchangeRateController{
		Log:          logger,
		RateProvider: rateProvider,
	}
}

func (ctrl *ExchangeRateController) GetExchangeRate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rate, err := ctrl.RateProvider.Current(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.ExchangeRate{
		CurrencyID: rate.CurrencyID,
		Value:      rate.Value.String(),
		AsOf:       rate.AsOf.Format(time.RFC3339),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExchangeRateSuccessMessage, response)
}
