package routers

import (
	"casepay-service/internal/app/services/shared/exchangerate"

	"github.com/go-chi/chi/v5"
)

func attachExchangeRateRoutes(router chi.Router, exchangeRateController *exchangerate.ExchangeRateController) {
	router.Get("/", exchangeRateController.GetExchangeRate)
}
