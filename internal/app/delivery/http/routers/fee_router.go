package routers

import (
	"casepay-service/internal/app/services/core/fees"

	"github.com/go-chi/chi/v5"
)

func attachFeeRoutes(router chi.Router, feeController *fees.FeeController) {
	router.Post("/resolve", feeController.ResolveFee)
	router.Get("/cash", feeController.GetCashFee)
}
