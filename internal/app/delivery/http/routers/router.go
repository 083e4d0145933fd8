package routers

import (
	"fmt"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/delivery/http/middlewares"
	"casepay-service/internal/app/services/core/cases"
	"casepay-service/internal/app/services/core/fees"
	"casepay-service/internal/app/services/core/payments"
	"casepay-service/internal/app/services/core/reports"
	"casepay-service/internal/app/services/shared/exchangerate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	feeController *fees.FeeController,
	paymentController *payments.PaymentController,
	caseController *cases.CaseController,
	reportController *reports.ReportController,
	exchangeRateController *exchangerate.ExchangeRateController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.APIKeyAuth)
			r.Use(middlewares.BearerAuth)

			r.Route("/fees", func(r chi.Router) {
				attachFeeRoutes(r, feeController)
			})

			r.Route("/exchange-rate", func(r chi.Router) {
				attachExchangeRateRoutes(r, exchangeRateController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, paymentController)
			})

			r.Route("/cases", func(r chi.Router) {
				attachCaseRoutes(r, caseController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, reportController)
			})
		})
	})
}
