package routers

import (
	"casepay-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, paymentController *payments.PaymentController) {
	router.Post("/", paymentController.CreatePayment)
	router.Get("/", paymentController.FindPayments)
	router.Get("/{paymentID}", paymentController.GetPayment)
	router.Post("/{paymentID}/verify", paymentController.VerifyPayment)
}
