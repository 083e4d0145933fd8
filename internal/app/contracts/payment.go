package contracts

import (
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"
	"context"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByCaseNumber(ctx context.Context, caseNumber string) ([]models.Payment, error)
	// MarkPaid writes the terminal state. The filter matches only
	// records still at StatusInitiated, so a concurrent second write
	// finds nothing to update and reports false.
	MarkPaid(ctx context.Context, paymentID string, paidAmount float64, payer *models.PayerInfo) (bool, error)
}

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.CreatePayment, error)
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByCaseNumber(ctx context.Context, caseNumber string) ([]models.Payment, error)
	VerifyPayment(ctx context.Context, paymentID, transport string) (*responses.VerifyPayment, error)
}
