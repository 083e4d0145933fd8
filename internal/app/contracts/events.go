package contracts

import (
	"casepay-service/internal/app/models"
	"context"
)

// PaymentEventPublisher announces terminal payment transitions so
// downstream consumers (receipt delivery, finance dashboards) can react.
// Publishing is best-effort after the status write; a publish failure
// never rolls the payment back.
type PaymentEventPublisher interface {
	PublishPaid(ctx context.Context, payment *models.Payment) error
}
