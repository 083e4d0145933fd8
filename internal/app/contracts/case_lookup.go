package contracts

import (
	"casepay-service/internal/app/models"
	"context"
)

// CaseLookupClient fronts the external case-management SOAP backend.
// This service only reads case numbers, client names and ages from it.
type CaseLookupClient interface {
	FindByCaseNumber(ctx context.Context, caseNumber string) (*models.Case, error)
}
