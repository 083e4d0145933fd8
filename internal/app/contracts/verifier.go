package contracts

import (
	"casepay-service/internal/pkg/dto/responses"
	"context"
)

// TransactionVerifier queries the payment network for one trace id.
// A negative business outcome (transaction not completed, rejected) is
// a successful call returning Completed=false; only transport, auth and
// timeout failures are errors.
type TransactionVerifier interface {
	Verify(ctx context.Context, validationTraceID string) (*responses.VerificationResult, error)
}
