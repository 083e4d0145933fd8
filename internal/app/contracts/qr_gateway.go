package contracts

import (
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"
	"context"
)

type QrGatewayService interface {
	GenerateQR(ctx context.Context, request *requests.GenerateQR) (*responses.GenerateQR, error)
}
