package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const verifyLockExpiration = 30 * time.Second

type paymentUsecase struct {
	PaymentRepository    contracts.PaymentRepository
	QrGateway            contracts.QrGatewayService
	ExchangeRateProvider contracts.ExchangeRateProvider
	HTTPVerifier         contracts.TransactionVerifier
	StompVerifier        contracts.TransactionVerifier
	Locker               contracts.LockerService
	EventPublisher       contracts.PaymentEventPublisher
	Logger               *zap.Logger
	InternalConfig       *config.InternalConfig
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	qrGateway contracts.QrGatewayService,
	exchangeRateProvider contracts.ExchangeRateProvider,
	httpVerifier contracts.TransactionVerifier,
	stompVerifier contracts.TransactionVerifier,
	locker contracts.LockerService,
	eventPublisher contracts.PaymentEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentRepository:    paymentRepository,
			QrGateway:            qrGateway,
			ExchangeRateProvider: exchangeRateProvider,
			HTTPVerifier:         httpVerifier,
			StompVerifier:        stompVerifier,
			Locker:               locker,
			EventPublisher:       eventPublisher,
			Logger:               logger,
			InternalConfig:       internalConfig,
		}
	})
	return paymentUsecaseInstance
}

func (u *paymentUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.CreatePayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseNumberKey, request.CaseNumber),
		zap.String("type_of_payment", request.TypeOfPayment),
	)

	rate, err := u.ExchangeRateProvider.GetRate(ctx)
	if err != nil {
		return nil, err
	}

	input := AssemblyInput{
		CaseNumber:           request.CaseNumber,
		CaseManagementSystem: request.CaseManagementSystem,
		ServiceType:          request.ServiceType,
		Remarks:              request.Remarks,
		Clients:              buildLineItems(request.Clients),
		ExchangeRate:         rate,
	}

	now := time.Now().UTC()
	typeOfPayment := models.PaymentType(request.TypeOfPayment)

	if typeOfPayment != models.PaymentTypeQR {
		payment, err := BuildCashPayment(input, typeOfPayment, now)
		if err != nil {
			return nil, err
		}
		created, err := u.PaymentRepository.Create(ctx, payment)
		if err != nil {
			return nil, err
		}
		u.publishPaid(ctx, created)
		return &responses.CreatePayment{Payment: created}, nil
	}

	localAmount := models.GrandTotalUSD(input.Clients).Mul(rate).Round(2)
	billNumber := request.BillNumber
	if billNumber == "" {
		billNumber = utils.GenerateTransactionID()
	}

	qrResponse, err := u.QrGateway.GenerateQR(ctx, &requests.GenerateQR{
		Amount:              localAmount.StringFixed(2),
		TransactionCurrency: u.InternalConfig.QRGateway.TransactionCurrency,
		BillNumber:          billNumber,
		BillLabel:           request.CaseNumber,
		Purpose:             request.ServiceType,
	})
	if err != nil {
		return nil, err
	}

	payment, err := BuildQRPayment(input, QRFields{
		QRString:          qrResponse.QRString,
		ValidationTraceID: qrResponse.ValidationTraceID,
		QRTimestamp:       qrResponse.Timestamp,
	}, now)
	if err != nil {
		return nil, err
	}

	created, err := u.PaymentRepository.Create(ctx, payment)
	if err != nil {
		// The QR was already issued; surface the trace id so the
		// payment can be reconciled by hand if the payer scans it.
		u.Logger.Error("paymentUsecase.CreatePayment persist failed after QR issuance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTraceIDKey, qrResponse.ValidationTraceID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.CreatePayment{
		Payment:           created,
		QRString:          created.QRString,
		ValidationTraceID: created.ValidationTraceID,
	}, nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return u.PaymentRepository.FindByID(ctx, paymentID)
}

func (u *paymentUsecase) FindByCaseNumber(ctx context.Context, caseNumber string) ([]models.Payment, error) {
	return u.PaymentRepository.FindByCaseNumber(ctx, caseNumber)
}

func (u *paymentUsecase) VerifyPayment(ctx context.Context, paymentID, transport string) (*responses.VerifyPayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("paymentUsecase.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
		zap.String(constvars.LoggingTransportKey, transport),
	)

	payment, err := u.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status.Terminal() {
		// Verified already; report the stored outcome without touching
		// the network or the record again.
		return &responses.VerifyPayment{
			Payment: payment,
			Result:  storedResult(payment),
		}, nil
	}

	if payment.ValidationTraceID == "" {
		return nil, exceptions.ErrVerification(fmt.Errorf("payment %s has no validation trace id", paymentID))
	}

	verifier, err := u.pickVerifier(transport)
	if err != nil {
		return nil, err
	}

	result, err := verifier.Verify(ctx, payment.ValidationTraceID)
	if err != nil {
		return nil, err
	}

	if !result.Completed {
		// Business-level negative outcome: the record stays initiated
		// and verification may simply be re-run later.
		return &responses.VerifyPayment{Payment: payment, Result: result}, nil
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyPaymentVerifyLock, paymentID)
	acquired, lockValue, err := u.Locker.TryLock(ctx, lockKey, verifyLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPaymentAlreadyPaid(paymentID)
	}
	defer func() {
		if err := u.Locker.Unlock(ctx, lockKey, lockValue); err != nil {
			u.Logger.Warn("paymentUsecase.VerifyPayment unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPaymentIDKey, paymentID),
				zap.Error(err),
			)
		}
	}()

	paidAmount := result.PaidAmount
	if paidAmount == 0 {
		paidAmount = payment.AmountInLocalCurrency
	}
	payer := &models.PayerInfo{
		Name:     result.PayerName,
		Mobile:   result.PayerMobile,
		Merchant: result.Merchant,
	}

	updated, err := u.PaymentRepository.MarkPaid(ctx, paymentID, paidAmount, payer)
	if err != nil {
		return nil, err
	}
	if !updated {
		// A concurrent verification won the conditional write; the
		// record is already terminal.
		fresh, err := u.PaymentRepository.FindByID(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		return &responses.VerifyPayment{Payment: fresh, Result: result}, nil
	}

	payment.Status = models.StatusPaid
	payment.PaidAmount = paidAmount
	payment.PayerInfo = payer
	payment.DateOfPayment = time.Now().UTC()
	u.publishPaid(ctx, payment)

	return &responses.VerifyPayment{Payment: payment, Result: result}, nil
}

func (u *paymentUsecase) pickVerifier(transport string) (contracts.TransactionVerifier, error) {
	switch transport {
	case "", constvars.TransportHTTP:
		return u.HTTPVerifier, nil
	case constvars.TransportWebSocket:
		return u.StompVerifier, nil
	default:
		return nil, exceptions.ErrVerification(fmt.Errorf("unknown verification transport %q", transport))
	}
}

// publishPaid is best-effort: a broker outage must never roll back or
// fail a payment that is already settled.
func (u *paymentUsecase) publishPaid(ctx context.Context, payment *models.Payment) {
	if err := u.EventPublisher.PublishPaid(ctx, payment); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		u.Logger.Warn("paymentUsecase.publishPaid failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, payment.ID),
			zap.Error(err),
		)
	}
}

func storedResult(payment *models.Payment) *responses.VerificationResult {
	result := &responses.VerificationResult{
		Completed:         true,
		ResponseCode:      constvars.QR_RESPONSE_CODE_OK,
		ValidationTraceID: payment.ValidationTraceID,
		PaidAmount:        payment.PaidAmount,
	}
	if payment.PayerInfo != nil {
		result.PayerName = payment.PayerInfo.Name
		result.PayerMobile = payment.PayerInfo.Mobile
		result.Merchant = payment.PayerInfo.Merchant
	}
	return result
}

func buildLineItems(clients []requests.ClientLineItemRequest) []models.ClientLineItem {
	lineItems := make([]models.ClientLineItem, 0, len(clients))
	for _, client := range clients {
		services := make([]models.ServiceCharge, 0, len(client.AdditionalServices))
		for _, service := range client.AdditionalServices {
			services = append(services, models.ServiceCharge{
				ServiceID:    service.ServiceID,
				ServiceCode:  service.ServiceCode,
				ServiceName:  service.ServiceName,
				FeeAmountUSD: service.FeeAmountUSD,
			})
		}
		lineItems = append(lineItems, models.ClientLineItem{
			ClientID:           client.ClientID,
			Name:               client.Name,
			AgeYears:           client.AgeYears,
			BaseFeeUSD:         client.BaseFeeUSD,
			AdditionalServices: services,
		})
	}
	return lineItems
}
