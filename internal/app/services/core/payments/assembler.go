package payments

import (
	"time"

	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"github.com/shopspring/decimal"
)

// AssemblyInput is everything a payment record needs besides the
// method-specific fields. The exchange rate is locked in here, at build
// time, so the persisted local amount always matches the rate recorded
// next to it.
type AssemblyInput struct {
	CaseNumber           string
	CaseManagementSystem string
	ServiceType          string
	Remarks              string
	Clients              []models.ClientLineItem
	ExchangeRate         decimal.Decimal
}

// QRFields are required before a QR record may be built. The builders
// are split per payment method so a QR record without them cannot be
// constructed at all.
type QRFields struct {
	QRString          string
	ValidationTraceID string
	QRTimestamp       string
}

func validateInput(input AssemblyInput) error {
	if len(input.Clients) == 0 {
		return exceptions.ErrPaymentAssemblyNoClients()
	}
	for _, client := range input.Clients {
		seen := make(map[string]struct{}, len(client.AdditionalServices))
		for _, service := range client.AdditionalServices {
			if _, duplicate := seen[service.ServiceID]; duplicate {
				return exceptions.ErrPaymentAssemblyDuplicateService(service.ServiceID, client.ClientID)
			}
			seen[service.ServiceID] = struct{}{}
		}
	}
	return nil
}

func assemble(input AssemblyInput, typeOfPayment models.PaymentType, now time.Time) *models.Payment {
	grandTotal := models.GrandTotalUSD(input.Clients)
	localAmount := grandTotal.Mul(input.ExchangeRate).Round(2)

	return &models.Payment{
		CaseNumber:            input.CaseNumber,
		CaseManagementSystem:  input.CaseManagementSystem,
		TypeOfPayment:         typeOfPayment,
		Status:                models.StatusInitiated,
		AmountInDollar:        grandTotal.InexactFloat64(),
		AmountInLocalCurrency: localAmount.InexactFloat64(),
		ExchangeRate:          input.ExchangeRate.InexactFloat64(),
		TransactionID:         utils.GenerateTransactionID(),
		Clients:               input.Clients,
		ServiceType:           input.ServiceType,
		Remarks:               input.Remarks,
		DateCreated:           now,
	}
}

// BuildCashPayment assembles a settled record: cash changes hands at
// the counter, so the record is born paid, with no QR fields.
func BuildCashPayment(input AssemblyInput, typeOfPayment models.PaymentType, now time.Time) (*models.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	payment := assemble(input, typeOfPayment, now)
	payment.Status = models.StatusPaid
	payment.PaidAmount = payment.AmountInLocalCurrency
	payment.DateOfPayment = now
	return payment, nil
}

// BuildQRPayment assembles an initiated record awaiting verification.
// Both the QR string and the trace id must be present; without the
// trace id the record could never be verified or reach the paid state.
func BuildQRPayment(input AssemblyInput, qr QRFields, now time.Time) (*models.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if qr.QRString == "" || qr.ValidationTraceID == "" {
		return nil, exceptions.ErrPaymentAssemblyQRFields()
	}
	payment := assemble(input, models.PaymentTypeQR, now)
	payment.QRString = qr.QRString
	payment.ValidationTraceID = qr.ValidationTraceID
	payment.QRTimestamp = qr.QRTimestamp
	return payment, nil
}
