package payments

import (
	"testing"
	"time"

	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func singleClientInput(rate float64) AssemblyInput {
	return AssemblyInput{
		CaseNumber:           "CASE-1001",
		CaseManagementSystem: "emedical",
		ServiceType:          "medical_exam",
		Clients: []models.ClientLineItem{
			{
				ClientID:   "client-1",
				Name:       "Test Person",
				AgeYears:   30,
				BaseFeeUSD: 143.00,
				AdditionalServices: []models.ServiceCharge{
					{ServiceID: "svc-1", ServiceCode: "VAC-FLU", ServiceName: "Influenza", FeeAmountUSD: 25.00},
				},
			},
		},
		ExchangeRate: decimal.NewFromFloat(rate),
	}
}

func TestBuildCashPayment(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("cash record is born paid with no QR fields", func(t *testing.T) {
		payment, err := BuildCashPayment(singleClientInput(141.70), models.PaymentTypeCash, now)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPaid, payment.Status)
		assert.Empty(t, payment.QRString)
		assert.Empty(t, payment.ValidationTraceID)
		assert.Equal(t, now, payment.DateOfPayment)
	})

	t.Run("US scenario: age 30, one added service, rate 141.70", func(t *testing.T) {
		payment, err := BuildCashPayment(singleClientInput(141.70), models.PaymentTypeCash, now)
		assert.NoError(t, err)
		assert.Equal(t, 168.00, payment.AmountInDollar)
		assert.Equal(t, 23805.60, payment.AmountInLocalCurrency)
		assert.Equal(t, 141.70, payment.ExchangeRate)
	})

	t.Run("transaction id is never empty", func(t *testing.T) {
		payment, err := BuildCashPayment(singleClientInput(1), models.PaymentTypeCash, now)
		assert.NoError(t, err)
		assert.NotEmpty(t, payment.TransactionID)
	})

	t.Run("no clients is rejected", func(t *testing.T) {
		input := singleClientInput(1)
		input.Clients = nil
		_, err := BuildCashPayment(input, models.PaymentTypeCash, now)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("duplicate service on one client is rejected", func(t *testing.T) {
		input := singleClientInput(1)
		input.Clients[0].AdditionalServices = append(input.Clients[0].AdditionalServices, models.ServiceCharge{
			ServiceID: "svc-1", ServiceCode: "VAC-FLU", FeeAmountUSD: 25.00,
		})
		_, err := BuildCashPayment(input, models.PaymentTypeCash, now)
		assert.Error(t, err)
	})
}

func TestBuildQRPayment(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	qrFields := QRFields{
		QRString:          "000201010212...",
		ValidationTraceID: "trace-7788",
		QRTimestamp:       "2026-03-02T09:00:00Z",
	}

	t.Run("QR record starts initiated and carries the trace id", func(t *testing.T) {
		payment, err := BuildQRPayment(singleClientInput(141.70), qrFields, now)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusInitiated, payment.Status)
		assert.Equal(t, models.PaymentTypeQR, payment.TypeOfPayment)
		assert.Equal(t, "trace-7788", payment.ValidationTraceID)
		assert.NotEmpty(t, payment.QRString)
		assert.True(t, payment.DateOfPayment.IsZero())
	})

	t.Run("missing QR string is rejected", func(t *testing.T) {
		_, err := BuildQRPayment(singleClientInput(1), QRFields{ValidationTraceID: "trace-1"}, now)
		assert.Error(t, err)
	})

	t.Run("missing trace id is rejected", func(t *testing.T) {
		_, err := BuildQRPayment(singleClientInput(1), QRFields{QRString: "0002..."}, now)
		assert.Error(t, err)
	})
}

func TestGrandTotalRecompute(t *testing.T) {
	input := singleClientInput(2)
	now := time.Now().UTC()

	first, err := BuildCashPayment(input, models.PaymentTypeCash, now)
	assert.NoError(t, err)

	// Removing the added service between builds changes the total: the
	// grand total is derived from the line items every time.
	input.Clients[0].AdditionalServices = nil
	second, err := BuildCashPayment(input, models.PaymentTypeCash, now)
	assert.NoError(t, err)

	assert.Equal(t, 168.00, first.AmountInDollar)
	assert.Equal(t, 143.00, second.AmountInDollar)
}
