package payments

import (
	"context"
	"testing"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockPaymentRepository struct{ mock.Mock }

func (m *mockPaymentRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	// Echo the record back with an id, like the real repository does.
	payment.ID = "pay-1"
	return payment, nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByCaseNumber(ctx context.Context, caseNumber string) ([]models.Payment, error) {
	args := m.Called(ctx, caseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentRepository) MarkPaid(ctx context.Context, paymentID string, paidAmount float64, payer *models.PayerInfo) (bool, error) {
	args := m.Called(ctx, paymentID, paidAmount, payer)
	return args.Bool(0), args.Error(1)
}

type mockQrGateway struct{ mock.Mock }

func (m *mockQrGateway) GenerateQR(ctx context.Context, request *requests.GenerateQR) (*responses.GenerateQR, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.GenerateQR), args.Error(1)
}

type mockRateProvider struct{ mock.Mock }

func (m *mockRateProvider) GetRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockRateProvider) Current(ctx context.Context) (*models.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRate), args.Error(1)
}

type mockVerifier struct{ mock.Mock }

func (m *mockVerifier) Verify(ctx context.Context, validationTraceID string) (*responses.VerificationResult, error) {
	args := m.Called(ctx, validationTraceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.VerificationResult), args.Error(1)
}

type mockLocker struct{ mock.Mock }

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishPaid(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type usecaseFixture struct {
	usecase   *paymentUsecase
	repo      *mockPaymentRepository
	gateway   *mockQrGateway
	rates     *mockRateProvider
	verifier  *mockVerifier
	locker    *mockLocker
	publisher *mockEventPublisher
}

func newFixture() *usecaseFixture {
	repo := new(mockPaymentRepository)
	gateway := new(mockQrGateway)
	rates := new(mockRateProvider)
	httpVerifier := new(mockVerifier)
	lock := new(mockLocker)
	publisher := new(mockEventPublisher)

	usecase := &paymentUsecase{
		PaymentRepository:    repo,
		QrGateway:            gateway,
		ExchangeRateProvider: rates,
		HTTPVerifier:         httpVerifier,
		StompVerifier:        httpVerifier,
		Locker:               lock,
		EventPublisher:       publisher,
		Logger:               zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			QRGateway: config.QRGateway{TransactionCurrency: "524"},
		},
	}
	return &usecaseFixture{
		usecase:   usecase,
		repo:      repo,
		gateway:   gateway,
		rates:     rates,
		verifier:  httpVerifier,
		locker:    lock,
		publisher: publisher,
	}
}

func initiatedPayment() *models.Payment {
	return &models.Payment{
		ID:                    "pay-1",
		CaseNumber:            "CASE-1001",
		TypeOfPayment:         models.PaymentTypeQR,
		Status:                models.StatusInitiated,
		AmountInDollar:        168.00,
		AmountInLocalCurrency: 23805.60,
		ValidationTraceID:     "trace-7788",
		TransactionID:         "TXN-1",
	}
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("successful verification writes the terminal state once", func(t *testing.T) {
		f := newFixture()
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(initiatedPayment(), nil)
		f.verifier.On("Verify", mock.Anything, "trace-7788").Return(&responses.VerificationResult{
			Completed:    true,
			ResponseCode: "200",
			PayerName:    "A Payer",
			PaidAmount:   23805.60,
		}, nil)
		f.locker.On("TryLock", mock.Anything, "payment:verify:pay-1", mock.Anything).Return(true, "lock-val", nil)
		f.locker.On("Unlock", mock.Anything, "payment:verify:pay-1", "lock-val").Return(nil)
		f.repo.On("MarkPaid", mock.Anything, "pay-1", 23805.60, mock.Anything).Return(true, nil)
		f.publisher.On("PublishPaid", mock.Anything, mock.Anything).Return(nil)

		response, err := f.usecase.VerifyPayment(ctx, "pay-1", "http")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPaid, response.Payment.Status)
		assert.True(t, response.Result.Completed)
		f.repo.AssertNumberOfCalls(t, "MarkPaid", 1)
		f.publisher.AssertNumberOfCalls(t, "PublishPaid", 1)
	})

	t.Run("already paid record is returned without touching the network", func(t *testing.T) {
		f := newFixture()
		paid := initiatedPayment()
		paid.Status = models.StatusPaid
		paid.PaidAmount = 23805.60
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(paid, nil)

		response, err := f.usecase.VerifyPayment(ctx, "pay-1", "http")
		assert.NoError(t, err)
		assert.True(t, response.Result.Completed)
		f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not-completed response leaves the record initiated with no write", func(t *testing.T) {
		f := newFixture()
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(initiatedPayment(), nil)
		f.verifier.On("Verify", mock.Anything, "trace-7788").Return(&responses.VerificationResult{
			Completed:           false,
			ResponseCode:        "E012",
			ResponseDescription: "transaction not found",
		}, nil)

		response, err := f.usecase.VerifyPayment(ctx, "pay-1", "http")
		assert.NoError(t, err)
		assert.False(t, response.Result.Completed)
		assert.Equal(t, "E012", response.Result.ResponseCode)
		assert.Equal(t, models.StatusInitiated, response.Payment.Status)
		f.repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "PublishPaid", mock.Anything, mock.Anything)
	})

	t.Run("losing the conditional write races returns the fresh record", func(t *testing.T) {
		f := newFixture()
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(initiatedPayment(), nil).Once()
		f.verifier.On("Verify", mock.Anything, "trace-7788").Return(&responses.VerificationResult{
			Completed: true, ResponseCode: "200", PaidAmount: 23805.60,
		}, nil)
		f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
		f.locker.On("Unlock", mock.Anything, mock.Anything, "lock-val").Return(nil)
		f.repo.On("MarkPaid", mock.Anything, "pay-1", 23805.60, mock.Anything).Return(false, nil)

		settled := initiatedPayment()
		settled.Status = models.StatusPaid
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(settled, nil).Once()

		response, err := f.usecase.VerifyPayment(ctx, "pay-1", "http")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPaid, response.Payment.Status)
		f.publisher.AssertNotCalled(t, "PublishPaid", mock.Anything, mock.Anything)
	})

	t.Run("lock contention surfaces a conflict", func(t *testing.T) {
		f := newFixture()
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(initiatedPayment(), nil)
		f.verifier.On("Verify", mock.Anything, "trace-7788").Return(&responses.VerificationResult{
			Completed: true, ResponseCode: "200",
		}, nil)
		f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := f.usecase.VerifyPayment(ctx, "pay-1", "http")
		assert.Error(t, err)
		f.repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown transport is rejected", func(t *testing.T) {
		f := newFixture()
		f.repo.On("FindByID", mock.Anything, "pay-1").Return(initiatedPayment(), nil)

		_, err := f.usecase.VerifyPayment(ctx, "pay-1", "carrier-pigeon")
		assert.Error(t, err)
	})
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	clients := []requests.ClientLineItemRequest{
		{
			ClientID:   "client-1",
			Name:       "Test Person",
			AgeYears:   30,
			BaseFeeUSD: 143.00,
			AdditionalServices: []requests.ServiceChargeRequest{
				{ServiceID: "svc-1", ServiceCode: "VAC-FLU", FeeAmountUSD: 25.00},
			},
		},
	}

	t.Run("cash payment is persisted settled and announced", func(t *testing.T) {
		f := newFixture()
		f.rates.On("GetRate", mock.Anything).Return(decimal.NewFromFloat(141.70), nil)
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
		f.publisher.On("PublishPaid", mock.Anything, mock.Anything).Return(nil)

		response, err := f.usecase.CreatePayment(ctx, &requests.CreatePayment{
			CaseNumber:           "CASE-1001",
			CaseManagementSystem: "emedical",
			TypeOfPayment:        "cash",
			ServiceType:          "medical_exam",
			Clients:              clients,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPaid, response.Payment.Status)
		assert.Equal(t, 168.00, response.Payment.AmountInDollar)
		assert.Equal(t, 23805.60, response.Payment.AmountInLocalCurrency)
		assert.Empty(t, response.QRString)
		f.gateway.AssertNotCalled(t, "GenerateQR", mock.Anything, mock.Anything)
	})

	t.Run("QR payment requests a code with the local amount", func(t *testing.T) {
		f := newFixture()
		f.rates.On("GetRate", mock.Anything).Return(decimal.NewFromFloat(141.70), nil)
		f.gateway.On("GenerateQR", mock.Anything, mock.MatchedBy(func(r *requests.GenerateQR) bool {
			return r.Amount == "23805.60" && r.TransactionCurrency == "524"
		})).Return(&responses.GenerateQR{
			QRString:          "000201...",
			ValidationTraceID: "trace-9",
			Timestamp:         "2026-03-02T09:00:00Z",
		}, nil)
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)

		response, err := f.usecase.CreatePayment(ctx, &requests.CreatePayment{
			CaseNumber:           "CASE-1001",
			CaseManagementSystem: "emedical",
			TypeOfPayment:        "QR",
			ServiceType:          "medical_exam",
			Clients:              clients,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusInitiated, response.Payment.Status)
		assert.Equal(t, "trace-9", response.ValidationTraceID)
		assert.NotEmpty(t, response.QRString)
		f.publisher.AssertNotCalled(t, "PublishPaid", mock.Anything, mock.Anything)
	})

	t.Run("rate failure blocks payment creation", func(t *testing.T) {
		f := newFixture()
		f.rates.On("GetRate", mock.Anything).Return(decimal.Zero, assert.AnError)

		_, err := f.usecase.CreatePayment(ctx, &requests.CreatePayment{
			CaseNumber:           "CASE-1001",
			CaseManagementSystem: "emedical",
			TypeOfPayment:        "cash",
			ServiceType:          "medical_exam",
			Clients:              clients,
		})
		assert.Error(t, err)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
