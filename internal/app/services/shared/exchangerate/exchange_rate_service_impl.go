package exchangerate

import (
	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	exchangeRateServiceInstance contracts.ExchangeRateProvider
	onceExchangeRateService     sync.Once
)

type exchangeRateService struct {
	BaseUrl    string
	CurrencyID string
	CacheTTL   time.Duration
	redisRepo  contracts.RedisRepository
	Client     *http.Client
	Log        *zap.Logger
}

func NewExchangeRateService(internalConfig *config.InternalConfig, redisRepo contracts.RedisRepository, logger *zap.Logger) contracts.ExchangeRateProvider {
	onceExchangeRateService.Do(func() {
		instance := &exchangeRateService{
			BaseUrl:    internalConfig.ExchangeRate.BaseUrl,
			CurrencyID: internalConfig.ExchangeRate.CurrencyID,
			CacheTTL:   time.Duration(internalConfig.ExchangeRate.CacheTTLMinutes) * time.Minute,
			redisRepo:  redisRepo,
			Client:     &http.Client{Timeout: 10 * time.Second},
			Log:        logger,
		}
		exchangeRateServiceInstance = instance
	})
	return exchangeRateServiceInstance
}

type pricingResponse struct {
	CurrencyID string `json:"currency_id"`
	Value      string `json:"value"`
	AsOf       string `json:"as_of"`
}

func (s *exchangeRateService) GetRate(ctx context.Context) (decimal.Decimal, error) {
	rate, err := s.Current(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Value, nil
}

func (s *exchangeRateService) Current(ctx context.Context) (*models.ExchangeRate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := s.redisRepo.Get(ctx, constvars.RedisKeyExchangeRate)
	if err == nil && cached != "" {
		var rate models.ExchangeRate
		if err := json.Unmarshal([]byte(cached), &rate); err == nil {
			return &rate, nil
		}
		// A corrupted cache entry falls through to a fresh fetch.
	}

	s.Log.Info("exchangeRateService.Current fetching from pricing service",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	url := fmt.Sprintf("%s?currency=%s", s.BaseUrl, s.CurrencyID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("exchangeRateService.Current error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrExchangeRateFetch(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		s.Log.Error("exchangeRateService.Current pricing service returned non-OK",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return nil, exceptions.ErrExchangeRateFetch(fmt.Errorf("pricing service returned status %d", resp.StatusCode))
	}

	var body pricingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, exceptions.ErrExchangeRateFetch(err)
	}

	value, err := decimal.NewFromString(body.Value)
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		return nil, exceptions.ErrExchangeRateUnavailable()
	}

	asOf, err := time.Parse(time.RFC3339, body.AsOf)
	if err != nil {
		asOf = time.Now()
	}

	rate := &models.ExchangeRate{
		CurrencyID: body.CurrencyID,
		Value:      value,
		AsOf:       asOf,
	}

	if err := s.redisRepo.Set(ctx, constvars.RedisKeyExchangeRate, rate, s.CacheTTL); err != nil {
		s.Log.Error("exchangeRateService.Current error caching rate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		// Cache failure does not block the fetched rate.
	}

	s.Log.Info("exchangeRateService.Current fetched rate",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExchangeRateKey, value.String()),
	)
	return rate, nil
}
