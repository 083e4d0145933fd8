package verifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type httpVerifier struct {
	HTTPClient     *http.Client
	Logger         *zap.Logger
	InternalConfig *config.InternalConfig
}

var (
	httpVerifierInstance contracts.TransactionVerifier
	onceHTTPVerifier     sync.Once
)

func NewHTTPVerifier(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.TransactionVerifier {
	onceHTTPVerifier.Do(func() {
		httpVerifierInstance = &httpVerifier{
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.Verifier.TimeoutSeconds) * time.Second,
			},
			Logger:         logger,
			InternalConfig: internalConfig,
		}
	})
	return httpVerifierInstance
}

type verifyRequest struct {
	ValidationTraceID string `json:"validationTraceId"`
	MerchantID        string `json:"merchantId"`
}

func (v *httpVerifier) Verify(ctx context.Context, validationTraceID string) (*responses.VerificationResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	v.Logger.Info("httpVerifier.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTraceIDKey, validationTraceID),
	)

	payload, err := json.Marshal(verifyRequest{
		ValidationTraceID: validationTraceID,
		MerchantID:        v.InternalConfig.Verifier.MerchantID,
	})
	if err != nil {
		return nil, exceptions.ErrVerification(err)
	}

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, v.InternalConfig.Verifier.HTTPUrl, bytes.NewReader(payload))
	if err != nil {
		return nil, exceptions.ErrVerification(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.SetBasicAuth(v.InternalConfig.Verifier.Username, v.InternalConfig.Verifier.Password)

	response, err := v.HTTPClient.Do(request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, exceptions.ErrVerificationTimeout(ctx.Err())
		}
		return nil, exceptions.ErrVerification(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrVerification(err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		v.Logger.Error("httpVerifier.Verify upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, response.StatusCode),
			zap.ByteString(constvars.LoggingResponseBodyKey, body),
		)
		return nil, exceptions.ErrVerification(fmt.Errorf("verification upstream returned %d: %s", response.StatusCode, string(body)))
	}

	report := new(verificationReport)
	if err := json.Unmarshal(body, report); err != nil {
		return nil, exceptions.ErrVerification(err)
	}

	result := interpret(report, validationTraceID)
	v.Logger.Info("httpVerifier.Verify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("response_code", result.ResponseCode),
		zap.Bool("completed", result.Completed),
	)
	return result, nil
}
