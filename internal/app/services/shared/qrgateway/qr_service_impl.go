package qrgateway

import (
	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	qrGatewayServiceInstance contracts.QrGatewayService
	onceQrGatewayService     sync.Once
)

type qrGatewayService struct {
	Config *config.QRGateway
	Client *http.Client
	Log    *zap.Logger
}

func NewQrGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.QrGatewayService {
	onceQrGatewayService.Do(func() {
		instance := &qrGatewayService{
			Config: &internalConfig.QRGateway,
			Client: &http.Client{Timeout: time.Duration(internalConfig.QRGateway.TimeoutSeconds) * time.Second},
			Log:    logger,
		}
		qrGatewayServiceInstance = instance
	})
	return qrGatewayServiceInstance
}

type qrIssueResponse struct {
	Data struct {
		QRString          string `json:"qrString"`
		ValidationTraceID string `json:"validationTraceId"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}

func (s *qrGatewayService) GenerateQR(ctx context.Context, request *requests.GenerateQR) (*responses.GenerateQR, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("qrGatewayService.GenerateQR called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("bill_number", request.BillNumber),
	)

	token, err := BuildTokenString(TokenParams{
		AcquirerID:           s.Config.AcquirerID,
		MerchantID:           s.Config.MerchantID,
		MerchantCategoryCode: s.Config.MerchantCategoryCode,
		TransactionCurrency:  request.TransactionCurrency,
		Amount:               request.Amount,
		BillNumber:           request.BillNumber,
		UserID:               s.Config.UserID,
	})
	if err != nil {
		return nil, err
	}

	// The key is loaded at call time so rotation in the secret store
	// takes effect without a restart.
	privateKey, err := LoadPrivateKey(s.Config.PrivateKeyBase64)
	if err != nil {
		return nil, err
	}

	signedToken, err := SignToken(token, privateKey)
	if err != nil {
		return nil, err
	}

	payload := s.buildPayload(request, signedToken)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.Config.BaseUrl, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(s.Config.Username, s.Config.Password)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("qrGatewayService.GenerateQR error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrQrMalformedResponse(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.Log.Error("qrGatewayService.GenerateQR upstream returned non-2xx",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return nil, exceptions.ErrQrGeneration(resp.StatusCode, string(respBody))
	}

	var issued qrIssueResponse
	if err := json.Unmarshal(respBody, &issued); err != nil {
		return nil, exceptions.ErrQrMalformedResponse(err)
	}
	if issued.Data.QRString == "" || issued.Data.ValidationTraceID == "" {
		return nil, exceptions.ErrQrGeneration(resp.StatusCode, string(respBody))
	}

	s.Log.Info("qrGatewayService.GenerateQR issued QR",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTraceIDKey, issued.Data.ValidationTraceID),
	)
	return &responses.GenerateQR{
		QRString:          issued.Data.QRString,
		ValidationTraceID: issued.Data.ValidationTraceID,
		Timestamp:         issued.Timestamp,
	}, nil
}

// buildPayload assembles the outgoing JSON as a map so optional fields
// that are empty are absent from the body entirely; the issuer rejects
// requests carrying unexpected or null-valued keys.
func (s *qrGatewayService) buildPayload(request *requests.GenerateQR, signedToken string) map[string]interface{} {
	payload := map[string]interface{}{
		"acquirerId":           s.Config.AcquirerID,
		"merchantId":           s.Config.MerchantID,
		"merchantCategoryCode": s.Config.MerchantCategoryCode,
		"transactionCurrency":  request.TransactionCurrency,
		"transactionAmount":    request.Amount,
		"billNumber":           request.BillNumber,
		"userId":               s.Config.UserID,
		"token":                signedToken,
	}

	optional := map[string]string{
		"billLabel":     request.BillLabel,
		"purpose":       request.Purpose,
		"storeLabel":    request.StoreLabel,
		"terminalLabel": request.TerminalLabel,
	}
	for key, value := range optional {
		if value != "" {
			payload[key] = value
		}
	}
	return payload
}
