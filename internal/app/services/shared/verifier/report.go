package verifier

import (
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/responses"
)

// verificationReport is the payment network's report shape, shared by
// the HTTP and WebSocket transports.
type verificationReport struct {
	ResponseCode        string      `json:"responseCode"`
	ResponseStatus      string      `json:"responseStatus"`
	ResponseDescription string      `json:"responseDescription"`
	ResponseBody        []reportRow `json:"responseBody"`
}

type reportRow struct {
	PayerName         string  `json:"payerName"`
	PayerMobileNumber string  `json:"payerMobileNumber"`
	MerchantName      string  `json:"merchantName"`
	Amount            float64 `json:"amount"`
	ValidationTraceID string  `json:"validationTraceId"`
}

// interpret maps the upstream report onto the verification contract.
// Anything other than responseCode "200" is a business-level negative
// outcome, not an error: the transaction has not completed, whether it
// was never attempted, is still pending, or was rejected.
func interpret(report *verificationReport, validationTraceID string) *responses.VerificationResult {
	result := &responses.VerificationResult{
		ResponseCode:        report.ResponseCode,
		ResponseDescription: report.ResponseDescription,
		ValidationTraceID:   validationTraceID,
	}

	if report.ResponseCode != constvars.QR_RESPONSE_CODE_OK {
		return result
	}
	if report.ResponseStatus != constvars.QR_RESPONSE_STATUS_SUCCESS || len(report.ResponseBody) == 0 {
		return result
	}

	row := report.ResponseBody[0]
	result.Completed = true
	result.PayerName = row.PayerName
	result.PayerMobile = row.PayerMobileNumber
	result.Merchant = row.MerchantName
	result.PaidAmount = row.Amount
	if row.ValidationTraceID != "" {
		result.ValidationTraceID = row.ValidationTraceID
	}
	return result
}
