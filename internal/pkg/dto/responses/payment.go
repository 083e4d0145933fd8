package responses

import "casepay-service/internal/app/models"

type CreatePayment struct {
	Payment *models.Payment `json:"payment"`
	// QRString and ValidationTraceID are duplicated at the top level so
	// the portal can render the scannable code without digging into the
	// record.
	QRString          string `json:"qr_string,omitempty"`
	ValidationTraceID string `json:"validationTraceId,omitempty"`
}

type VerificationResult struct {
	Completed           bool   `json:"completed"`
	ResponseCode        string `json:"response_code"`
	ResponseDescription string `json:"response_description,omitempty"`
	ValidationTraceID   string `json:"validationTraceId"`
	PayerName           string `json:"payer_name,omitempty"`
	PayerMobile         string `json:"payer_mobile,omitempty"`
	Merchant            string `json:"merchant,omitempty"`
	PaidAmount          float64 `json:"paid_amount,omitempty"`
}

type VerifyPayment struct {
	Payment *models.Payment     `json:"payment"`
	Result  *VerificationResult `json:"result"`
}
