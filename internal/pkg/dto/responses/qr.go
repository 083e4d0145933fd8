package responses

type GenerateQR struct {
	QRString          string `json:"qrString"`
	ValidationTraceID string `json:"validationTraceId"`
	Timestamp         string `json:"timestamp"`
}
