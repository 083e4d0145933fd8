package requests

// GenerateQR carries the transaction fields the QR issuing endpoint
// needs on top of the merchant configuration. Amount is the local
// currency amount as a decimal string; the gateway rejects anything
// that does not parse as a number.
type GenerateQR struct {
	Amount              string `json:"amount" validate:"required"`
	TransactionCurrency string `json:"transaction_currency" validate:"required"`
	BillNumber          string `json:"bill_number" validate:"required"`
	BillLabel           string `json:"bill_label,omitempty"`
	Purpose             string `json:"purpose,omitempty"`
	StoreLabel          string `json:"store_label,omitempty"`
	TerminalLabel       string `json:"terminal_label,omitempty"`
}
