package constvars

const (
	ResolveFeeSuccessMessage       = "Successfully resolved fee"
	GetCashFeeSuccessMessage       = "Successfully resolved cash fee"
	GetExchangeRateSuccessMessage  = "Successfully fetched exchange rate"
	CreatePaymentSuccessMessage    = "Successfully recorded payment"
	GetPaymentSuccessMessage       = "Successfully fetched payment"
	VerifyPaymentSuccessMessage    = "Successfully verified payment"
	PaymentNotCompletedMessage     = "Transaction has not completed"
	GetCaseSuccessMessage          = "Successfully fetched case"
	GetReportSuccessMessage        = "Successfully generated report"
	ExportReportSuccessMessage     = "Successfully exported report"
)
