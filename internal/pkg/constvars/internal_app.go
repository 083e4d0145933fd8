package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

const (
	MongoCollectionPayments = "payments"
	MongoCollectionFeeRules = "fee_rules"
)

const (
	RedisKeyExchangeRate      = "exchange_rate:usd_local"
	RedisKeyPaymentVerifyLock = "payment:verify:%s"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
	ResponseUnknown        = "unknown"
)

const (
	URLParamPaymentID  = "paymentID"
	URLParamCaseNumber = "caseNumber"

	QueryParamCountry      = "country"
	QueryParamAge          = "age"
	QueryParamVisaSubclass = "visa_subclass"
	QueryParamCaseNumber   = "case_number"
	QueryParamTransport    = "transport"
	QueryParamDate         = "date"
	QueryParamFrom         = "from"
	QueryParamTo           = "to"
	QueryParamExport       = "export"

	TransportHTTP      = "http"
	TransportWebSocket = "websocket"

	ExportFormatCSV = "csv"
)

// Service categories used to pick the fee table.
const (
	ServiceCategoryMedicalExam    = "medical_exam"
	ServiceCategoryVaccination    = "vaccination"
	ServiceCategorySpecialService = "special_service"
)

const (
	ReportDailyCash    = "daily_cash"
	ReportIncome       = "income"
	ReportVaccinations = "vaccinations"
)
