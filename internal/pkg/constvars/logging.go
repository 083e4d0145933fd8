package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingDataKey          = "data"
	LoggingQueryParamsKey   = "query_params"
	LoggingResponseKey      = "response"
	LoggingRequestKey       = "request"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingDurationKey      = "duration"
	LoggingStatusCodeKey    = "status_code"
	LoggingSuccessKey       = "success"

	LoggingPaymentIDKey      = "payment_id"
	LoggingTransactionIDKey  = "transaction_id"
	LoggingTraceIDKey        = "validation_trace_id"
	LoggingCaseNumberKey     = "case_number"
	LoggingCountryKey        = "country_id"
	LoggingServiceCategoryKey = "service_category"
	LoggingTransportKey      = "transport"
	LoggingUpstreamStatusKey = "upstream_status"
	LoggingResponseBodyKey   = "response_body"
	LoggingExchangeRateKey   = "exchange_rate"
	LoggingAmountUSDKey      = "amount_usd"
	LoggingAmountLocalKey    = "amount_local"
	LoggingReportKey         = "report"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueKey          = "queue"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
