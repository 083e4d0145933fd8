package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientFeeNotFound                   = "no fee is configured for this age and destination, please contact the administrator"
	ErrClientExchangeRateUnavailable       = "exchange rate is unavailable, please try again"
	ErrClientQrGenerationFailed            = "could not generate the payment QR code"
	ErrClientVerificationFailed            = "could not verify the transaction with the payment network"
	ErrClientVerificationTimedOut          = "the payment network did not respond in time"
	ErrClientPaymentAssemblyFailed         = "the payment record is missing required information"
	ErrClientPaymentAlreadyPaid            = "this payment has already been settled"
	ErrClientPaymentNotFound               = "payment record not found"
	ErrClientCaseNotFound                  = "case not found in the case management system"
	ErrClientInvalidAPIKey                 = "invalid api key"
	ErrClientInvalidToken                  = "your session is invalid or has expired"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "server process error"

	ErrDevFeeNoMatchingRule        = "no active fee rule matches country %s category %s age %d months"
	ErrDevFeeCashTableMissing      = "no cash fee table for destination country %s"
	ErrDevExchangeRateFetch        = "failed to fetch exchange rate from pricing service"
	ErrDevExchangeRateUnavailable  = "exchange rate not available for conversion"
	ErrDevQrAmountNotNumeric       = "QR token amount is not numeric"
	ErrDevQrPrivateKeyInvalid      = "QR signing private key cannot be decoded"
	ErrDevQrSignToken              = "failed to sign QR token string"
	ErrDevQrUpstream               = "QR issuing endpoint returned status %d: %s"
	ErrDevQrMalformedResponse      = "QR issuing endpoint returned a malformed response"
	ErrDevVerificationTransport    = "verification transport failure"
	ErrDevVerificationTimeout      = "verification timed out waiting for the payment network"
	ErrDevVerificationEncryptToken = "failed to encrypt verification api token"
	ErrDevPaymentAssemblyQRFields  = "QR-type payment requires qr_string and validationTraceId"
	ErrDevPaymentAssemblyNoClients = "payment requires at least one client line item"
	ErrDevPaymentAssemblyDuplicateService = "duplicate service %s on client %s"
	ErrDevPaymentAlreadyPaid       = "payment %s is already in the paid state"
	ErrDevPaymentNotFound          = "payment %s not found"
	ErrDevCaseLookup               = "case lookup backend call failed"
	ErrDevCaseNotFound             = "case %s not found"

	ErrDevInvalidAPIKey = "api key does not match the configured superadmin key"
	ErrDevInvalidToken  = "bearer token failed signature or claims validation"

	// Mongo messages
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToAggregate        = "failed to run aggregation"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	// Redis messages
	ErrDevRedisGetData   = "failed to get data from redis"
	ErrDevRedisSetData   = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to acquire redis lock"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object URL in bucket %s"
)
