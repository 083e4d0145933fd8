package exceptions

import (
	"casepay-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Fees
	ErrFeeNotFound = func(countryID, category string, ageMonths int) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientFeeNotFound, fmt.Sprintf(constvars.ErrDevFeeNoMatchingRule, countryID, category, ageMonths))
	}
	ErrCashFeeTableMissing = func(countryCode string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientFeeNotFound, fmt.Sprintf(constvars.ErrDevFeeCashTableMissing, countryCode))
	}

	// Exchange rate
	ErrExchangeRateFetch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientExchangeRateUnavailable, constvars.ErrDevExchangeRateFetch)
	}
	ErrExchangeRateUnavailable = func() *CustomError {
		return WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientExchangeRateUnavailable, constvars.ErrDevExchangeRateUnavailable)
	}

	// QR generation
	ErrQrAmountNotNumeric = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientQrGenerationFailed, constvars.ErrDevQrAmountNotNumeric)
	}
	ErrQrPrivateKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientQrGenerationFailed, constvars.ErrDevQrPrivateKeyInvalid)
	}
	ErrQrSignToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientQrGenerationFailed, constvars.ErrDevQrSignToken)
	}
	ErrQrGeneration = func(upstreamStatus int, upstreamBody string) *CustomError {
		return WrapWithoutError(constvars.StatusBadGateway, constvars.ErrClientQrGenerationFailed, fmt.Sprintf(constvars.ErrDevQrUpstream, upstreamStatus, upstreamBody))
	}
	ErrQrMalformedResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientQrGenerationFailed, constvars.ErrDevQrMalformedResponse)
	}

	// Verification
	ErrVerification = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientVerificationFailed, constvars.ErrDevVerificationTransport)
	}
	ErrVerificationTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientVerificationTimedOut, constvars.ErrDevVerificationTimeout)
	}
	ErrVerificationEncryptToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientVerificationFailed, constvars.ErrDevVerificationEncryptToken)
	}

	// Payment assembly and lifecycle
	ErrPaymentAssemblyQRFields = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPaymentAssemblyFailed, constvars.ErrDevPaymentAssemblyQRFields)
	}
	ErrPaymentAssemblyNoClients = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPaymentAssemblyFailed, constvars.ErrDevPaymentAssemblyNoClients)
	}
	ErrPaymentAssemblyDuplicateService = func(serviceID, clientID string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPaymentAssemblyFailed, fmt.Sprintf(constvars.ErrDevPaymentAssemblyDuplicateService, serviceID, clientID))
	}
	ErrPaymentAlreadyPaid = func(paymentID string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientPaymentAlreadyPaid, fmt.Sprintf(constvars.ErrDevPaymentAlreadyPaid, paymentID))
	}
	ErrPaymentNotFound = func(paymentID string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientPaymentNotFound, fmt.Sprintf(constvars.ErrDevPaymentNotFound, paymentID))
	}

	// Auth
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidAPIKey, constvars.ErrDevInvalidAPIKey)
	}
	ErrInvalidToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidToken, constvars.ErrDevInvalidToken)
	}

	// Case lookup
	ErrCaseLookup = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCaseLookup)
	}
	ErrCaseNotFound = func(caseNumber string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCaseNotFound, fmt.Sprintf(constvars.ErrDevCaseNotFound, caseNumber))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBAggregate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToAggregate)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioPresignURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresignURL, bucketName))
	}
)
