package config

import (
	"casepay-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "casepay"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "casepay-reports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:              utils.GetEnvString("APP_ENV", "development"),
			Port:             utils.GetEnvString("APP_PORT", ":8080"),
			Version:          utils.GetEnvString("APP_VERSION", "v1"),
			Address:          utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:         utils.GetEnvString("APP_TIMEZONE", "Asia/Kathmandu"),
			EndpointPrefix:   utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:      utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SuperadminAPIKey: utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			JWTSecret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		QRGateway: QRGateway{
			BaseUrl:              utils.GetEnvString("QR_GATEWAY_BASE_URL", "https://merchantapi.example.com/api/merchant/merchantDetailsForThirdParty"),
			Username:             utils.GetEnvString("QR_GATEWAY_USERNAME", ""),
			Password:             utils.GetEnvString("QR_GATEWAY_PASSWORD", ""),
			AcquirerID:           utils.GetEnvString("QR_GATEWAY_ACQUIRER_ID", ""),
			MerchantID:           utils.GetEnvString("QR_GATEWAY_MERCHANT_ID", ""),
			MerchantCategoryCode: utils.GetEnvString("QR_GATEWAY_MERCHANT_CATEGORY_CODE", ""),
			UserID:               utils.GetEnvString("QR_GATEWAY_USER_ID", ""),
			TransactionCurrency:  utils.GetEnvString("QR_GATEWAY_TRANSACTION_CURRENCY", "524"),
			PrivateKeyBase64:     utils.GetEnvString("QR_GATEWAY_PRIVATE_KEY_BASE64", ""),
			TimeoutSeconds:       utils.GetEnvInt("QR_GATEWAY_TIMEOUT_SECONDS", 15),
		},
		Verifier: Verifier{
			HTTPUrl:         utils.GetEnvString("VERIFIER_HTTP_URL", "https://merchantapi.example.com/api/merchant/transactionReport"),
			WebSocketUrl:    utils.GetEnvString("VERIFIER_WS_URL", "wss://merchantapi.example.com/convergent-webSocket-web/merchantEndPoint"),
			Username:        utils.GetEnvString("VERIFIER_USERNAME", ""),
			Password:        utils.GetEnvString("VERIFIER_PASSWORD", ""),
			MerchantID:      utils.GetEnvString("VERIFIER_MERCHANT_ID", ""),
			APIToken:        utils.GetEnvString("VERIFIER_API_TOKEN", ""),
			PublicKeyBase64: utils.GetEnvString("VERIFIER_PUBLIC_KEY_BASE64", ""),
			SubscribeTopic:  utils.GetEnvString("VERIFIER_SUBSCRIBE_TOPIC", "/user/topic/payment"),
			SendDestination: utils.GetEnvString("VERIFIER_SEND_DESTINATION", "/app/initialData"),
			TimeoutSeconds:  utils.GetEnvInt("VERIFIER_TIMEOUT_SECONDS", 30),
		},
		ExchangeRate: ExchangeRate{
			BaseUrl:         utils.GetEnvString("EXCHANGE_RATE_BASE_URL", "http://localhost:5555/pricing/exchange-rate"),
			CurrencyID:      utils.GetEnvString("EXCHANGE_RATE_CURRENCY_ID", "NPR"),
			CacheTTLMinutes: utils.GetEnvInt("EXCHANGE_RATE_CACHE_TTL_MINUTES", 30),
		},
		CaseLookup: CaseLookup{
			BaseUrl:        utils.GetEnvString("CASE_LOOKUP_BASE_URL", "http://localhost:5556/caseservice"),
			SOAPAction:     utils.GetEnvString("CASE_LOOKUP_SOAP_ACTION", "urn:getCaseDetails"),
			TimeoutSeconds: utils.GetEnvInt("CASE_LOOKUP_TIMEOUT_SECONDS", 15),
		},
		Reports: Reports{
			PresignExpiryMinutes: utils.GetEnvInt("REPORTS_PRESIGN_EXPIRY_MINUTES", 60),
		},
		Events: Events{
			PaymentPaidQueue: utils.GetEnvString("EVENTS_PAYMENT_PAID_QUEUE", "payment.paid"),
		},
	}
}
