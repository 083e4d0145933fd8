package config

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	RabbitMQ RabbitMQ
	Minio    Minio
	Logger   Logger
}

type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

type Minio struct {
	Port       string
	Host       string
	Username   string
	Password   string
	BucketName string
	UseSSL     bool
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App          App
	QRGateway    QRGateway
	Verifier     Verifier
	ExchangeRate ExchangeRate
	CaseLookup   CaseLookup
	Reports      Reports
	Events       Events
}

type App struct {
	Env              string
	Port             string
	Version          string
	Address          string
	Timezone         string
	EndpointPrefix   string
	MaxRequests      int
	ShutdownTimeout  int
	SuperadminAPIKey string
	JWTSecret        string
}

type QRGateway struct {
	BaseUrl              string
	Username             string
	Password             string
	AcquirerID           string
	MerchantID           string
	MerchantCategoryCode string
	UserID               string
	TransactionCurrency  string
	// Base64-encoded PEM private key, decoded at call time and never
	// logged.
	PrivateKeyBase64 string
	TimeoutSeconds   int
}

type Verifier struct {
	HTTPUrl          string
	WebSocketUrl     string
	Username         string
	Password         string
	MerchantID       string
	APIToken         string
	PublicKeyBase64  string
	SubscribeTopic   string
	SendDestination  string
	TimeoutSeconds   int
}

type ExchangeRate struct {
	BaseUrl         string
	CurrencyID      string
	CacheTTLMinutes int
}

type CaseLookup struct {
	BaseUrl        string
	SOAPAction     string
	TimeoutSeconds int
}

type Reports struct {
	PresignExpiryMinutes int
}

type Events struct {
	PaymentPaidQueue string
}
