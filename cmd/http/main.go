package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/delivery/http/middlewares"
	"casepay-service/internal/app/delivery/http/routers"
	"casepay-service/internal/app/drivers/database"
	"casepay-service/internal/app/drivers/logger"
	"casepay-service/internal/app/drivers/messaging"
	"casepay-service/internal/app/drivers/storage"
	"casepay-service/internal/app/services/core/cases"
	"casepay-service/internal/app/services/core/fees"
	"casepay-service/internal/app/services/core/payments"
	"casepay-service/internal/app/services/core/reports"
	"casepay-service/internal/app/services/shared/events"
	"casepay-service/internal/app/services/shared/exchangerate"
	"casepay-service/internal/app/services/shared/locker"
	"casepay-service/internal/app/services/shared/qrgateway"
	sharedredis "casepay-service/internal/app/services/shared/redis"
	sharedstorage "casepay-service/internal/app/services/shared/storage"
	"casepay-service/internal/app/services/shared/verifier"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrusLogger.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrusLogger.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Fatalf("Failed to close connections cleanly: %v", err)
	}

	logrusLogger.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	exchangeRateService := exchangerate.NewExchangeRateService(bootstrap.InternalConfig, redisRepository, bootstrap.Logger)
	qrGatewayService := qrgateway.NewQrGatewayService(bootstrap.InternalConfig, bootstrap.Logger)
	httpVerifier := verifier.NewHTTPVerifier(bootstrap.InternalConfig, bootstrap.Logger)
	stompVerifier := verifier.NewStompVerifier(bootstrap.InternalConfig, bootstrap.Logger)
	eventPublisher := events.NewPaymentEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	storageService := sharedstorage.NewStorageService(bootstrap.Minio, bootstrap.DriverConfig, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Fees
	feeRuleRepository := fees.NewFeeMongoRepository(mongoDatabase, bootstrap.Logger)
	feeUsecase := fees.NewFeeUsecase(feeRuleRepository, bootstrap.Logger)
	feeController := fees.NewFeeController(bootstrap.Logger, feeUsecase)

	// Payments
	paymentRepository := payments.NewPaymentMongoRepository(mongoDatabase, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		qrGatewayService,
		exchangeRateService,
		httpVerifier,
		stompVerifier,
		lockerService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Cases
	caseLookupClient := cases.NewSoapCaseClient(bootstrap.InternalConfig, bootstrap.Logger)
	caseController := cases.NewCaseController(bootstrap.Logger, caseLookupClient)

	// Reports
	reportRepository := reports.NewReportMongoRepository(mongoDatabase, bootstrap.Logger)
	reportUsecase := reports.NewReportUsecase(reportRepository, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	// Exchange rate
	exchangeRateController := exchangerate.NewExchangeRateController(bootstrap.Logger, exchangeRateService)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		feeController,
		paymentController,
		caseController,
		reportController,
		exchangeRateController,
	)
}
