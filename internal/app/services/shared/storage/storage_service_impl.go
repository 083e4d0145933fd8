package storage

import (
	"context"
	"io"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type storageService struct {
	MinioClient  *minio.Client
	Logger       *zap.Logger
	DriverConfig *config.DriverConfig
}

var (
	storageServiceInstance contracts.StorageService
	onceStorageService     sync.Once
)

func NewStorageService(minioClient *minio.Client, driverConfig *config.DriverConfig, logger *zap.Logger) contracts.StorageService {
	onceStorageService.Do(func() {
		storageServiceInstance = &storageService{
			MinioClient:  minioClient,
			Logger:       logger,
			DriverConfig: driverConfig,
		}
	})
	return storageServiceInstance
}

func (s *storageService) PutObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	bucketName := s.DriverConfig.Minio.BucketName
	s.Logger.Info("storageService.PutObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	_, err := s.MinioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.Logger.Error("storageService.PutObject error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (s *storageService) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	bucketName := s.DriverConfig.Minio.BucketName

	presignedURL, err := s.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		s.Logger.Error("storageService.PresignedURL error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioPresignURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
