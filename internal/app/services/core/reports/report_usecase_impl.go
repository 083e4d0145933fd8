package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/responses"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository contracts.ReportRepository
	StorageService   contracts.StorageService
	Logger           *zap.Logger
	InternalConfig   *config.InternalConfig
}

var (
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

func NewReportUsecase(reportRepository contracts.ReportRepository, storageService contracts.StorageService, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = &reportUsecase{
			ReportRepository: reportRepository,
			StorageService:   storageService,
			Logger:           logger,
			InternalConfig:   internalConfig,
		}
	})
	return reportUsecaseInstance
}

func (u *reportUsecase) DailyCash(ctx context.Context, date time.Time) (*responses.DailyCashReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("reportUsecase.DailyCash called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportKey, constvars.ReportDailyCash),
	)
	return u.ReportRepository.AggregateDailyCash(ctx, date)
}

func (u *reportUsecase) Income(ctx context.Context, from, to time.Time) (*responses.IncomeReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("reportUsecase.Income called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportKey, constvars.ReportIncome),
	)
	return u.ReportRepository.AggregateIncome(ctx, from, to)
}

func (u *reportUsecase) Vaccinations(ctx context.Context, from, to time.Time) (*responses.VaccinationReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Logger.Info("reportUsecase.Vaccinations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportKey, constvars.ReportVaccinations),
	)
	return u.ReportRepository.AggregateVaccinations(ctx, from, to)
}

// ExportDailyCashCSV renders the day's cash report as CSV, stores it as
// an object and hands back a presigned download link.
func (u *reportUsecase) ExportDailyCashCSV(ctx context.Context, date time.Time) (*responses.ReportExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	report, err := u.ReportRepository.AggregateDailyCash(ctx, date)
	if err != nil {
		return nil, err
	}

	buffer, err := renderDailyCashCSV(report)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	objectName := utils.GenerateReportObjectName(constvars.ReportDailyCash, ".csv")
	if err := u.StorageService.PutObject(ctx, objectName, constvars.MIMETextCSV, buffer, int64(buffer.Len())); err != nil {
		return nil, err
	}

	expiry := time.Duration(u.InternalConfig.Reports.PresignExpiryMinutes) * time.Minute
	url, err := u.StorageService.PresignedURL(ctx, objectName, expiry)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("reportUsecase.ExportDailyCashCSV succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.ReportExport{
		ObjectName: objectName,
		URL:        url,
	}, nil
}

func renderDailyCashCSV(report *responses.DailyCashReport) (*bytes.Buffer, error) {
	buffer := new(bytes.Buffer)
	writer := csv.NewWriter(buffer)

	records := [][]string{
		{"date", "case_number", "transaction_id", "service_type", "amount_usd", "amount_local"},
	}
	for _, row := range report.Rows {
		records = append(records, []string{
			report.Date,
			row.CaseNumber,
			row.TransactionID,
			row.ServiceType,
			strconv.FormatFloat(row.AmountUSD, 'f', 2, 64),
			strconv.FormatFloat(row.AmountLocal, 'f', 2, 64),
		})
	}
	records = append(records, []string{
		report.Date, "TOTAL", "", "",
		strconv.FormatFloat(report.TotalUSD, 'f', 2, 64),
		strconv.FormatFloat(report.TotalLocal, 'f', 2, 64),
	})

	if err := writer.WriteAll(records); err != nil {
		return nil, err
	}
	return buffer, nil
}
