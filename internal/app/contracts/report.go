package contracts

import (
	"casepay-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type ReportRepository interface {
	AggregateDailyCash(ctx context.Context, date time.Time) (*responses.DailyCashReport, error)
	AggregateIncome(ctx context.Context, from, to time.Time) (*responses.IncomeReport, error)
	AggregateVaccinations(ctx context.Context, from, to time.Time) (*responses.VaccinationReport, error)
}

type ReportUsecase interface {
	DailyCash(ctx context.Context, date time.Time) (*responses.DailyCashReport, error)
	Income(ctx context.Context, from, to time.Time) (*responses.IncomeReport, error)
	Vaccinations(ctx context.Context, from, to time.Time) (*responses.VaccinationReport, error)
	ExportDailyCashCSV(ctx context.Context, date time.Time) (*responses.ReportExport, error)
}
