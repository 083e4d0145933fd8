package reports

import (
	"context"
	"net/http"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	return &ReportController{
		Log:           logger,
		ReportUsecase: reportUsecase,
	}
}

const reportQueryDateLayout = "2006-01-02"

// parseDate falls back to today (UTC) when the query param is absent.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(reportQueryDateLayout, value)
}

func (ctrl *ReportController) parseRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := parseDate(r.URL.Query().Get(constvars.QueryParamFrom))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(r.URL.Query().Get(constvars.QueryParamTo))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	// The upper bound is exclusive, so include the whole "to" day.
	return from, to.Add(24 * time.Hour), nil
}

func (ctrl *ReportController) GetDailyCash(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get(constvars.QueryParamDate))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if r.URL.Query().Get(constvars.QueryParamExport) == constvars.ExportFormatCSV {
		export, err := ctrl.ReportUsecase.ExportDailyCashCSV(ctx, date)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportReportSuccessMessage, export)
		return
	}

	report, err := ctrl.ReportUsecase.DailyCash(ctx, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, report)
}

func (ctrl *ReportController) GetIncome(w http.ResponseWriter, r *http.Request) {
	from, to, err := ctrl.parseRange(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	report, err := ctrl.ReportUsecase.Income(ctx, from, to)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, report)
}

func (ctrl *ReportController) GetVaccinations(w http.ResponseWriter, r *http.Request) {
	from, to, err := ctrl.parseRange(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	report, err := ctrl.ReportUsecase.Vaccinations(ctx, from, to)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, report)
}
