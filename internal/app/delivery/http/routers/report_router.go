package routers

import (
	"casepay-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, reportController *reports.ReportController) {
	router.Get("/daily-cash", reportController.GetDailyCash)
	router.Get("/income", reportController.GetIncome)
	router.Get("/vaccinations", reportController.GetVaccinations)
}
