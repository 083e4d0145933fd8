package routers

import (
	"casepay-service/internal/app/services/core/cases"

	"github.com/go-chi/chi/v5"
)

func attachCaseRoutes(router chi.Router, caseController *cases.CaseController) {
	router.Get("/{caseNumber}", caseController.GetCase)
}
