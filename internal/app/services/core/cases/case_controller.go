package cases

import (
	"context"
	"net/http"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CaseController struct {
	Log        *zap.Logger
	CaseLookup contracts.CaseLookupClient
}

func NewCaseController(logger *zap.Logger, caseLookup contracts.CaseLookupClient) *CaseController {
	return &CaseController{
		Log:        logger,
		CaseLookup: caseLookup,
	}
}

func (ctrl *CaseController) GetCase(w http.ResponseWriter, r *http.Request) {
	caseNumber := chi.URLParam(r, constvars.URLParamCaseNumber)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	caseRecord, err := ctrl.CaseLookup.FindByCaseNumber(ctx, caseNumber)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCaseSuccessMessage, caseRecord)
}
