package fees

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FeeController struct {
	Log        *zap.Logger
	FeeUsecase contracts.FeeUsecase
}

func NewFeeController(logger *zap.Logger, feeUsecase contracts.FeeUsecase) *FeeController {
	return &FeeController{
		Log:        logger,
		FeeUsecase: feeUsecase,
	}
}

func (ctrl *FeeController) ResolveFee(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResolveFee)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FeeUsecase.ResolveFee(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResolveFeeSuccessMessage, response)
}

func (ctrl *FeeController) GetCashFee(w http.ResponseWriter, r *http.Request) {
	ageYears, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamAge))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request := &requests.CashFee{
		CountryCode:  r.URL.Query().Get(constvars.QueryParamCountry),
		AgeYears:     ageYears,
		VisaSubclass: r.URL.Query().Get(constvars.QueryParamVisaSubclass),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FeeUsecase.ResolveCashFee(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCashFeeSuccessMessage, response)
}
