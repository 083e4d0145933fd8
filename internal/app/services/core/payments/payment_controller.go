package payments

import (
	"context"
	"net/http"
	"time"

	"casepay-service/internal/app/contracts"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/dto/requests"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

func (ctrl *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePayment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.CreatePayment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentSuccessMessage, response)
}

func (ctrl *PaymentController) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, constvars.URLParamPaymentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payment, err := ctrl.PaymentUsecase.GetPayment(ctx, paymentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccessMessage, payment)
}

func (ctrl *PaymentController) FindPayments(w http.ResponseWriter, r *http.Request) {
	caseNumber := r.URL.Query().Get(constvars.QueryParamCaseNumber)
	if caseNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	paymentList, err := ctrl.PaymentUsecase.FindByCaseNumber(ctx, caseNumber)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccessMessage, paymentList)
}

func (ctrl *PaymentController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, constvars.URLParamPaymentID)
	request := &requests.VerifyPayment{
		Transport: r.URL.Query().Get(constvars.QueryParamTransport),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.VerifyPayment(ctx, paymentID, request.Transport)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.VerifyPaymentSuccessMessage
	if response.Result != nil && !response.Result.Completed {
		message = constvars.PaymentNotCompletedMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}
