package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log                 *zap.Logger
	PaymentUsecase      contracts.PaymentUsecase
	ConfirmationUsecase contracts.ConfirmationUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(
	logger *zap.Logger,
	paymentUsecase contracts.PaymentUsecase,
	confirmationUsecase contracts.ConfirmationUsecase,
) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:                 logger,
			PaymentUsecase:      paymentUsecase,
			ConfirmationUsecase: confirmationUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateCheckoutSessionRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse checkout session request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.CreateCheckoutSession(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CheckoutSessionCreatedMessage, response)
}

// PaymentSuccessCallback serves the browser redirect from a completed
// checkout. Confirmation failures never reach the customer's browser; the
// page is static either way.
func (ctrl *PaymentController) PaymentSuccessCallback(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	conversationID := r.URL.Query().Get("conversation_id")

	utils.LogSecurityEvent(ctrl.Log, "payment_success_callback_received", requestID, "info",
		zap.String(constvars.LoggingConversationIDKey, conversationID),
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
	)

	if conversationID != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
		defer cancel()
		ctrl.ConfirmationUsecase.HandlePaymentSuccess(ctx, conversationID)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(paymentSuccessPage))
}

func (ctrl *PaymentController) PaymentCancelCallback(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	conversationID := r.URL.Query().Get("conversation_id")

	utils.LogSecurityEvent(ctrl.Log, "payment_cancel_callback_received", requestID, "info",
		zap.String(constvars.LoggingConversationIDKey, conversationID),
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
	)

	if conversationID != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
		defer cancel()
		ctrl.ConfirmationUsecase.HandlePaymentCancel(ctx, conversationID)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(paymentCancelPage))
}

func (ctrl *PaymentController) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payment, err := ctrl.PaymentUsecase.GetPaymentByID(ctx, paymentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentRetrievedMessage, payment)
}

func (ctrl *PaymentController) GetPaymentsByConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payments, err := ctrl.PaymentUsecase.GetPaymentsByConversationID(ctx, conversationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentListRetrievedMessage, payments)
}

func (ctrl *PaymentController) GetPaymentStats(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := ctrl.PaymentUsecase.GetPaymentStats(ctx, accountID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentStatsRetrievedMessage, stats)
}

func (ctrl *PaymentController) CreateConnectAccountLink(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	accountID := chi.URLParam(r, "accountID")

	request := new(requests.ConnectAccountLinkRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("Failed to parse connect link request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	link, err := ctrl.PaymentUsecase.CreateConnectOnboardingLink(ctx, accountID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConnectAccountLinkMessage, link)
}

func (ctrl *PaymentController) GetConnectAccountStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.PaymentUsecase.GetConnectAccountStatus(ctx, accountID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConnectStatusRetrievedMessage, status)
}
