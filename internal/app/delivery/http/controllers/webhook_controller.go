package controllers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	WebhookUsecase contracts.WebhookUsecase
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, webhookUsecase contracts.WebhookUsecase) *WebhookController {
	onceWebhookController.Do(func() {
		instance := &WebhookController{
			Log:            logger,
			WebhookUsecase: webhookUsecase,
		}
		webhookControllerInstance = instance
	})
	return webhookControllerInstance
}

// StripeWebhook reads the raw body before anything else touches it; signature
// verification needs the exact bytes Stripe signed.
func (ctrl *WebhookController) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("Failed to read webhook body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrWebhookInvalidPayload(err))
		return
	}

	signatureHeader := r.Header.Get(constvars.HeaderStripeSignature)

	ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
	defer cancel()

	if err := ctrl.WebhookUsecase.HandleStripeEvent(ctx, payload, signatureHeader); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookAcknowledgedMessage, nil)
}
