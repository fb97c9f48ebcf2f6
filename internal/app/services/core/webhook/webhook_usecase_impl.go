package webhook

import (
	"context"
	"sync"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type webhookUsecase struct {
	CheckoutGateway        contracts.CheckoutGatewayService
	WebhookEventRepository contracts.WebhookEventRepository
	PayloadArchive         contracts.PayloadArchiveRepository
	ConfirmationUsecase    contracts.ConfirmationUsecase
	Log                    *zap.Logger
}

var (
	webhookUsecaseInstance contracts.WebhookUsecase
	onceWebhookUsecase     sync.Once
)

func NewWebhookUsecase(
	checkoutGateway contracts.CheckoutGatewayService,
	webhookEventRepository contracts.WebhookEventRepository,
	payloadArchive contracts.PayloadArchiveRepository,
	confirmationUsecase contracts.ConfirmationUsecase,
	logger *zap.Logger,
) contracts.WebhookUsecase {
	onceWebhookUsecase.Do(func() {
		instance := &webhookUsecase{
			CheckoutGateway:        checkoutGateway,
			WebhookEventRepository: webhookEventRepository,
			PayloadArchive:         payloadArchive,
			ConfirmationUsecase:    confirmationUsecase,
			Log:                    logger,
		}
		webhookUsecaseInstance = instance
	})
	return webhookUsecaseInstance
}

// HandleStripeEvent verifies, deduplicates and dispatches one webhook
// delivery. Only signature and payload problems surface as errors; everything
// past verification is acknowledged so the processor stops retrying.
func (uc *webhookUsecase) HandleStripeEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	requestID := utils.GetRequestID(ctx)

	event, err := uc.CheckoutGateway.VerifyWebhookSignature(payload, signatureHeader)
	if err != nil {
		utils.LogSecurityEvent(uc.Log, "webhook_rejected", requestID, "warning",
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("webhookUsecase.HandleStripeEvent event verified",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventIDKey, event.ID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)

	firstSeen, err := uc.WebhookEventRepository.CheckAndMarkProcessed(ctx, event.ID)
	if err != nil {
		// Dedup store down: better to process a duplicate than drop an event.
		uc.Log.Error("webhookUsecase.HandleStripeEvent dedup check failed, processing anyway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, event.ID),
			zap.Error(err),
		)
	} else if !firstSeen {
		uc.Log.Info("webhookUsecase.HandleStripeEvent duplicate delivery, skipping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, event.ID),
		)
		return nil
	}

	if err := uc.PayloadArchive.ArchiveWebhookPayload(ctx, event.ID, payload); err != nil {
		uc.Log.Error("webhookUsecase.HandleStripeEvent error archiving payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventIDKey, event.ID),
			zap.Error(err),
		)
	}

	switch event.Type {
	case constvars.StripeEventCheckoutSessionCompleted:
		if event.CheckoutSessionID == "" {
			uc.Log.Warn("webhookUsecase.HandleStripeEvent completed event without session id",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventIDKey, event.ID),
			)
			return nil
		}
		return uc.ConfirmationUsecase.HandleCheckoutCompleted(ctx, event.CheckoutSessionID, event.PaymentIntentID)
	default:
		uc.Log.Info("webhookUsecase.HandleStripeEvent ignoring event type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
		)
		return nil
	}
}
