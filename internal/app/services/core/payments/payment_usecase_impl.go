package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	AccountRepository contracts.AccountRepository
	CheckoutGateway   contracts.CheckoutGatewayService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	accountRepository contracts.AccountRepository,
	checkoutGateway contracts.CheckoutGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			PaymentRepository: paymentRepository,
			AccountRepository: accountRepository,
			CheckoutGateway:   checkoutGateway,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSessionRequest) (*responses.CreateCheckoutSessionResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, request.AccountID),
		zap.String(constvars.LoggingConversationIDKey, request.ConversationID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	account, err := uc.AccountRepository.FindAccountByID(ctx, request.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.StripeEnabled || account.StripeConnectAccountID == "" {
		return nil, exceptions.ErrAccountNotFound(nil, request.AccountID)
	}
	if account.AppointmentPrice <= 0 {
		return nil, exceptions.ErrPaymentAmountInvalid(nil)
	}

	source := request.Source
	if source == "" {
		source = constvars.PaymentSourceWhatsApp
	}

	callbackBase := fmt.Sprintf("%s%s/%s/payments",
		uc.InternalConfig.App.BaseURL,
		uc.InternalConfig.App.EndpointPrefix,
		uc.InternalConfig.App.Version,
	)
	input := &requests.CheckoutSessionInput{
		Account:        account,
		ConversationID: request.ConversationID,
		CustomerName:   request.CustomerName,
		CustomerPhone:  request.CustomerPhone,
		Source:         source,
		SuccessURL:     fmt.Sprintf("%s/success?conversation_id=%s", callbackBase, request.ConversationID),
		CancelURL:      fmt.Sprintf("%s/cancel?conversation_id=%s", callbackBase, request.ConversationID),
	}
	if request.BookingID != "" {
		input.Metadata = map[string]string{
			constvars.MetadataKeyBookingID: request.BookingID,
		}
	}

	payment, err := uc.CheckoutGateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		return nil, err
	}

	payment, err = uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreateCheckoutSession payment created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingSessionIDKey, payment.StripeCheckoutSessionID),
	)

	return &responses.CreateCheckoutSessionResponse{
		PaymentID:   payment.ID,
		CheckoutURL: payment.PaymentLink,
		ExpiresAt:   payment.Metadata.ExpiresAt,
	}, nil
}

func (uc *paymentUsecase) GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil, paymentID)
	}
	return payment, nil
}

func (uc *paymentUsecase) GetPaymentByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindPaymentByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil, sessionID)
	}
	return payment, nil
}

// UpdatePaymentStatus applies one transition of the payment state machine.
// Re-applying the current status is a no-op so racing confirmation paths stay
// idempotent.
func (uc *paymentUsecase) UpdatePaymentStatus(ctx context.Context, paymentID string, status models.PaymentStatus, extra map[string]string) (*models.Payment, error) {
	requestID := utils.GetRequestID(ctx)

	payment, err := uc.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == status {
		uc.Log.Info("paymentUsecase.UpdatePaymentStatus status already applied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, paymentID),
			zap.String(constvars.LoggingPaymentStatusKey, string(status)),
		)
		return payment, nil
	}

	if !payment.Status.CanTransitionTo(status) {
		return nil, exceptions.ErrPaymentIllegalTransition(nil, string(payment.Status), string(status))
	}

	previousStatus := payment.Status
	payment.Status = status
	payment.UpdatedAt = time.Now()
	payment.Metadata.Merge(extra)

	if err := uc.PaymentRepository.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "payment_status_changed", requestID,
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
		zap.String("previous_status", string(previousStatus)),
		zap.String(constvars.LoggingPaymentStatusKey, string(status)),
	)
	return payment, nil
}

// MarkPaymentCompleted transitions a pending payment to completed, stamping
// completion metadata and the processor's transaction reference. On an
// already-completed payment it returns the record unchanged rather than the
// illegal-transition error, so retried confirmation signals stay idempotent.
func (uc *paymentUsecase) MarkPaymentCompleted(ctx context.Context, paymentID, transactionRef string) (*models.Payment, error) {
	now := time.Now()
	extra := map[string]string{
		constvars.MetadataKeyCompletedAt: now.Format(time.RFC3339),
	}
	if transactionRef != "" {
		extra[constvars.MetadataKeyTransactionID] = transactionRef
	}

	payment, err := uc.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusCompleted, extra)
	if err != nil {
		return nil, err
	}

	if payment.PaidAt == nil {
		payment.PaidAt = &now
		if transactionRef != "" {
			payment.StripePaymentIntentID = transactionRef
		}
		if err := uc.PaymentRepository.UpdatePayment(ctx, payment); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

func (uc *paymentUsecase) CancelPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	extra := map[string]string{
		constvars.MetadataKeyCancelledAt: time.Now().Format(time.RFC3339),
	}
	return uc.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusCancelled, extra)
}

func (uc *paymentUsecase) GetPaymentsByConversationID(ctx context.Context, conversationID string) ([]models.Payment, error) {
	return uc.PaymentRepository.FindPaymentsByConversationID(ctx, conversationID)
}

func (uc *paymentUsecase) GetPaymentsByAccountID(ctx context.Context, accountID string, filter requests.PaymentAccountFilter) ([]models.Payment, error) {
	return uc.PaymentRepository.FindPaymentsByAccountID(ctx, accountID, filter)
}

func (uc *paymentUsecase) GetPaymentStats(ctx context.Context, accountID string) (*responses.PaymentStats, error) {
	payments, err := uc.PaymentRepository.FindPaymentsByAccountID(ctx, accountID, requests.PaymentAccountFilter{})
	if err != nil {
		return nil, err
	}

	stats := &responses.PaymentStats{
		ByStatus: make(map[string]int64),
	}
	for _, payment := range payments {
		stats.TotalPayments++
		stats.TotalAmount += payment.Amount
		stats.ByStatus[string(payment.Status)]++

		switch payment.Status {
		case models.PaymentStatusCompleted:
			stats.CompletedAmount += payment.Amount
		case models.PaymentStatusPending:
			stats.PendingAmount += payment.Amount
		case models.PaymentStatusCancelled:
			stats.CancelledAmount += payment.Amount
		}
	}
	return stats, nil
}

func (uc *paymentUsecase) GetConnectAccountStatus(ctx context.Context, accountID string) (*responses.ConnectAccountStatus, error) {
	account, err := uc.AccountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.StripeConnectAccountID == "" {
		return nil, exceptions.ErrAccountNotFound(nil, accountID)
	}
	return uc.CheckoutGateway.GetConnectAccountStatus(ctx, account.StripeConnectAccountID)
}

func (uc *paymentUsecase) CreateConnectOnboardingLink(ctx context.Context, accountID string, request *requests.ConnectAccountLinkRequest) (*responses.ConnectAccountLink, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.CreateConnectOnboardingLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	account, err := uc.AccountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.StripeConnectAccountID == "" {
		return nil, exceptions.ErrAccountNotFound(nil, accountID)
	}
	return uc.CheckoutGateway.CreateConnectAccountLink(ctx, account.StripeConnectAccountID, request.RefreshURL, request.ReturnURL)
}
