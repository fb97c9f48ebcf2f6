package confirmations

import (
	"context"
	"fmt"
	"sync"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// confirmationUsecase runs the side effects that follow a checkout outcome.
// Both the browser redirect and the webhook land here, possibly at the same
// time, so every step is written to tolerate a concurrent twin. Failures are
// logged and absorbed: the caller always renders a neutral acknowledgement.
type confirmationUsecase struct {
	ConversationRepository contracts.ConversationRepository
	AccountRepository      contracts.AccountRepository
	PaymentUsecase         contracts.PaymentUsecase
	AppointmentService     contracts.AppointmentService
	WhatsAppService        contracts.WhatsAppService
	Log                    *zap.Logger
}

var (
	confirmationUsecaseInstance contracts.ConfirmationUsecase
	onceConfirmationUsecase     sync.Once
)

func NewConfirmationUsecase(
	conversationRepository contracts.ConversationRepository,
	accountRepository contracts.AccountRepository,
	paymentUsecase contracts.PaymentUsecase,
	appointmentService contracts.AppointmentService,
	whatsAppService contracts.WhatsAppService,
	logger *zap.Logger,
) contracts.ConfirmationUsecase {
	onceConfirmationUsecase.Do(func() {
		instance := &confirmationUsecase{
			ConversationRepository: conversationRepository,
			AccountRepository:      accountRepository,
			PaymentUsecase:         paymentUsecase,
			AppointmentService:     appointmentService,
			WhatsAppService:        whatsAppService,
			Log:                    logger,
		}
		confirmationUsecaseInstance = instance
	})
	return confirmationUsecaseInstance
}

func (uc *confirmationUsecase) HandlePaymentSuccess(ctx context.Context, conversationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("confirmationUsecase.HandlePaymentSuccess called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	conversation, account := uc.resolveConversation(ctx, conversationID)
	if conversation == nil || account == nil {
		return nil
	}
	uc.confirmFromConversation(ctx, conversation, account, "")
	return nil
}

func (uc *confirmationUsecase) HandleCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("confirmationUsecase.HandleCheckoutCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	payment, err := uc.PaymentUsecase.GetPaymentByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		uc.Log.Warn("confirmationUsecase.HandleCheckoutCompleted no payment for session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil
	}

	conversation, account := uc.resolveConversation(ctx, payment.ConversationID)
	if conversation == nil || account == nil {
		return nil
	}

	info := conversation.Context.AppointmentInfo
	if info == nil {
		uc.Log.Warn("confirmationUsecase.HandleCheckoutCompleted conversation has no appointment in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
		)
		return nil
	}

	// The webhook can outrun the link between conversation and payment.
	if info.PaymentID == "" {
		info.PaymentID = payment.ID
		info.PaymentStatus = string(payment.Status)
		if err := uc.ConversationRepository.UpdateAppointmentInfo(ctx, conversation.ID, info, true); err != nil {
			uc.Log.Error("confirmationUsecase.HandleCheckoutCompleted error linking payment to conversation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.confirmFromConversation(ctx, conversation, account, paymentIntentID)
	return nil
}

func (uc *confirmationUsecase) HandlePaymentCancel(ctx context.Context, conversationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("confirmationUsecase.HandlePaymentCancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	conversation, account := uc.resolveConversation(ctx, conversationID)
	if conversation == nil || account == nil {
		return nil
	}

	info := conversation.Context.AppointmentInfo
	if info != nil && info.PaymentID != "" {
		payment, err := uc.PaymentUsecase.GetPaymentByID(ctx, info.PaymentID)
		if err != nil {
			uc.Log.Error("confirmationUsecase.HandlePaymentCancel error fetching payment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if payment.Status == models.PaymentStatusPending {
			if _, err := uc.PaymentUsecase.CancelPayment(ctx, payment.ID); err != nil {
				uc.Log.Error("confirmationUsecase.HandlePaymentCancel error cancelling payment",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingPaymentIDKey, payment.ID),
					zap.Error(err),
				)
			}
		}
	}

	uc.sendMessage(ctx, conversation, account, constvars.WhatsAppPaymentCancelledMessage)

	if err := uc.ConversationRepository.CancelAppointment(ctx, conversation.ID); err != nil {
		uc.Log.Error("confirmationUsecase.HandlePaymentCancel error clearing appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
			zap.Error(err),
		)
	}
	return nil
}

// confirmFromConversation completes the payment when still pending, books the
// calendar slot once, and notifies the customer. transactionRef is set when
// the caller already knows the processor's payment reference.
func (uc *confirmationUsecase) confirmFromConversation(ctx context.Context, conversation *models.Conversation, account *models.Account, transactionRef string) {
	requestID := utils.GetRequestID(ctx)

	info := conversation.Context.AppointmentInfo
	if info == nil || info.PaymentID == "" {
		uc.Log.Warn("confirmationUsecase.confirmFromConversation no linked payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
		)
		return
	}

	payment, err := uc.PaymentUsecase.GetPaymentByID(ctx, info.PaymentID)
	if err != nil {
		uc.Log.Error("confirmationUsecase.confirmFromConversation error fetching payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, info.PaymentID),
			zap.Error(err),
		)
		return
	}

	justCompleted := false
	if payment.Status == models.PaymentStatusPending {
		completed, err := uc.PaymentUsecase.MarkPaymentCompleted(ctx, payment.ID, transactionRef)
		if err != nil {
			// The twin path most likely won the transition; re-read and keep going.
			uc.Log.Warn("confirmationUsecase.confirmFromConversation lost completion race",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPaymentIDKey, payment.ID),
				zap.Error(err),
			)
			payment, err = uc.PaymentUsecase.GetPaymentByID(ctx, payment.ID)
			if err != nil {
				return
			}
		} else {
			payment = completed
			justCompleted = true

			info.PaymentStatus = constvars.PaymentStatusCompletedMirror
			if err := uc.ConversationRepository.UpdateAppointmentInfo(ctx, conversation.ID, info, true); err != nil {
				uc.Log.Error("confirmationUsecase.confirmFromConversation error mirroring payment status",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}
	}

	if info.BookingID != "" {
		uc.Log.Info("confirmationUsecase.confirmFromConversation booking already recorded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
			zap.String(constvars.LoggingAppointmentIDKey, info.BookingID),
		)
		return
	}

	if !payment.IsCompleted() {
		uc.Log.Info("confirmationUsecase.confirmFromConversation payment not completed, nothing to do",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, payment.ID),
			zap.String(constvars.LoggingPaymentStatusKey, string(payment.Status)),
		)
		return
	}

	bookingPaymentID := ""
	if justCompleted {
		bookingPaymentID = payment.ID
	}
	result, err := uc.AppointmentService.ConfirmAndCreateAppointment(ctx, conversation.ID, account, bookingPaymentID)
	if err != nil || !result.Success {
		uc.Log.Error("confirmationUsecase.confirmFromConversation booking failed, sending degraded notice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
			zap.Error(err),
		)
		uc.sendMessage(ctx, conversation, account, constvars.WhatsAppPaymentConfirmedDegradedMessage)
		return
	}

	applied, err := uc.ConversationRepository.SetAppointmentBookingID(ctx, conversation.ID, result.AppointmentID)
	if err != nil {
		uc.Log.Error("confirmationUsecase.confirmFromConversation error recording booking id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, result.AppointmentID),
			zap.Error(err),
		)
		return
	}
	if !applied {
		uc.Log.Info("confirmationUsecase.confirmFromConversation concurrent confirmation already booked, skipping notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
		)
		return
	}

	utils.LogBusinessEvent(uc.Log, "appointment_confirmed", requestID,
		zap.String(constvars.LoggingConversationIDKey, conversation.ID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingAppointmentIDKey, result.AppointmentID),
	)

	message := fmt.Sprintf(constvars.WhatsAppPaymentConfirmedMessage,
		utils.FormatAppointmentDatetime(info.Datetime),
		info.Name,
		conversation.PhoneNumber,
		account.Name,
	)
	uc.sendMessage(ctx, conversation, account, message)
}

func (uc *confirmationUsecase) resolveConversation(ctx context.Context, conversationID string) (*models.Conversation, *models.Account) {
	requestID := utils.GetRequestID(ctx)

	conversation, err := uc.ConversationRepository.FindConversationByID(ctx, conversationID)
	if err != nil || conversation == nil {
		uc.Log.Warn("confirmationUsecase.resolveConversation conversation unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConversationIDKey, conversationID),
			zap.Error(err),
		)
		return nil, nil
	}

	account, err := uc.AccountRepository.FindAccountByID(ctx, conversation.AccountID)
	if err != nil || account == nil {
		uc.Log.Warn("confirmationUsecase.resolveConversation account unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, conversation.AccountID),
			zap.Error(err),
		)
		return nil, nil
	}
	return conversation, account
}

func (uc *confirmationUsecase) sendMessage(ctx context.Context, conversation *models.Conversation, account *models.Account, message string) {
	err := uc.WhatsAppService.SendMessage(ctx, &requests.WhatsAppMessage{
		PhoneNumberID:  account.PhoneNumberID,
		To:             conversation.PhoneNumber,
		Message:        message,
		ConversationID: conversation.ID,
	})
	if err != nil {
		uc.Log.Error("confirmationUsecase.sendMessage error dispatching WhatsApp message",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingConversationIDKey, conversation.ID),
			zap.Error(err),
		)
	}
}
