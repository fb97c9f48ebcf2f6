package contracts

import (
	"context"

	"vitalis-service/internal/app/models"
)

type ConversationRepository interface {
	FindConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error)
	UpdateAppointmentInfo(ctx context.Context, conversationID string, info *models.AppointmentInfo, awaitingConfirmation bool) error
	// SetAppointmentBookingID writes the booking id only when the conversation
	// does not already carry one, clearing awaiting_confirmation in the same
	// write. Returns false when another writer won.
	SetAppointmentBookingID(ctx context.Context, conversationID, bookingID string) (bool, error)
	CancelAppointment(ctx context.Context, conversationID string) error
}
