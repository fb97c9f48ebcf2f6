package contracts

import (
	"context"

	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/responses"
)

type AppointmentService interface {
	// ConfirmAndCreateAppointment books the calendar slot for the
	// conversation's pending appointment. When paymentID is empty the payment
	// linked in the conversation context must already be completed.
	ConfirmAndCreateAppointment(ctx context.Context, conversationID string, account *models.Account, paymentID string) (*responses.AppointmentResult, error)
}
