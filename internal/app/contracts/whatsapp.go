package contracts

import (
	"context"

	"vitalis-service/internal/pkg/dto/requests"
)

type WhatsAppService interface {
	SendMessage(ctx context.Context, message *requests.WhatsAppMessage) error
}
