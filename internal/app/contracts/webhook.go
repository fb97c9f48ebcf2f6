package contracts

import "context"

type WebhookEventRepository interface {
	// CheckAndMarkProcessed atomically records the event id. Returns true when
	// this call is the first to see the event.
	CheckAndMarkProcessed(ctx context.Context, eventID string) (bool, error)
}

type PayloadArchiveRepository interface {
	ArchiveWebhookPayload(ctx context.Context, eventID string, payload []byte) error
}

type WebhookUsecase interface {
	HandleStripeEvent(ctx context.Context, payload []byte, signatureHeader string) error
}
