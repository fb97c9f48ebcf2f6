package contracts

import "context"

// ConfirmationUsecase runs the post-payment side effects. All three entry
// points absorb downstream failures and never surface them to the caller.
type ConfirmationUsecase interface {
	HandlePaymentSuccess(ctx context.Context, conversationID string) error
	HandlePaymentCancel(ctx context.Context, conversationID string) error
	HandleCheckoutCompleted(ctx context.Context, sessionID, paymentIntentID string) error
}
