package contracts

import (
	"context"

	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
)

// CheckoutGatewayService fronts the payment processor. It owns session
// creation, connected-account introspection and webhook signature checks.
type CheckoutGatewayService interface {
	CreateCheckoutSession(ctx context.Context, input *requests.CheckoutSessionInput) (*models.Payment, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*responses.CheckoutSessionDetails, error)
	GetConnectAccountStatus(ctx context.Context, connectAccountID string) (*responses.ConnectAccountStatus, error)
	CreateConnectAccountLink(ctx context.Context, connectAccountID, refreshURL, returnURL string) (*responses.ConnectAccountLink, error)
	VerifyWebhookSignature(payload []byte, signatureHeader string) (*responses.StripeWebhookEvent, error)
}
