package stripegateway

import (
	"context"
	"errors"
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

	"github.com/goccy/go-json"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
)

const (
	platformFeePercent = 5
	platformFeeMinimum = 1000
)

type stripeGatewayService struct {
	StripeClient   *client.API
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	stripeGatewayServiceInstance contracts.CheckoutGatewayService
	onceStripeGatewayService     sync.Once
)

func NewStripeGatewayService(
	stripeClient *client.API,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CheckoutGatewayService {
	onceStripeGatewayService.Do(func() {
		instance := &stripeGatewayService{
			StripeClient:   stripeClient,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		stripeGatewayServiceInstance = instance
	})
	return stripeGatewayServiceInstance
}

// CalculatePlatformFee returns the marketplace cut in minor units: 5% of the
// price, floored at 1000 so micro-priced appointments still cover processing.
func CalculatePlatformFee(amount int64) int64 {
	fee := amount * platformFeePercent / 100
	if fee < platformFeeMinimum {
		return platformFeeMinimum
	}
	return fee
}

func (s *stripeGatewayService) CreateCheckoutSession(ctx context.Context, input *requests.CheckoutSessionInput) (*models.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("stripeGatewayService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, input.Account.ID),
		zap.String(constvars.LoggingConversationIDKey, input.ConversationID),
	)

	account := input.Account
	applicationFee := CalculatePlatformFee(account.AppointmentPrice)
	expiresAt := time.Now().Add(constvars.CheckoutSessionExpiryInMinutes * time.Minute)

	description := account.PaymentDescription
	if description == "" {
		description = fmt.Sprintf("Cita con %s", account.Name)
	}

	metadata := map[string]string{
		"conversation_id": input.ConversationID,
		"account_id":      account.ID,
		"customer_phone":  input.CustomerPhone,
		"customer_name":   input.CustomerName,
	}
	for key, value := range input.Metadata {
		metadata[key] = value
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(account.Currency),
					UnitAmount: stripe.Int64(account.AppointmentPrice),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(applicationFee),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(account.StripeConnectAccountID),
			},
			Metadata: metadata,
		},
		Metadata:   metadata,
		SuccessURL: stripe.String(input.SuccessURL),
		CancelURL:  stripe.String(input.CancelURL),
		ExpiresAt:  stripe.Int64(expiresAt.Unix()),
	}

	session, err := s.StripeClient.CheckoutSessions.New(params)
	if err != nil {
		return nil, exceptions.ErrStripeCreateCheckoutSession(err)
	}

	s.Log.Info("stripeGatewayService.CreateCheckoutSession session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int64(constvars.LoggingAmountKey, account.AppointmentPrice),
	)

	now := time.Now()
	payment := &models.Payment{
		ID:                      utils.GeneratePaymentID(),
		AccountID:               account.ID,
		ConversationID:          input.ConversationID,
		CustomerPhone:           input.CustomerPhone,
		CustomerName:            input.CustomerName,
		Amount:                  account.AppointmentPrice,
		Currency:                account.Currency,
		StripeCheckoutSessionID: session.ID,
		Status:                  models.PaymentStatusPending,
		PaymentLink:             session.URL,
		CreatedAt:               now,
		UpdatedAt:               now,
		Source:                  input.Source,
		Metadata: models.PaymentMetadata{
			StripeAccount: account.StripeConnectAccountID,
			ExpiresAt:     expiresAt.Unix(),
		},
	}
	return payment, nil
}

func (s *stripeGatewayService) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*responses.CheckoutSessionDetails, error) {
	session, err := s.StripeClient.CheckoutSessions.Get(sessionID, nil)
	if err != nil {
		return nil, exceptions.ErrStripeRetrieveSession(err)
	}

	details := &responses.CheckoutSessionDetails{
		SessionID:     session.ID,
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
	}
	if session.PaymentIntent != nil {
		details.PaymentIntentID = session.PaymentIntent.ID
	}
	return details, nil
}

func (s *stripeGatewayService) GetConnectAccountStatus(ctx context.Context, connectAccountID string) (*responses.ConnectAccountStatus, error) {
	account, err := s.StripeClient.Accounts.GetByID(connectAccountID, nil)
	if err != nil {
		return nil, exceptions.ErrStripeRetrieveAccount(err)
	}

	return &responses.ConnectAccountStatus{
		AccountID:        account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	}, nil
}

func (s *stripeGatewayService) CreateConnectAccountLink(ctx context.Context, connectAccountID, refreshURL, returnURL string) (*responses.ConnectAccountLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(connectAccountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	link, err := s.StripeClient.AccountLinks.New(params)
	if err != nil {
		return nil, exceptions.ErrStripeCreateAccountLink(err)
	}
	return &responses.ConnectAccountLink{
		URL:       link.URL,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

func (s *stripeGatewayService) VerifyWebhookSignature(payload []byte, signatureHeader string) (*responses.StripeWebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signatureHeader,
		s.InternalConfig.Stripe.WebhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		if errors.Is(err, webhook.ErrNotSigned) ||
			errors.Is(err, webhook.ErrNoValidSignature) ||
			errors.Is(err, webhook.ErrTooOld) ||
			errors.Is(err, webhook.ErrInvalidHeader) {
			return nil, exceptions.ErrWebhookInvalidSignature(err)
		}
		return nil, exceptions.ErrWebhookInvalidPayload(err)
	}

	result := &responses.StripeWebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, exceptions.ErrWebhookInvalidPayload(err)
		}
		result.CheckoutSessionID = session.ID
		if session.PaymentIntent != nil {
			result.PaymentIntentID = session.PaymentIntent.ID
		}
	}

	return result, nil
}
