package contracts

import (
	"context"

	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	FindPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindPaymentByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Payment, error)
	FindPaymentsByConversationID(ctx context.Context, conversationID string) ([]models.Payment, error)
	FindPaymentsByAccountID(ctx context.Context, accountID string, filter requests.PaymentAccountFilter) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
}

type PaymentUsecase interface {
	CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSessionRequest) (*responses.CreateCheckoutSessionResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error)
	GetPaymentByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID string, status models.PaymentStatus, extra map[string]string) (*models.Payment, error)
	MarkPaymentCompleted(ctx context.Context, paymentID, transactionRef string) (*models.Payment, error)
	CancelPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	GetPaymentsByConversationID(ctx context.Context, conversationID string) ([]models.Payment, error)
	GetPaymentsByAccountID(ctx context.Context, accountID string, filter requests.PaymentAccountFilter) ([]models.Payment, error)
	GetPaymentStats(ctx context.Context, accountID string) (*responses.PaymentStats, error)
	GetConnectAccountStatus(ctx context.Context, accountID string) (*responses.ConnectAccountStatus, error)
	CreateConnectOnboardingLink(ctx context.Context, accountID string, request *requests.ConnectAccountLinkRequest) (*responses.ConnectAccountLink, error)
}
