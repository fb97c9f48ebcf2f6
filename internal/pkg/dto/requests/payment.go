package requests

import "vitalis-service/internal/app/models"

type CreateCheckoutSessionRequest struct {
	AccountID      string `json:"account_id" validate:"required"`
	ConversationID string `json:"conversation_id" validate:"required"`
	CustomerName   string `json:"customer_name" validate:"required,max=120"`
	CustomerPhone  string `json:"customer_phone" validate:"required,phone_number"`
	Source         string `json:"source,omitempty"`
	BookingID      string `json:"booking_id,omitempty"`
}

// CheckoutSessionInput carries everything the gateway needs to open a hosted
// checkout for a connected account.
type CheckoutSessionInput struct {
	Account        *models.Account
	ConversationID string
	CustomerName   string
	CustomerPhone  string
	Source         string
	SuccessURL     string
	CancelURL      string
	Metadata       map[string]string
}

type ConnectAccountLinkRequest struct {
	RefreshURL string `json:"refresh_url" validate:"required,url"`
	ReturnURL  string `json:"return_url" validate:"required,url"`
}

type PaymentAccountFilter struct {
	Status    string `json:"status,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
