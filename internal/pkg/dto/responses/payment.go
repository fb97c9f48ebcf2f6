package responses

type CreateCheckoutSessionResponse struct {
	PaymentID   string `json:"payment_id"`
	CheckoutURL string `json:"checkout_url"`
	ExpiresAt   int64  `json:"expires_at"`
}

type PaymentStats struct {
	TotalPayments   int64            `json:"total_payments"`
	TotalAmount     int64            `json:"total_amount"`
	CompletedAmount int64            `json:"completed_amount"`
	PendingAmount   int64            `json:"pending_amount"`
	CancelledAmount int64            `json:"cancelled_amount"`
	ByStatus        map[string]int64 `json:"by_status"`
}

type ConnectAccountStatus struct {
	AccountID        string `json:"account_id"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}

type ConnectAccountLink struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

type CheckoutSessionDetails struct {
	SessionID       string `json:"session_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	PaymentStatus   string `json:"payment_status"`
	AmountTotal     int64  `json:"amount_total"`
	Currency        string `json:"currency"`
}

// StripeWebhookEvent is the verified, narrowed view of an incoming event that
// the webhook usecase works with.
type StripeWebhookEvent struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	CheckoutSessionID string `json:"checkout_session_id,omitempty"`
	PaymentIntentID   string `json:"payment_intent_id,omitempty"`
}

type AppointmentResult struct {
	Success       bool   `json:"success"`
	AppointmentID string `json:"appointment_id,omitempty"`
	Details       string `json:"details,omitempty"`
}
