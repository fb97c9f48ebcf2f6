package models

import (
	"time"
	"vitalis-service/internal/pkg/constvars"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// paymentTransitions is the full transition graph. Completed payments can only
// move to refunded; failed, cancelled and refunded are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:   {PaymentStatusCompleted, PaymentStatusCancelled, PaymentStatusFailed},
	PaymentStatusCompleted: {PaymentStatusRefunded},
	PaymentStatusFailed:    {},
	PaymentStatusCancelled: {},
	PaymentStatusRefunded:  {},
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s PaymentStatus) IsTerminal() bool {
	return len(paymentTransitions[s]) == 0
}

// PaymentMetadata keeps the known annotation keys typed; anything else goes
// into Extra untouched.
type PaymentMetadata struct {
	StripeAccount string            `json:"stripe_account,omitempty" bson:"stripe_account,omitempty"`
	ExpiresAt     int64             `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	BookingID     string            `json:"booking_id,omitempty" bson:"booking_id,omitempty"`
	CompletedAt   string            `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CancelledAt   string            `json:"cancelled_at,omitempty" bson:"cancelled_at,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	Extra         map[string]string `json:"extra,omitempty" bson:"extra,omitempty"`
}

// Merge applies a flat key/value bag over the metadata. Known keys overwrite
// their typed field, everything else lands in Extra. Existing keys not present
// in the bag are preserved.
func (m *PaymentMetadata) Merge(extra map[string]string) {
	for key, value := range extra {
		switch key {
		case constvars.MetadataKeyStripeAccount:
			m.StripeAccount = value
		case constvars.MetadataKeyBookingID:
			m.BookingID = value
		case constvars.MetadataKeyCompletedAt:
			m.CompletedAt = value
		case constvars.MetadataKeyCancelledAt:
			m.CancelledAt = value
		case constvars.MetadataKeyTransactionID:
			m.TransactionID = value
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]string)
			}
			m.Extra[key] = value
		}
	}
}

type Payment struct {
	ID                      string          `json:"id" bson:"_id"`
	AccountID               string          `json:"account_id" bson:"account_id"`
	ConversationID          string          `json:"conversation_id" bson:"conversation_id"`
	AppointmentID           string          `json:"appointment_id,omitempty" bson:"appointment_id,omitempty"`
	CustomerPhone           string          `json:"customer_phone" bson:"customer_phone"`
	CustomerName            string          `json:"customer_name" bson:"customer_name"`
	Amount                  int64           `json:"amount" bson:"amount"`
	Currency                string          `json:"currency" bson:"currency"`
	StripePaymentIntentID   string          `json:"stripe_payment_intent_id" bson:"stripe_payment_intent_id"`
	StripeCheckoutSessionID string          `json:"stripe_checkout_session_id" bson:"stripe_checkout_session_id"`
	Status                  PaymentStatus   `json:"status" bson:"status"`
	PaymentLink             string          `json:"payment_link,omitempty" bson:"payment_link,omitempty"`
	PaidAt                  *time.Time      `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt               time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at" bson:"updated_at"`
	Metadata                PaymentMetadata `json:"metadata" bson:"metadata"`
	Source                  string          `json:"source" bson:"source"`
}

func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}
