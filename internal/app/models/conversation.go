package models

import "time"

// AppointmentInfo is the booking in flight for a conversation. BookingID is
// only written once the calendar slot exists; it doubles as the idempotency
// guard for customer notifications.
type AppointmentInfo struct {
	PaymentID     string `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty" bson:"payment_status,omitempty"`
	Datetime      string `json:"datetime,omitempty" bson:"datetime,omitempty"`
	Name          string `json:"name,omitempty" bson:"name,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	Reason        string `json:"reason,omitempty" bson:"reason,omitempty"`
	BookingID     string `json:"ghl_appointment_id,omitempty" bson:"ghl_appointment_id,omitempty"`
}

type ConversationContext struct {
	UserName             string           `json:"user_name,omitempty" bson:"user_name,omitempty"`
	PhoneNumber          string           `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	AppointmentInfo      *AppointmentInfo `json:"appointment_info,omitempty" bson:"appointment_info,omitempty"`
	AwaitingConfirmation bool             `json:"awaiting_confirmation" bson:"awaiting_confirmation"`
	ConfirmationSentAt   *time.Time       `json:"confirmation_sent_at,omitempty" bson:"confirmation_sent_at,omitempty"`
}

type Conversation struct {
	ID          string              `json:"id" bson:"_id"`
	AccountID   string              `json:"account_id" bson:"account_id"`
	PhoneNumber string              `json:"phone_number" bson:"phone_number"`
	Status      string              `json:"status" bson:"status"`
	Context     ConversationContext `json:"context" bson:"context"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at"`
}
