package models

// Account is a tenant doctor/clinic profile. StripeConnectAccountID is the
// connected account that receives the appointment price minus the platform fee.
type Account struct {
	ID                     string `json:"id" bson:"_id"`
	Name                   string `json:"name" bson:"name"`
	Email                  string `json:"email" bson:"email"`
	PhoneNumberID          string `json:"phone_number_id" bson:"phone_number_id"`
	CalendarID             string `json:"calendar_id" bson:"calendar_id"`
	LocationID             string `json:"location_id" bson:"location_id"`
	AssignedUserID         string `json:"assigned_user_id" bson:"assigned_user_id"`
	StripeEnabled          bool   `json:"stripe_enabled" bson:"stripe_enabled"`
	StripeConnectAccountID string `json:"stripe_connect_account_id" bson:"stripe_connect_account_id"`
	AppointmentPrice       int64  `json:"appointment_price" bson:"appointment_price"`
	Currency               string `json:"currency" bson:"currency"`
	PaymentDescription     string `json:"payment_description" bson:"payment_description"`
	Address                string `json:"address,omitempty" bson:"address,omitempty"`
}
