package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "VTLS_SVC_"
)

const (
	PaymentSourceWhatsApp = "vitalis-whatsapp"
	PaymentSourceConnect  = "vitalis-connect"
)

// Metadata keys carried on a payment record. Known keys are promoted into
// the typed metadata struct; anything else lands in the residual map.
const (
	MetadataKeyStripeAccount = "stripe_account"
	MetadataKeyExpiresAt     = "expires_at"
	MetadataKeyBookingID     = "booking_id"
	MetadataKeyCompletedAt   = "completed_at"
	MetadataKeyCancelledAt   = "cancelled_at"
	MetadataKeyTransactionID = "transaction_id"
	MetadataKeySource        = "source"
)

const (
	PaymentStatusCompletedMirror = "completed"
)

const (
	AppointmentLengthInMinutes        = 50
	CheckoutSessionExpiryInMinutes    = 30
	WebhookEventDedupRetentionInHours = 24
)
