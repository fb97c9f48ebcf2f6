package constvars

// Client-facing messages. These never expose internal detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientPaymentNotFound               = "Payment not found"
	ErrClientAccountNotFound               = "Account not found"
	ErrClientPaymentAmountInvalid          = "Payment amount must be greater than zero"
	ErrClientPaymentStateInvalid           = "Payment is not in a state that allows this operation"
	ErrClientPaymentProviderUnavailable    = "Payment provider is currently unavailable, please try again later"
	ErrClientWebhookRejected               = "Webhook payload rejected"
)

// Dev-facing messages.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevCannotParseJSON           = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "Failed to marshal JSON payload"
	ErrDevMissingRequestID          = "Request ID missing from request context"
	ErrDevInvalidAPIKey             = "Provided API key does not match the configured internal API key"
	ErrDevServerDeadlineExceeded    = "Request deadline exceeded"
	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToIterateCursor   = "MongoDB failed to iterate cursor"
	ErrDevRedisFailedToSetData      = "Redis failed to set data"
	ErrDevRabbitMQFailedToPublish   = "RabbitMQ failed to publish message to queue: %s"
	ErrDevMinioFailedToCreateObject = "Minio failed to create object in bucket: %s"
	ErrDevPaymentNotFound           = "Payment does not exist: %s"
	ErrDevAccountNotFound           = "Account does not exist: %s"
	ErrDevPaymentAmountInvalid      = "Payment amount must be greater than zero"
	ErrDevPaymentIllegalTransition  = "Illegal payment status transition from %s to %s"
	ErrDevStripeCreateSession       = "Stripe failed to create checkout session"
	ErrDevStripeRetrieveSession     = "Stripe failed to retrieve checkout session"
	ErrDevStripeRetrieveAccount     = "Stripe failed to retrieve connect account"
	ErrDevStripeCreateAccountLink   = "Stripe failed to create connect account link"
	ErrDevWebhookInvalidPayload     = "Webhook payload could not be parsed"
	ErrDevWebhookInvalidSignature   = "Webhook signature verification failed"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request"
	ErrDevGHLCreateAppointment      = "GoHighLevel appointment creation failed"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"len":      "must have length %s",
	"oneof":    "must be one of: %s",
	"email":    "must be a valid email address",
	"url":      "must be a valid URL",
	"e164":         "must be a valid phone number in international format",
	"phone_number": "must be a valid phone number",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}
