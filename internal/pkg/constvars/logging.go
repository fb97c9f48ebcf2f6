package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingQueryParamsKey    = "query_params"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorTypeKey      = "error_type"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingPaymentIDKey      = "payment_id"
	LoggingPaymentStatusKey  = "payment_status"
	LoggingConversationIDKey = "conversation_id"
	LoggingAccountIDKey      = "account_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingSessionIDKey      = "session_id"
	LoggingEventIDKey        = "event_id"
	LoggingEventTypeKey      = "event_type"
	LoggingAmountKey         = "amount"
	LoggingQueueNameKey      = "queue_name"
	LoggingBucketNameKey     = "bucket_name"
)
