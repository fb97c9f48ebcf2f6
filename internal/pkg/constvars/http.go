package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML             = "text/html"
	MIMETextPlain            = "text/plain"
	MIMEApplicationJSON      = "application/json"
	MIMETextHTMLCharsetUTF8  = "text/html; charset=utf-8"
	MIMEApplicationJSONUTF8  = "application/json; charset=utf-8"
	MIMEApplicationOctetStrm = "application/octet-stream"
)

const (
	HeaderContentType     = "Content-Type"
	HeaderXRequestID      = "X-Request-Id"
	HeaderXAPIKey         = "x-api-key"
	HeaderStripeSignature = "Stripe-Signature"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusConflict         = 409
	StatusGone             = 410
	StatusUnprocessable    = 422
	StatusTooManyRequests  = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)
