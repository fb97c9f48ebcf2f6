package middlewares

import (
	"crypto/subtle"
	"net/http"

	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"
)

// RequireInternalAPIKey guards the internal query endpoints. Unlike the
// public checkout callbacks these never serve browsers, so a missing key is
// rejected outright.
func (m *Middlewares) RequireInternalAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		configuredKey := m.InternalConfig.App.InternalAPIKey

		if configuredKey == "" || apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
			requestID := utils.GetRequestID(r.Context())
			utils.LogSecurityEvent(m.Log, "internal_api_key_rejected", requestID, "warning")
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
