package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vitalis-service/internal/app/config"
	"vitalis-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireInternalAPIKey(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-internal-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			InternalAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/payments/pay-1", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireInternalAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/payments/pay-1", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireInternalAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing API key")
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/payments/pay-1", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireInternalAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("Unconfigured Key Rejects Everything", func(t *testing.T) {
		emptyMiddlewares := &Middlewares{
			Log:            logger,
			InternalConfig: &config.InternalConfig{},
		}

		req := httptest.NewRequest("GET", "/api/v1/payments/pay-1", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "")

		rr := httptest.NewRecorder()
		handler := emptyMiddlewares.RequireInternalAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized when no key is configured")
	})
}
