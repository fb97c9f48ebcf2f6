package routers

import (
	"vitalis-service/internal/app/delivery/http/controllers"
	"vitalis-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRouter(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.WebhookController) {
	// Authenticated by the Stripe-Signature header, not the internal API key.
	router.Post("/stripe", ctrl.StripeWebhook)
}
