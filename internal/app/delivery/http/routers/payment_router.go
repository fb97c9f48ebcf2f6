package routers

import (
	"vitalis-service/internal/app/delivery/http/controllers"
	"vitalis-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRouter(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	// Browser-facing checkout callbacks, no auth: Stripe redirects the
	// customer here and the handlers never expose payment state.
	router.Get("/success", paymentController.PaymentSuccessCallback)
	router.Get("/cancel", paymentController.PaymentCancelCallback)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireInternalAPIKey)
		r.Post("/checkout-session", paymentController.CreateCheckoutSession)
		r.Get("/{paymentID}", paymentController.GetPayment)
		r.Get("/stats/{accountID}", paymentController.GetPaymentStats)
		r.Get("/conversation/{conversationID}", paymentController.GetPaymentsByConversation)
	})
}

func attachAccountRouter(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireInternalAPIKey)
		r.Get("/{accountID}/connect-status", paymentController.GetConnectAccountStatus)
		r.Post("/{accountID}/connect-link", paymentController.CreateConnectAccountLink)
	})
}
