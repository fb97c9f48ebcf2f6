package routers

import (
	"fmt"
	"time"

	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/delivery/http/controllers"
	"vitalis-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "x-api-key", "Stripe-Signature"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/payments", func(r chi.Router) {
				attachPaymentRouter(r, middlewares, paymentController)
			})

			r.Route("/accounts", func(r chi.Router) {
				attachAccountRouter(r, middlewares, paymentController)
			})

			r.Route("/webhooks", func(r chi.Router) {
				attachWebhookRouter(r, middlewares, webhookController)
			})
		})
	})
}
