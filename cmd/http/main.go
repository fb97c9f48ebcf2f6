package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/delivery/http/controllers"
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/delivery/http/routers"
	"vitalis-service/internal/app/drivers/database"
	"vitalis-service/internal/app/drivers/logger"
	"vitalis-service/internal/app/drivers/messaging"
	"vitalis-service/internal/app/drivers/storage"
	"vitalis-service/internal/app/services/core/accounts"
	"vitalis-service/internal/app/services/core/appointments"
	"vitalis-service/internal/app/services/core/confirmations"
	"vitalis-service/internal/app/services/core/conversations"
	"vitalis-service/internal/app/services/core/payments"
	"vitalis-service/internal/app/services/core/webhook"
	"vitalis-service/internal/app/services/shared/archive"
	"vitalis-service/internal/app/services/shared/stripegateway"
	"vitalis-service/internal/app/services/shared/webhookevents"
	"vitalis-service/internal/app/services/shared/whatsapp"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	stripeclient "github.com/stripe/stripe-go/v79/client"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error closing connections: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Stripe
	stripeClient := stripeclient.New(bootstrap.InternalConfig.Stripe.SecretKey, nil)
	checkoutGateway := stripegateway.NewStripeGatewayService(stripeClient, bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	conversationRepository := conversations.NewConversationMongoRepository(bootstrap.MongoDB, dbName)
	accountRepository := accounts.NewAccountMongoRepository(bootstrap.MongoDB, dbName)
	webhookEventRepository := webhookevents.NewWebhookEventRedisRepository(bootstrap.Redis)
	payloadArchive := archive.NewPayloadArchiveMinio(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// WhatsApp dispatch
	whatsAppService, err := whatsapp.NewWhatsAppService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQWhatsAppQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize WhatsApp service: %v", err)
	}

	// Usecases
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, accountRepository, checkoutGateway, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentService := appointments.NewAppointmentService(conversationRepository, paymentRepository, bootstrap.InternalConfig, bootstrap.Logger)
	confirmationUsecase := confirmations.NewConfirmationUsecase(
		conversationRepository,
		accountRepository,
		paymentUsecase,
		appointmentService,
		whatsAppService,
		bootstrap.Logger,
	)
	webhookUsecase := webhook.NewWebhookUsecase(checkoutGateway, webhookEventRepository, payloadArchive, confirmationUsecase, bootstrap.Logger)

	// Controllers
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, confirmationUsecase)
	webhookController := controllers.NewWebhookController(bootstrap.Logger, webhookUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, paymentController, webhookController)
}
