package constvars

const (
	ResponseSuccess = "Success"
	ResponseUnknown = "unknown"

	CheckoutSessionCreatedMessage  = "Checkout session created successfully"
	PaymentRetrievedMessage        = "Payment retrieved successfully"
	PaymentListRetrievedMessage    = "Payments retrieved successfully"
	PaymentStatsRetrievedMessage   = "Payment statistics retrieved successfully"
	ConnectStatusRetrievedMessage  = "Connect account status retrieved successfully"
	WebhookAcknowledgedMessage     = "Webhook acknowledged"
	WebhookDuplicateMessage        = "Webhook event already processed"
	ConnectAccountLinkMessage      = "Connect onboarding link created successfully"
	PaymentCancelledMessage        = "Payment cancelled successfully"
)

// Customer-facing WhatsApp messages, Spanish per product locale.
const (
	WhatsAppPaymentConfirmedMessage = "✅ ¡Pago confirmado y cita agendada!\n\n" +
		"📅 Fecha: %s\n" +
		"👤 Nombre: %s\n" +
		"📱 Teléfono: %s\n" +
		"📍 %s\n\n" +
		"Te esperamos. ¡Gracias por tu preferencia!"

	WhatsAppPaymentConfirmedDegradedMessage = "✅ Pago confirmado exitosamente.\n\n" +
		"Hubo un problema al agendar tu cita automáticamente. " +
		"Nuestro equipo te contactará pronto para confirmar tu cita.\n\n" +
		"¡Gracias por tu preferencia!"

	WhatsAppPaymentCancelledMessage = "❌ El proceso de pago fue cancelado.\n\n" +
		"Si necesitas ayuda o quieres intentar nuevamente, " +
		"solo escríbeme y con gusto te asisto.\n\n" +
		"¿Hay algo en lo que pueda ayudarte?"
)
