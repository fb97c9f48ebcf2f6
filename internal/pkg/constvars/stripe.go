package constvars

const (
	StripeEventCheckoutSessionCompleted = "checkout.session.completed"

	StripeWebhookEventRedisKeyFormat = "stripe:webhook:event:%s"
	StripeWebhookArchiveObjectFormat = "stripe/%s/%s.json"
)
