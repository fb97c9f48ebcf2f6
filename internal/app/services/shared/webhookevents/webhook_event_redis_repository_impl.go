package webhookevents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type webhookEventRedisRepository struct {
	RedisClient *redis.Client
}

var (
	webhookEventRepositoryInstance contracts.WebhookEventRepository
	onceWebhookEventRepository     sync.Once
)

func NewWebhookEventRedisRepository(redisClient *redis.Client) contracts.WebhookEventRepository {
	onceWebhookEventRepository.Do(func() {
		instance := &webhookEventRedisRepository{
			RedisClient: redisClient,
		}
		webhookEventRepositoryInstance = instance
	})
	return webhookEventRepositoryInstance
}

// CheckAndMarkProcessed relies on SETNX so concurrent deliveries of the same
// event resolve to exactly one first-seen winner.
func (r *webhookEventRedisRepository) CheckAndMarkProcessed(ctx context.Context, eventID string) (bool, error) {
	key := fmt.Sprintf(constvars.StripeWebhookEventRedisKeyFormat, eventID)
	retention := constvars.WebhookEventDedupRetentionInHours * time.Hour

	firstSeen, err := r.RedisClient.SetNX(ctx, key, time.Now().Format(time.RFC3339), retention).Result()
	if err != nil {
		return false, exceptions.ErrRedisSetData(err)
	}
	return firstSeen, nil
}
