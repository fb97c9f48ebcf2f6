package payments

import (
	"testing"
	"time"

	"vitalis-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAccountPaymentsQueryParsesDateBounds(t *testing.T) {
	query := accountPaymentsQuery("acc-1", requests.PaymentAccountFilter{
		Status:    "completed",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})

	assert.Equal(t, "acc-1", query["account_id"])
	assert.Equal(t, "completed", query["status"])

	dateRange, ok := query["created_at"].(bson.M)
	assert.True(t, ok)

	start, ok := dateRange["$gte"].(time.Time)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)

	// Date-only end bound covers the whole day.
	end, ok := dateRange["$lt"].(time.Time)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestAccountPaymentsQueryAcceptsRFC3339Bounds(t *testing.T) {
	query := accountPaymentsQuery("acc-1", requests.PaymentAccountFilter{
		StartDate: "2026-03-01T10:00:00Z",
		EndDate:   "2026-03-01T18:30:00Z",
	})

	dateRange, ok := query["created_at"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), dateRange["$gte"])
	assert.Equal(t, time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC), dateRange["$lte"])
}

func TestAccountPaymentsQueryDropsUnparseableBounds(t *testing.T) {
	query := accountPaymentsQuery("acc-1", requests.PaymentAccountFilter{
		StartDate: "not-a-date",
	})

	assert.Equal(t, "acc-1", query["account_id"])
	assert.NotContains(t, query, "created_at")
	assert.NotContains(t, query, "status")
}
