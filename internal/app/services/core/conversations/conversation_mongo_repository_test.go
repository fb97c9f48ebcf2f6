package conversations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBookingIDFilterMatchesOnlyUnbookedConversations(t *testing.T) {
	filter := bookingIDFilter("conv-1")

	assert.Equal(t, "conv-1", filter["_id"])
	assert.Equal(t, bson.M{"$exists": false}, filter["context.appointment_info.ghl_appointment_id"])
}

func TestBookingIDUpdateClearsAwaitingConfirmation(t *testing.T) {
	update := bookingIDUpdate("ghl-1")

	set, ok := update["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, "ghl-1", set["context.appointment_info.ghl_appointment_id"])
	assert.Equal(t, false, set["context.awaiting_confirmation"])
	assert.NotNil(t, set["updated_at"])
}
