package conversations

import (
	"context"
	"sync"
	"time"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConversationMongoRepository struct {
	Collection *mongo.Collection
}

var (
	conversationRepositoryInstance contracts.ConversationRepository
	onceConversationRepository     sync.Once
)

func NewConversationMongoRepository(db *mongo.Client, dbName string) contracts.ConversationRepository {
	onceConversationRepository.Do(func() {
		instance := &ConversationMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionConversations),
		}
		conversationRepositoryInstance = instance
	})
	return conversationRepositoryInstance
}

func (r *ConversationMongoRepository) FindConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.Collection.FindOne(ctx, bson.M{"_id": conversationID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

func (r *ConversationMongoRepository) UpdateAppointmentInfo(ctx context.Context, conversationID string, info *models.AppointmentInfo, awaitingConfirmation bool) error {
	filter := bson.M{"_id": conversationID}
	update := bson.M{
		"$set": bson.M{
			"context.appointment_info":      info,
			"context.awaiting_confirmation": awaitingConfirmation,
			"updated_at":                    time.Now(),
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// SetAppointmentBookingID is the single writer of the booking id. The filter
// only matches while the field is absent, so concurrent confirmations collapse
// to one winner and the rest observe applied=false. The same write clears
// awaiting_confirmation: a booked conversation is no longer waiting.
func (r *ConversationMongoRepository) SetAppointmentBookingID(ctx context.Context, conversationID, bookingID string) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx, bookingIDFilter(conversationID), bookingIDUpdate(bookingID), options.Update().SetUpsert(false))
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}

func bookingIDFilter(conversationID string) bson.M {
	return bson.M{
		"_id": conversationID,
		"context.appointment_info.ghl_appointment_id": bson.M{"$exists": false},
	}
}

func bookingIDUpdate(bookingID string) bson.M {
	return bson.M{
		"$set": bson.M{
			"context.appointment_info.ghl_appointment_id": bookingID,
			"context.awaiting_confirmation":               false,
			"updated_at":                                  time.Now(),
		},
	}
}

func (r *ConversationMongoRepository) CancelAppointment(ctx context.Context, conversationID string) error {
	filter := bson.M{"_id": conversationID}
	update := bson.M{
		"$set": bson.M{
			"context.awaiting_confirmation": false,
			"updated_at":                    time.Now(),
		},
		"$unset": bson.M{
			"context.appointment_info": "",
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
