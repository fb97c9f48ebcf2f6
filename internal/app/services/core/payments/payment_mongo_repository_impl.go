package payments

import (
	"context"
	"sync"
	"time"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

var (
	paymentRepositoryInstance contracts.PaymentRepository
	oncePaymentRepository     sync.Once
)

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	oncePaymentRepository.Do(func() {
		instance := &PaymentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
		}
		paymentRepositoryInstance = instance
	})
	return paymentRepositoryInstance
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	_, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return payment, nil
}

func (r *PaymentMongoRepository) FindPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.Collection.FindOne(ctx, bson.M{"_id": paymentID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) FindPaymentByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.Collection.FindOne(ctx, bson.M{"stripe_checkout_session_id": sessionID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) FindPaymentsByConversationID(ctx context.Context, conversationID string) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"conversation_id": conversationID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}

func (r *PaymentMongoRepository) FindPaymentsByAccountID(ctx context.Context, accountID string, filter requests.PaymentAccountFilter) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	query := accountPaymentsQuery(accountID, filter)
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}

// accountPaymentsQuery builds the account listing filter. created_at is stored
// as a BSON datetime, so the date bounds are parsed before entering the range;
// an unparseable bound is dropped instead of comparing a string against dates.
// A date-only end bound covers the whole day.
func accountPaymentsQuery(accountID string, filter requests.PaymentAccountFilter) bson.M {
	query := bson.M{"account_id": accountID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	dateRange := bson.M{}
	if start, ok := parseFilterDate(filter.StartDate); ok {
		dateRange["$gte"] = start
	}
	if filter.EndDate != "" {
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			dateRange["$lt"] = end.AddDate(0, 0, 1)
		} else if end, ok := parseFilterDate(filter.EndDate); ok {
			dateRange["$lte"] = end
		}
	}
	if len(dateRange) > 0 {
		query["created_at"] = dateRange
	}
	return query
}

func parseFilterDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

func (r *PaymentMongoRepository) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	filter := bson.M{"_id": payment.ID}
	update := bson.M{"$set": payment}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
