package accounts

import (
	"context"
	"sync"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

var (
	accountRepositoryInstance contracts.AccountRepository
	onceAccountRepository     sync.Once
)

func NewAccountMongoRepository(db *mongo.Client, dbName string) contracts.AccountRepository {
	onceAccountRepository.Do(func() {
		instance := &AccountMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
		}
		accountRepositoryInstance = instance
	})
	return accountRepositoryInstance
}

func (r *AccountMongoRepository) FindAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"_id": accountID}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}
