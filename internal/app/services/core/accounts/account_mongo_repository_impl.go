package accounts

import (
	"context"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Client, dbName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *AccountMongoRepository) FindAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	var account models.Account
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}
