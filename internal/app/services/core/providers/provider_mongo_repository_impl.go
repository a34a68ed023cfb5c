package providers

import (
	"context"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderProfileMongoRepository struct {
	Collection *mongo.Collection
}

// NewProviderProfileMongoRepository returns the concrete type so bootstrap
// can call EnsureIndexes before wiring it behind the repository contract.
func NewProviderProfileMongoRepository(db *mongo.Client, dbName string) *ProviderProfileMongoRepository {
	return &ProviderProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviderProfiles),
	}
}

// EnsureIndexes creates the unique index backing NIC uniqueness. Called
// once at bootstrap, before the server accepts traffic.
func (r *ProviderProfileMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nic", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ProviderProfileMongoRepository) CreateProviderProfile(ctx context.Context, entity *models.ProviderProfile) (*models.ProviderProfile, error) {
	// Stamp a copy so the caller's record stays untouched.
	stored := *entity
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, stored)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrProviderProfileDuplicateNIC(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	stored.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &stored, nil
}

func (r *ProviderProfileMongoRepository) UpdateProviderProfile(ctx context.Context, profileID string, entity *models.ProviderProfile) (*models.ProviderProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	stamped := *entity
	stamped.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": stamped.ConvertToBsonM()}

	var updated models.ProviderProfile
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(false),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrProviderProfileDuplicateNIC(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}

func (r *ProviderProfileMongoRepository) FindProviderProfileByID(ctx context.Context, profileID string) (*models.ProviderProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var profile models.ProviderProfile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProviderProfileMongoRepository) FindProviderProfileByAccountID(ctx context.Context, accountID string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.Collection.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProviderProfileMongoRepository) DeleteProviderProfile(ctx context.Context, profileID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
