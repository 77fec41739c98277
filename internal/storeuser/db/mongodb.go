package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/storeuser"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "store_users"

var (
	ErrStoreUserNotFound = errors.New("store user not found")
	ErrInvalidID         = errors.New("invalid store user id")
)

type storeUserDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StoreID     string             `bson:"store_id"`
	Name        string             `bson:"name"`
	PhoneNumber string             `bson:"phone_number"`
	Email       string             `bson:"email"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *storeUserDocument) toDomain() *storeuser.StoreUser {
	return &storeuser.StoreUser{
		ID:          d.ID.Hex(),
		StoreID:     d.StoreID,
		Name:        d.Name,
		PhoneNumber: d.PhoneNumber,
		Email:       d.Email,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func New(database *mongo.Database, logger *zap.Logger) *repository {
	return &repository{
		collection: database.Collection(collectionName),
		logger:     logger,
	}
}

func (r *repository) List(ctx context.Context, storeID string) ([]storeuser.StoreUser, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []storeUserDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]storeuser.StoreUser, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *doc.toDomain())
	}

	return users, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*storeuser.StoreUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc storeUserDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreUserNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch storeuser.Patch) (*storeuser.StoreUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.PhoneNumber != nil {
		set["phone_number"] = *patch.PhoneNumber
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}

	var doc storeUserDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreUserNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "store_id": storeID})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrStoreUserNotFound
	}

	return nil
}
