package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "stores"

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrInvalidID     = errors.New("invalid store id")
)

type storeDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	StoreID      string             `bson:"store_id"`
	Title        string             `bson:"title"`
	PhoneNumber  string             `bson:"phone_number"`
	PasswordHash []byte             `bson:"password_hash"`
	RepoURL      string             `bson:"repo_url"`
	DeployURL    string             `bson:"deploy_url"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *storeDocument) toDomain() *store.Store {
	return &store.Store{
		ID:           d.ID.Hex(),
		StoreID:      d.StoreID,
		Title:        d.Title,
		PhoneNumber:  d.PhoneNumber,
		PasswordHash: d.PasswordHash,
		RepoURL:      d.RepoURL,
		DeployURL:    d.DeployURL,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
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

func (r *repository) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	now := time.Now().UTC()

	doc := storeDocument{
		ID:           primitive.NewObjectID(),
		StoreID:      data.StoreID,
		Title:        data.Title,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		RepoURL:      data.RepoURL,
		DeployURL:    data.DeployURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*store.Store, error) {
	var doc storeDocument
	err := r.collection.FindOne(ctx, bson.M{"phone_number": phoneNumber}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*store.Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc storeDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Update(ctx context.Context, id string, patch store.Patch) (*store.Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.PhoneNumber != nil {
		set["phone_number"] = *patch.PhoneNumber
	}

	var doc storeDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoreNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrStoreNotFound
	}

	return nil
}
