package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/collection"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "collections"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrInvalidID          = errors.New("invalid collection id")
)

type collectionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StoreID     string             `bson:"store_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	ProductIDs  []string           `bson:"product_ids"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *collectionDocument) toDomain() *collection.Collection {
	productIDs := d.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return &collection.Collection{
		ID:          d.ID.Hex(),
		StoreID:     d.StoreID,
		Name:        d.Name,
		Description: d.Description,
		ProductIDs:  productIDs,
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

func (r *repository) Create(ctx context.Context, data collection.Collection) (*collection.Collection, error) {
	now := time.Now().UTC()

	doc := collectionDocument{
		ID:          primitive.NewObjectID(),
		StoreID:     data.StoreID,
		Name:        data.Name,
		Description: data.Description,
		ProductIDs:  data.ProductIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]collection.Collection, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []collectionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	collections := make([]collection.Collection, 0, len(docs))
	for _, doc := range docs {
		collections = append(collections, *doc.toDomain())
	}

	return collections, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*collection.Collection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc collectionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCollectionNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch collection.Patch) (*collection.Collection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ProductIDs != nil {
		set["product_ids"] = *patch.ProductIDs
	}

	var doc collectionDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCollectionNotFound
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
		return ErrCollectionNotFound
	}

	return nil
}
