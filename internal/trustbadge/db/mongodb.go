package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/trustbadge"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "trust_badges"

var (
	ErrTrustBadgeNotFound = errors.New("trust badge not found")
	ErrInvalidID          = errors.New("invalid trust badge id")
)

type trustBadgeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StoreID   string             `bson:"store_id"`
	TagCode   string             `bson:"tag_code"`
	Link      string             `bson:"link"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *trustBadgeDocument) toDomain() *trustbadge.TrustBadge {
	return &trustbadge.TrustBadge{
		ID:        d.ID.Hex(),
		StoreID:   d.StoreID,
		TagCode:   d.TagCode,
		Link:      d.Link,
		CreatedAt: d.CreatedAt,
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

func (r *repository) Create(ctx context.Context, data trustbadge.TrustBadge) (*trustbadge.TrustBadge, error) {
	doc := trustBadgeDocument{
		ID:        primitive.NewObjectID(),
		StoreID:   data.StoreID,
		TagCode:   data.TagCode,
		Link:      data.Link,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]trustbadge.TrustBadge, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []trustBadgeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	badges := make([]trustbadge.TrustBadge, 0, len(docs))
	for _, doc := range docs {
		badges = append(badges, *doc.toDomain())
	}

	return badges, nil
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
		return ErrTrustBadgeNotFound
	}

	return nil
}
