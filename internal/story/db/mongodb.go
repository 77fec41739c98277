package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/story"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "stories"

var (
	ErrStoryNotFound = errors.New("story not found")
	ErrInvalidID     = errors.New("invalid story id")
)

type storyDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StoreID   string             `bson:"store_id"`
	Title     string             `bson:"title"`
	Image     string             `bson:"image"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *storyDocument) toDomain() *story.Story {
	return &story.Story{
		ID:        d.ID.Hex(),
		StoreID:   d.StoreID,
		Title:     d.Title,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
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

func (r *repository) Create(ctx context.Context, data story.Story) (*story.Story, error) {
	now := time.Now().UTC()

	doc := storyDocument{
		ID:        primitive.NewObjectID(),
		StoreID:   data.StoreID,
		Title:     data.Title,
		Image:     data.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]story.Story, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []storyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	stories := make([]story.Story, 0, len(docs))
	for _, doc := range docs {
		stories = append(stories, *doc.toDomain())
	}

	return stories, nil
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch story.Patch) (*story.Story, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	var doc storyDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStoryNotFound
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
		return ErrStoryNotFound
	}

	return nil
}
