package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/category"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "categories"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidID        = errors.New("invalid category id")
)

type categoryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StoreID   string             `bson:"store_id"`
	Name      string             `bson:"name"`
	Children  []string           `bson:"children"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *categoryDocument) toDomain() *category.Category {
	children := d.Children
	if children == nil {
		children = []string{}
	}

	return &category.Category{
		ID:        d.ID.Hex(),
		StoreID:   d.StoreID,
		Name:      d.Name,
		Children:  children,
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

func (r *repository) Create(ctx context.Context, data category.Category) (*category.Category, error) {
	now := time.Now().UTC()

	doc := categoryDocument{
		ID:        primitive.NewObjectID(),
		StoreID:   data.StoreID,
		Name:      data.Name,
		Children:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]category.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	categories := make([]category.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, *doc.toDomain())
	}

	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*category.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc categoryDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch category.Patch) (*category.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}

	var doc categoryDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) AddChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error) {
	oid, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc categoryDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{
			"$addToSet": bson.M{"children": childID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) RemoveChild(ctx context.Context, storeID, parentID, childID string) (*category.Category, error) {
	oid, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc categoryDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID, "children": childID},
		bson.M{
			"$pull": bson.M{"children": childID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

// HasParent reports whether any category of the tenant already lists
// the id among its children.
func (r *repository) HasParent(ctx context.Context, storeID, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"store_id": storeID, "children": id})
	if err != nil {
		return false, err
	}

	return count > 0, nil
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
		return ErrCategoryNotFound
	}

	return nil
}
