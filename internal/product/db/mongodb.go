package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/product"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "products"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidID       = errors.New("invalid product id")
)

type propertyDocument struct {
	Name  string `bson:"name"`
	Value string `bson:"value"`
}

type colorVariantDocument struct {
	Color    string `bson:"color"`
	Quantity string `bson:"quantity"`
}

type productDocument struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	StoreID       string                 `bson:"store_id"`
	Name          string                 `bson:"name"`
	Description   string                 `bson:"description"`
	Price         string                 `bson:"price"`
	Discount      int                    `bson:"discount"`
	Status        string                 `bson:"status"`
	CategoryID    string                 `bson:"category_id"`
	Properties    []propertyDocument     `bson:"properties"`
	ColorVariants []colorVariantDocument `bson:"color_variants"`
	Image         string                 `bson:"image"`
	CreatedAt     time.Time              `bson:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at"`
}

func (d *productDocument) toDomain() *product.Product {
	properties := make([]product.Property, 0, len(d.Properties))
	for _, p := range d.Properties {
		properties = append(properties, product.Property{Name: p.Name, Value: p.Value})
	}

	variants := make([]product.ColorVariant, 0, len(d.ColorVariants))
	for _, v := range d.ColorVariants {
		variants = append(variants, product.ColorVariant{Color: v.Color, Quantity: v.Quantity})
	}

	return &product.Product{
		ID:            d.ID.Hex(),
		StoreID:       d.StoreID,
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		Discount:      d.Discount,
		Status:        d.Status,
		CategoryID:    d.CategoryID,
		Properties:    properties,
		ColorVariants: variants,
		Image:         d.Image,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toPropertyDocuments(properties []product.Property) []propertyDocument {
	docs := make([]propertyDocument, 0, len(properties))
	for _, p := range properties {
		docs = append(docs, propertyDocument{Name: p.Name, Value: p.Value})
	}
	return docs
}

func toColorVariantDocuments(variants []product.ColorVariant) []colorVariantDocument {
	docs := make([]colorVariantDocument, 0, len(variants))
	for _, v := range variants {
		docs = append(docs, colorVariantDocument{Color: v.Color, Quantity: v.Quantity})
	}
	return docs
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

func (r *repository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	now := time.Now().UTC()

	doc := productDocument{
		ID:            primitive.NewObjectID(),
		StoreID:       data.StoreID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Discount:      data.Discount,
		Status:        data.Status,
		CategoryID:    data.CategoryID,
		Properties:    toPropertyDocuments(data.Properties),
		ColorVariants: toColorVariantDocuments(data.ColorVariants),
		Image:         data.Image,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]product.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, *doc.toDomain())
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*product.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc productDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

// CountByCategory reports how many products of the tenant still
// reference the category; used to block category deletion.
func (r *repository) CountByCategory(ctx context.Context, storeID, categoryID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"store_id": storeID, "category_id": categoryID})
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch product.Patch) (*product.Product, error) {
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
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Discount != nil {
		set["discount"] = *patch.Discount
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.CategoryID != nil {
		set["category_id"] = *patch.CategoryID
	}
	if patch.Properties != nil {
		set["properties"] = toPropertyDocuments(*patch.Properties)
	}
	if patch.ColorVariants != nil {
		set["color_variants"] = toColorVariantDocuments(*patch.ColorVariants)
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	var doc productDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
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
		return ErrProductNotFound
	}

	return nil
}
