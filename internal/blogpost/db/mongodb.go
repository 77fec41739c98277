package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/blogpost"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "blog_posts"

var (
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrInvalidID        = errors.New("invalid blog post id")
)

type blogPostDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	StoreID          string             `bson:"store_id"`
	Title            string             `bson:"title"`
	SEOTitle         string             `bson:"seo_title"`
	ShortDescription string             `bson:"short_description"`
	Body             string             `bson:"body"`
	AuthorID         string             `bson:"author_id"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (d *blogPostDocument) toDomain() *blogpost.BlogPost {
	return &blogpost.BlogPost{
		ID:               d.ID.Hex(),
		StoreID:          d.StoreID,
		Title:            d.Title,
		SEOTitle:         d.SEOTitle,
		ShortDescription: d.ShortDescription,
		Body:             d.Body,
		AuthorID:         d.AuthorID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
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

func (r *repository) Create(ctx context.Context, data blogpost.BlogPost) (*blogpost.BlogPost, error) {
	now := time.Now().UTC()

	doc := blogPostDocument{
		ID:               primitive.NewObjectID(),
		StoreID:          data.StoreID,
		Title:            data.Title,
		SEOTitle:         data.SEOTitle,
		ShortDescription: data.ShortDescription,
		Body:             data.Body,
		AuthorID:         data.AuthorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]blogpost.BlogPost, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []blogPostDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	posts := make([]blogpost.BlogPost, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, *doc.toDomain())
	}

	return posts, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*blogpost.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc blogPostDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogPostNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch blogpost.Patch) (*blogpost.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.SEOTitle != nil {
		set["seo_title"] = *patch.SEOTitle
	}
	if patch.ShortDescription != nil {
		set["short_description"] = *patch.ShortDescription
	}
	if patch.Body != nil {
		set["body"] = *patch.Body
	}

	var doc blogPostDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlogPostNotFound
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
		return ErrBlogPostNotFound
	}

	return nil
}
