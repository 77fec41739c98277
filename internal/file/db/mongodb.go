package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/file"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "files"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidID    = errors.New("invalid file id")
)

type fileDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	StoreID    string             `bson:"store_id"`
	Name       string             `bson:"name"`
	URL        string             `bson:"url"`
	MIMEType   string             `bson:"mime_type"`
	Size       int64              `bson:"size"`
	ObjectKey  string             `bson:"object_key"`
	UploadedAt time.Time          `bson:"uploaded_at"`
}

func (d *fileDocument) toDomain() *file.File {
	return &file.File{
		ID:         d.ID.Hex(),
		StoreID:    d.StoreID,
		Name:       d.Name,
		URL:        d.URL,
		MIMEType:   d.MIMEType,
		Size:       d.Size,
		ObjectKey:  d.ObjectKey,
		UploadedAt: d.UploadedAt,
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

func (r *repository) Create(ctx context.Context, data file.File) (*file.File, error) {
	doc := fileDocument{
		ID:         primitive.NewObjectID(),
		StoreID:    data.StoreID,
		Name:       data.Name,
		URL:        data.URL,
		MIMEType:   data.MIMEType,
		Size:       data.Size,
		ObjectKey:  data.ObjectKey,
		UploadedAt: time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]file.File, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []fileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	files := make([]file.File, 0, len(docs))
	for _, doc := range docs {
		files = append(files, *doc.toDomain())
	}

	return files, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*file.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc fileDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFileNotFound
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
		return ErrFileNotFound
	}

	return nil
}
