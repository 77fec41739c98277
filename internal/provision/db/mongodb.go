package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/provision"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "provisioning_attempts"

var (
	ErrAttemptNotFound = errors.New("provisioning attempt not found")
	ErrInvalidID       = errors.New("invalid attempt id")
)

type attemptDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	StoreID    string             `bson:"store_id"`
	Slug       string             `bson:"slug"`
	Status     string             `bson:"status"`
	StepsDone  []string           `bson:"steps_done"`
	FailedStep string             `bson:"failed_step,omitempty"`
	RepoName   string             `bson:"repo_name,omitempty"`
	RepoURL    string             `bson:"repo_url,omitempty"`
	ProjectID  string             `bson:"project_id,omitempty"`
	DeployURL  string             `bson:"deploy_url,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *attemptDocument) toDomain() *provision.Attempt {
	return &provision.Attempt{
		ID:         d.ID.Hex(),
		StoreID:    d.StoreID,
		Slug:       d.Slug,
		Status:     d.Status,
		StepsDone:  d.StepsDone,
		FailedStep: d.FailedStep,
		RepoName:   d.RepoName,
		RepoURL:    d.RepoURL,
		ProjectID:  d.ProjectID,
		DeployURL:  d.DeployURL,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
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

func (r *repository) Create(ctx context.Context, attempt provision.Attempt) (*provision.Attempt, error) {
	now := time.Now().UTC()

	doc := attemptDocument{
		ID:        primitive.NewObjectID(),
		StoreID:   attempt.StoreID,
		Slug:      attempt.Slug,
		Status:    attempt.Status,
		StepsDone: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) MarkStep(ctx context.Context, id string, stepName string, state provision.State) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"steps_done": stepName},
			"$set": bson.M{
				"repo_name":  state.RepoName,
				"repo_url":   state.RepoURL,
				"project_id": state.ProjectID,
				"deploy_url": state.DeployURL,
				"updated_at": time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrAttemptNotFound
	}

	return nil
}

func (r *repository) Finish(ctx context.Context, id string, status string, failedStep string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if failedStep != "" {
		set["failed_step"] = failedStep
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrAttemptNotFound
	}

	return nil
}
