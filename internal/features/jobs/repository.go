package jobs

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidJobID = errors.New("Invalid job ID")

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("jobs")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "buyer.email", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// List returns jobs matching q. An empty query returns every job in
// store-default order.
func (r *Repository) List(ctx context.Context, q ListQuery) ([]Job, error) {
	filter, opts := buildListQuery(q)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	if jobs == nil {
		jobs = []Job{}
	}

	return jobs, nil
}

func (r *Repository) ListByBuyer(ctx context.Context, email string) ([]Job, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"buyer.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	if jobs == nil {
		jobs = []Job{}
	}

	return jobs, nil
}

// GetByID returns (nil, nil) when no job matches.
func (r *Repository) GetByID(ctx context.Context, id string) (*Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	var job Job
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &job, nil
}

func (r *Repository) Create(ctx context.Context, job *Job) error {
	job.BidCount = 0

	result, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return err
	}

	job.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Upsert replaces the job fields at id, creating the document when no job
// with that id exists. The raw store outcome is returned to the caller.
func (r *Repository) Upsert(ctx context.Context, id string, req JobRequest) (*UpdateOutcome, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	update := bson.M{"$set": bson.M{
		"title":       req.Title,
		"category":    req.Category,
		"deadline":    req.Deadline,
		"description": req.Description,
		"min_price":   req.MinPrice,
		"max_price":   req.MaxPrice,
		"buyer":       req.Buyer,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	outcome := &UpdateOutcome{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		outcome.UpsertedID = oid.Hex()
	}

	return outcome, nil
}

// Delete is idempotent: a miss reports deletedCount 0 rather than an error.
func (r *Repository) Delete(ctx context.Context, id string) (*DeleteOutcome, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, err
	}

	return &DeleteOutcome{DeletedCount: result.DeletedCount}, nil
}

// IncrementBidCount bumps the denormalized counter on the referenced job.
// Called by the bid service after a successful bid insert.
func (r *Repository) IncrementBidCount(ctx context.Context, jobID string, delta int) error {
	objectID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return ErrInvalidJobID
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"bid_count": delta}})
	return err
}
