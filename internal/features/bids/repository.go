package bids

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrInvalidBidID = errors.New("Invalid bid ID")
	ErrDuplicateBid = errors.New("You have already placed a bid on this job")
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("bids")

	// The unique index backs the one-bid-per-user-per-job rule at the store
	// level, closing the window between the pre-insert check and the insert.
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "jobId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "buyer", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// Exists reports whether email already placed a bid on jobID.
func (r *Repository) Exists(ctx context.Context, email, jobID string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"email": email, "jobId": jobID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) Insert(ctx context.Context, bid *Bid) error {
	result, err := r.collection.InsertOne(ctx, bid)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBid
		}
		return err
	}

	bid.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// ListForUser returns the bids a user placed, or the bids received on their
// jobs when asBuyer is set.
func (r *Repository) ListForUser(ctx context.Context, email string, asBuyer bool) ([]Bid, error) {
	filter := bson.M{"email": email}
	if asBuyer {
		filter = bson.M{"buyer": email}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bids []Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, err
	}

	if bids == nil {
		bids = []Bid{}
	}

	return bids, nil
}

// UpdateStatus sets the status field only. No value validation, per the
// original contract.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*UpdateOutcome, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}

	return &UpdateOutcome{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
