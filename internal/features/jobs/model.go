package jobs

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Buyer identifies the job owner. Email is the identity used for lookups.
type Buyer struct {
	Email string `bson:"email" json:"email" example:"a@x.com"`
	Name  string `bson:"name,omitempty" json:"name,omitempty" example:"Alice"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Job is a posted job document.
// @Description Job posting with its denormalized bid counter
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id" example:"507f1f77bcf86cd799439011"`
	Title       string             `bson:"title" json:"title" example:"Build a deck"`
	Category    string             `bson:"category" json:"category" example:"carpentry"`
	Deadline    string             `bson:"deadline" json:"deadline" example:"2024-06-01"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	MinPrice    float64            `bson:"min_price,omitempty" json:"min_price,omitempty" example:"100"`
	MaxPrice    float64            `bson:"max_price,omitempty" json:"max_price,omitempty" example:"200"`
	Buyer       Buyer              `bson:"buyer" json:"buyer"`
	BidCount    int64              `bson:"bid_count" json:"bid_count" example:"0"`
}

// JobRequest is the client document for POST /add-jobs and PUT /update-job/:id.
type JobRequest struct {
	Title       string  `json:"title" binding:"required" example:"Build a deck"`
	Category    string  `json:"category" example:"carpentry"`
	Deadline    string  `json:"deadline" example:"2024-06-01"`
	Description string  `json:"description"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	Buyer       Buyer   `json:"buyer"`
}

// UpdateOutcome exposes the raw store result of an upserting update.
type UpdateOutcome struct {
	MatchedCount  int64  `json:"matchedCount" example:"1"`
	ModifiedCount int64  `json:"modifiedCount" example:"1"`
	UpsertedID    string `json:"upsertedId,omitempty" example:"507f1f77bcf86cd799439011"`
}

// DeleteOutcome exposes the raw store result of a delete.
type DeleteOutcome struct {
	DeletedCount int64 `json:"deletedCount" example:"1"`
}
