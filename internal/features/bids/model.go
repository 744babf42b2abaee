package bids

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bid is a placed bid document. JobID references a job by hex id; Buyer holds
// the job owner's email so their incoming bids can be listed without a join.
// @Description Bid placed by a user on a job
type Bid struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id" example:"507f1f77bcf86cd799439011"`
	Email    string             `bson:"email" json:"email" example:"b@x.com"`
	JobID    string             `bson:"jobId" json:"jobId" example:"507f1f77bcf86cd799439011"`
	Buyer    string             `bson:"buyer" json:"buyer" example:"a@x.com"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty" example:"Build a deck"`
	Category string             `bson:"category,omitempty" json:"category,omitempty" example:"carpentry"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty" example:"150"`
	Comment  string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Deadline string             `bson:"deadline,omitempty" json:"deadline,omitempty" example:"2024-06-01"`
	Status   string             `bson:"status" json:"status" example:"pending"`
}

// PlaceBidRequest is the body of POST /add-bidJob.
type PlaceBidRequest struct {
	Email    string  `json:"email" binding:"required" example:"b@x.com"`
	JobID    string  `json:"jobId" binding:"required" example:"507f1f77bcf86cd799439011"`
	Buyer    string  `json:"buyer" example:"a@x.com"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Comment  string  `json:"comment"`
	Deadline string  `json:"deadline"`
	Status   string  `json:"status"`
}

// UpdateStatusRequest is the body of PATCH /bid-status-update/:id.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}

// UpdateOutcome exposes the raw store result of a status update.
type UpdateOutcome struct {
	MatchedCount  int64 `json:"matchedCount" example:"1"`
	ModifiedCount int64 `json:"modifiedCount" example:"1"`
}
