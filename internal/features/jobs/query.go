package jobs

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListQuery carries the optional listing criteria. Zero values mean no
// restriction and store-default order.
type ListQuery struct {
	Filter string // exact category match
	Search string // case-insensitive substring on title
	Sort   string // "asc" or "desc" on deadline
}

func buildListQuery(q ListQuery) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if q.Search != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: q.Search, Options: "i"}}
	}
	if q.Filter != "" {
		filter["category"] = q.Filter
	}

	opts := options.Find()
	switch q.Sort {
	case "asc":
		opts.SetSort(bson.D{{Key: "deadline", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "deadline", Value: -1}})
	}

	return filter, opts
}
