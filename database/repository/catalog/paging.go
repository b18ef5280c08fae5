package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// findPage runs the shared DataTables query against a collection: count the
// active documents, count the search-filtered subset, then fetch the sorted
// page and decode into out (a pointer to a slice).
func findPage[T any](coll *mongo.Collection, q models.ListQuery, searchFields []string) ([]T, int64, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := bson.M{"active": true}
	total, err := coll.CountDocuments(ctx, base)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	filter := bson.M{"active": true}
	if q.Search != "" && len(searchFields) > 0 {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		or := make([]bson.M, 0, len(searchFields))
		for _, f := range searchFields {
			or = append(or, bson.M{f: regex})
		}
		filter["$or"] = or
	}

	filtered, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count filtered documents: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.OrderBy, Value: q.SortValue()}}).
		SetSkip(q.Start).
		SetLimit(q.Length)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to retrieve documents: %w", err)
	}
	defer cursor.Close(ctx)

	var items []T
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode document: %w", err)
		}
		items = append(items, item)
	}
	return items, total, filtered, nil
}

func countActive(coll *mongo.Collection) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return coll.CountDocuments(ctx, bson.M{"active": true})
}
