package quoteRepo

import (
	"context"
	"fmt"
	"time"

	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQuoteRepo implements QuoteRepository using MongoDB.
type MongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo creates a new instance of QuoteRepository using MongoDB.
func NewMongoQuoteRepo() QuoteRepository {
	coll := database.DB().Collection("quotes")
	repo := &MongoQuoteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQuoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new quote document.
func (r *MongoQuoteRepo) Create(quote *models.Quote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, quote); err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetByID retrieves an active quote by its unique ID.
func (r *MongoQuoteRepo) GetByID(id string) (*models.Quote, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var quote models.Quote
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&quote); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch quote with id %s: %w", id, err)
	}
	return &quote, nil
}

// UpdateSetDocument applies a partial $set update to a quote document.
func (r *MongoQuoteRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "active": true}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update quote with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("quote with id %s not found", id)
	}
	return nil
}

// TransitionStatus atomically moves a quote from one status to another. The
// filter carries the expected current status so a concurrent transition
// cannot overwrite a later state.
func (r *MongoQuoteRepo) TransitionStatus(id, from, to string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from, "active": true}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to transition quote %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// SoftDelete marks a quote inactive.
func (r *MongoQuoteRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"active": false})
}

// List returns a page of active quotes matching the DataTables query along
// with the total and filtered record counts.
func (r *MongoQuoteRepo) List(q models.ListQuery) ([]models.Quote, int64, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := bson.M{"active": true}
	total, err := r.coll.CountDocuments(ctx, base)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	filter := bson.M{"active": true}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"customerName": regex},
			{"customerEmail": regex},
			{"origin": regex},
			{"destination": regex},
		}
	}

	filtered, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count filtered quotes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.OrderBy, Value: q.SortValue()}}).
		SetSkip(q.Start).
		SetLimit(q.Length)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to retrieve quotes: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	for cursor.Next(ctx) {
		var qt models.Quote
		if err := cursor.Decode(&qt); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode quote: %w", err)
		}
		quotes = append(quotes, qt)
	}
	return quotes, total, filtered, nil
}

// CountsByStatus aggregates active quotes per status.
func (r *MongoQuoteRepo) CountsByStatus() (*models.QuoteStatusCounts, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"active": true}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate quote statuses: %w", err)
	}
	defer cursor.Close(ctx)

	counts := &models.QuoteStatusCounts{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode status count: %w", err)
		}
		switch row.ID {
		case models.QuoteStatusPending:
			counts.Pending = row.Count
		case models.QuoteStatusSent:
			counts.Sent = row.Count
		case models.QuoteStatusApproved:
			counts.Approved = row.Count
		case models.QuoteStatusRejected:
			counts.Rejected = row.Count
		}
	}
	return counts, nil
}

// Recent returns the most recently created active quotes.
func (r *MongoQuoteRepo) Recent(limit int64) ([]models.Quote, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent quotes: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	for cursor.Next(ctx) {
		var qt models.Quote
		if err := cursor.Decode(&qt); err != nil {
			return nil, fmt.Errorf("failed to decode quote: %w", err)
		}
		quotes = append(quotes, qt)
	}
	return quotes, nil
}
