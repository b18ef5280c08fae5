package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.DB().Collection("providers")
	repo := &MongoProviderRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new provider document.
func (r *MongoProviderRepo) Create(p *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("a provider with email %q %w", p.Email, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

// GetByID retrieves an active provider by its unique ID.
func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &p, nil
}

// UpdateSetDocument applies a partial $set update to a provider document.
func (r *MongoProviderRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "active": true}, bson.M{"$set": updateDoc})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("another provider with that email %w", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}

// SoftDelete marks a provider inactive.
func (r *MongoProviderRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"active": false})
}

// List returns a page of active providers matching the DataTables query.
func (r *MongoProviderRepo) List(q models.ListQuery) ([]models.Provider, int64, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := bson.M{"active": true}
	total, err := r.coll.CountDocuments(ctx, base)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count providers: %w", err)
	}

	filter := bson.M{"active": true}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"companyName": regex},
			{"contactName": regex},
			{"email": regex},
		}
	}

	filtered, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count filtered providers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.OrderBy, Value: q.SortValue()}}).
		SetSkip(q.Start).
		SetLimit(q.Length)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	return providers, total, filtered, nil
}

// CountActive counts the active providers.
func (r *MongoProviderRepo) CountActive() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"active": true})
}
