package catalogRepo

import (
	"fmt"
	"time"

	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.DB().Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new travel service document.
func (r *MongoServiceRepo) Create(svc *models.TravelService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("a service named %q %w", svc.Name, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves an active travel service by its unique ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.TravelService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.TravelService
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// UpdateSetDocument applies a partial $set update to a travel service document.
func (r *MongoServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "active": true}, bson.M{"$set": updateDoc})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("another service with that name %w", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// SoftDelete marks a travel service inactive.
func (r *MongoServiceRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"active": false})
}

// List returns a page of active travel services matching the DataTables query.
func (r *MongoServiceRepo) List(q models.ListQuery) ([]models.TravelService, int64, int64, error) {
	return findPage[models.TravelService](r.coll, q, []string{"name", "description"})
}

// CountActive counts the active travel services.
func (r *MongoServiceRepo) CountActive() (int64, error) {
	return countActive(r.coll)
}
