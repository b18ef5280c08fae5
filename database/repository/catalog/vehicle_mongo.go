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

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	coll := database.DB().Collection("vehicles")
	repo := &MongoVehicleRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "plate", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "vehicleTypeId", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new vehicle document.
func (r *MongoVehicleRepo) Create(v *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("a vehicle with plate %q %w", v.Plate, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves an active vehicle by its unique ID.
func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var v models.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &v, nil
}

// UpdateSetDocument applies a partial $set update to a vehicle document.
func (r *MongoVehicleRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "active": true}, bson.M{"$set": updateDoc})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("another vehicle with that plate %w", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to update vehicle with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", id)
	}
	return nil
}

// SoftDelete marks a vehicle inactive.
func (r *MongoVehicleRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"active": false})
}

// List returns a page of active vehicles matching the DataTables query.
func (r *MongoVehicleRepo) List(q models.ListQuery) ([]models.Vehicle, int64, int64, error) {
	return findPage[models.Vehicle](r.coll, q, []string{"plate", "model"})
}

// CountActive counts the active vehicles.
func (r *MongoVehicleRepo) CountActive() (int64, error) {
	return countActive(r.coll)
}
