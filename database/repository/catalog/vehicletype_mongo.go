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

// MongoVehicleTypeRepo implements VehicleTypeRepository using MongoDB.
type MongoVehicleTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleTypeRepo creates a new instance of VehicleTypeRepository using MongoDB.
func NewMongoVehicleTypeRepo() VehicleTypeRepository {
	coll := database.DB().Collection("vehicle_types")
	repo := &MongoVehicleTypeRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sortOrder", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new vehicle type document.
func (r *MongoVehicleTypeRepo) Create(vt *models.VehicleType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	vt.CreatedAt = now
	vt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, vt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("a vehicle type named %q %w", vt.Name, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create vehicle type: %w", err)
	}
	return nil
}

// GetByID retrieves an active vehicle type by its unique ID.
func (r *MongoVehicleTypeRepo) GetByID(id string) (*models.VehicleType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vt models.VehicleType
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&vt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle type with id %s: %w", id, err)
	}
	return &vt, nil
}

// UpdateSetDocument applies a partial $set update to a vehicle type document.
func (r *MongoVehicleTypeRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "active": true}, bson.M{"$set": updateDoc})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("another vehicle type with that name %w", database.ErrDuplicate)
		}
		return fmt.Errorf("failed to update vehicle type with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle type with id %s not found", id)
	}
	return nil
}

// SoftDelete marks a vehicle type inactive.
func (r *MongoVehicleTypeRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"active": false})
}

// List returns a page of active vehicle types matching the DataTables query.
func (r *MongoVehicleTypeRepo) List(q models.ListQuery) ([]models.VehicleType, int64, int64, error) {
	return findPage[models.VehicleType](r.coll, q, []string{"name", "displayName"})
}
