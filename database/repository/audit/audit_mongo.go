package auditRepo

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

// AuditRepository defines methods for audit log data access.
type AuditRepository interface {
	// Insert stores a new audit entry.
	Insert(entry *models.AuditEntry) error
	// List returns a page of audit entries matching the DataTables query.
	List(q models.ListQuery) ([]models.AuditEntry, int64, int64, error)
	// PurgeOlderThan deletes entries created before the cutoff, returning the
	// number removed.
	PurgeOlderThan(cutoff time.Time) (int64, error)
}

// MongoAuditRepo implements AuditRepository using MongoDB.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo creates a new instance of AuditRepository using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	coll := database.DB().Collection("audit_log")
	repo := &MongoAuditRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "actorId", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert stores a new audit entry.
func (r *MongoAuditRepo) Insert(entry *models.AuditEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// List returns a page of audit entries matching the DataTables query.
func (r *MongoAuditRepo) List(q models.ListQuery) ([]models.AuditEntry, int64, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	filter := bson.M{}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"actorId": regex},
			{"path": regex},
			{"method": regex},
		}
	}

	filtered, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count filtered audit entries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.OrderBy, Value: q.SortValue()}}).
		SetSkip(q.Start).
		SetLimit(q.Length)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to retrieve audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.AuditEntry
	for cursor.Next(ctx) {
		var e models.AuditEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, total, filtered, nil
}

// PurgeOlderThan deletes entries created before the cutoff.
func (r *MongoAuditRepo) PurgeOlderThan(cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit entries: %w", err)
	}
	return result.DeletedCount, nil
}
