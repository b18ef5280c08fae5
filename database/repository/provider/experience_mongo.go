package providerRepo

import (
	"fmt"
	"time"

	"tripdesk/database"
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoExperienceRepo implements ExperienceRepository using MongoDB. It owns
// both the experiences and the experience_images collections because image
// writes must update the parent pointer transactionally.
type MongoExperienceRepo struct {
	coll      *mongo.Collection
	imageColl *mongo.Collection
}

// NewMongoExperienceRepo creates a new instance of ExperienceRepository using MongoDB.
func NewMongoExperienceRepo() ExperienceRepository {
	db := database.DB()
	repo := &MongoExperienceRepo{
		coll:      db.Collection("experiences"),
		imageColl: db.Collection("experience_images"),
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	expIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, expIndexes); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	imgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "experienceId", Value: 1}, {Key: "active", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "deletedAt", Value: 1}}},
	}
	if _, err := repo.imageColl.Indexes().CreateMany(ctx, imgIndexes); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new experience document.
func (r *MongoExperienceRepo) Create(e *models.Experience) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// GetByID retrieves an active experience by its unique ID.
func (r *MongoExperienceRepo) GetByID(id string) (*models.Experience, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var e models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch experience with id %s: %w", id, err)
	}
	return &e, nil
}

// UpdateSetDocument applies a partial $set update to an experience document.
func (r *MongoExperienceRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "active": true}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update experience with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("experience with id %s not found", id)
	}
	return nil
}

// SoftDelete marks an experience inactive.
func (r *MongoExperienceRepo) SoftDelete(id string) error {
	return r.UpdateSetDocument(id, bson.M{"active": false})
}

// List returns a page of active experiences matching the DataTables query.
func (r *MongoExperienceRepo) List(q models.ListQuery) ([]models.Experience, int64, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := bson.M{"active": true}
	total, err := r.coll.CountDocuments(ctx, base)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count experiences: %w", err)
	}

	filter := bson.M{"active": true}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"description": regex},
		}
	}

	filtered, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count filtered experiences: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: q.OrderBy, Value: q.SortValue()}}).
		SetSkip(q.Start).
		SetLimit(q.Length)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to retrieve experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var experiences []models.Experience
	for cursor.Next(ctx) {
		var e models.Experience
		if err := cursor.Decode(&e); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode experience: %w", err)
		}
		experiences = append(experiences, e)
	}
	return experiences, total, filtered, nil
}

// ListByProvider returns the active experiences of a provider.
func (r *MongoExperienceRepo) ListByProvider(providerID string) ([]models.Experience, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve experiences for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var experiences []models.Experience
	for cursor.Next(ctx) {
		var e models.Experience
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode experience: %w", err)
		}
		experiences = append(experiences, e)
	}
	return experiences, nil
}

// GetImage retrieves an image by ID regardless of its active flag.
func (r *MongoExperienceRepo) GetImage(imageID string) (*models.ExperienceImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var img models.ExperienceImage
	if err := r.imageColl.FindOne(ctx, bson.M{"id": imageID}).Decode(&img); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch image with id %s: %w", imageID, err)
	}
	return &img, nil
}

// ListImages returns the active images of an experience, oldest first.
func (r *MongoExperienceRepo) ListImages(experienceID string) ([]models.ExperienceImage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.imageColl.Find(ctx, bson.M{"experienceId": experienceID, "active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve images for experience %s: %w", experienceID, err)
	}
	defer cursor.Close(ctx)

	var images []models.ExperienceImage
	for cursor.Next(ctx) {
		var img models.ExperienceImage
		if err := cursor.Decode(&img); err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

// ListPurgeable returns soft-deleted images whose grace window expired before
// the cutoff.
func (r *MongoExperienceRepo) ListPurgeable(cutoff time.Time, limit int64) ([]models.ExperienceImage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"active": false, "deletedAt": bson.M{"$lt": cutoff, "$gt": time.Time{}}}
	cursor, err := r.imageColl.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve purgeable images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.ExperienceImage
	for cursor.Next(ctx) {
		var img models.ExperienceImage
		if err := cursor.Decode(&img); err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

// HardDeleteImage removes an image document after its stored object has been purged.
func (r *MongoExperienceRepo) HardDeleteImage(imageID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.imageColl.DeleteOne(ctx, bson.M{"id": imageID})
	if err != nil {
		return fmt.Errorf("failed to delete image with id %s: %w", imageID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("image with id %s not found", imageID)
	}
	return nil
}
