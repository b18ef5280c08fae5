package providerRepo

import (
	"context"
	"fmt"
	"time"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// runInTransaction executes txnFn inside a mongo session transaction.
func (r *MongoExperienceRepo) runInTransaction(ctx context.Context, txnFn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// InsertImage inserts an image document and updates the parent's primary
// pointer in the same transaction. The image becomes primary when makePrimary
// is set, or when the experience has no primary yet (first upload). The
// conditional filter on primaryImageId keeps concurrent first uploads from
// both claiming the pointer.
func (r *MongoExperienceRepo) InsertImage(img *models.ExperienceImage, makePrimary bool) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	img.CreatedAt = now
	img.UpdatedAt = now
	img.Active = true

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.imageColl.InsertOne(sc, img); err != nil {
			return fmt.Errorf("insert image failed: %w", err)
		}

		filter := bson.M{"id": img.ExperienceID, "active": true}
		if !makePrimary {
			// Only claim the pointer when the experience has none.
			filter["$or"] = []bson.M{
				{"primaryImageId": bson.M{"$exists": false}},
				{"primaryImageId": ""},
			}
		}
		update := bson.M{"$set": bson.M{"primaryImageId": img.ID, "updatedAt": now}}

		res, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("update primary pointer failed: %w", err)
		}
		if makePrimary && res.MatchedCount == 0 {
			return fmt.Errorf("experience %s not found", img.ExperienceID)
		}
		return nil
	}

	if err := r.runInTransaction(ctx, txnFn); err != nil {
		return fmt.Errorf("image insert transaction failed: %w", err)
	}
	return nil
}

// SetPrimaryImage points the experience at an existing active image. The
// image is checked inside the transaction so a concurrent delete cannot leave
// the pointer on a dead image.
func (r *MongoExperienceRepo) SetPrimaryImage(experienceID, imageID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.imageColl.CountDocuments(sc,
			bson.M{"id": imageID, "experienceId": experienceID, "active": true})
		if err != nil {
			return fmt.Errorf("check image failed: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("image %s not found for experience %s", imageID, experienceID)
		}

		res, err := r.coll.UpdateOne(sc,
			bson.M{"id": experienceID, "active": true},
			bson.M{"$set": bson.M{"primaryImageId": imageID, "updatedAt": now}},
		)
		if err != nil {
			return fmt.Errorf("update primary pointer failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("experience %s not found", experienceID)
		}
		return nil
	}

	if err := r.runInTransaction(ctx, txnFn); err != nil {
		return fmt.Errorf("set primary transaction failed: %w", err)
	}
	return nil
}

// SoftDeleteImage marks an image deleted and, when it was the experience's
// primary, promotes the next-oldest active image or clears the pointer — all
// in one transaction so the pointer never references a deleted image.
func (r *MongoExperienceRepo) SoftDeleteImage(experienceID, imageID string) (string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	var promotedID string

	txnFn := func(sc mongo.SessionContext) error {
		res, err := r.imageColl.UpdateOne(sc,
			bson.M{"id": imageID, "experienceId": experienceID, "active": true},
			bson.M{"$set": bson.M{"active": false, "deletedAt": now, "updatedAt": now}},
		)
		if err != nil {
			return fmt.Errorf("soft delete image failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("image %s not found for experience %s", imageID, experienceID)
		}

		var exp models.Experience
		if err := r.coll.FindOne(sc, bson.M{"id": experienceID, "active": true}).Decode(&exp); err != nil {
			return fmt.Errorf("fetch experience failed: %w", err)
		}
		if exp.PrimaryImageID != imageID {
			return nil
		}

		// The primary was deleted: promote the next-oldest active image.
		opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
		var next models.ExperienceImage
		err = r.imageColl.FindOne(sc,
			bson.M{"experienceId": experienceID, "active": true, "id": bson.M{"$ne": imageID}},
			opts,
		).Decode(&next)
		switch {
		case err == mongo.ErrNoDocuments:
			// No images left.
			_, err = r.coll.UpdateOne(sc, bson.M{"id": experienceID},
				bson.M{"$set": bson.M{"primaryImageId": "", "updatedAt": now}})
			if err != nil {
				return fmt.Errorf("clear primary pointer failed: %w", err)
			}
		case err != nil:
			return fmt.Errorf("find successor image failed: %w", err)
		default:
			promotedID = next.ID
			_, err = r.coll.UpdateOne(sc, bson.M{"id": experienceID},
				bson.M{"$set": bson.M{"primaryImageId": next.ID, "updatedAt": now}})
			if err != nil {
				return fmt.Errorf("update primary pointer failed: %w", err)
			}
		}
		return nil
	}

	if err := r.runInTransaction(ctx, txnFn); err != nil {
		return "", fmt.Errorf("image delete transaction failed: %w", err)
	}
	return promotedID, nil
}
