package experience

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeExperienceRepo struct {
	experiences map[string]*models.Experience
	images      map[string]*models.ExperienceImage
	failInsert  bool
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{
		experiences: make(map[string]*models.Experience),
		images:      make(map[string]*models.ExperienceImage),
	}
}

func (r *fakeExperienceRepo) Create(e *models.Experience) error {
	r.experiences[e.ID] = e
	return nil
}

func (r *fakeExperienceRepo) GetByID(id string) (*models.Experience, error) {
	e, ok := r.experiences[id]
	if !ok || !e.Active {
		return nil, nil
	}
	return e, nil
}

func (r *fakeExperienceRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakeExperienceRepo) SoftDelete(id string) error                          { return nil }
func (r *fakeExperienceRepo) List(q models.ListQuery) ([]models.Experience, int64, int64, error) {
	return nil, 0, 0, nil
}
func (r *fakeExperienceRepo) ListByProvider(providerID string) ([]models.Experience, error) {
	return nil, nil
}

func (r *fakeExperienceRepo) InsertImage(img *models.ExperienceImage, makePrimary bool) error {
	if r.failInsert {
		return errors.New("insert failed")
	}
	img.Active = true
	r.images[img.ID] = img
	exp := r.experiences[img.ExperienceID]
	if makePrimary || exp.PrimaryImageID == "" {
		exp.PrimaryImageID = img.ID
	}
	return nil
}

func (r *fakeExperienceRepo) SetPrimaryImage(experienceID, imageID string) error {
	img, ok := r.images[imageID]
	if !ok || !img.Active || img.ExperienceID != experienceID {
		return fmt.Errorf("image %s not found for experience %s", imageID, experienceID)
	}
	r.experiences[experienceID].PrimaryImageID = imageID
	return nil
}

func (r *fakeExperienceRepo) SoftDeleteImage(experienceID, imageID string) (string, error) {
	img, ok := r.images[imageID]
	if !ok || !img.Active {
		return "", errors.New("image not found")
	}
	img.Active = false
	img.DeletedAt = time.Now()

	exp := r.experiences[experienceID]
	if exp.PrimaryImageID != imageID {
		return "", nil
	}
	for id, other := range r.images {
		if other.ExperienceID == experienceID && other.Active {
			exp.PrimaryImageID = id
			return id, nil
		}
	}
	exp.PrimaryImageID = ""
	return "", nil
}

func (r *fakeExperienceRepo) GetImage(imageID string) (*models.ExperienceImage, error) {
	return r.images[imageID], nil
}

func (r *fakeExperienceRepo) ListImages(experienceID string) ([]models.ExperienceImage, error) {
	var out []models.ExperienceImage
	for _, img := range r.images {
		if img.ExperienceID == experienceID && img.Active {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *fakeExperienceRepo) ListPurgeable(cutoff time.Time, limit int64) ([]models.ExperienceImage, error) {
	var out []models.ExperienceImage
	for _, img := range r.images {
		if !img.Active && !img.DeletedAt.IsZero() && img.DeletedAt.Before(cutoff) {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *fakeExperienceRepo) HardDeleteImage(imageID string) error {
	delete(r.images, imageID)
	return nil
}

type fakeStorage struct {
	objects    map[string]bool
	failDelete map[string]bool
	uploads    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]bool), failDelete: make(map[string]bool)}
}

func (s *fakeStorage) Upload(ctx context.Context, destFolder, fileName, contentType string, body io.Reader) (string, error) {
	s.uploads++
	key := fmt.Sprintf("%s/obj-%d", destFolder, s.uploads)
	s.objects[key] = true
	return key, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	if s.failDelete[key] {
		return errors.New("delete failed")
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) GetDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/" + key, nil
}

func newTestImageService() (*DefaultImageService, *fakeExperienceRepo, *fakeStorage) {
	repo := newFakeExperienceRepo()
	repo.experiences["exp-1"] = &models.Experience{ID: "exp-1", ProviderID: "prov-1", Title: "City tour", Active: true}
	store := newFakeStorage()
	return &DefaultImageService{Repo: repo, Storage: store}, repo, store
}

func upload(t *testing.T, svc *DefaultImageService, primary bool) *models.ExperienceImage {
	t.Helper()
	img, err := svc.UploadImage(context.Background(), "exp-1", "photo.jpg", "image/jpeg",
		1024, strings.NewReader("data"), primary)
	require.NoError(t, err)
	return img
}

func TestUploadImageFirstBecomesPrimary(t *testing.T) {
	svc, repo, _ := newTestImageService()

	img := upload(t, svc, false)
	assert.Equal(t, img.ID, repo.experiences["exp-1"].PrimaryImageID)
	assert.NotEmpty(t, img.URL)
}

func TestUploadImageExplicitPrimaryWins(t *testing.T) {
	svc, repo, _ := newTestImageService()

	upload(t, svc, false)
	second := upload(t, svc, true)
	assert.Equal(t, second.ID, repo.experiences["exp-1"].PrimaryImageID)
}

func TestUploadImageRejectsContentType(t *testing.T) {
	svc, _, _ := newTestImageService()

	_, err := svc.UploadImage(context.Background(), "exp-1", "doc.pdf", "application/pdf",
		1024, strings.NewReader("data"), false)
	assert.Error(t, err)
}

func TestUploadImageRejectsOversize(t *testing.T) {
	svc, _, _ := newTestImageService()

	_, err := svc.UploadImage(context.Background(), "exp-1", "big.jpg", "image/jpeg",
		maxImageBytes+1, strings.NewReader("data"), false)
	assert.Error(t, err)
}

func TestUploadImageUnknownExperience(t *testing.T) {
	svc, _, store := newTestImageService()

	_, err := svc.UploadImage(context.Background(), "missing", "photo.jpg", "image/jpeg",
		1024, strings.NewReader("data"), false)
	assert.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestUploadImageCleansOrphanOnInsertFailure(t *testing.T) {
	svc, repo, store := newTestImageService()
	repo.failInsert = true

	_, err := svc.UploadImage(context.Background(), "exp-1", "photo.jpg", "image/jpeg",
		1024, strings.NewReader("data"), false)
	assert.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestDeleteImagePromotesSuccessor(t *testing.T) {
	svc, repo, _ := newTestImageService()

	first := upload(t, svc, false)
	second := upload(t, svc, false)

	require.NoError(t, svc.DeleteImage("exp-1", first.ID))
	assert.Equal(t, second.ID, repo.experiences["exp-1"].PrimaryImageID)

	require.NoError(t, svc.DeleteImage("exp-1", second.ID))
	assert.Empty(t, repo.experiences["exp-1"].PrimaryImageID)
}

func TestSetPrimaryImage(t *testing.T) {
	svc, repo, _ := newTestImageService()

	first := upload(t, svc, false)
	second := upload(t, svc, false)
	require.Equal(t, first.ID, repo.experiences["exp-1"].PrimaryImageID)

	require.NoError(t, svc.SetPrimaryImage("exp-1", second.ID))
	assert.Equal(t, second.ID, repo.experiences["exp-1"].PrimaryImageID)

	assert.Error(t, svc.SetPrimaryImage("exp-1", "missing"))
}

func TestPurgeExpired(t *testing.T) {
	svc, repo, store := newTestImageService()

	img := upload(t, svc, false)
	require.NoError(t, svc.DeleteImage("exp-1", img.ID))
	// Age the deletion past the grace window.
	repo.images[img.ID].DeletedAt = time.Now().AddDate(0, 0, -40)

	purged, err := svc.PurgeExpired(context.Background(), 30, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.Empty(t, store.objects)
	assert.NotContains(t, repo.images, img.ID)
}

func TestPurgeExpiredKeepsDocumentOnStorageFailure(t *testing.T) {
	svc, repo, store := newTestImageService()

	img := upload(t, svc, false)
	require.NoError(t, svc.DeleteImage("exp-1", img.ID))
	repo.images[img.ID].DeletedAt = time.Now().AddDate(0, 0, -40)
	store.failDelete[repo.images[img.ID].StorageKey] = true

	purged, err := svc.PurgeExpired(context.Background(), 30, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, purged)
	// Document survives so the next run can retry the object.
	assert.Contains(t, repo.images, img.ID)
}

func TestPurgeExpiredRespectsGraceWindow(t *testing.T) {
	svc, repo, _ := newTestImageService()

	img := upload(t, svc, false)
	require.NoError(t, svc.DeleteImage("exp-1", img.ID))
	// Deleted recently: still inside the grace window.

	purged, err := svc.PurgeExpired(context.Background(), 30, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, purged)
	assert.Contains(t, repo.images, img.ID)
}
