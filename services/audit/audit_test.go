package audit

import (
	"sync"
	"testing"
	"time"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (r *fakeAuditRepo) Insert(entry *models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) List(q models.ListQuery) ([]models.AuditEntry, int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.entries))
	return r.entries, n, n, nil
}

func (r *fakeAuditRepo) PurgeOlderThan(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []models.AuditEntry
	var removed int64
	for _, e := range r.entries {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}

func TestRecordPersistsAsynchronously(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo)

	svc.Record(models.AuditEntry{ID: "a-1", Method: "POST", Path: "/api/quotes", Status: 201})
	svc.Record(models.AuditEntry{ID: "a-2", Method: "DELETE", Path: "/api/quotes/1", Status: 200})
	svc.Close()

	require.Len(t, repo.entries, 2)
	assert.Equal(t, "POST", repo.entries[0].Method)
	assert.False(t, repo.entries[0].CreatedAt.IsZero())
}

func TestPurgeOlderThan(t *testing.T) {
	repo := &fakeAuditRepo{entries: []models.AuditEntry{
		{ID: "old", CreatedAt: time.Now().AddDate(0, 0, -120)},
		{ID: "new", CreatedAt: time.Now()},
	}}
	svc := NewAuditService(repo)
	defer svc.Close()

	removed, err := svc.PurgeOlderThan(90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Len(t, repo.entries, 1)
	assert.Equal(t, "new", repo.entries[0].ID)
}

func TestListEntriesEnvelope(t *testing.T) {
	repo := &fakeAuditRepo{entries: []models.AuditEntry{{ID: "a-1"}}}
	svc := NewAuditService(repo)
	defer svc.Close()

	result, err := svc.ListEntries(models.ListQuery{Draw: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Draw)
	assert.Equal(t, int64(1), result.RecordsTotal)
	assert.Len(t, result.Data, 1)
}
