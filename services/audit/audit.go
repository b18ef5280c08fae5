package audit

import (
	"time"

	auditRepo "tripdesk/database/repository/audit"
	"tripdesk/models"
	"tripdesk/utils"

	"go.uber.org/zap"
)

const recordBuffer = 256

// AuditService records request audit entries off the hot path and serves the
// admin audit views.
type AuditService interface {
	// Record queues an entry for asynchronous persistence. Entries are dropped
	// with a warning when the buffer is full rather than blocking a request.
	Record(entry models.AuditEntry)
	ListEntries(q models.ListQuery) (*models.ListResult[models.AuditEntry], error)
	// PurgeOlderThan removes entries past the retention window.
	PurgeOlderThan(retentionDays int) (int64, error)
	// Close drains the queue and stops the writer goroutine.
	Close()
}

// DefaultAuditService is the production implementation.
type DefaultAuditService struct {
	repo    auditRepo.AuditRepository
	queue   chan models.AuditEntry
	done    chan struct{}
}

// NewAuditService starts the background writer.
func NewAuditService(repo auditRepo.AuditRepository) *DefaultAuditService {
	s := &DefaultAuditService{
		repo:  repo,
		queue: make(chan models.AuditEntry, recordBuffer),
		done:  make(chan struct{}),
	}
	go s.writer()
	return s
}

func (s *DefaultAuditService) writer() {
	defer close(s.done)
	for entry := range s.queue {
		e := entry
		if err := s.repo.Insert(&e); err != nil {
			utils.GetLogger().Warn("audit: insert failed", zap.Error(err),
				zap.String("path", e.Path))
		}
	}
}

// Record queues an entry for asynchronous persistence.
func (s *DefaultAuditService) Record(entry models.AuditEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	select {
	case s.queue <- entry:
	default:
		utils.GetLogger().Warn("audit: queue full, dropping entry",
			zap.String("path", entry.Path))
	}
}

// ListEntries returns a DataTables page of audit entries.
func (s *DefaultAuditService) ListEntries(q models.ListQuery) (*models.ListResult[models.AuditEntry], error) {
	entries, total, filtered, err := s.repo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ListResult[models.AuditEntry]{
		Draw: q.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: entries,
	}, nil
}

// PurgeOlderThan removes entries created before the retention window.
func (s *DefaultAuditService) PurgeOlderThan(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.repo.PurgeOlderThan(cutoff)
}

// Close drains the queue and stops the writer goroutine.
func (s *DefaultAuditService) Close() {
	close(s.queue)
	<-s.done
}
