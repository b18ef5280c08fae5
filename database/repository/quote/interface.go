package quoteRepo

import (
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// QuoteRepository defines methods for quote data access.
type QuoteRepository interface {
	// Create inserts a new quote record.
	Create(quote *models.Quote) error
	// GetByID retrieves an active quote by its unique ID.
	GetByID(id string) (*models.Quote, error)
	// UpdateSetDocument applies a partial $set update to a quote record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// TransitionStatus atomically moves a quote from one status to another.
	// Returns false when the quote is not currently in the expected status.
	TransitionStatus(id, from, to string) (bool, error)
	// SoftDelete marks a quote inactive.
	SoftDelete(id string) error
	// List returns a page of active quotes matching the DataTables query.
	List(q models.ListQuery) ([]models.Quote, int64, int64, error)
	// CountsByStatus aggregates active quotes per status.
	CountsByStatus() (*models.QuoteStatusCounts, error)
	// Recent returns the most recently created active quotes.
	Recent(limit int64) ([]models.Quote, error)
}
