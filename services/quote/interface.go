package quote

import (
	catalogRepo "tripdesk/database/repository/catalog"
	quoteRepo "tripdesk/database/repository/quote"
	"tripdesk/models"
)

// QuoteService defines business logic for quote operations.
type QuoteService interface {
	// CreateQuote prices and stores a new quote in pending status.
	CreateQuote(input models.QuoteInput, createdBy string) (*models.Quote, error)
	// GetQuoteByID retrieves an active quote.
	GetQuoteByID(id string) (*models.Quote, error)
	// UpdateQuote reprices and updates a pending quote.
	UpdateQuote(id string, input models.QuoteInput) (*models.Quote, error)
	// TransitionQuote moves a quote along pending -> sent -> approved|rejected.
	TransitionQuote(id, target string) (*models.Quote, error)
	// DeleteQuote soft-deletes a quote.
	DeleteQuote(id string) error
	// ListQuotes returns a DataTables page of quotes.
	ListQuotes(q models.ListQuery) (*models.ListResult[models.Quote], error)
	// DashboardCounts aggregates quotes by status.
	DashboardCounts() (*models.QuoteStatusCounts, error)
	// RecentQuotes returns the latest quotes for the dashboard.
	RecentQuotes(limit int64) ([]models.Quote, error)
}

// ErrInvalidTransition is returned for a status change the lifecycle does not
// allow; handlers map it to 409.
type ErrInvalidTransition struct {
	From, To string
}

func (e ErrInvalidTransition) Error() string {
	return "quote cannot move from " + e.From + " to " + e.To
}

// DefaultQuoteService is the production implementation.
type DefaultQuoteService struct {
	Repo            quoteRepo.QuoteRepository
	ServiceRepo     catalogRepo.ServiceRepository
	VehicleTypeRepo catalogRepo.VehicleTypeRepository
}
