package quote

import (
	"fmt"

	"tripdesk/models"
	"tripdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// allowedTransitions is the quote lifecycle: pending -> sent -> approved|rejected.
var allowedTransitions = map[string][]string{
	models.QuoteStatusPending: {models.QuoteStatusSent},
	models.QuoteStatusSent:    {models.QuoteStatusApproved, models.QuoteStatusRejected},
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// price resolves the referenced service and vehicle type and computes totals.
func (s *DefaultQuoteService) price(input models.QuoteInput) (*models.TravelService, *models.VehicleType, Totals, error) {
	svc, err := s.ServiceRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, nil, Totals{}, fmt.Errorf("failed to resolve service: %w", err)
	}
	if svc == nil {
		return nil, nil, Totals{}, fmt.Errorf("service %s not found", input.ServiceID)
	}
	vt, err := s.VehicleTypeRepo.GetByID(input.VehicleTypeID)
	if err != nil {
		return nil, nil, Totals{}, fmt.Errorf("failed to resolve vehicle type: %w", err)
	}
	if vt == nil {
		return nil, nil, Totals{}, fmt.Errorf("vehicle type %s not found", input.VehicleTypeID)
	}

	totals := ComputeTotals(svc.BasePrice, vt.PriceMultiplier, input.Passengers, vt.MaxCapacity, input.DiscountPercent)
	return svc, vt, totals, nil
}

// CreateQuote prices and stores a new quote in pending status.
func (s *DefaultQuoteService) CreateQuote(input models.QuoteInput, createdBy string) (*models.Quote, error) {
	svc, _, totals, err := s.price(input)
	if err != nil {
		return nil, err
	}

	q := &models.Quote{
		ID:              uuid.New().String(),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Origin:          input.Origin,
		Destination:     input.Destination,
		TravelDate:      input.TravelDate,
		Passengers:      input.Passengers,
		ServiceID:       input.ServiceID,
		VehicleTypeID:   input.VehicleTypeID,
		Status:          models.QuoteStatusPending,
		Notes:           input.Notes,
		CreatedBy:       createdBy,
		Subtotal:        totals.Subtotal,
		DiscountPercent: input.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		Currency:        svc.Currency,
		Active:          true,
	}

	if err := s.Repo.Create(q); err != nil {
		utils.GetLogger().Error("CreateQuote: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create quote")
	}
	return q, nil
}

// GetQuoteByID retrieves an active quote.
func (s *DefaultQuoteService) GetQuoteByID(id string) (*models.Quote, error) {
	q, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetQuoteByID: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch quote")
	}
	return q, nil
}

// UpdateQuote reprices and updates a quote. Only pending quotes can change:
// once sent, the figures the customer saw must not move underneath them.
func (s *DefaultQuoteService) UpdateQuote(id string, input models.QuoteInput) (*models.Quote, error) {
	existing, err := s.GetQuoteByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if existing.Status != models.QuoteStatusPending {
		return nil, ErrInvalidTransition{From: existing.Status, To: existing.Status}
	}

	svc, _, totals, err := s.price(input)
	if err != nil {
		return nil, err
	}

	updateDoc := bson.M{
		"customerName":    input.CustomerName,
		"customerEmail":   input.CustomerEmail,
		"customerPhone":   input.CustomerPhone,
		"origin":          input.Origin,
		"destination":     input.Destination,
		"travelDate":      input.TravelDate,
		"passengers":      input.Passengers,
		"serviceId":       input.ServiceID,
		"vehicleTypeId":   input.VehicleTypeID,
		"notes":           input.Notes,
		"subtotal":        totals.Subtotal,
		"discountPercent": input.DiscountPercent,
		"discountAmount":  totals.DiscountAmount,
		"total":           totals.Total,
		"currency":        svc.Currency,
	}
	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateQuote: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update quote")
	}
	return s.GetQuoteByID(id)
}

// TransitionQuote moves a quote along its lifecycle.
func (s *DefaultQuoteService) TransitionQuote(id, target string) (*models.Quote, error) {
	existing, err := s.GetQuoteByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if !transitionAllowed(existing.Status, target) {
		return nil, ErrInvalidTransition{From: existing.Status, To: target}
	}

	moved, err := s.Repo.TransitionStatus(id, existing.Status, target)
	if err != nil {
		utils.GetLogger().Error("TransitionQuote: transition failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update quote status")
	}
	if !moved {
		// Lost a race with a concurrent transition.
		return nil, ErrInvalidTransition{From: existing.Status, To: target}
	}
	return s.GetQuoteByID(id)
}

// DeleteQuote soft-deletes a quote.
func (s *DefaultQuoteService) DeleteQuote(id string) error {
	if err := s.Repo.SoftDelete(id); err != nil {
		utils.GetLogger().Error("DeleteQuote: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete quote")
	}
	return nil
}

// ListQuotes returns a DataTables page of quotes.
func (s *DefaultQuoteService) ListQuotes(q models.ListQuery) (*models.ListResult[models.Quote], error) {
	quotes, total, filtered, err := s.Repo.List(q)
	if err != nil {
		utils.GetLogger().Error("ListQuotes: list failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list quotes")
	}
	return &models.ListResult[models.Quote]{
		Draw:            q.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            quotes,
	}, nil
}

// DashboardCounts aggregates quotes by status.
func (s *DefaultQuoteService) DashboardCounts() (*models.QuoteStatusCounts, error) {
	return s.Repo.CountsByStatus()
}

// RecentQuotes returns the latest quotes for the dashboard.
func (s *DefaultQuoteService) RecentQuotes(limit int64) ([]models.Quote, error) {
	return s.Repo.Recent(limit)
}
