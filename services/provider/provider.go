package provider

import (
	"fmt"

	"tripdesk/models"
	"tripdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateProvider stores a new provider.
func (s *DefaultProviderService) CreateProvider(input models.ProviderInput) (*models.Provider, error) {
	p := &models.Provider{
		ID:          uuid.New().String(),
		CompanyName: input.CompanyName,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Rating:      input.Rating,
		Active:      true,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProviderByID retrieves an active provider.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	return s.Repo.GetByID(id)
}

// UpdateProvider updates an existing provider.
func (s *DefaultProviderService) UpdateProvider(id string, input models.ProviderInput) (*models.Provider, error) {
	updateDoc := bson.M{
		"companyName": input.CompanyName,
		"contactName": input.ContactName,
		"email":       input.Email,
		"phone":       input.Phone,
		"rating":      input.Rating,
	}
	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateProvider: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update provider")
	}
	return s.Repo.GetByID(id)
}

// DeleteProvider soft-deletes a provider.
func (s *DefaultProviderService) DeleteProvider(id string) error {
	return s.Repo.SoftDelete(id)
}

// ListProviders returns a DataTables page of providers.
func (s *DefaultProviderService) ListProviders(q models.ListQuery) (*models.ListResult[models.Provider], error) {
	items, total, filtered, err := s.Repo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ListResult[models.Provider]{
		Draw: q.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: items,
	}, nil
}

// CreateExperience stores a new experience after validating its provider.
func (s *DefaultProviderService) CreateExperience(input models.ExperienceInput) (*models.Experience, error) {
	p, err := s.Repo.GetByID(input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("provider %s not found", input.ProviderID)
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	e := &models.Experience{
		ID:          uuid.New().String(),
		ProviderID:  input.ProviderID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		Active:      true,
	}
	if err := s.ExperienceRepo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetExperienceByID retrieves an active experience.
func (s *DefaultProviderService) GetExperienceByID(id string) (*models.Experience, error) {
	return s.ExperienceRepo.GetByID(id)
}

// UpdateExperience updates an existing experience. The provider pointer is
// immutable once set.
func (s *DefaultProviderService) UpdateExperience(id string, input models.ExperienceInput) (*models.Experience, error) {
	updateDoc := bson.M{
		"title":       input.Title,
		"description": input.Description,
		"price":       input.Price,
	}
	if input.Currency != "" {
		updateDoc["currency"] = input.Currency
	}
	if err := s.ExperienceRepo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateExperience: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update experience")
	}
	return s.ExperienceRepo.GetByID(id)
}

// DeleteExperience soft-deletes an experience.
func (s *DefaultProviderService) DeleteExperience(id string) error {
	return s.ExperienceRepo.SoftDelete(id)
}

// ListExperiences returns a DataTables page of experiences.
func (s *DefaultProviderService) ListExperiences(q models.ListQuery) (*models.ListResult[models.Experience], error) {
	items, total, filtered, err := s.ExperienceRepo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ListResult[models.Experience]{
		Draw: q.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: items,
	}, nil
}

// ListProviderExperiences returns the active experiences of a provider.
func (s *DefaultProviderService) ListProviderExperiences(providerID string) ([]models.Experience, error) {
	return s.ExperienceRepo.ListByProvider(providerID)
}
