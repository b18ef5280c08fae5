package provider

import (
	providerRepo "tripdesk/database/repository/provider"
	"tripdesk/models"
)

// ProviderService defines business logic for providers and their experiences.
type ProviderService interface {
	CreateProvider(input models.ProviderInput) (*models.Provider, error)
	GetProviderByID(id string) (*models.Provider, error)
	UpdateProvider(id string, input models.ProviderInput) (*models.Provider, error)
	DeleteProvider(id string) error
	ListProviders(q models.ListQuery) (*models.ListResult[models.Provider], error)

	CreateExperience(input models.ExperienceInput) (*models.Experience, error)
	GetExperienceByID(id string) (*models.Experience, error)
	UpdateExperience(id string, input models.ExperienceInput) (*models.Experience, error)
	DeleteExperience(id string) error
	ListExperiences(q models.ListQuery) (*models.ListResult[models.Experience], error)
	ListProviderExperiences(providerID string) ([]models.Experience, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo           providerRepo.ProviderRepository
	ExperienceRepo providerRepo.ExperienceRepository
}
