package catalog

import (
	catalogRepo "tripdesk/database/repository/catalog"
	providerRepo "tripdesk/database/repository/provider"
	"tripdesk/models"
)

// CatalogService defines business logic for travel services, vehicle types
// and vehicles.
type CatalogService interface {
	CreateService(input models.TravelServiceInput) (*models.TravelService, error)
	GetServiceByID(id string) (*models.TravelService, error)
	UpdateService(id string, input models.TravelServiceInput) (*models.TravelService, error)
	DeleteService(id string) error
	ListServices(q models.ListQuery) (*models.ListResult[models.TravelService], error)

	CreateVehicleType(input models.VehicleTypeInput) (*models.VehicleType, error)
	GetVehicleTypeByID(id string) (*models.VehicleType, error)
	UpdateVehicleType(id string, input models.VehicleTypeInput) (*models.VehicleType, error)
	DeleteVehicleType(id string) error
	ListVehicleTypes(q models.ListQuery) (*models.ListResult[models.VehicleType], error)

	CreateVehicle(input models.VehicleInput) (*models.Vehicle, error)
	GetVehicleByID(id string) (*models.Vehicle, error)
	UpdateVehicle(id string, input models.VehicleInput) (*models.Vehicle, error)
	DeleteVehicle(id string) error
	ListVehicles(q models.ListQuery) (*models.ListResult[models.Vehicle], error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	ServiceRepo     catalogRepo.ServiceRepository
	VehicleTypeRepo catalogRepo.VehicleTypeRepository
	VehicleRepo     catalogRepo.VehicleRepository
	ProviderRepo    providerRepo.ProviderRepository
}
