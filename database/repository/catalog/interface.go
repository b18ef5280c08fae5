package catalogRepo

import (
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for travel service data access.
type ServiceRepository interface {
	Create(svc *models.TravelService) error
	GetByID(id string) (*models.TravelService, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error
	List(q models.ListQuery) ([]models.TravelService, int64, int64, error)
	CountActive() (int64, error)
}

// VehicleTypeRepository defines methods for vehicle type data access.
type VehicleTypeRepository interface {
	Create(vt *models.VehicleType) error
	GetByID(id string) (*models.VehicleType, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error
	List(q models.ListQuery) ([]models.VehicleType, int64, int64, error)
}

// VehicleRepository defines methods for vehicle data access.
type VehicleRepository interface {
	Create(v *models.Vehicle) error
	GetByID(id string) (*models.Vehicle, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error
	List(q models.ListQuery) ([]models.Vehicle, int64, int64, error)
	CountActive() (int64, error)
}
