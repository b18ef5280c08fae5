package catalog

import (
	"fmt"

	"tripdesk/models"
	"tripdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const defaultCurrency = "USD"

// CreateService stores a new travel service.
func (s *DefaultCatalogService) CreateService(input models.TravelServiceInput) (*models.TravelService, error) {
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	svc := &models.TravelService{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		BasePrice:       input.BasePrice,
		Currency:        currency,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}
	if err := s.ServiceRepo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetServiceByID retrieves an active travel service.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.TravelService, error) {
	return s.ServiceRepo.GetByID(id)
}

// UpdateService updates an existing travel service.
func (s *DefaultCatalogService) UpdateService(id string, input models.TravelServiceInput) (*models.TravelService, error) {
	updateDoc := bson.M{
		"name":            input.Name,
		"description":     input.Description,
		"basePrice":       input.BasePrice,
		"durationMinutes": input.DurationMinutes,
	}
	if input.Currency != "" {
		updateDoc["currency"] = input.Currency
	}
	if err := s.ServiceRepo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateService: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update service")
	}
	return s.ServiceRepo.GetByID(id)
}

// DeleteService soft-deletes a travel service.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.ServiceRepo.SoftDelete(id)
}

// ListServices returns a DataTables page of travel services.
func (s *DefaultCatalogService) ListServices(q models.ListQuery) (*models.ListResult[models.TravelService], error) {
	items, total, filtered, err := s.ServiceRepo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ListResult[models.TravelService]{
		Draw: q.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: items,
	}, nil
}

// CreateVehicleType stores a new vehicle type.
func (s *DefaultCatalogService) CreateVehicleType(input models.VehicleTypeInput) (*models.VehicleType, error) {
	if input.MaxCapacity < input.MinCapacity {
		return nil, fmt.Errorf("maxCapacity must be at least minCapacity")
	}
	vt := &models.VehicleType{
		ID:              uuid.New().String(),
		Name:            input.Name,
		DisplayName:     input.DisplayName,
		Description:     input.Description,
		MinCapacity:     input.MinCapacity,
		MaxCapacity:     input.MaxCapacity,
		Features:        input.Features,
		PriceMultiplier: input.PriceMultiplier,
		SortOrder:       input.SortOrder,
		Active:          true,
	}
	if err := s.VehicleTypeRepo.Create(vt); err != nil {
		return nil, err
	}
	return vt, nil
}

// GetVehicleTypeByID retrieves an active vehicle type.
func (s *DefaultCatalogService) GetVehicleTypeByID(id string) (*models.VehicleType, error) {
	return s.VehicleTypeRepo.GetByID(id)
}

// UpdateVehicleType updates an existing vehicle type.
func (s *DefaultCatalogService) UpdateVehicleType(id string, input models.VehicleTypeInput) (*models.VehicleType, error) {
	if input.MaxCapacity < input.MinCapacity {
		return nil, fmt.Errorf("maxCapacity must be at least minCapacity")
	}
	updateDoc := bson.M{
		"name":            input.Name,
		"displayName":     input.DisplayName,
		"description":     input.Description,
		"minCapacity":     input.MinCapacity,
		"maxCapacity":     input.MaxCapacity,
		"features":        input.Features,
		"priceMultiplier": input.PriceMultiplier,
		"sortOrder":       input.SortOrder,
	}
	if err := s.VehicleTypeRepo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateVehicleType: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update vehicle type")
	}
	return s.VehicleTypeRepo.GetByID(id)
}

// DeleteVehicleType soft-deletes a vehicle type.
func (s *DefaultCatalogService) DeleteVehicleType(id string) error {
	return s.VehicleTypeRepo.SoftDelete(id)
}

// ListVehicleTypes returns a DataTables page of vehicle types.
func (s *DefaultCatalogService) ListVehicleTypes(q models.ListQuery) (*models.ListResult[models.VehicleType], error) {
	items, total, filtered, err := s.VehicleTypeRepo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ListResult[models.VehicleType]{
		Draw: q.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: items,
	}, nil
}

// checkVehicleRefs validates the pointers a vehicle carries.
func (s *DefaultCatalogService) checkVehicleRefs(input models.VehicleInput) error {
	vt, err := s.VehicleTypeRepo.GetByID(input.VehicleTypeID)
	if err != nil {
		return fmt.Errorf("failed to resolve vehicle type: %w", err)
	}
	if vt == nil {
		return fmt.Errorf("vehicle type %s not found", input.VehicleTypeID)
	}
	p, err := s.ProviderRepo.GetByID(input.ProviderID)
	if err != nil {
		return fmt.Errorf("failed to resolve provider: %w", err)
	}
	if p == nil {
		return fmt.Errorf("provider %s not found", input.ProviderID)
	}
	return nil
}

// CreateVehicle stores a new vehicle after validating its references.
func (s *DefaultCatalogService) CreateVehicle(input models.VehicleInput) (*models.Vehicle, error) {
	if err := s.checkVehicleRefs(input); err != nil {
		return nil, err
	}
	v := &models.Vehicle{
		ID:            uuid.New().String(),
		Plate:         input.Plate,
		Model:         input.Model,
		Year:          input.Year,
		Capacity:      input.Capacity,
		VehicleTypeID: input.VehicleTypeID,
		ProviderID:    input.ProviderID,
		Active:        true,
	}
	if err := s.VehicleRepo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetVehicleByID retrieves an active vehicle.
func (s *DefaultCatalogService) GetVehicleByID(id string) (*models.Vehicle, error) {
	return s.VehicleRepo.GetByID(id)
}

// UpdateVehicle updates an existing vehicle after validating its references.
func (s *DefaultCatalogService) UpdateVehicle(id string, input models.VehicleInput) (*models.Vehicle, error) {
	if err := s.checkVehicleRefs(input); err != nil {
		return nil, err
	}
	updateDoc := bson.M{
		"plate":         input.Plate,
		"model":         input.Model,
		"year":          input.Year,
		"capacity":      input.Capacity,
		"vehicleTypeId": input.VehicleTypeID,
		"providerId":    input.ProviderID,
	}
	if err := s.VehicleRepo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateVehicle: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update vehicle")
	}
	return s.VehicleRepo.GetByID(id)
}

// DeleteVehicle soft-deletes a vehicle.
func (s *DefaultCatalogService) DeleteVehicle(id string) error {
	return s.VehicleRepo.SoftDelete(id)
}

// ListVehicles returns a DataTables page of vehicles.
func (s *DefaultCatalogService) ListVehicles(q models.ListQuery) (*models.ListResult[models.Vehicle], error) {
	items, total, filtered, err := s.VehicleRepo.List(q)
	if err != nil {
		return nil, err
	}
	return &models.ListResult[models.Vehicle]{
		Draw: q.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: items,
	}, nil
}
