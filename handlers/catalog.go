package handlers

import (
	"errors"
	"net/http"

	"tripdesk/database"
	"tripdesk/models"
	catalogService "tripdesk/services/catalog"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeStatus picks the response code for a failed create or update.
// Unique-index violations surface as 409, everything else as 400.
func writeStatus(err error) int {
	if errors.Is(err, database.ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// CatalogHandler serves travel service, vehicle type and vehicle endpoints.
type CatalogHandler struct {
	Service catalogService.CatalogService
}

var serviceColumns = map[int]string{
	0: "name",
	1: "basePrice",
	2: "durationMinutes",
	3: "createdAt",
}

var vehicleTypeColumns = map[int]string{
	0: "name",
	1: "minCapacity",
	2: "maxCapacity",
	3: "sortOrder",
	4: "createdAt",
}

var vehicleColumns = map[int]string{
	0: "plate",
	1: "model",
	2: "year",
	3: "capacity",
	4: "createdAt",
}

// CreateServiceHandler handles POST /api/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var input models.TravelServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc, err := h.Service.CreateService(input)
	if err != nil {
		utils.GetLogger().Error("Service creation failed", zap.Error(err))
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Service.GetServiceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.TravelServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc, err := h.Service.UpdateService(c.Param("id"), input)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.DeleteService(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListServicesHandler handles GET /api/services (DataTables).
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	result, err := h.Service.ListServices(models.ParseListQuery(c, serviceColumns))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateVehicleTypeHandler handles POST /api/vehicle-types.
func (h *CatalogHandler) CreateVehicleTypeHandler(c *gin.Context) {
	var input models.VehicleTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	vt, err := h.Service.CreateVehicleType(input)
	if err != nil {
		utils.GetLogger().Error("Vehicle type creation failed", zap.Error(err))
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vt)
}

// GetVehicleTypeHandler handles GET /api/vehicle-types/:id.
func (h *CatalogHandler) GetVehicleTypeHandler(c *gin.Context) {
	vt, err := h.Service.GetVehicleTypeByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if vt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle type not found"})
		return
	}
	c.JSON(http.StatusOK, vt)
}

// UpdateVehicleTypeHandler handles PUT /api/vehicle-types/:id.
func (h *CatalogHandler) UpdateVehicleTypeHandler(c *gin.Context) {
	var input models.VehicleTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	vt, err := h.Service.UpdateVehicleType(c.Param("id"), input)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	if vt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle type not found"})
		return
	}
	c.JSON(http.StatusOK, vt)
}

// DeleteVehicleTypeHandler handles DELETE /api/vehicle-types/:id.
func (h *CatalogHandler) DeleteVehicleTypeHandler(c *gin.Context) {
	if err := h.Service.DeleteVehicleType(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle type deleted"})
}

// ListVehicleTypesHandler handles GET /api/vehicle-types (DataTables).
func (h *CatalogHandler) ListVehicleTypesHandler(c *gin.Context) {
	result, err := h.Service.ListVehicleTypes(models.ParseListQuery(c, vehicleTypeColumns))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateVehicleHandler handles POST /api/vehicles.
func (h *CatalogHandler) CreateVehicleHandler(c *gin.Context) {
	var input models.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	v, err := h.Service.CreateVehicle(input)
	if err != nil {
		utils.GetLogger().Error("Vehicle creation failed", zap.Error(err))
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetVehicleHandler handles GET /api/vehicles/:id.
func (h *CatalogHandler) GetVehicleHandler(c *gin.Context) {
	v, err := h.Service.GetVehicleByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateVehicleHandler handles PUT /api/vehicles/:id.
func (h *CatalogHandler) UpdateVehicleHandler(c *gin.Context) {
	var input models.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	v, err := h.Service.UpdateVehicle(c.Param("id"), input)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVehicleHandler handles DELETE /api/vehicles/:id.
func (h *CatalogHandler) DeleteVehicleHandler(c *gin.Context) {
	if err := h.Service.DeleteVehicle(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// ListVehiclesHandler handles GET /api/vehicles (DataTables).
func (h *CatalogHandler) ListVehiclesHandler(c *gin.Context) {
	result, err := h.Service.ListVehicles(models.ParseListQuery(c, vehicleColumns))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
