package handlers

import (
	"net/http"

	"tripdesk/models"
	providerService "tripdesk/services/provider"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves provider and experience endpoints.
type ProviderHandler struct {
	Service providerService.ProviderService
}

var providerColumns = map[int]string{
	0: "companyName",
	1: "contactName",
	2: "email",
	3: "rating",
	4: "createdAt",
}

var experienceColumns = map[int]string{
	0: "title",
	1: "price",
	2: "createdAt",
}

// CreateProviderHandler handles POST /api/providers.
func (h *ProviderHandler) CreateProviderHandler(c *gin.Context) {
	var input models.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	p, err := h.Service.CreateProvider(input)
	if err != nil {
		utils.GetLogger().Error("Provider creation failed", zap.Error(err))
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProviderHandler handles GET /api/providers/:id.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	p, err := h.Service.GetProviderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProviderHandler handles PUT /api/providers/:id.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	var input models.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	p, err := h.Service.UpdateProvider(c.Param("id"), input)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProviderHandler handles DELETE /api/providers/:id.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	if err := h.Service.DeleteProvider(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}

// ListProvidersHandler handles GET /api/providers (DataTables).
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	result, err := h.Service.ListProviders(models.ParseListQuery(c, providerColumns))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListProviderExperiencesHandler handles GET /api/providers/:id/experiences.
func (h *ProviderHandler) ListProviderExperiencesHandler(c *gin.Context) {
	experiences, err := h.Service.ListProviderExperiences(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// CreateExperienceHandler handles POST /api/experiences.
func (h *ProviderHandler) CreateExperienceHandler(c *gin.Context) {
	var input models.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	e, err := h.Service.CreateExperience(input)
	if err != nil {
		utils.GetLogger().Error("Experience creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GetExperienceHandler handles GET /api/experiences/:id.
func (h *ProviderHandler) GetExperienceHandler(c *gin.Context) {
	e, err := h.Service.GetExperienceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// UpdateExperienceHandler handles PUT /api/experiences/:id.
func (h *ProviderHandler) UpdateExperienceHandler(c *gin.Context) {
	var input models.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	e, err := h.Service.UpdateExperience(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteExperienceHandler handles DELETE /api/experiences/:id.
func (h *ProviderHandler) DeleteExperienceHandler(c *gin.Context) {
	if err := h.Service.DeleteExperience(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted"})
}

// ListExperiencesHandler handles GET /api/experiences (DataTables).
func (h *ProviderHandler) ListExperiencesHandler(c *gin.Context) {
	result, err := h.Service.ListExperiences(models.ParseListQuery(c, experienceColumns))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
