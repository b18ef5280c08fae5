package handlers

import (
	"net/http"

	catalogRepo "tripdesk/database/repository/catalog"
	providerRepo "tripdesk/database/repository/provider"
	"tripdesk/models"
	quoteService "tripdesk/services/quote"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const recentQuotesLimit = 10

// DashboardHandler serves the server-rendered admin dashboard and its JSON
// summary endpoint.
type DashboardHandler struct {
	QuoteService quoteService.QuoteService
	ServiceRepo  catalogRepo.ServiceRepository
	VehicleRepo  catalogRepo.VehicleRepository
	ProviderRepo providerRepo.ProviderRepository
}

type dashboardSummary struct {
	Quotes    *models.QuoteStatusCounts `json:"quotes"`
	Services  int64                     `json:"services"`
	Vehicles  int64                     `json:"vehicles"`
	Providers int64                     `json:"providers"`
	Recent    []models.Quote            `json:"recentQuotes"`
}

func (h *DashboardHandler) summary() (*dashboardSummary, error) {
	counts, err := h.QuoteService.DashboardCounts()
	if err != nil {
		return nil, err
	}
	recent, err := h.QuoteService.RecentQuotes(recentQuotesLimit)
	if err != nil {
		return nil, err
	}
	services, err := h.ServiceRepo.CountActive()
	if err != nil {
		return nil, err
	}
	vehicles, err := h.VehicleRepo.CountActive()
	if err != nil {
		return nil, err
	}
	providers, err := h.ProviderRepo.CountActive()
	if err != nil {
		return nil, err
	}
	return &dashboardSummary{
		Quotes:    counts,
		Services:  services,
		Vehicles:  vehicles,
		Providers: providers,
		Recent:    recent,
	}, nil
}

// SummaryHandler handles GET /api/dashboard.
func (h *DashboardHandler) SummaryHandler(c *gin.Context) {
	s, err := h.summary()
	if err != nil {
		utils.GetLogger().Error("Dashboard summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// PageHandler handles GET /admin and renders the dashboard template.
func (h *DashboardHandler) PageHandler(c *gin.Context) {
	s, err := h.summary()
	if err != nil {
		utils.GetLogger().Error("Dashboard render failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{"message": "Dashboard unavailable"})
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"summary": s,
	})
}
