package handlers

import (
	"errors"
	"net/http"

	"tripdesk/middleware"
	"tripdesk/models"
	quoteService "tripdesk/services/quote"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves quote CRUD and lifecycle endpoints.
type QuoteHandler struct {
	Service quoteService.QuoteService
}

// quoteColumns maps DataTables order indexes to sortable fields.
var quoteColumns = map[int]string{
	0: "customerName",
	1: "origin",
	2: "destination",
	3: "travelDate",
	4: "status",
	5: "total",
	6: "createdAt",
}

// CreateQuoteHandler handles POST /api/quotes.
func (h *QuoteHandler) CreateQuoteHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	q, err := h.Service.CreateQuote(input, c.GetString(middleware.CtxUserID))
	if err != nil {
		logger.Error("Quote creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, q)
}

// GetQuoteHandler handles GET /api/quotes/:id.
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	id := c.Param("id")
	q, err := h.Service.GetQuoteByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// UpdateQuoteHandler handles PUT /api/quotes/:id.
func (h *QuoteHandler) UpdateQuoteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var input models.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	q, err := h.Service.UpdateQuote(id, input)
	if err != nil {
		var et quoteService.ErrInvalidTransition
		if errors.As(err, &et) {
			c.JSON(http.StatusConflict, gin.H{"error": "Only pending quotes can be edited"})
			return
		}
		logger.Error("Quote update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// TransitionQuoteHandler handles POST /api/quotes/:id/status.
func (h *QuoteHandler) TransitionQuoteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required,oneof=sent approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	q, err := h.Service.TransitionQuote(id, req.Status)
	if err != nil {
		var et quoteService.ErrInvalidTransition
		if errors.As(err, &et) {
			c.JSON(http.StatusConflict, gin.H{"error": et.Error()})
			return
		}
		logger.Error("Quote transition failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// DeleteQuoteHandler handles DELETE /api/quotes/:id.
func (h *QuoteHandler) DeleteQuoteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteQuote(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted"})
}

// ListQuotesHandler handles GET /api/quotes (DataTables).
func (h *QuoteHandler) ListQuotesHandler(c *gin.Context) {
	q := models.ParseListQuery(c, quoteColumns)
	result, err := h.Service.ListQuotes(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
