package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripdesk/models"
	quoteService "tripdesk/services/quote"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubQuoteService struct {
	quote         *models.Quote
	transitionErr error
}

func (s *stubQuoteService) CreateQuote(input models.QuoteInput, createdBy string) (*models.Quote, error) {
	return s.quote, nil
}
func (s *stubQuoteService) GetQuoteByID(id string) (*models.Quote, error) { return s.quote, nil }
func (s *stubQuoteService) UpdateQuote(id string, input models.QuoteInput) (*models.Quote, error) {
	return s.quote, nil
}
func (s *stubQuoteService) TransitionQuote(id, target string) (*models.Quote, error) {
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	return s.quote, nil
}
func (s *stubQuoteService) DeleteQuote(id string) error { return nil }
func (s *stubQuoteService) ListQuotes(q models.ListQuery) (*models.ListResult[models.Quote], error) {
	return &models.ListResult[models.Quote]{Draw: q.Draw, Data: []models.Quote{*s.quote}}, nil
}
func (s *stubQuoteService) DashboardCounts() (*models.QuoteStatusCounts, error) {
	return &models.QuoteStatusCounts{}, nil
}
func (s *stubQuoteService) RecentQuotes(limit int64) ([]models.Quote, error) { return nil, nil }

func quoteRouter(svc quoteService.QuoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &QuoteHandler{Service: svc}
	r := gin.New()
	r.POST("/api/quotes/:id/status", h.TransitionQuoteHandler)
	r.GET("/api/quotes/:id", h.GetQuoteHandler)
	r.GET("/api/quotes", h.ListQuotesHandler)
	return r
}

func sampleQuote() *models.Quote {
	return &models.Quote{
		ID: "q-1", CustomerName: "Jordan", Status: models.QuoteStatusSent,
		TravelDate: time.Now(), Total: 10000, Currency: "USD", Active: true,
	}
}

func TestTransitionQuoteHandlerConflict(t *testing.T) {
	svc := &stubQuoteService{
		quote:         sampleQuote(),
		transitionErr: quoteService.ErrInvalidTransition{From: "approved", To: "sent"},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/quotes/q-1/status", strings.NewReader(`{"status":"sent"}`))
	req.Header.Set("Content-Type", "application/json")
	quoteRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTransitionQuoteHandlerRejectsUnknownStatus(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/quotes/q-1/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	quoteRouter(&stubQuoteService{quote: sampleQuote()}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuoteHandlerNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	quoteRouter(&stubQuoteService{quote: nil}).ServeHTTP(w, httptest.NewRequest("GET", "/api/quotes/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListQuotesHandlerEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	quoteRouter(&stubQuoteService{quote: sampleQuote()}).ServeHTTP(w,
		httptest.NewRequest("GET", "/api/quotes?draw=4", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"draw":4`)
	assert.Contains(t, w.Body.String(), `"customerName":"Jordan"`)
}
