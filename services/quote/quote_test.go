package quote

import (
	"testing"
	"time"

	"tripdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeQuoteRepo struct {
	quotes map[string]*models.Quote
	// transitionOK forces TransitionStatus to report a lost race when false.
	transitionOK bool
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*models.Quote), transitionOK: true}
}

func (r *fakeQuoteRepo) Create(q *models.Quote) error {
	r.quotes[q.ID] = q
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*models.Quote, error) {
	q, ok := r.quotes[id]
	if !ok || !q.Active {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	q := r.quotes[id]
	if status, ok := updateDoc["status"].(string); ok {
		q.Status = status
	}
	if total, ok := updateDoc["total"].(int64); ok {
		q.Total = total
	}
	return nil
}

func (r *fakeQuoteRepo) TransitionStatus(id, from, to string) (bool, error) {
	if !r.transitionOK {
		return false, nil
	}
	q, ok := r.quotes[id]
	if !ok || q.Status != from {
		return false, nil
	}
	q.Status = to
	return true, nil
}

func (r *fakeQuoteRepo) SoftDelete(id string) error {
	if q, ok := r.quotes[id]; ok {
		q.Active = false
	}
	return nil
}

func (r *fakeQuoteRepo) List(q models.ListQuery) ([]models.Quote, int64, int64, error) {
	var out []models.Quote
	for _, v := range r.quotes {
		if v.Active {
			out = append(out, *v)
		}
	}
	n := int64(len(out))
	return out, n, n, nil
}

func (r *fakeQuoteRepo) CountsByStatus() (*models.QuoteStatusCounts, error) {
	counts := &models.QuoteStatusCounts{}
	for _, v := range r.quotes {
		if !v.Active {
			continue
		}
		switch v.Status {
		case models.QuoteStatusPending:
			counts.Pending++
		case models.QuoteStatusSent:
			counts.Sent++
		case models.QuoteStatusApproved:
			counts.Approved++
		case models.QuoteStatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}

func (r *fakeQuoteRepo) Recent(limit int64) ([]models.Quote, error) {
	out, _, _, _ := r.List(models.ListQuery{})
	return out, nil
}

type fakeServiceRepo struct {
	services map[string]*models.TravelService
}

func (r *fakeServiceRepo) Create(svc *models.TravelService) error { return nil }
func (r *fakeServiceRepo) GetByID(id string) (*models.TravelService, error) {
	return r.services[id], nil
}
func (r *fakeServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakeServiceRepo) SoftDelete(id string) error                          { return nil }
func (r *fakeServiceRepo) List(q models.ListQuery) ([]models.TravelService, int64, int64, error) {
	return nil, 0, 0, nil
}
func (r *fakeServiceRepo) CountActive() (int64, error) { return 0, nil }

type fakeVehicleTypeRepo struct {
	types map[string]*models.VehicleType
}

func (r *fakeVehicleTypeRepo) Create(vt *models.VehicleType) error { return nil }
func (r *fakeVehicleTypeRepo) GetByID(id string) (*models.VehicleType, error) {
	return r.types[id], nil
}
func (r *fakeVehicleTypeRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakeVehicleTypeRepo) SoftDelete(id string) error                          { return nil }
func (r *fakeVehicleTypeRepo) List(q models.ListQuery) ([]models.VehicleType, int64, int64, error) {
	return nil, 0, 0, nil
}

func newTestService() (*DefaultQuoteService, *fakeQuoteRepo) {
	repo := newFakeQuoteRepo()
	svc := &DefaultQuoteService{
		Repo: repo,
		ServiceRepo: &fakeServiceRepo{services: map[string]*models.TravelService{
			"svc-1": {ID: "svc-1", Name: "Airport transfer", BasePrice: 10000, Currency: "USD", Active: true},
		}},
		VehicleTypeRepo: &fakeVehicleTypeRepo{types: map[string]*models.VehicleType{
			"vt-1": {ID: "vt-1", Name: "sedan", MaxCapacity: 4, PriceMultiplier: 1.0, Active: true},
		}},
	}
	return svc, repo
}

func validInput() models.QuoteInput {
	return models.QuoteInput{
		CustomerName:  "Jordan Reyes",
		CustomerEmail: "jordan@example.com",
		Origin:        "Lisbon",
		Destination:   "Porto",
		TravelDate:    time.Now().AddDate(0, 0, 14),
		Passengers:    3,
		ServiceID:     "svc-1",
		VehicleTypeID: "vt-1",
	}
}

func TestCreateQuoteComputesTotals(t *testing.T) {
	svc, _ := newTestService()

	q, err := svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusPending, q.Status)
	assert.Equal(t, int64(10000), q.Total)
	assert.Equal(t, "USD", q.Currency)
	assert.Equal(t, "agent-1", q.CreatedBy)
	assert.True(t, q.Active)
}

func TestCreateQuoteUnknownService(t *testing.T) {
	svc, _ := newTestService()
	input := validInput()
	input.ServiceID = "missing"

	_, err := svc.CreateQuote(input, "agent-1")
	assert.Error(t, err)
}

func TestTransitionQuoteLifecycle(t *testing.T) {
	svc, _ := newTestService()
	q, err := svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)

	sent, err := svc.TransitionQuote(q.ID, models.QuoteStatusSent)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusSent, sent.Status)

	approved, err := svc.TransitionQuote(q.ID, models.QuoteStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusApproved, approved.Status)
}

func TestTransitionQuoteInvalid(t *testing.T) {
	svc, _ := newTestService()
	q, err := svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)

	// pending -> approved skips the sent step.
	_, err = svc.TransitionQuote(q.ID, models.QuoteStatusApproved)
	require.Error(t, err)
	assert.IsType(t, ErrInvalidTransition{}, err)

	// Terminal states accept no further transitions.
	_, err = svc.TransitionQuote(q.ID, models.QuoteStatusSent)
	require.NoError(t, err)
	_, err = svc.TransitionQuote(q.ID, models.QuoteStatusRejected)
	require.NoError(t, err)
	_, err = svc.TransitionQuote(q.ID, models.QuoteStatusApproved)
	assert.IsType(t, ErrInvalidTransition{}, err)
}

func TestTransitionQuoteLostRace(t *testing.T) {
	svc, repo := newTestService()
	q, err := svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)

	repo.transitionOK = false
	_, err = svc.TransitionQuote(q.ID, models.QuoteStatusSent)
	assert.IsType(t, ErrInvalidTransition{}, err)
}

func TestUpdateQuoteOnlyPending(t *testing.T) {
	svc, _ := newTestService()
	q, err := svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)

	input := validInput()
	input.Passengers = 9
	updated, err := svc.UpdateQuote(q.ID, input)
	require.NoError(t, err)
	// 9 passengers in 4-seaters needs 3 vehicles.
	assert.Equal(t, int64(30000), updated.Total)

	_, err = svc.TransitionQuote(q.ID, models.QuoteStatusSent)
	require.NoError(t, err)

	_, err = svc.UpdateQuote(q.ID, input)
	assert.IsType(t, ErrInvalidTransition{}, err)
}

func TestDashboardCounts(t *testing.T) {
	svc, _ := newTestService()
	q1, err := svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)
	_, err = svc.CreateQuote(validInput(), "agent-1")
	require.NoError(t, err)

	_, err = svc.TransitionQuote(q1.ID, models.QuoteStatusSent)
	require.NoError(t, err)

	counts, err := svc.DashboardCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Pending)
	assert.Equal(t, int64(1), counts.Sent)
}
