package models

import "time"

// Quote statuses. Transitions are pending -> sent -> approved|rejected.
const (
	QuoteStatusPending  = "pending"
	QuoteStatusSent     = "sent"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
)

// Quote represents a priced travel request drafted for a customer.
type Quote struct {
	ID            string    `bson:"id" json:"id"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string    `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Origin        string    `bson:"origin" json:"origin"`
	Destination   string    `bson:"destination" json:"destination"`
	TravelDate    time.Time `bson:"travelDate" json:"travelDate"`
	Passengers    int       `bson:"passengers" json:"passengers"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	VehicleTypeID string    `bson:"vehicleTypeId" json:"vehicleTypeId"`
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy     string    `bson:"createdBy" json:"createdBy"`

	// Totals computed server-side, minor currency units.
	Subtotal        int64  `bson:"subtotal" json:"subtotal"`
	DiscountPercent int    `bson:"discountPercent" json:"discountPercent"`
	DiscountAmount  int64  `bson:"discountAmount" json:"discountAmount"`
	Total           int64  `bson:"total" json:"total"`
	Currency        string `bson:"currency" json:"currency"`

	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// QuoteInput is the payload for creating or updating a quote.
type QuoteInput struct {
	CustomerName    string    `json:"customerName" binding:"required"`
	CustomerEmail   string    `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string    `json:"customerPhone"`
	Origin          string    `json:"origin" binding:"required"`
	Destination     string    `json:"destination" binding:"required"`
	TravelDate      time.Time `json:"travelDate" binding:"required"`
	Passengers      int       `json:"passengers" binding:"required,min=1"`
	ServiceID       string    `json:"serviceId" binding:"required"`
	VehicleTypeID   string    `json:"vehicleTypeId" binding:"required"`
	DiscountPercent int       `json:"discountPercent" binding:"min=0,max=100"`
	Notes           string    `json:"notes"`
}

// QuoteStatusCounts aggregates quotes by status for the dashboard.
type QuoteStatusCounts struct {
	Pending  int64 `json:"pending"`
	Sent     int64 `json:"sent"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
