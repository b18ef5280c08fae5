package quote

import "math"

// Totals carries the computed price breakdown of a quote, in minor currency
// units.
type Totals struct {
	Subtotal       int64
	DiscountAmount int64
	Total          int64
	Vehicles       int
}

// ComputeTotals prices a quote: the service base price times the vehicle-type
// multiplier, per vehicle needed to seat the party, minus the discount.
func ComputeTotals(basePrice int64, multiplier float64, passengers, maxCapacity, discountPercent int) Totals {
	if maxCapacity < 1 {
		maxCapacity = 1
	}
	if passengers < 1 {
		passengers = 1
	}
	vehicles := (passengers + maxCapacity - 1) / maxCapacity

	perVehicle := int64(math.Round(float64(basePrice) * multiplier))
	subtotal := perVehicle * int64(vehicles)

	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	discount := subtotal * int64(discountPercent) / 100

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
		Vehicles:       vehicles,
	}
}
