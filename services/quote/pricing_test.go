package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsSingleVehicle(t *testing.T) {
	totals := ComputeTotals(10000, 1.0, 3, 4, 0)
	assert.Equal(t, 1, totals.Vehicles)
	assert.Equal(t, int64(10000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.DiscountAmount)
	assert.Equal(t, int64(10000), totals.Total)
}

func TestComputeTotalsMultipleVehicles(t *testing.T) {
	// 9 passengers in 4-seaters needs 3 vehicles.
	totals := ComputeTotals(10000, 1.0, 9, 4, 0)
	assert.Equal(t, 3, totals.Vehicles)
	assert.Equal(t, int64(30000), totals.Subtotal)
}

func TestComputeTotalsMultiplierRounding(t *testing.T) {
	// 333 * 1.5 = 499.5, rounds to 500 per vehicle.
	totals := ComputeTotals(333, 1.5, 1, 4, 0)
	assert.Equal(t, int64(500), totals.Subtotal)
}

func TestComputeTotalsDiscount(t *testing.T) {
	totals := ComputeTotals(10000, 1.0, 1, 4, 15)
	assert.Equal(t, int64(10000), totals.Subtotal)
	assert.Equal(t, int64(1500), totals.DiscountAmount)
	assert.Equal(t, int64(8500), totals.Total)
}

func TestComputeTotalsDiscountClamped(t *testing.T) {
	over := ComputeTotals(10000, 1.0, 1, 4, 150)
	assert.Equal(t, int64(0), over.Total)

	under := ComputeTotals(10000, 1.0, 1, 4, -5)
	assert.Equal(t, int64(10000), under.Total)
}

func TestComputeTotalsDegenerateInputs(t *testing.T) {
	// Zero capacity and zero passengers fall back to one of each.
	totals := ComputeTotals(10000, 1.0, 0, 0, 0)
	assert.Equal(t, 1, totals.Vehicles)
	assert.Equal(t, int64(10000), totals.Total)
}
