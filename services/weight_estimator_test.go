package services_test

import (
	"testing"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/stretchr/testify/assert"
)

func TestEstimateWeightKg(t *testing.T) {
	t.Parallel()

	t.Run("big dog is a fixed 15kg box", func(t *testing.T) {
		t.Parallel()

		kg, ok := services.EstimateWeightKg("BIG DOG POLLO 15KG", "anything")
		assert.True(t, ok)
		assert.Equal(t, 15.0, kg)

		// Even when the label carries a contradicting token.
		kg, ok = services.EstimateWeightKg("Big Dog Vaca", "5KG")
		assert.True(t, ok)
		assert.Equal(t, 15.0, kg)
	})

	t.Run("complemento is never weight-bearing", func(t *testing.T) {
		t.Parallel()

		_, ok := services.EstimateWeightKg("Complemento Vitaminico", "250G")
		assert.False(t, ok)

		_, ok = services.EstimateWeightKg("COMPLEMENTO ARTICULAR", "10KG")
		assert.False(t, ok)
	})

	t.Run("kg token is parsed from the option label", func(t *testing.T) {
		t.Parallel()

		kg, ok := services.EstimateWeightKg("Pollo", "5KG")
		assert.True(t, ok)
		assert.Equal(t, 5.0, kg)

		kg, ok = services.EstimateWeightKg("Barfer box Gato Vaca", "2.5 kg")
		assert.True(t, ok)
		assert.Equal(t, 2.5, kg)

		// Comma decimals normalize to dots.
		kg, ok = services.EstimateWeightKg("Cordero", "10,5KG")
		assert.True(t, ok)
		assert.Equal(t, 10.5, kg)
	})

	t.Run("no token means not weight-bearing", func(t *testing.T) {
		t.Parallel()

		_, ok := services.EstimateWeightKg("Pollo", "no-weight-here")
		assert.False(t, ok)

		_, ok = services.EstimateWeightKg("Pollo", "")
		assert.False(t, ok)
	})
}

func TestItemsWeightKg(t *testing.T) {
	t.Parallel()

	items := []models.LineItem{
		{ProductName: "Pollo", Options: []models.Option{{Label: "10KG", Quantity: 2}}},
		{ProductName: "Complemento Vitaminico", Options: []models.Option{{Label: "250G", Quantity: 3}}},
		{ProductName: "BIG DOG VACA", Options: []models.Option{{Label: "15KG", Quantity: 1}}},
		// Zero quantity counts as one unit, never zero.
		{ProductName: "Cordero", Options: []models.Option{{Label: "5KG", Quantity: 0}}},
	}

	assert.Equal(t, 40.0, services.ItemsWeightKg(items))
}

func TestProductFamilyFor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"BIG DOG POLLO 15KG":      services.FamilyBigDog,
		"Hueso recreativo de res": services.FamilyHuesos,
		"Complemento Vitaminico":  services.FamilyComplementos,
		"Barfer box Gato Vaca":    services.FamilyGato,
		"Barfer box Perro Pollo":  services.FamilyPerro,
		"Bolsa termica":           services.FamilyOtros,
	}
	for name, want := range cases {
		assert.Equal(t, want, services.ProductFamilyFor(name), name)
	}
}

func TestWeightStrategies(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("line-item strategy prefers the trailing month", func(t *testing.T) {
		t.Parallel()

		agg := models.ClientAggregate{
			TotalOrders:    3,
			FirstOrderDate: now.AddDate(0, -3, 0),
			LastOrderDate:  now.AddDate(0, 0, -10),
			Entries: []models.OrderEntry{
				{Date: now.AddDate(0, -3, 0), Items: []models.LineItem{{ProductName: "Pollo", Options: []models.Option{{Label: "10KG", Quantity: 1}}}}},
				{Date: now.AddDate(0, -2, 0), Items: []models.LineItem{{ProductName: "Pollo", Options: []models.Option{{Label: "10KG", Quantity: 1}}}}},
				{Date: now.AddDate(0, 0, -10), Items: []models.LineItem{{ProductName: "Vaca", Options: []models.Option{{Label: "5KG", Quantity: 1}}}}},
			},
		}

		kg := services.LineItemWeightStrategy{}.MonthlyWeightKg(agg, now)
		assert.Equal(t, 5.0, kg)
	})

	t.Run("line-item strategy falls back to lifetime average", func(t *testing.T) {
		t.Parallel()

		// 30kg over roughly three months, nothing in the trailing month.
		agg := models.ClientAggregate{
			TotalOrders:    2,
			FirstOrderDate: now.AddDate(0, -3, 0),
			LastOrderDate:  now.AddDate(0, -2, 0),
			Entries: []models.OrderEntry{
				{Date: now.AddDate(0, -3, 0), Items: []models.LineItem{{ProductName: "Pollo", Options: []models.Option{{Label: "10KG", Quantity: 1}}}}},
				{Date: now.AddDate(0, -2, 0), Items: []models.LineItem{{ProductName: "Pollo", Options: []models.Option{{Label: "10KG", Quantity: 2}}}}},
			},
		}

		kg := services.LineItemWeightStrategy{}.MonthlyWeightKg(agg, now)
		assert.Greater(t, kg, 9.0)
		assert.Less(t, kg, 11.0)
	})

	t.Run("spend-tier strategy maps spend per order to kilograms", func(t *testing.T) {
		t.Parallel()

		// 2 orders averaging 16000 each within the first month: tier 12kg.
		agg := models.ClientAggregate{
			TotalOrders:    2,
			TotalSpent:     32000,
			FirstOrderDate: now.AddDate(0, 0, -20),
			LastOrderDate:  now.AddDate(0, 0, -5),
		}

		kg := services.SpendTierWeightStrategy{}.MonthlyWeightKg(agg, now)
		assert.Equal(t, 24.0, kg)
	})

	t.Run("spend-tier strategy handles an empty aggregate", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, services.SpendTierWeightStrategy{}.MonthlyWeightKg(models.ClientAggregate{}, now))
	})
}
