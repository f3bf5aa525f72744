package services_test

import (
	"testing"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCustomerKey(t *testing.T) {
	t.Parallel()

	key, ok := services.ResolveCustomerKey(models.Order{UserID: "u-1", User: models.OrderUser{Email: "x@y.com"}})
	assert.True(t, ok)
	assert.Equal(t, "u-1", key)

	key, ok = services.ResolveCustomerKey(models.Order{User: models.OrderUser{ID: "u-2"}})
	assert.True(t, ok)
	assert.Equal(t, "u-2", key)

	// Email fallback normalizes case and whitespace.
	key, ok = services.ResolveCustomerKey(models.Order{User: models.OrderUser{Email: "  Ana@Example.COM "}})
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", key)

	// No identity at all: excluded, never merged.
	_, ok = services.ResolveCustomerKey(models.Order{})
	assert.False(t, ok)
}

func TestBuildClientAggregates(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{
			UserID:    "u-1",
			User:      models.OrderUser{Name: "Ana", Email: "ana@example.com"},
			Address:   models.OrderAddress{City: "La Plata"},
			Total:     5000,
			CreatedAt: base,
		},
		{
			UserID:              "u-1",
			User:                models.OrderUser{Name: "Ana Maria", Email: "ana@example.com"},
			Address:             models.OrderAddress{City: "CABA"},
			Total:               8000,
			WhatsAppContactedAt: models.WhatsAppHiddenSentinel,
			CreatedAt:           base.AddDate(0, 0, 20),
		},
		// Same person via differently-cased email, no user id.
		{User: models.OrderUser{Email: "Bruno@example.com"}, Total: 3000, CreatedAt: base},
		{User: models.OrderUser{Email: " bruno@example.com "}, Total: 4000, CreatedAt: base.AddDate(0, 0, 5)},
		// Identity-less order: skipped entirely.
		{Total: 99999, CreatedAt: base},
	}

	aggs := services.BuildClientAggregates(orders)
	require.Len(t, aggs, 2)

	// Output is sorted by key: "bruno@example.com" < "u-1".
	bruno, ana := aggs[0], aggs[1]

	assert.Equal(t, "bruno@example.com", bruno.Key)
	assert.Equal(t, 2, bruno.TotalOrders)
	assert.Equal(t, 7000.0, bruno.TotalSpent)

	assert.Equal(t, "u-1", ana.Key)
	assert.Equal(t, 2, ana.TotalOrders)
	assert.Equal(t, 13000.0, ana.TotalSpent)
	assert.Equal(t, base, ana.FirstOrderDate)
	assert.Equal(t, base.AddDate(0, 0, 20), ana.LastOrderDate)

	// Snapshot fields follow the most recent order.
	assert.Equal(t, "Ana Maria", ana.User.Name)
	assert.Equal(t, "CABA", ana.Address.City)
	assert.Equal(t, models.WhatsAppHiddenSentinel, ana.LastContactValue)

	// Entries come back in ascending date order.
	for _, agg := range aggs {
		dates := agg.OrderDates()
		for i := 1; i < len(dates); i++ {
			assert.False(t, dates[i].Before(dates[i-1]))
		}
	}
}

func TestBuildClientAggregatesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, services.BuildClientAggregates(nil))
	assert.Empty(t, services.BuildClientAggregates([]models.Order{{Total: 100}}))
}
