package services_test

import (
	"testing"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceCategoryStats(t *testing.T) {
	t.Parallel()

	clients := []models.ClassifiedClient{
		{ClientAggregate: models.ClientAggregate{TotalSpent: 1000}, BehaviorCategory: models.BehaviorActive, SpendingCategory: models.SpendingBasic},
		{ClientAggregate: models.ClientAggregate{TotalSpent: 3000}, BehaviorCategory: models.BehaviorActive, SpendingCategory: models.SpendingStandard},
		{ClientAggregate: models.ClientAggregate{TotalSpent: 9000}, BehaviorCategory: models.BehaviorLost, SpendingCategory: models.SpendingPremium},
	}

	behavior, spending := services.ReduceCategoryStats(clients)

	// Every category appears exactly once, in display order, zero buckets
	// included.
	require.Len(t, behavior, len(models.BehaviorCategories))
	require.Len(t, spending, len(models.SpendingCategories))
	for i, cat := range models.BehaviorCategories {
		assert.Equal(t, string(cat), behavior[i].Category)
	}

	statByName := func(stats []models.CategoryStat, name string) models.CategoryStat {
		for _, s := range stats {
			if s.Category == name {
				return s
			}
		}
		t.Fatalf("category %s missing", name)
		return models.CategoryStat{}
	}

	active := statByName(behavior, string(models.BehaviorActive))
	assert.Equal(t, 2, active.Count)
	assert.Equal(t, 4000.0, active.TotalSpent)
	assert.Equal(t, 2000.0, active.AverageSpending)
	assert.Equal(t, 67.0, active.Percentage) // round(2/3*100)

	lost := statByName(behavior, string(models.BehaviorLost))
	assert.Equal(t, 1, lost.Count)
	assert.Equal(t, 33.0, lost.Percentage)

	newStat := statByName(behavior, string(models.BehaviorNew))
	assert.Equal(t, 0, newStat.Count)
	assert.Equal(t, 0.0, newStat.AverageSpending)
	assert.Equal(t, 0.0, newStat.Percentage)

	// Counts sum back to the population on both axes.
	var behaviorTotal, spendingTotal int
	for _, s := range behavior {
		behaviorTotal += s.Count
	}
	for _, s := range spending {
		spendingTotal += s.Count
	}
	assert.Equal(t, len(clients), behaviorTotal)
	assert.Equal(t, len(clients), spendingTotal)
}

func TestReduceCategoryStatsEmptyPopulation(t *testing.T) {
	t.Parallel()

	behavior, spending := services.ReduceCategoryStats(nil)
	assert.Empty(t, behavior)
	assert.Empty(t, spending)
}

func TestReduceCategoryStatsIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	aggs := []models.ClientAggregate{
		aggregateWithOrders(now.AddDate(0, 0, -3)),
		aggregateWithOrders(now.AddDate(0, 0, -60), now.AddDate(0, 0, -20)),
		aggregateWithOrders(now.AddDate(0, 0, -300)),
	}
	classified := services.ClassifyClients(aggs, now, services.SpendTierWeightStrategy{})

	b1, s1 := services.ReduceCategoryStats(classified)
	b2, s2 := services.ReduceCategoryStats(classified)
	assert.Equal(t, b1, b2)
	assert.Equal(t, s1, s2)
}
