package services_test

import (
	"testing"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/stretchr/testify/assert"
)

// aggregateWithOrders builds a minimal aggregate from order dates, oldest
// first, the way BuildClientAggregates would.
func aggregateWithOrders(dates ...time.Time) models.ClientAggregate {
	agg := models.ClientAggregate{TotalOrders: len(dates)}
	for _, d := range dates {
		agg.Entries = append(agg.Entries, models.OrderEntry{Date: d})
		if agg.FirstOrderDate.IsZero() || d.Before(agg.FirstOrderDate) {
			agg.FirstOrderDate = d
		}
		if d.After(agg.LastOrderDate) {
			agg.LastOrderDate = d
		}
	}
	return agg
}

func TestClassifyBehavior(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	t.Run("day window walkthrough", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name string
			agg  models.ClientAggregate
			want models.BehaviorCategory
		}{
			{"first order 3 days ago", aggregateWithOrders(daysAgo(3)), models.BehaviorNew},
			{"first order 20 days ago", aggregateWithOrders(daysAgo(20)), models.BehaviorTracking},
			{"repeat buyer, last order 50 days ago", aggregateWithOrders(daysAgo(80), daysAgo(50)), models.BehaviorActive},
			{"last order 95 days ago", aggregateWithOrders(daysAgo(150), daysAgo(95)), models.BehaviorPossibleInactive},
			{"last order 130 days ago", aggregateWithOrders(daysAgo(200), daysAgo(130)), models.BehaviorLost},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, services.ClassifyBehavior(tc.agg, now), tc.name)
		}
	})

	t.Run("recovered needs a long gap and a recent order", func(t *testing.T) {
		t.Parallel()

		// 150-day silence broken 50 days ago.
		agg := aggregateWithOrders(daysAgo(200), daysAgo(50))
		assert.Equal(t, models.BehaviorRecovered, services.ClassifyBehavior(agg, now))

		// Long gap but the comeback itself went stale: falls through to lost.
		stale := aggregateWithOrders(daysAgo(300), daysAgo(130))
		assert.Equal(t, models.BehaviorLost, services.ClassifyBehavior(stale, now))

		// Long gap, comeback in the possible-inactive window.
		fading := aggregateWithOrders(daysAgo(300), daysAgo(95))
		assert.Equal(t, models.BehaviorPossibleInactive, services.ClassifyBehavior(fading, now))

		// Short gap is never recovered, whatever the recency.
		regular := aggregateWithOrders(daysAgo(80), daysAgo(10))
		assert.Equal(t, models.BehaviorActive, services.ClassifyBehavior(regular, now))
	})

	t.Run("recovered wins over new and tracking windows", func(t *testing.T) {
		t.Parallel()

		// Two orders, the second one 3 days ago after a 150-day gap: the gap
		// rule applies before any recency bucket.
		agg := aggregateWithOrders(daysAgo(153), daysAgo(3))
		assert.Equal(t, models.BehaviorRecovered, services.ClassifyBehavior(agg, now))
	})

	t.Run("single stale order is never new or tracking", func(t *testing.T) {
		t.Parallel()

		agg := aggregateWithOrders(daysAgo(95))
		assert.Equal(t, models.BehaviorPossibleInactive, services.ClassifyBehavior(agg, now))

		agg = aggregateWithOrders(daysAgo(45))
		assert.Equal(t, models.BehaviorActive, services.ClassifyBehavior(agg, now))
	})

	t.Run("every client lands in exactly one category", func(t *testing.T) {
		t.Parallel()

		// Sweep single- and double-order shapes across a wide day range; each
		// must classify to a known category.
		known := map[models.BehaviorCategory]bool{}
		for _, cat := range models.BehaviorCategories {
			known[cat] = true
		}
		for days := 0; days <= 400; days += 5 {
			got := services.ClassifyBehavior(aggregateWithOrders(daysAgo(days)), now)
			assert.True(t, known[got], "single order %d days ago -> %s", days, got)

			got = services.ClassifyBehavior(aggregateWithOrders(daysAgo(days+160), daysAgo(days)), now)
			assert.True(t, known[got], "orders %d/%d days ago -> %s", days+160, days, got)
		}
	})
}

func TestClassifySpending(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	entryWithKg := func(date time.Time, kg string) models.OrderEntry {
		return models.OrderEntry{
			Date:  date,
			Items: []models.LineItem{{ProductName: "Pollo", Options: []models.Option{{Label: kg, Quantity: 1}}}},
		}
	}

	t.Run("tiers by monthly kilograms", func(t *testing.T) {
		t.Parallel()

		premium := models.ClientAggregate{
			TotalOrders:    1,
			FirstOrderDate: now.AddDate(0, 0, -10),
			LastOrderDate:  now.AddDate(0, 0, -10),
			Entries:        []models.OrderEntry{entryWithKg(now.AddDate(0, 0, -10), "20KG")},
		}
		cat, kg := services.ClassifySpending(premium, now, services.LineItemWeightStrategy{})
		assert.Equal(t, models.SpendingPremium, cat)
		assert.Equal(t, 20.0, kg)

		standard := premium
		standard.Entries = []models.OrderEntry{entryWithKg(now.AddDate(0, 0, -10), "10KG")}
		cat, _ = services.ClassifySpending(standard, now, services.LineItemWeightStrategy{})
		assert.Equal(t, models.SpendingStandard, cat)

		basic := premium
		basic.Entries = []models.OrderEntry{entryWithKg(now.AddDate(0, 0, -10), "3KG")}
		cat, _ = services.ClassifySpending(basic, now, services.LineItemWeightStrategy{})
		assert.Equal(t, models.SpendingBasic, cat)
	})

	t.Run("thresholds are exclusive", func(t *testing.T) {
		t.Parallel()

		// Exactly 15kg/month is standard, not premium; exactly 5kg is basic.
		boundary := models.ClientAggregate{
			TotalOrders:    1,
			FirstOrderDate: now.AddDate(0, 0, -10),
			LastOrderDate:  now.AddDate(0, 0, -10),
			Entries:        []models.OrderEntry{entryWithKg(now.AddDate(0, 0, -10), "15KG")},
		}
		cat, _ := services.ClassifySpending(boundary, now, services.LineItemWeightStrategy{})
		assert.Equal(t, models.SpendingStandard, cat)

		boundary.Entries = []models.OrderEntry{entryWithKg(now.AddDate(0, 0, -10), "5KG")}
		cat, _ = services.ClassifySpending(boundary, now, services.LineItemWeightStrategy{})
		assert.Equal(t, models.SpendingBasic, cat)
	})
}

func TestClassifyClients(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	aggs := []models.ClientAggregate{
		aggregateWithOrders(now.AddDate(0, 0, -3)),
		aggregateWithOrders(now.AddDate(0, 0, -200), now.AddDate(0, 0, -50)),
	}

	classified := services.ClassifyClients(aggs, now, services.SpendTierWeightStrategy{})
	assert.Len(t, classified, 2)
	assert.Equal(t, models.BehaviorNew, classified[0].BehaviorCategory)
	assert.Equal(t, models.BehaviorRecovered, classified[1].BehaviorCategory)
	for _, c := range classified {
		assert.NotEmpty(t, c.SpendingCategory)
	}
}
