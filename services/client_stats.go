package services

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

// ReduceCategoryStats rolls classified clients up into per-category counts,
// spend sums, rounded averages and rounded population percentages. An empty
// population yields empty lists, never a division error.
func ReduceCategoryStats(clients []models.ClassifiedClient) (behavior []models.CategoryStat, spending []models.CategoryStat) {
	total := len(clients)
	if total == 0 {
		return []models.CategoryStat{}, []models.CategoryStat{}
	}

	type bucket struct {
		count int
		spent float64
	}
	behaviorBuckets := make(map[models.BehaviorCategory]*bucket)
	spendingBuckets := make(map[models.SpendingCategory]*bucket)

	for _, c := range clients {
		b, ok := behaviorBuckets[c.BehaviorCategory]
		if !ok {
			b = &bucket{}
			behaviorBuckets[c.BehaviorCategory] = b
		}
		b.count++
		b.spent += c.TotalSpent

		s, ok := spendingBuckets[c.SpendingCategory]
		if !ok {
			s = &bucket{}
			spendingBuckets[c.SpendingCategory] = s
		}
		s.count++
		s.spent += c.TotalSpent
	}

	statFor := func(category string, b *bucket) models.CategoryStat {
		if b == nil {
			b = &bucket{}
		}
		stat := models.CategoryStat{
			Category:   category,
			Count:      b.count,
			TotalSpent: b.spent,
			Percentage: math.Round(float64(b.count) / float64(total) * 100),
		}
		if b.count > 0 {
			stat.AverageSpending = math.Round(b.spent / float64(b.count))
		}
		return stat
	}

	behavior = make([]models.CategoryStat, 0, len(models.BehaviorCategories))
	for _, cat := range models.BehaviorCategories {
		behavior = append(behavior, statFor(string(cat), behaviorBuckets[cat]))
	}
	spending = make([]models.CategoryStat, 0, len(models.SpendingCategories))
	for _, cat := range models.SpendingCategories {
		spending = append(spending, statFor(string(cat), spendingBuckets[cat]))
	}
	return behavior, spending
}

// ClientAnalyticsService exposes the client categorization engine to the
// presentation layer. Every call recomputes from current order history;
// nothing here is cached, so two calls moments apart may disagree while new
// orders arrive. That is accepted best-effort consistency.
type ClientAnalyticsService struct {
	store *OrderStore
}

func NewClientAnalyticsService(store *OrderStore) *ClientAnalyticsService {
	return &ClientAnalyticsService{store: store}
}

// GetClientCategorization computes the full population categorization used
// by the dashboard summary. Precise path: line-item weights.
func (s *ClientAnalyticsService) GetClientCategorization(ctx context.Context) (*models.ClientAnalytics, error) {
	orders, err := s.store.FetchOrders(ctx, AnalyticsStatuses, nil, nil)
	if err != nil {
		log.Printf("[clients.categorization] ERROR fetch orders err=%v", err)
		return nil, err
	}

	now := time.Now()
	aggs := BuildClientAggregates(orders)
	classified := ClassifyClients(aggs, now, LineItemWeightStrategy{})
	behaviorStats, spendingStats := ReduceCategoryStats(classified)

	return &models.ClientAnalytics{
		TotalClients:  len(classified),
		Clients:       classified,
		BehaviorStats: behaviorStats,
		SpendingStats: spendingStats,
	}, nil
}

// GetClientCategoriesStats is the counts-only cheap path: the grouping runs
// as a database pipeline (no line items cross the wire) and spending uses the
// spend-tier approximation.
func (s *ClientAnalyticsService) GetClientCategoriesStats(ctx context.Context) (*models.ClientCategoriesStats, error) {
	rollups, err := s.store.FetchClientRollups(ctx)
	if err != nil {
		log.Printf("[clients.categories-stats] ERROR fetch rollups err=%v", err)
		return nil, err
	}

	now := time.Now()
	aggs := make([]models.ClientAggregate, 0, len(rollups))
	for _, r := range rollups {
		aggs = append(aggs, r.Aggregate())
	}

	classified := ClassifyClients(aggs, now, SpendTierWeightStrategy{})
	behaviorStats, spendingStats := ReduceCategoryStats(classified)

	return &models.ClientCategoriesStats{
		BehaviorCategories: behaviorStats,
		SpendingCategories: spendingStats,
	}, nil
}
