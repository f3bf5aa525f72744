package services

import (
	"log"
	"sort"
	"strings"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

// ResolveCustomerKey returns the single stable grouping key for an order's
// customer: the user id when present, otherwise the normalized (trimmed,
// lowercased) email. Orders carrying neither have no key and are excluded
// from aggregation — they must never merge into another client.
//
// This is the only place the id-or-email fallback lives; every grouping path
// goes through it.
func ResolveCustomerKey(order models.Order) (string, bool) {
	if order.UserID != "" {
		return order.UserID, true
	}
	if order.User.ID != "" {
		return order.User.ID, true
	}
	email := strings.ToLower(strings.TrimSpace(order.User.Email))
	if email != "" {
		return email, true
	}
	return "", false
}

// BuildClientAggregates groups orders by customer key and computes the
// per-client rollups: order count, spend sum, first/last order dates, the
// dated item entries and the last-seen user/address snapshot.
//
// All four lifecycle statuses participate; callers filter upstream if they
// want delivered-only views. Orders without a customer identity are skipped
// and counted.
func BuildClientAggregates(orders []models.Order) []models.ClientAggregate {
	byKey := make(map[string]*models.ClientAggregate)
	skipped := 0

	for _, order := range orders {
		key, ok := ResolveCustomerKey(order)
		if !ok {
			skipped++
			continue
		}

		agg, exists := byKey[key]
		if !exists {
			agg = &models.ClientAggregate{Key: key}
			byKey[key] = agg
		}

		agg.TotalOrders++
		agg.TotalSpent += order.Total
		agg.Entries = append(agg.Entries, models.OrderEntry{
			Date:  order.CreatedAt,
			Total: order.Total,
			Items: order.Items,
		})

		if agg.FirstOrderDate.IsZero() || order.CreatedAt.Before(agg.FirstOrderDate) {
			agg.FirstOrderDate = order.CreatedAt
		}
		// Snapshot fields follow the most recent order, not the first seen.
		if order.CreatedAt.After(agg.LastOrderDate) || agg.LastOrderDate.IsZero() {
			agg.LastOrderDate = order.CreatedAt
			agg.User = order.User
			agg.Address = order.Address
			agg.LastContactValue = order.WhatsAppContactedAt
		}
	}

	if skipped > 0 {
		log.Printf("[clients.aggregate] skipped %d orders without user id or email", skipped)
	}

	aggs := make([]models.ClientAggregate, 0, len(byKey))
	for _, agg := range byKey {
		sort.Slice(agg.Entries, func(i, j int) bool {
			return agg.Entries[i].Date.Before(agg.Entries[j].Date)
		})
		aggs = append(aggs, *agg)
	}

	// Deterministic output order regardless of map iteration.
	sort.Slice(aggs, func(i, j int) bool { return aggs[i].Key < aggs[j].Key })

	return aggs
}
