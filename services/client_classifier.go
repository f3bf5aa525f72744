package services

import (
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

// Behavior thresholds in days. The recovered branch's 90-day guard is what
// keeps it disjoint from possible-inactive and lost; if any threshold moves,
// the cross-category tests must move with it.
const (
	newClientMaxDays        = 7
	trackingMaxDays         = 30
	activeWindowDays        = 90
	lostAfterDays           = 120
	recoveredMinGapDays     = 120
	recoveredMaxRecencyDays = 90
)

// Spending tier thresholds in estimated kilograms per month.
const (
	premiumMinKg  = 15
	standardMinKg = 5
)

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// ClassifyBehavior assigns exactly one behavior category. Branches are
// evaluated top to bottom and the first match wins; the order is part of the
// contract.
func ClassifyBehavior(agg models.ClientAggregate, now time.Time) models.BehaviorCategory {
	daysSinceFirst := daysBetween(agg.FirstOrderDate, now)
	daysSinceLast := daysBetween(agg.LastOrderDate, now)

	// 1. recovered: a long silence between the two most recent orders,
	// broken by a recent purchase.
	if agg.TotalOrders > 1 {
		dates := agg.OrderDates()
		gap := daysBetween(dates[len(dates)-2], dates[len(dates)-1])
		if gap > recoveredMinGapDays && daysSinceLast <= recoveredMaxRecencyDays {
			return models.BehaviorRecovered
		}
	}

	// 2-3. single-order clients within their first month.
	if agg.TotalOrders == 1 && daysSinceFirst <= newClientMaxDays {
		return models.BehaviorNew
	}
	if agg.TotalOrders == 1 && daysSinceFirst <= trackingMaxDays {
		return models.BehaviorTracking
	}

	// 4-5. recency buckets for everyone else.
	if daysSinceLast > lostAfterDays {
		return models.BehaviorLost
	}
	if daysSinceLast > activeWindowDays {
		return models.BehaviorPossibleInactive
	}

	// 6. default: purchased within the active window.
	return models.BehaviorActive
}

// ClassifySpending assigns exactly one spending tier from the estimated
// monthly weight produced by the given strategy.
func ClassifySpending(agg models.ClientAggregate, now time.Time, strategy WeightEstimationStrategy) (models.SpendingCategory, float64) {
	monthlyKg := strategy.MonthlyWeightKg(agg, now)

	switch {
	case monthlyKg > premiumMinKg:
		return models.SpendingPremium, monthlyKg
	case monthlyKg > standardMinKg:
		return models.SpendingStandard, monthlyKg
	default:
		return models.SpendingBasic, monthlyKg
	}
}

// ClassifyClients runs both classifiers over a set of aggregates.
func ClassifyClients(aggs []models.ClientAggregate, now time.Time, strategy WeightEstimationStrategy) []models.ClassifiedClient {
	classified := make([]models.ClassifiedClient, 0, len(aggs))
	for _, agg := range aggs {
		spending, monthlyKg := ClassifySpending(agg, now, strategy)
		classified = append(classified, models.ClassifiedClient{
			ClientAggregate:  agg,
			BehaviorCategory: ClassifyBehavior(agg, now),
			SpendingCategory: spending,
			MonthlyWeightKg:  monthlyKg,
		})
	}
	return classified
}
