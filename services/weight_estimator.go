package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

// kgTokenPattern matches the first numeric token immediately followed by KG
// in an option label ("5KG", "2.5 kg", "10,5KG").
var kgTokenPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*KG`)

// EstimateWeightKg maps a line item to its kilogram weight.
//
// Rules, in priority order:
//  1. BIG DOG products are fixed 15kg boxes regardless of option label.
//  2. COMPLEMENTO products are not weight-bearing (supplements, 250G jars).
//  3. Otherwise the first "<number>KG" token of the option label wins.
//  4. No token -> not weight-bearing.
//
// This is the single shared implementation: every aggregator that needs item
// weight (client categorization, sales by category, quantity by month) calls
// it here.
func EstimateWeightKg(productName, optionLabel string) (float64, bool) {
	name := strings.ToLower(productName)

	if strings.Contains(name, "big dog") {
		return 15, true
	}
	if strings.Contains(name, "complemento") {
		return 0, false
	}

	m := kgTokenPattern.FindStringSubmatch(optionLabel)
	if m == nil {
		return 0, false
	}
	kg, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return kg, true
}

// ItemsWeightKg sums the estimated weight of a set of line items, scaled by
// option quantity. Unparseable options are skipped, never fatal.
func ItemsWeightKg(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		for _, opt := range item.Options {
			kg, ok := EstimateWeightKg(item.ProductName, opt.Label)
			if !ok {
				continue
			}
			qty := opt.Quantity
			if qty <= 0 {
				qty = 1
			}
			total += kg * float64(qty)
		}
	}
	return total
}

// ════════════════════════════════════════════════════════════
// Product family rules
// ════════════════════════════════════════════════════════════

// Product families used by the sales-by-category rollup.
const (
	FamilyBigDog       = "BIG DOG"
	FamilyHuesos       = "HUESOS"
	FamilyComplementos = "COMPLEMENTOS"
	FamilyGato         = "GATO"
	FamilyPerro        = "PERRO"
	FamilyOtros        = "OTROS"
)

type familyRule struct {
	keyword string
	family  string
}

// Ordered rule list; first match wins. BIG DOG must run before PERRO/GATO
// ("BIG DOG POLLO" is a dog product but belongs to its own family).
var familyRules = []familyRule{
	{"big dog", FamilyBigDog},
	{"hueso", FamilyHuesos},
	{"complemento", FamilyComplementos},
	{"gato", FamilyGato},
	{"perro", FamilyPerro},
}

// ProductFamilyFor assigns a product name to a family via the ordered
// keyword rules, with an explicit default.
func ProductFamilyFor(productName string) string {
	name := strings.ToLower(productName)
	for _, rule := range familyRules {
		if strings.Contains(name, rule.keyword) {
			return rule.family
		}
	}
	return FamilyOtros
}

// ════════════════════════════════════════════════════════════
// Monthly weight strategies
// ════════════════════════════════════════════════════════════

// WeightEstimationStrategy estimates a client's monthly product weight.
// Two implementations exist with different precision/performance tradeoffs
// and every call site declares which one it uses.
type WeightEstimationStrategy interface {
	// MonthlyWeightKg returns the estimated kilograms per month a client
	// buys, evaluated at the given reference time.
	MonthlyWeightKg(agg models.ClientAggregate, now time.Time) float64
	// Name identifies the strategy in logs.
	Name() string
}

// LineItemWeightStrategy is the precise path: it sums real line-item weights.
// Uses the trailing month when the client bought anything in it; otherwise
// falls back to the lifetime monthly average so steady buyers who skipped
// one month are not under-categorized.
type LineItemWeightStrategy struct{}

func (LineItemWeightStrategy) Name() string { return "line-item" }

func (LineItemWeightStrategy) MonthlyWeightKg(agg models.ClientAggregate, now time.Time) float64 {
	monthAgo := now.AddDate(0, -1, 0)

	var lastMonth, lifetime float64
	for _, entry := range agg.Entries {
		kg := ItemsWeightKg(entry.Items)
		lifetime += kg
		if entry.Date.After(monthAgo) {
			lastMonth += kg
		}
	}

	if lastMonth > 0 {
		return lastMonth
	}
	return lifetime / monthsSince(agg.FirstOrderDate, now)
}

// SpendTierWeightStrategy is the fast approximate path used by list views:
// it derives weight from spend per order instead of walking line items.
type SpendTierWeightStrategy struct{}

func (SpendTierWeightStrategy) Name() string { return "spend-tier" }

// Spend-per-order to estimated kilograms lookup.
func spendTierKg(spendPerOrder float64) float64 {
	switch {
	case spendPerOrder >= 30000:
		return 20
	case spendPerOrder >= 15000:
		return 12
	case spendPerOrder >= 5000:
		return 8
	default:
		return 5
	}
}

func (SpendTierWeightStrategy) MonthlyWeightKg(agg models.ClientAggregate, now time.Time) float64 {
	if agg.TotalOrders == 0 {
		return 0
	}
	perOrderKg := spendTierKg(agg.TotalSpent / float64(agg.TotalOrders))
	totalKg := perOrderKg * float64(agg.TotalOrders)
	return totalKg / monthsSince(agg.FirstOrderDate, now)
}

// monthsSince returns elapsed months as days/30, floored at 1 so a brand-new
// client's first month counts as a whole month.
func monthsSince(first time.Time, now time.Time) float64 {
	months := now.Sub(first).Hours() / 24 / 30
	if months < 1 {
		return 1
	}
	return months
}
