package models

import "time"

// BehaviorCategory segments a client by purchase recency/frequency.
type BehaviorCategory string

const (
	BehaviorNew              BehaviorCategory = "new"
	BehaviorTracking         BehaviorCategory = "tracking"
	BehaviorActive           BehaviorCategory = "active"
	BehaviorPossibleInactive BehaviorCategory = "possible-inactive"
	BehaviorLost             BehaviorCategory = "lost"
	BehaviorRecovered        BehaviorCategory = "recovered"
)

// BehaviorCategories lists every behavior category in display order.
var BehaviorCategories = []BehaviorCategory{
	BehaviorNew,
	BehaviorTracking,
	BehaviorActive,
	BehaviorPossibleInactive,
	BehaviorLost,
	BehaviorRecovered,
}

// SpendingCategory tiers a client by estimated monthly product weight.
type SpendingCategory string

const (
	SpendingPremium  SpendingCategory = "premium"
	SpendingStandard SpendingCategory = "standard"
	SpendingBasic    SpendingCategory = "basic"
)

// SpendingCategories lists every spending category in display order.
var SpendingCategories = []SpendingCategory{
	SpendingPremium,
	SpendingStandard,
	SpendingBasic,
}

// OrderEntry is one order's contribution to a client aggregate: when it was
// placed, what it cost and which items it carried.
type OrderEntry struct {
	Date  time.Time  `json:"date"`
	Total float64    `json:"total"`
	Items []LineItem `json:"items"`
}

// ClientAggregate is the per-client rollup recomputed from order history on
// every query. Never persisted or cached.
type ClientAggregate struct {
	Key            string       `json:"key"` // user id, or normalized email fallback
	User           OrderUser    `json:"user"`
	Address        OrderAddress `json:"address"`
	TotalOrders    int          `json:"total_orders"`
	TotalSpent     float64      `json:"total_spent"`
	FirstOrderDate time.Time    `json:"first_order_date"`
	LastOrderDate  time.Time    `json:"last_order_date"`
	// Entries are sorted ascending by date; the user/address snapshots come
	// from the most recent order.
	Entries []OrderEntry `json:"-"`
	// LastContactValue is the whatsappContactedAt value from the most recent
	// order (RFC3339 timestamp, the hidden sentinel, or empty).
	LastContactValue string `json:"-"`
}

// OrderDates returns the entry dates in ascending order.
func (a ClientAggregate) OrderDates() []time.Time {
	dates := make([]time.Time, len(a.Entries))
	for i, e := range a.Entries {
		dates[i] = e.Date
	}
	return dates
}

// ClassifiedClient pairs an aggregate with exactly one category per axis.
type ClassifiedClient struct {
	ClientAggregate
	BehaviorCategory BehaviorCategory `json:"behavior_category"`
	SpendingCategory SpendingCategory `json:"spending_category"`
	MonthlyWeightKg  float64          `json:"monthly_weight_kg"`
}

// CategoryStat is one category-level rollup row.
type CategoryStat struct {
	Category        string  `json:"category"`
	Count           int     `json:"count"`
	TotalSpent      float64 `json:"total_spent"`
	AverageSpending float64 `json:"average_spending"`
	Percentage      float64 `json:"percentage"`
}

// ClientAnalytics is the full-population categorization result.
type ClientAnalytics struct {
	TotalClients  int                `json:"total_clients"`
	Clients       []ClassifiedClient `json:"clients"`
	BehaviorStats []CategoryStat     `json:"behavior_stats"`
	SpendingStats []CategoryStat     `json:"spending_stats"`
}

// ClientCategoriesStats is the counts-only cheap path result.
type ClientCategoriesStats struct {
	BehaviorCategories []CategoryStat `json:"behavior_categories"`
	SpendingCategories []CategoryStat `json:"spending_categories"`
}

// ClientRow is one row of the paginated back-office clients table, including
// the WhatsApp-contact overlay.
type ClientRow struct {
	Key                 string           `json:"key"`
	Name                string           `json:"name"`
	LastName            string           `json:"last_name,omitempty"`
	Email               string           `json:"email"`
	PhoneNumber         string           `json:"phone_number,omitempty"`
	Address             OrderAddress     `json:"address"`
	TotalOrders         int              `json:"total_orders"`
	TotalSpent          float64          `json:"total_spent"`
	FirstOrderDate      time.Time        `json:"first_order_date"`
	LastOrderDate       time.Time        `json:"last_order_date"`
	BehaviorCategory    BehaviorCategory `json:"behavior_category"`
	SpendingCategory    SpendingCategory `json:"spending_category"`
	MonthlyWeightKg     float64          `json:"monthly_weight_kg"`
	WhatsAppContactedAt *time.Time       `json:"whatsapp_contacted_at"`
	Hidden              bool             `json:"hidden"`
}

// Sort keys for the paginated clients query
const (
	ClientSortTotalSpent  = "totalSpent"
	ClientSortTotalOrders = "totalOrders"
	ClientSortLastOrder   = "lastOrder"
)

// Visibility filter values
const (
	VisibilityAll     = "all"
	VisibilityHidden  = "hidden"
	VisibilityVisible = "visible"
)

// Category filter axes
const (
	CategoryTypeBehavior = "behavior"
	CategoryTypeSpending = "spending"
)

// ClientsQueryOptions drives GetClientsPaginated.
type ClientsQueryOptions struct {
	Category     string `form:"category"`
	CategoryType string `form:"type"`       // behavior | spending
	Visibility   string `form:"visibility"` // all | hidden | visible
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	SortBy       string `form:"sort_by"`    // totalSpent | totalOrders | lastOrder
	SortOrder    string `form:"sort_order"` // asc | desc
}

// PaginatedClientsResponse is the paged clients table payload.
type PaginatedClientsResponse struct {
	Clients    []ClientRow `json:"clients"`
	TotalCount int         `json:"total_count"`
	TotalPages int         `json:"total_pages"`
	HasMore    bool        `json:"has_more"`
}

// WhatsAppContact is the per-email contact overlay entry.
type WhatsAppContact struct {
	ContactedAt *time.Time `json:"contacted_at"`
	Hidden      bool       `json:"hidden"`
}
