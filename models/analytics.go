package models

// MonthlyBalanceRow merges order revenue (Mongo) with expenses (Postgres)
// for one calendar month.
type MonthlyBalanceRow struct {
	Month      string  `json:"month"` // YYYY-MM
	Revenue    float64 `json:"revenue"`
	Expenses   float64 `json:"expenses"`
	Net        float64 `json:"net"`
	OrderCount int     `json:"order_count"`
}

// BalanceSheet is the back-office balance dashboard payload.
type BalanceSheet struct {
	Rows          []MonthlyBalanceRow `json:"rows"`
	TotalRevenue  float64             `json:"total_revenue"`
	TotalExpenses float64             `json:"total_expenses"`
	TotalNet      float64             `json:"total_net"`
}

// CategorySalesStat is the per-product-family sales rollup.
type CategorySalesStat struct {
	Family         string  `json:"family"`
	Revenue        float64 `json:"revenue"`
	WeightKg       float64 `json:"weight_kg"`
	UnitsSold      int     `json:"units_sold"`
	RevenuePercent float64 `json:"revenue_percent"`
}

// MonthlyQuantityRow is estimated kilograms sold in one month, split by
// order type.
type MonthlyQuantityRow struct {
	Month       string  `json:"month"` // YYYY-MM
	RetailKg    float64 `json:"retail_kg"`
	WholesaleKg float64 `json:"wholesale_kg"`
	TotalKg     float64 `json:"total_kg"`
}

// DeliveryTypeStat counts orders per delivery type and order type.
type DeliveryTypeStat struct {
	DeliveryType string  `json:"delivery_type"`
	OrderType    string  `json:"order_type"`
	OrderCount   int     `json:"order_count"`
	Revenue      float64 `json:"revenue"`
	Percentage   float64 `json:"percentage"`
}
