package services

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BalanceService builds the monthly balance sheet and the sales rollups.
// Revenue comes from the order store (document side), expenses from the
// pricing database (relational side).
type BalanceService struct {
	store *OrderStore
}

func NewBalanceService(store *OrderStore) *BalanceService {
	return &BalanceService{store: store}
}

type monthlyRevenueDoc struct {
	Month   string  `bson:"_id"`
	Revenue float64 `bson:"revenue"`
	Count   int     `bson:"count"`
}

// fetchMonthlyRevenue pushes the per-month revenue rollup down to the order
// store: delivered orders only, grouped by YYYY-MM.
func (s *BalanceService) fetchMonthlyRevenue(ctx context.Context, from, to time.Time) ([]monthlyRevenueDoc, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":    models.OrderStatusDelivered,
			"createdAt": bson.M{"$gte": from, "$lt": to},
		}},
		{"$group": bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
			"revenue": bson.M{"$sum": "$total"},
			"count":   bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.store.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var docs []monthlyRevenueDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	return docs, nil
}

type monthlyExpenseRow struct {
	Month    string  `gorm:"column:month"`
	Expenses float64 `gorm:"column:expenses"`
}

// GetBalanceSheet merges monthly revenue and expenses over the window
// [from, to). Months with activity on either side appear; missing sides
// contribute zero.
func (s *BalanceService) GetBalanceSheet(ctx context.Context, from, to time.Time) (*models.BalanceSheet, error) {
	revenue, err := s.fetchMonthlyRevenue(ctx, from, to)
	if err != nil {
		log.Printf("[balance.sheet] ERROR revenue rollup err=%v", err)
		return nil, err
	}

	var expenses []monthlyExpenseRow
	if err := config.PricingGorm.WithContext(ctx).
		Raw(`
			SELECT
				TO_CHAR(date_trunc('month', date), 'YYYY-MM') AS month,
				COALESCE(SUM(amount), 0)::float8 AS expenses
			FROM expenses
			WHERE date >= ? AND date < ?
			GROUP BY date_trunc('month', date)
			ORDER BY month ASC
		`, from, to).
		Scan(&expenses).Error; err != nil {
		log.Printf("[balance.sheet] ERROR expense rollup err=%v", err)
		return nil, err
	}

	byMonth := make(map[string]*models.MonthlyBalanceRow)
	rowFor := func(month string) *models.MonthlyBalanceRow {
		row, ok := byMonth[month]
		if !ok {
			row = &models.MonthlyBalanceRow{Month: month}
			byMonth[month] = row
		}
		return row
	}

	for _, r := range revenue {
		row := rowFor(r.Month)
		row.Revenue = r.Revenue
		row.OrderCount = r.Count
	}
	for _, e := range expenses {
		rowFor(e.Month).Expenses = e.Expenses
	}

	sheet := &models.BalanceSheet{Rows: make([]models.MonthlyBalanceRow, 0, len(byMonth))}
	for _, row := range byMonth {
		row.Net = row.Revenue - row.Expenses
		sheet.Rows = append(sheet.Rows, *row)
		sheet.TotalRevenue += row.Revenue
		sheet.TotalExpenses += row.Expenses
	}
	sheet.TotalNet = sheet.TotalRevenue - sheet.TotalExpenses

	sort.Slice(sheet.Rows, func(i, j int) bool { return sheet.Rows[i].Month < sheet.Rows[j].Month })

	return sheet, nil
}

// GetSalesByCategory walks delivered orders and rolls revenue, units and
// estimated weight up per product family. Precise path: line-item weights.
func (s *BalanceService) GetSalesByCategory(ctx context.Context, from, to time.Time) ([]models.CategorySalesStat, error) {
	orders, err := s.store.FetchOrders(ctx, []string{models.OrderStatusDelivered}, &from, &to)
	if err != nil {
		log.Printf("[balance.sales-by-category] ERROR fetch orders err=%v", err)
		return nil, err
	}

	byFamily := make(map[string]*models.CategorySalesStat)
	var totalRevenue float64

	for _, order := range orders {
		for _, item := range order.Items {
			family := ProductFamilyFor(item.ProductName)
			stat, ok := byFamily[family]
			if !ok {
				stat = &models.CategorySalesStat{Family: family}
				byFamily[family] = stat
			}
			for _, opt := range item.Options {
				qty := opt.Quantity
				if qty <= 0 {
					qty = 1
				}
				lineRevenue := opt.Price * float64(qty)
				stat.Revenue += lineRevenue
				stat.UnitsSold += qty
				totalRevenue += lineRevenue
				if kg, ok := EstimateWeightKg(item.ProductName, opt.Label); ok {
					stat.WeightKg += kg * float64(qty)
				}
			}
		}
	}

	stats := make([]models.CategorySalesStat, 0, len(byFamily))
	for _, stat := range byFamily {
		if totalRevenue > 0 {
			stat.RevenuePercent = math.Round(stat.Revenue / totalRevenue * 100)
		}
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Revenue > stats[j].Revenue })

	return stats, nil
}

// GetQuantityByMonth estimates kilograms sold per month over the trailing
// window, split by retail/wholesale.
func (s *BalanceService) GetQuantityByMonth(ctx context.Context, months int) ([]models.MonthlyQuantityRow, error) {
	if months < 1 {
		months = 12
	}
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	orders, err := s.store.FetchOrders(ctx, []string{models.OrderStatusDelivered}, &from, nil)
	if err != nil {
		log.Printf("[balance.quantity-by-month] ERROR fetch orders err=%v", err)
		return nil, err
	}

	byMonth := make(map[string]*models.MonthlyQuantityRow)
	for _, order := range orders {
		month := order.CreatedAt.Format("2006-01")
		row, ok := byMonth[month]
		if !ok {
			row = &models.MonthlyQuantityRow{Month: month}
			byMonth[month] = row
		}
		kg := ItemsWeightKg(order.Items)
		if order.OrderType == models.OrderTypeWholesale {
			row.WholesaleKg += kg
		} else {
			row.RetailKg += kg
		}
		row.TotalKg += kg
	}

	// Fill empty months so charts show a continuous series.
	rows := make([]models.MonthlyQuantityRow, 0, months)
	for i := 0; i < months; i++ {
		month := from.AddDate(0, i, 0).Format("2006-01")
		if row, ok := byMonth[month]; ok {
			rows = append(rows, *row)
		} else {
			rows = append(rows, models.MonthlyQuantityRow{Month: month})
		}
	}

	return rows, nil
}

type deliveryTypeDoc struct {
	Key struct {
		DeliveryType string `bson:"deliveryType"`
		OrderType    string `bson:"orderType"`
	} `bson:"_id"`
	Count   int     `bson:"count"`
	Revenue float64 `bson:"revenue"`
}

// GetDeliveryTypeStats groups delivered orders by delivery and order type
// inside the database.
func (s *BalanceService) GetDeliveryTypeStats(ctx context.Context) ([]models.DeliveryTypeStat, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.OrderStatusDelivered}},
		{"$group": bson.M{
			"_id": bson.M{
				"deliveryType": bson.M{"$ifNull": bson.A{"$deliveryType", "unknown"}},
				"orderType":    bson.M{"$ifNull": bson.A{"$orderType", models.OrderTypeRetail}},
			},
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := s.store.col.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[balance.delivery-types] ERROR aggregate err=%v", err)
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	var docs []deliveryTypeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("[balance.delivery-types] ERROR decode err=%v", err)
		return nil, storeErr(err)
	}

	var totalCount int
	for _, d := range docs {
		totalCount += d.Count
	}

	stats := make([]models.DeliveryTypeStat, 0, len(docs))
	for _, d := range docs {
		stat := models.DeliveryTypeStat{
			DeliveryType: d.Key.DeliveryType,
			OrderType:    d.Key.OrderType,
			OrderCount:   d.Count,
			Revenue:      d.Revenue,
		}
		if totalCount > 0 {
			stat.Percentage = math.Round(float64(d.Count) / float64(totalCount) * 100)
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
