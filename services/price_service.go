package services

import (
	"context"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

// PriceService manages wholesale/retail price rows in the pricing database.
// Reads go through the pgx pool (hot path for the storefront sync job);
// writes go through GORM so the UUID hooks apply.
type PriceService struct{}

func NewPriceService() *PriceService {
	return &PriceService{}
}

// ListPrices returns the current price rows, optionally scoped to one
// product, newest valid_from first.
func (s *PriceService) ListPrices(ctx context.Context, productRef string) ([]models.Price, error) {
	query := `
		SELECT id, product_ref, option_name, order_type, amount, valid_from, created_at, updated_at
		FROM prices
	`
	args := []any{}
	if productRef != "" {
		query += ` WHERE product_ref = $1`
		args = append(args, productRef)
	}
	query += ` ORDER BY product_ref, option_name, valid_from DESC`

	rows, err := config.PricingDB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []models.Price
	for rows.Next() {
		var p models.Price
		if err := rows.Scan(&p.ID, &p.ProductRef, &p.OptionName, &p.OrderType,
			&p.Amount, &p.ValidFrom, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// UpsertPrice writes the amount for one (product, option, order type) tuple,
// creating the row if it does not exist.
func (s *PriceService) UpsertPrice(ctx context.Context, productRef, optionName, orderType string, amount float64, validFrom time.Time) (*models.Price, error) {
	db := config.PricingGorm.WithContext(ctx)

	var price models.Price
	err := db.Where("product_ref = ? AND option_name = ? AND order_type = ?",
		productRef, optionName, orderType).First(&price).Error
	if err == nil {
		price.Amount = amount
		price.ValidFrom = validFrom
		if err := db.Save(&price).Error; err != nil {
			return nil, err
		}
		return &price, nil
	}

	price = models.Price{
		ProductRef: productRef,
		OptionName: optionName,
		OrderType:  orderType,
		Amount:     amount,
		ValidFrom:  validFrom,
	}
	if err := db.Create(&price).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var priceService *PriceService

// GetPriceService returns the global price service instance
func GetPriceService() *PriceService {
	if priceService == nil {
		priceService = NewPriceService()
	}
	return priceService
}
