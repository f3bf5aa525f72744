package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Relational rows (pricing database)
// ════════════════════════════════════════════════════════════

// Expense is one back-office expense entry; rows feed the balance sheet.
type Expense struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Description string         `json:"description" gorm:"not null"`
	Category    string         `json:"category" gorm:"not null;index"` // supplies, logistics, salaries, other
	Amount      float64        `json:"amount" gorm:"type:numeric(14,2);not null;check:amount >= 0"`
	Date        time.Time      `json:"date" gorm:"not null;index"`
	Metadata    datatypes.JSON `json:"metadata" gorm:"type:jsonb;default:'{}'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Expense) TableName() string {
	return "expenses"
}

// Price is a wholesale/retail price row for one product option.
type Price struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductRef string    `json:"product_ref" gorm:"not null;index"` // Mongo product id hex
	OptionName string    `json:"option_name" gorm:"not null"`
	OrderType  string    `json:"order_type" gorm:"not null;index"` // retail | wholesale
	Amount     float64   `json:"amount" gorm:"type:numeric(14,2);not null;check:amount >= 0"`
	ValidFrom  time.Time `json:"valid_from" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Price) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Price) TableName() string {
	return "prices"
}

type CreateExpenseRequest struct {
	Description string         `json:"description" binding:"required,min=2,max=255"`
	Category    string         `json:"category" binding:"required,oneof=supplies logistics salaries other"`
	Amount      float64        `json:"amount" binding:"required,gt=0"`
	Date        time.Time      `json:"date" binding:"required"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateExpenseRequest struct {
	Description *string        `json:"description" binding:"omitempty,min=2,max=255"`
	Category    *string        `json:"category" binding:"omitempty,oneof=supplies logistics salaries other"`
	Amount      *float64       `json:"amount" binding:"omitempty,gt=0"`
	Date        *time.Time     `json:"date"`
	Metadata    map[string]any `json:"metadata"`
}
