package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog document in the products collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID  primitive.ObjectID `bson:"categoryId" json:"category_id"`
	Options     []ProductOption    `bson:"options" json:"options"`
	OrderType   string             `bson:"orderType" json:"order_type"` // retail | wholesale
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// ProductOption is a sellable variant; the name carries the weight token
// ("5KG", "10KG") for weight-bearing products.
type ProductOption struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
	Stock int     `bson:"stock" json:"stock"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=255"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" binding:"required"`
	Options     []ProductOption `json:"options" binding:"required,min=1"`
	OrderType   string          `json:"order_type" binding:"required,oneof=retail wholesale"`
	Active      *bool           `json:"active"`
}

type UpdateProductRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string         `json:"description"`
	CategoryID  *string         `json:"category_id"`
	Options     []ProductOption `json:"options"`
	OrderType   *string         `json:"order_type" binding:"omitempty,oneof=retail wholesale"`
	Active      *bool           `json:"active"`
}
