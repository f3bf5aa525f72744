package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order types
const (
	OrderTypeRetail    = "retail"
	OrderTypeWholesale = "wholesale"
)

// WhatsAppHiddenSentinel marks a client as hidden from contact-list views.
// Exactly this string hides the client; any other value (including empty)
// leaves it visible.
const WhatsAppHiddenSentinel = "hidden"

// Order is a storefront order document. Immutable once delivered except for
// status and the WhatsApp-contact marker.
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              string             `bson:"userId,omitempty" json:"user_id,omitempty"`
	User                OrderUser          `bson:"user" json:"user"`
	Address             OrderAddress       `bson:"address" json:"address"`
	Items               []LineItem         `bson:"items" json:"items"`
	Total               float64            `bson:"total" json:"total"`
	PaymentMethod       string             `bson:"paymentMethod" json:"payment_method"`
	OrderType           string             `bson:"orderType" json:"order_type"` // retail | wholesale
	DeliveryType        string             `bson:"deliveryType,omitempty" json:"delivery_type,omitempty"`
	Status              string             `bson:"status" json:"status"`
	Notes               string             `bson:"notes,omitempty" json:"notes,omitempty"`
	WhatsAppContactedAt string             `bson:"whatsappContactedAt,omitempty" json:"whatsapp_contacted_at,omitempty"` // RFC3339, "hidden", or absent
	CreatedAt           time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updated_at"`
	DeliveryDate        *time.Time         `bson:"deliveryDate,omitempty" json:"delivery_date,omitempty"`
}

// OrderUser is the customer snapshot embedded in each order.
type OrderUser struct {
	ID          string `bson:"id,omitempty" json:"id,omitempty"`
	Name        string `bson:"name" json:"name"`
	LastName    string `bson:"lastName,omitempty" json:"last_name,omitempty"`
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phone_number,omitempty"`
}

// OrderAddress is the delivery address snapshot taken at order time.
type OrderAddress struct {
	Street       string `bson:"street" json:"street"`
	City         string `bson:"city" json:"city"`
	ZipCode      string `bson:"zipCode,omitempty" json:"zip_code,omitempty"`
	Neighborhood string `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// LineItem is one product line inside an order. The product name is free text
// and drives the heuristic family categorization.
type LineItem struct {
	ProductName string   `bson:"name" json:"name"`
	Options     []Option `bson:"options" json:"options"`
}

// Option is a purchasable variant of a line item. The label carries an
// embedded weight token ("5KG", "10KG") for weight-bearing products.
type Option struct {
	Label    string  `bson:"name" json:"name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// CMSOrderListRow is the flattened row for the back-office orders table.
type CMSOrderListRow struct {
	ID            string     `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Total         float64    `json:"total"`
	ItemCount     int        `json:"item_count"`
	PaymentMethod string     `json:"payment_method"`
	OrderType     string     `json:"order_type"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed delivered cancelled"`
}

type UpdateWhatsAppContactRequest struct {
	// Action: "contacted" stamps the current time, "hide" writes the hidden
	// sentinel, "show" clears it.
	Action string `json:"action" binding:"required,oneof=contacted hide show"`
	Email  string `json:"email" binding:"required,email"`
}
