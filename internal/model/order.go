package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Order is created at checkout. Line items snapshot the product name, image
// and price at purchase time. The paid and delivered transitions are
// monotonic; there is no un-pay or un-deliver.
type Order struct {
	ID              bson.ObjectID   `bson:"_id,omitempty"            json:"_id"`
	UserID          bson.ObjectID   `bson:"user_id"                  json:"user"`
	OrderItems      []OrderItem     `bson:"order_items"              json:"orderItems"`
	ShippingAddress ShippingAddress `bson:"shipping_address"         json:"shippingAddress"`
	PaymentMethod   string          `bson:"payment_method"           json:"paymentMethod"`
	ItemsPrice      float64         `bson:"items_price"              json:"itemsPrice"`
	TaxPrice        float64         `bson:"tax_price"                json:"taxPrice"`
	ShippingPrice   float64         `bson:"shipping_price"           json:"shippingPrice"`
	TotalPrice      float64         `bson:"total_price"              json:"totalPrice"`
	IsPaid          bool            `bson:"is_paid"                  json:"isPaid"`
	PaidAt          *time.Time      `bson:"paid_at,omitempty"        json:"paidAt,omitempty"`
	PaymentResult   *PaymentResult  `bson:"payment_result,omitempty" json:"paymentResult,omitempty"`
	IsDelivered     bool            `bson:"is_delivered"             json:"isDelivered"`
	DeliveredAt     *time.Time      `bson:"delivered_at,omitempty"   json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `bson:"created_at"               json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at"               json:"updatedAt"`
}

// OrderItem is a purchased line item with its price snapshot.
type OrderItem struct {
	ProductID bson.ObjectID `bson:"product_id"     json:"product"`
	Name      string        `bson:"name"           json:"name"`
	Image     string        `bson:"image"          json:"image"`
	Price     float64       `bson:"price"          json:"price"`
	Qty       int           `bson:"qty"            json:"qty"`
	Size      string        `bson:"size,omitempty" json:"size,omitempty"`
}

// ShippingAddress is the destination snapshot taken at checkout.
type ShippingAddress struct {
	Address    string `bson:"address"     json:"address"`
	City       string `bson:"city"        json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country"     json:"country"`
}

// PaymentResult records the payment provider's confirmation. Every field is
// sanitized before storage, never trusted verbatim from the client.
type PaymentResult struct {
	ID           string `bson:"id"            json:"id"`
	Status       string `bson:"status"        json:"status"`
	UpdateTime   string `bson:"update_time"   json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}
