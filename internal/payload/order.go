package payload

type OrderItemPayload struct {
	ProductID string  `json:"product"  validate:"required"`
	Name      string  `json:"name"     validate:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"    validate:"gte=0"`
	Qty       int     `json:"qty"      validate:"gt=0"`
	Size      string  `json:"size,omitempty"`
}

type ShippingAddressPayload struct {
	Address    string `json:"address"    validate:"required"`
	City       string `json:"city"       validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country"    validate:"required"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemPayload     `json:"orderItems"      validate:"required,dive"`
	ShippingAddress ShippingAddressPayload `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod"   validate:"required"`
	ItemsPrice      float64                `json:"itemsPrice"      validate:"gte=0"`
	TaxPrice        float64                `json:"taxPrice"        validate:"gte=0"`
	ShippingPrice   float64                `json:"shippingPrice"   validate:"gte=0"`
	TotalPrice      float64                `json:"totalPrice"      validate:"gte=0"`
}

type PayOrderRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}
