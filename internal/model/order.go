package model

import "time"

// Order lifecycle statuses. Delivered and cancelled are terminal.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderReadyForPickup = "ready_for_pickup"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// Payment statuses attached to an order.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// CustomerSummary embeds the minimal customer identity an order carries.
type CustomerSummary struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
}

// RestaurantSummary embeds the minimal restaurant identity an order carries.
type RestaurantSummary struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CourierSummary embeds the assigned delivery partner, when any.
type CourierSummary struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// OrderItem is a single line item.
type OrderItem struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price" yaml:"price"`
}

// Order is a customer order as the admin console sees it.
type Order struct {
	ID              string            `json:"id" yaml:"id"`
	OrderNumber     string            `json:"order_number" yaml:"order_number"`
	Customer        CustomerSummary   `json:"customer" yaml:"customer"`
	Restaurant      RestaurantSummary `json:"restaurant" yaml:"restaurant"`
	Courier         *CourierSummary   `json:"delivery_partner,omitempty" yaml:"delivery_partner,omitempty"`
	Items           []OrderItem       `json:"items" yaml:"items"`
	Total           float64           `json:"total" yaml:"total"`
	Status          string            `json:"status" yaml:"status"`
	PaymentStatus   string            `json:"payment_status" yaml:"payment_status"`
	DeliveryAddress string            `json:"delivery_address" yaml:"delivery_address"`
	PlacedAt        time.Time         `json:"placed_at" yaml:"placed_at"`
	UpdatedAt       time.Time         `json:"updated_at" yaml:"updated_at"`
}

// IsTerminal reports whether the order has reached a final status.
func (o Order) IsTerminal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}
