package model

import "time"

// Payment methods.
const (
	MethodCard   = "card"
	MethodUPI    = "upi"
	MethodWallet = "wallet"
	MethodCash   = "cash_on_delivery"
)

// Standalone payment record statuses.
const (
	TxnPending   = "pending"
	TxnCompleted = "completed"
	TxnFailed    = "failed"
	TxnRefunded  = "refunded"
)

// Payment is a transaction record tied to an order.
type Payment struct {
	ID              string            `json:"id" yaml:"id"`
	TransactionID   string            `json:"transaction_id" yaml:"transaction_id"`
	OrderNumber     string            `json:"order_number" yaml:"order_number"`
	Customer        CustomerSummary   `json:"customer" yaml:"customer"`
	Restaurant      RestaurantSummary `json:"restaurant" yaml:"restaurant"`
	Amount          float64           `json:"amount" yaml:"amount"`
	Method          string            `json:"method" yaml:"method"`
	Status          string            `json:"status" yaml:"status"`
	GatewayResponse map[string]any    `json:"gateway_response,omitempty" yaml:"gateway_response,omitempty"`
	CreatedAt       time.Time         `json:"created_at" yaml:"created_at"`
}
