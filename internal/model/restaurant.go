package model

import "time"

// Restaurant statuses.
const (
	RestaurantActive    = "active"
	RestaurantPending   = "pending_approval"
	RestaurantSuspended = "suspended"
	RestaurantClosed    = "closed"
)

// Address is a structured postal address.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	Pincode string `json:"pincode" yaml:"pincode"`
}

// PriceRange describes how expensive a restaurant is.
type PriceRange struct {
	Level string  `json:"level" yaml:"level"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

// DeliveryInfo holds delivery operating parameters.
type DeliveryInfo struct {
	Fee        float64 `json:"fee" yaml:"fee"`
	MinOrder   float64 `json:"min_order" yaml:"min_order"`
	RadiusKM   float64 `json:"radius_km" yaml:"radius_km"`
	AvgMinutes int     `json:"avg_minutes" yaml:"avg_minutes"`
}

// BankDetails holds settlement account information.
type BankDetails struct {
	AccountName   string `json:"account_name" yaml:"account_name"`
	AccountNumber string `json:"account_number" yaml:"account_number"`
	IFSC          string `json:"ifsc" yaml:"ifsc"`
}

// OpeningHours maps weekday name to an open/close window.
type OpeningHours struct {
	Open   string `json:"open" yaml:"open"`
	Close  string `json:"close" yaml:"close"`
	Closed bool   `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// OwnerSummary identifies the restaurant owner account.
type OwnerSummary struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

// Restaurant is the full partner-restaurant record.
type Restaurant struct {
	ID             string                  `json:"id" yaml:"id"`
	Name           string                  `json:"name" yaml:"name"`
	Description    string                  `json:"description" yaml:"description"`
	Cuisine        []string                `json:"cuisine" yaml:"cuisine"`
	Address        Address                 `json:"address" yaml:"address"`
	PriceRange     PriceRange              `json:"price_range" yaml:"price_range"`
	Delivery       DeliveryInfo            `json:"delivery" yaml:"delivery"`
	Rating         float64                 `json:"rating" yaml:"rating"`
	IsVegOnly      bool                    `json:"is_veg_only" yaml:"is_veg_only"`
	AcceptsOnline  bool                    `json:"accepts_online_payment" yaml:"accepts_online_payment"`
	CommissionRate float64                 `json:"commission_rate" yaml:"commission_rate"`
	Bank           BankDetails             `json:"bank_details" yaml:"bank_details"`
	GSTIN          string                  `json:"gstin" yaml:"gstin"`
	FSSAILicense   string                  `json:"fssai_license" yaml:"fssai_license"`
	Hours          map[string]OpeningHours `json:"opening_hours" yaml:"opening_hours"`
	SeatingCap     int                     `json:"seating_capacity" yaml:"seating_capacity"`
	Status         string                  `json:"status" yaml:"status"`
	Owner          OwnerSummary            `json:"owner" yaml:"owner"`
	CreatedAt      time.Time               `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at" yaml:"updated_at"`
}
