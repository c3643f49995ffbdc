package model

import "time"

// Delivery partner statuses.
const (
	PartnerActive    = "active"
	PartnerInactive  = "inactive"
	PartnerSuspended = "suspended"
	PartnerOnBreak   = "on_break"
)

// Partner application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Vehicle types a partner can register with.
const (
	VehicleBicycle    = "bicycle"
	VehicleMotorcycle = "motorcycle"
	VehicleScooter    = "scooter"
	VehicleCar        = "car"
)

// DeliveryPartner is an onboarded courier.
type DeliveryPartner struct {
	ID            string    `json:"id" yaml:"id"`
	FirstName     string    `json:"first_name" yaml:"first_name"`
	LastName      string    `json:"last_name" yaml:"last_name"`
	Email         string    `json:"email" yaml:"email"`
	Phone         string    `json:"phone" yaml:"phone"`
	VehicleType   string    `json:"vehicle_type" yaml:"vehicle_type"`
	VehicleNumber string    `json:"vehicle_number" yaml:"vehicle_number"`
	City          string    `json:"city" yaml:"city"`
	Rating        float64   `json:"rating" yaml:"rating"`
	Deliveries    int       `json:"total_deliveries" yaml:"total_deliveries"`
	Status        string    `json:"status" yaml:"status"`
	JoinedAt      time.Time `json:"joined_at" yaml:"joined_at"`
}

// PartnerApplication is a courier signup awaiting review.
type PartnerApplication struct {
	ID            string     `json:"id" yaml:"id"`
	FirstName     string     `json:"first_name" yaml:"first_name"`
	LastName      string     `json:"last_name" yaml:"last_name"`
	Email         string     `json:"email" yaml:"email"`
	Phone         string     `json:"phone" yaml:"phone"`
	VehicleType   string     `json:"vehicle_type" yaml:"vehicle_type"`
	VehicleNumber string     `json:"vehicle_number" yaml:"vehicle_number"`
	LicenseNumber string     `json:"license_number" yaml:"license_number"`
	Address       string     `json:"address" yaml:"address"`
	City          string     `json:"city" yaml:"city"`
	Status        string     `json:"status" yaml:"status"`
	RejectReason  string     `json:"reject_reason,omitempty" yaml:"reject_reason,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty" yaml:"reviewed_at,omitempty"`
	SubmittedAt   time.Time  `json:"submitted_at" yaml:"submitted_at"`
}
