package model

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleOwner    = "restaurant_owner"
	RoleSupport  = "support"
)

// User account statuses.
const (
	UserActive   = "active"
	UserInactive = "inactive"
	UserBanned   = "banned"
)

// Membership tiers.
const (
	MembershipBasic    = "basic"
	MembershipGold     = "gold"
	MembershipPlatinum = "platinum"
)

// NotificationPrefs records which channels a user has opted into.
type NotificationPrefs struct {
	Email bool `json:"email" yaml:"email"`
	SMS   bool `json:"sms" yaml:"sms"`
	Push  bool `json:"push" yaml:"push"`
}

// UserAddress is a saved delivery address.
type UserAddress struct {
	Label   string `json:"label" yaml:"label"`
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	Pincode string `json:"pincode" yaml:"pincode"`
	Default bool   `json:"is_default,omitempty" yaml:"is_default,omitempty"`
}

// User is a platform account as the console sees it.
type User struct {
	ID            string            `json:"id" yaml:"id"`
	FirstName     string            `json:"first_name" yaml:"first_name"`
	LastName      string            `json:"last_name" yaml:"last_name"`
	Email         string            `json:"email" yaml:"email"`
	Phone         string            `json:"phone" yaml:"phone"`
	EmailVerified bool              `json:"email_verified" yaml:"email_verified"`
	PhoneVerified bool              `json:"phone_verified" yaml:"phone_verified"`
	Role          string            `json:"role" yaml:"role"`
	Status        string            `json:"status" yaml:"status"`
	Membership    string            `json:"membership" yaml:"membership"`
	LoyaltyPoints int               `json:"loyalty_points" yaml:"loyalty_points"`
	TotalOrders   int               `json:"total_orders" yaml:"total_orders"`
	Addresses     []UserAddress     `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Notifications NotificationPrefs `json:"notification_preferences" yaml:"notification_preferences"`
	JoinedAt      time.Time         `json:"joined_at" yaml:"joined_at"`
	LastActiveAt  *time.Time        `json:"last_active_at,omitempty" yaml:"last_active_at,omitempty"`
}

// Profile is the signed-in admin's own account view.
type Profile struct {
	ID        string    `json:"id" yaml:"id"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	Email     string    `json:"email" yaml:"email"`
	Phone     string    `json:"phone" yaml:"phone"`
	Role      string    `json:"role" yaml:"role"`
	AvatarURL string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	JoinedAt  time.Time `json:"joined_at" yaml:"joined_at"`
}
