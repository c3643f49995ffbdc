package model

import "time"

// Coupon discount types.
const (
	DiscountPercentage   = "percentage"
	DiscountFixedAmount  = "fixed_amount"
	DiscountFreeDelivery = "free_delivery"
)

// Coupon display statuses, in precedence order: an inactive flag beats an
// expired window, which beats an exhausted usage limit.
const (
	CouponInactive = "inactive"
	CouponExpired  = "expired"
	CouponUsedUp   = "used_up"
	CouponActive   = "active"
)

// Coupon is a promotional discount code.
type Coupon struct {
	ID            string     `json:"id" yaml:"id"`
	Code          string     `json:"code" yaml:"code"`
	Description   string     `json:"description" yaml:"description"`
	DiscountType  string     `json:"discount_type" yaml:"discount_type"`
	DiscountValue float64    `json:"discount_value" yaml:"discount_value"`
	MinOrderValue float64    `json:"min_order_value" yaml:"min_order_value"`
	MaxDiscount   float64    `json:"max_discount" yaml:"max_discount"`
	UsedCount     int        `json:"used_count" yaml:"used_count"`
	UsageLimit    int        `json:"usage_limit" yaml:"usage_limit"`
	PerUserLimit  int        `json:"per_user_limit" yaml:"per_user_limit"`
	AppliesTo     string     `json:"applies_to" yaml:"applies_to"`
	StartDate     time.Time  `json:"start_date" yaml:"start_date"`
	EndDate       time.Time  `json:"end_date" yaml:"end_date"`
	IsActive      bool       `json:"is_active" yaml:"is_active"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" yaml:"updated_at"`
}
