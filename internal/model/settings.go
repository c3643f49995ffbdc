package model

// PlatformSettings holds the global knobs editable from the settings page.
type PlatformSettings struct {
	PlatformName        string  `json:"platform_name" yaml:"platform_name"`
	SupportEmail        string  `json:"support_email" yaml:"support_email"`
	SupportPhone        string  `json:"support_phone" yaml:"support_phone"`
	DefaultCommission   float64 `json:"default_commission_rate" yaml:"default_commission_rate"`
	BaseDeliveryFee     float64 `json:"base_delivery_fee" yaml:"base_delivery_fee"`
	FreeDeliveryAbove   float64 `json:"free_delivery_above" yaml:"free_delivery_above"`
	MaxDeliveryRadiusKM float64 `json:"max_delivery_radius_km" yaml:"max_delivery_radius_km"`
	OrdersPaused        bool    `json:"orders_paused" yaml:"orders_paused"`
	SignupsPaused       bool    `json:"signups_paused" yaml:"signups_paused"`
	MaintenanceMode     bool    `json:"maintenance_mode" yaml:"maintenance_mode"`
}
