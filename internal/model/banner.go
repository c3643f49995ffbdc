package model

import "time"

// Banner placements supported by the storefront.
const (
	PlacementHero    = "hero"
	PlacementSidebar = "sidebar"
	PlacementFooter  = "footer"
	PlacementPopup   = "popup"
)

// Banner audiences.
const (
	AudienceAll       = "all"
	AudienceNew       = "new_users"
	AudienceReturning = "returning_users"
	AudiencePremium   = "premium_members"
)

// Banner is a promotional asset shown on the customer apps.
type Banner struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	ImageURL    string     `json:"image_url" yaml:"image_url"`
	MobileImage string     `json:"mobile_image_url" yaml:"mobile_image_url"`
	LinkURL     string     `json:"link_url" yaml:"link_url"`
	ButtonText  string     `json:"button_text" yaml:"button_text"`
	Placement   string     `json:"placement" yaml:"placement"`
	Audience    string     `json:"audience" yaml:"audience"`
	IsActive    bool       `json:"is_active" yaml:"is_active"`
	StartDate   *time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Clicks      int        `json:"clicks" yaml:"clicks"`
	Impressions int        `json:"impressions" yaml:"impressions"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
}
