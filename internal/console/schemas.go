package console

// Draft schema domains.
const (
	DraftBanner     = "banner"
	DraftCoupon     = "coupon"
	DraftContact    = "contact"
	DraftOrder      = "order.status"
	DraftRestaurant = "restaurant"
	DraftUser       = "user"
	DraftSettings   = "settings"
	DraftProfile    = "profile"
)

// draftSchemas returns the JSON Schema for each mutation dialog. The schemas
// enforce what the backend would otherwise reject late: required fields, enum
// membership, and non-negative numbers.
func draftSchemas() map[string]map[string]any {
	return map[string]map[string]any{
		DraftBanner: {
			"type":     "object",
			"required": []string{"title", "placement", "audience"},
			"properties": map[string]any{
				"title":     map[string]any{"type": "string", "minLength": 1},
				"placement": map[string]any{"enum": []string{"hero", "sidebar", "footer", "popup"}},
				"audience":  map[string]any{"enum": []string{"all", "new_users", "returning_users", "premium_members"}},
				"image_url": map[string]any{"type": "string"},
				"link_url":  map[string]any{"type": "string"},
			},
		},
		DraftCoupon: {
			"type":     "object",
			"required": []string{"code", "discount_type", "discount_value"},
			"properties": map[string]any{
				"code":            map[string]any{"type": "string", "minLength": 3},
				"discount_type":   map[string]any{"enum": []string{"percentage", "fixed_amount", "free_delivery"}},
				"discount_value":  map[string]any{"type": "number", "minimum": 0},
				"min_order_value": map[string]any{"type": "number", "minimum": 0},
				"max_discount":    map[string]any{"type": "number", "minimum": 0},
				"usage_limit":     map[string]any{"type": "integer", "minimum": 0},
			},
		},
		DraftContact: {
			"type":     "object",
			"required": []string{"status"},
			"properties": map[string]any{
				"status":   map[string]any{"enum": []string{"open", "in_progress", "resolved", "closed"}},
				"priority": map[string]any{"enum": []string{"low", "medium", "high", "urgent"}},
			},
		},
		DraftOrder: {
			"type":     "object",
			"required": []string{"status"},
			"properties": map[string]any{
				"status": map[string]any{"enum": []string{
					"pending", "confirmed", "preparing", "ready_for_pickup",
					"out_for_delivery", "delivered", "cancelled",
				}},
			},
		},
		DraftRestaurant: {
			"type":     "object",
			"required": []string{"name"},
			"properties": map[string]any{
				"name":            map[string]any{"type": "string", "minLength": 1},
				"commission_rate": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"status":          map[string]any{"enum": []string{"active", "pending_approval", "suspended", "closed"}},
			},
		},
		DraftUser: {
			"type":     "object",
			"required": []string{"email", "role", "status"},
			"properties": map[string]any{
				"email":  map[string]any{"type": "string", "minLength": 3},
				"role":   map[string]any{"enum": []string{"admin", "customer", "restaurant_owner", "support"}},
				"status": map[string]any{"enum": []string{"active", "inactive", "banned"}},
			},
		},
		DraftSettings: {
			"type": "object",
			"properties": map[string]any{
				"default_commission_rate": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"base_delivery_fee":       map[string]any{"type": "number", "minimum": 0},
				"free_delivery_above":     map[string]any{"type": "number", "minimum": 0},
				"max_delivery_radius_km":  map[string]any{"type": "number", "minimum": 0},
			},
		},
		DraftProfile: {
			"type":     "object",
			"required": []string{"first_name", "email"},
			"properties": map[string]any{
				"first_name": map[string]any{"type": "string", "minLength": 1},
				"email":      map[string]any{"type": "string", "minLength": 3},
			},
		},
	}
}
