package badge

import (
	"math"
	"strings"
	"time"

	"github.com/feastly/admin-console/internal/model"
)

// CouponStatus derives the displayed coupon status. Precedence: the inactive
// flag wins over an expired validity window, which wins over an exhausted
// usage limit.
func CouponStatus(c model.Coupon, now time.Time) string {
	switch {
	case !c.IsActive:
		return model.CouponInactive
	case c.EndDate.Before(now):
		return model.CouponExpired
	case c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit:
		return model.CouponUsedUp
	default:
		return model.CouponActive
	}
}

// UsagePercent computes the coupon usage percentage, rounded and clamped to
// [0, 100]. A zero limit reads as 0%.
func UsagePercent(used, limit int) int {
	if limit <= 0 {
		return 0
	}
	pct := int(math.Round(float64(used) / float64(limit) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Initials builds the two-letter avatar badge for a person, defaulting each
// missing name to "U".
func Initials(firstName, lastName string) string {
	return initial(firstName) + initial(lastName)
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "U"
	}
	runes := []rune(name)
	return strings.ToUpper(string(runes[0]))
}
