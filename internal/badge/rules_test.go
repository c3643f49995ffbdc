package badge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feastly/admin-console/internal/model"
)

func TestCouponStatusPrecedence(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	cases := []struct {
		name   string
		coupon model.Coupon
		want   string
	}{
		{
			name:   "inactive beats expired and used up",
			coupon: model.Coupon{IsActive: false, EndDate: past, UsedCount: 10, UsageLimit: 10},
			want:   model.CouponInactive,
		},
		{
			name:   "expired beats used up",
			coupon: model.Coupon{IsActive: true, EndDate: past, UsedCount: 10, UsageLimit: 10},
			want:   model.CouponExpired,
		},
		{
			name:   "used up when limit reached",
			coupon: model.Coupon{IsActive: true, EndDate: future, UsedCount: 10, UsageLimit: 10},
			want:   model.CouponUsedUp,
		},
		{
			name:   "active otherwise",
			coupon: model.Coupon{IsActive: true, EndDate: future, UsedCount: 750, UsageLimit: 1000},
			want:   model.CouponActive,
		},
		{
			name:   "zero limit never reads as used up",
			coupon: model.Coupon{IsActive: true, EndDate: future, UsedCount: 5, UsageLimit: 0},
			want:   model.CouponActive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CouponStatus(tc.coupon, now))
		})
	}
}

func TestUsagePercent(t *testing.T) {
	assert.Equal(t, 75, UsagePercent(750, 1000))
	assert.Equal(t, 0, UsagePercent(10, 0))
	assert.Equal(t, 100, UsagePercent(1500, 1000))
	assert.Equal(t, 0, UsagePercent(-5, 100))
	assert.Equal(t, 33, UsagePercent(1, 3))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "SJ", Initials("Sarah", "Johnson"))
	assert.Equal(t, "UU", Initials("", ""))
	assert.Equal(t, "SU", Initials("sarah", " "))
	assert.Equal(t, "UJ", Initials("", "johnson"))
}

func TestStyleFallsBackPerDomainThenGlobally(t *testing.T) {
	reg := NewRegistry()

	style := reg.Style(DomainOrderStatus, model.OrderDelivered)
	assert.Equal(t, "green", style.Color)
	assert.Equal(t, "Delivered", style.Label)

	unknown := reg.Style(DomainOrderStatus, "teleported")
	assert.Equal(t, "Unknown", unknown.Label)
	assert.Equal(t, "gray", unknown.Color)

	unregistered := reg.Style("no.such.domain", "whatever")
	assert.Equal(t, "gray", unregistered.Color)
}

func TestRegisterDerivesLabel(t *testing.T) {
	reg := NewRegistry()
	assert.NoError(t, reg.Register("order.status", "awaiting_rider", Style{Color: "teal"}))
	assert.Equal(t, "Awaiting Rider", reg.Style("order.status", "awaiting_rider").Label)
}
