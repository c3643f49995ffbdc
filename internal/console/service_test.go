package console_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/demo"
	"github.com/feastly/admin-console/internal/model"
)

// The demo store backs these tests so the service is exercised against the
// same data-access interface the live client implements.
func newTestService(t *testing.T) *console.Service {
	t.Helper()
	store, err := demo.NewDefaultStore()
	require.NoError(t, err)
	return console.NewService(console.Options{
		Data: store,
		Now:  func() time.Time { return time.Date(2025, time.August, 28, 12, 0, 0, 0, time.UTC) },
	})
}

func TestUsersFilterIsIntersection(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	page, err := svc.Users(ctx, console.UserFilter{Search: "sarah", Role: model.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Johnson", page.Items[0].LastName)

	// A predicate that matches nothing on its own empties the intersection.
	page, err = svc.Users(ctx, console.UserFilter{Search: "sarah", Role: model.RoleCustomer})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestUsersCountsComeFromFullList(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Users(context.Background(), console.UserFilter{Status: model.UserBanned})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.Counts.Total)
	assert.Equal(t, 3, page.Counts.Active)
	assert.Equal(t, 1, page.Counts.Banned)
}

func TestUsersAllSentinelIsUnconstrained(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Users(context.Background(), console.UserFilter{Role: "all", Status: "all", Membership: "all"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 4)
}

func TestCouponsDeriveDisplayStatus(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Coupons(context.Background(), console.CouponFilter{})
	require.NoError(t, err)

	byCode := map[string]console.CouponView{}
	for _, v := range page.Items {
		byCode[v.Code] = v
	}

	assert.Equal(t, model.CouponActive, byCode["WELCOME50"].DisplayStatus)
	assert.Equal(t, 75, byCode["WELCOME50"].UsagePercent)
	assert.Equal(t, model.CouponUsedUp, byCode["FREEDEL"].DisplayStatus)
	assert.Equal(t, model.CouponExpired, byCode["SUMMER24"].DisplayStatus)
	assert.Equal(t, model.CouponInactive, byCode["DIWALIBLAST"].DisplayStatus)
}

func TestCouponsFilterByDisplayStatus(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Coupons(context.Background(), console.CouponFilter{Status: model.CouponExpired})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "SUMMER24", page.Items[0].Code)
}

func TestRejectApplicationRequiresReason(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RejectApplication(ctx, "pa-5001", "")
	require.ErrorIs(t, err, console.ErrEmptyRejectReason)

	// The store was never touched: the application is still pending.
	page, err := svc.Partners(ctx, console.PartnerFilter{})
	require.NoError(t, err)
	found := false
	for _, app := range page.Applications {
		if app.ID == "pa-5001" {
			found = true
		}
	}
	assert.True(t, found, "application should remain pending after a refused rejection")
}

func TestAdvanceOrderValidatesStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AdvanceOrder(ctx, "o-6005", "teleported")
	var validationErr *console.ValidationError
	require.True(t, errors.As(err, &validationErr))

	order, err := svc.AdvanceOrder(ctx, "o-6005", model.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, order.Status)
}

func TestSaveBannerCreatesOnEmptyID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.SaveBanner(ctx, model.Banner{
		Title:     "Midnight Cravings",
		Placement: model.PlacementPopup,
		Audience:  model.AudienceReturning,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	updatedTitle := "Midnight Cravings 2.0"
	saved.Title = updatedTitle
	updated, err := svc.SaveBanner(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, updatedTitle, updated.Title)
}

func TestSaveBannerRejectsInvalidDraft(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveBanner(context.Background(), model.Banner{Title: "No Placement"})
	var validationErr *console.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestPaymentsAllSentinel(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Payments(context.Background(), console.PaymentFilter{Status: "all", Method: "all"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 2, page.Counts.Completed)
	assert.InDelta(t, 1123, page.Counts.Volume, 0.01)
}

func TestRestaurantEditRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	draft, err := svc.Restaurant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", draft.Name)
	assert.Equal(t, float64(15), draft.CommissionRate)

	// Abandoning the draft changes nothing.
	draft.CommissionRate = 25
	unchanged, err := svc.Restaurant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(15), unchanged.CommissionRate)

	// Committing it does.
	_, err = svc.UpdateRestaurant(ctx, draft)
	require.NoError(t, err)
	saved, err := svc.Restaurant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(25), saved.CommissionRate)
}

func TestServiceWithoutDataSource(t *testing.T) {
	svc := console.NewService(console.Options{})

	_, err := svc.Users(context.Background(), console.UserFilter{})
	assert.Error(t, err)
}
