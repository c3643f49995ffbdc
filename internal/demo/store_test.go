package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewDefaultStore()
	require.NoError(t, err)
	return store
}

func TestDefaultFixturesParse(t *testing.T) {
	fixtures, err := DefaultFixtures()
	require.NoError(t, err)
	assert.NotEmpty(t, fixtures.Orders)
	assert.NotEmpty(t, fixtures.Payments)
	assert.NotEmpty(t, fixtures.Coupons)
	assert.NotEmpty(t, fixtures.Settings.PlatformName)
}

func TestSeededUsers(t *testing.T) {
	store := newTestStore(t)

	users, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)

	var sarah *model.User
	for i := range users {
		if users[i].FirstName == "Sarah" && users[i].LastName == "Johnson" {
			sarah = &users[i]
		}
	}
	require.NotNil(t, sarah, "seed data must include Sarah Johnson")
	assert.Equal(t, model.RoleAdmin, sarah.Role)
	assert.Equal(t, model.MembershipPlatinum, sarah.Membership)
}

func TestSeededPizzaPalace(t *testing.T) {
	store := newTestStore(t)

	restaurant, err := store.GetRestaurant(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", restaurant.Name)
	assert.Equal(t, "₹₹", restaurant.PriceRange.Level)
	assert.Equal(t, float64(15), restaurant.CommissionRate)
}

func TestUpdateRestaurantRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	draft, err := store.GetRestaurant(ctx, "1")
	require.NoError(t, err)

	draft.CommissionRate = 18
	draft.Status = model.RestaurantSuspended
	_, err = store.UpdateRestaurant(ctx, draft)
	require.NoError(t, err)

	saved, err := store.GetRestaurant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(18), saved.CommissionRate)
	assert.Equal(t, model.RestaurantSuspended, saved.Status)
}

func TestCancelledEditLeavesStoreUntouched(t *testing.T) {
	store := newTestStore(t)

	draft, err := store.GetRestaurant(context.Background(), "1")
	require.NoError(t, err)
	draft.CommissionRate = 99

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.UpdateRestaurant(cancelled, draft)
	require.ErrorIs(t, err, context.Canceled)

	saved, err := store.GetRestaurant(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, float64(15), saved.CommissionRate)
}

func TestReadsReturnClones(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.GetRestaurant(ctx, "1")
	require.NoError(t, err)
	first.Name = "Renamed Locally"
	first.Hours["monday"] = model.OpeningHours{Closed: true}

	second, err := store.GetRestaurant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", second.Name)
	assert.False(t, second.Hours["monday"].Closed)
}

func TestCreateBannerAssignsIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.CreateBanner(ctx, model.Banner{Title: "Flash Sale", Placement: model.PlacementHero})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	banners, err := store.ListBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 4)
}

func TestUpdateUnknownRecord(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateCoupon(context.Background(), model.Coupon{ID: "missing"})
	assert.ErrorIs(t, err, console.ErrNotFound)

	err = store.DeleteBanner(context.Background(), "missing")
	assert.ErrorIs(t, err, console.ErrNotFound)
}

func TestApproveApplicationOnboardsPartner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	app, err := store.ApproveApplication(ctx, "pa-5001")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApproved, app.Status)
	require.NotNil(t, app.ReviewedAt)

	partners, err := store.ListPartners(ctx)
	require.NoError(t, err)
	found := false
	for _, p := range partners {
		if p.Email == app.Email {
			found = true
			assert.Equal(t, model.PartnerActive, p.Status)
		}
	}
	assert.True(t, found, "approved applicant should appear as an active partner")
}

func TestRejectApplicationRecordsReason(t *testing.T) {
	store := newTestStore(t)

	app, err := store.RejectApplication(context.Background(), "pa-5002", "documents unreadable")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationRejected, app.Status)
	assert.Equal(t, "documents unreadable", app.RejectReason)
}

func TestOverviewDerivesFromFixtures(t *testing.T) {
	store := newTestStore(t)

	overview, err := store.FetchOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, overview.TotalOrders)
	assert.Equal(t, 3, overview.ActiveOrders)
	assert.Equal(t, 4, overview.TotalUsers)
	assert.Equal(t, 3, overview.TotalRestaurants)
	assert.Equal(t, 1, overview.ActivePartners)
	assert.Equal(t, 2, overview.OpenTickets)
	assert.Len(t, overview.OrdersByDay, 7)
}

func TestPaymentFilteringUpstreamStyle(t *testing.T) {
	store := newTestStore(t)

	completed, err := store.ListPayments(context.Background(), model.TxnCompleted, "")
	require.NoError(t, err)
	require.Len(t, completed, 2)

	upi, err := store.ListPayments(context.Background(), model.TxnCompleted, model.MethodUPI)
	require.NoError(t, err)
	require.Len(t, upi, 1)
	assert.Equal(t, "txn_9f83ka02", upi[0].TransactionID)
}

func TestPaymentReadsReturnClones(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	refunded, err := store.ListPayments(ctx, model.TxnRefunded, "")
	require.NoError(t, err)
	require.Len(t, refunded, 1)
	require.NotNil(t, refunded[0].GatewayResponse)
	refunded[0].GatewayResponse["refund_id"] = "tampered"

	again, err := store.ListPayments(ctx, model.TxnRefunded, "")
	require.NoError(t, err)
	assert.Equal(t, "rf_20250817_881", again[0].GatewayResponse["refund_id"])
}

func TestDecodeFixturesRejectsDuplicates(t *testing.T) {
	_, err := DecodeFixtures([]byte(`
users:
  - id: "u-1"
    first_name: "A"
    last_name: "B"
  - id: "u-1"
    first_name: "C"
    last_name: "D"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate user fixture")
}

func TestDecodeFixturesRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeFixtures([]byte("unexpected_section: []\n"))
	require.Error(t, err)
}
