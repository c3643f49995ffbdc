package console

import (
	"context"
	"errors"

	"github.com/feastly/admin-console/internal/model"
)

// ErrNotFound is returned by any store when the requested record does not
// exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("console: record not found")

// BannerStore manages promotional banners.
type BannerStore interface {
	ListBanners(ctx context.Context) ([]model.Banner, error)
	CreateBanner(ctx context.Context, banner model.Banner) (model.Banner, error)
	UpdateBanner(ctx context.Context, banner model.Banner) (model.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
}

// CouponStore manages discount coupons.
type CouponStore interface {
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

// ContactStore manages support tickets.
type ContactStore interface {
	ListContacts(ctx context.Context) ([]model.ContactSubmission, error)
	UpdateContact(ctx context.Context, contact model.ContactSubmission) (model.ContactSubmission, error)
}

// PartnerStore manages delivery partners and their applications.
type PartnerStore interface {
	ListPartners(ctx context.Context) ([]model.DeliveryPartner, error)
	UpdatePartnerStatus(ctx context.Context, id, status string) (model.DeliveryPartner, error)
	ListApplications(ctx context.Context) ([]model.PartnerApplication, error)
	ApproveApplication(ctx context.Context, id string) (model.PartnerApplication, error)
	RejectApplication(ctx context.Context, id, reason string) (model.PartnerApplication, error)
}

// OrderStore reads orders and advances their status.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (model.Order, error)
}

// PaymentStore reads payment transactions. Status/method narrowing happens
// upstream when the backend supports it; results are filtered again locally.
type PaymentStore interface {
	ListPayments(ctx context.Context, status, method string) ([]model.Payment, error)
}

// RestaurantStore manages partner restaurants.
type RestaurantStore interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (model.Restaurant, error)
}

// UserStore manages platform accounts.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
}

// SettingsStore reads and writes platform settings.
type SettingsStore interface {
	GetSettings(ctx context.Context) (model.PlatformSettings, error)
	UpdateSettings(ctx context.Context, settings model.PlatformSettings) (model.PlatformSettings, error)
}

// ProfileStore reads and writes the signed-in admin's profile.
type ProfileStore interface {
	GetProfile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, profile model.Profile) (model.Profile, error)
}

// OverviewStore fetches the dashboard landing aggregates.
type OverviewStore interface {
	FetchOverview(ctx context.Context) (model.Overview, error)
}

// DataSource is a convenience union for backends that serve every page.
type DataSource interface {
	BannerStore
	CouponStore
	ContactStore
	PartnerStore
	OrderStore
	PaymentStore
	RestaurantStore
	UserStore
	SettingsStore
	ProfileStore
	OverviewStore
}
