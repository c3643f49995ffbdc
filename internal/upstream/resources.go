package upstream

import (
	"context"
	"net/url"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/model"
)

var _ console.DataSource = (*Client)(nil)

// Banners

func (c *Client) ListBanners(ctx context.Context) ([]model.Banner, error) {
	var out []model.Banner
	if err := c.get(ctx, "/api/admin/banners", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBanner(ctx context.Context, banner model.Banner) (model.Banner, error) {
	var out model.Banner
	if err := c.post(ctx, "/api/admin/banners", banner, &out); err != nil {
		return model.Banner{}, err
	}
	return out, nil
}

func (c *Client) UpdateBanner(ctx context.Context, banner model.Banner) (model.Banner, error) {
	var out model.Banner
	if err := c.put(ctx, "/api/admin/banners/"+banner.ID, banner, &out); err != nil {
		return model.Banner{}, err
	}
	return out, nil
}

func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/banners/"+id)
}

// Coupons

func (c *Client) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	var out []model.Coupon
	if err := c.get(ctx, "/api/admin/coupons", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error) {
	var out model.Coupon
	if err := c.post(ctx, "/api/admin/coupons", coupon, &out); err != nil {
		return model.Coupon{}, err
	}
	return out, nil
}

func (c *Client) UpdateCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error) {
	var out model.Coupon
	if err := c.put(ctx, "/api/admin/coupons/"+coupon.ID, coupon, &out); err != nil {
		return model.Coupon{}, err
	}
	return out, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/coupons/"+id)
}

// Contacts

func (c *Client) ListContacts(ctx context.Context) ([]model.ContactSubmission, error) {
	var out []model.ContactSubmission
	if err := c.get(ctx, "/api/admin/contacts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateContact(ctx context.Context, contact model.ContactSubmission) (model.ContactSubmission, error) {
	var out model.ContactSubmission
	if err := c.put(ctx, "/api/admin/contacts/"+contact.ID, contact, &out); err != nil {
		return model.ContactSubmission{}, err
	}
	return out, nil
}

// Delivery partners

func (c *Client) ListPartners(ctx context.Context) ([]model.DeliveryPartner, error) {
	var out []model.DeliveryPartner
	if err := c.get(ctx, "/api/admin/delivery-partners", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdatePartnerStatus(ctx context.Context, id, status string) (model.DeliveryPartner, error) {
	var out model.DeliveryPartner
	payload := map[string]string{"status": status}
	if err := c.put(ctx, "/api/admin/delivery-partners/"+id+"/status", payload, &out); err != nil {
		return model.DeliveryPartner{}, err
	}
	return out, nil
}

func (c *Client) ListApplications(ctx context.Context) ([]model.PartnerApplication, error) {
	var out []model.PartnerApplication
	if err := c.get(ctx, "/api/admin/delivery-partners/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveApplication(ctx context.Context, id string) (model.PartnerApplication, error) {
	var out model.PartnerApplication
	if err := c.post(ctx, "/api/admin/delivery-partners/applications/"+id+"/approve", nil, &out); err != nil {
		return model.PartnerApplication{}, err
	}
	return out, nil
}

func (c *Client) RejectApplication(ctx context.Context, id, reason string) (model.PartnerApplication, error) {
	var out model.PartnerApplication
	payload := map[string]string{"reason": reason}
	if err := c.post(ctx, "/api/admin/delivery-partners/applications/"+id+"/reject", payload, &out); err != nil {
		return model.PartnerApplication{}, err
	}
	return out, nil
}

// Orders

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := c.get(ctx, "/api/admin/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (model.Order, error) {
	var out model.Order
	if err := c.get(ctx, "/api/admin/orders/"+id, nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (model.Order, error) {
	var out model.Order
	payload := map[string]string{"status": status}
	if err := c.put(ctx, "/api/admin/orders/"+id+"/status", payload, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// Payments

func (c *Client) ListPayments(ctx context.Context, status, method string) ([]model.Payment, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if method != "" {
		query.Set("method", method)
	}
	var out []model.Payment
	if err := c.get(ctx, "/api/admin/payments", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Restaurants

func (c *Client) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var out []model.Restaurant
	if err := c.get(ctx, "/api/admin/restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRestaurant(ctx context.Context, id string) (model.Restaurant, error) {
	var out model.Restaurant
	if err := c.get(ctx, "/api/admin/restaurants/"+id, nil, &out); err != nil {
		return model.Restaurant{}, err
	}
	return out, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (model.Restaurant, error) {
	var out model.Restaurant
	if err := c.put(ctx, "/api/admin/restaurants/"+restaurant.ID, restaurant, &out); err != nil {
		return model.Restaurant{}, err
	}
	return out, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.get(ctx, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (model.User, error) {
	var out model.User
	if err := c.get(ctx, "/api/admin/users/"+id, nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	var out model.User
	if err := c.put(ctx, "/api/admin/users/"+user.ID, user, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// Settings

func (c *Client) GetSettings(ctx context.Context) (model.PlatformSettings, error) {
	var out model.PlatformSettings
	if err := c.get(ctx, "/api/admin/settings", nil, &out); err != nil {
		return model.PlatformSettings{}, err
	}
	return out, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings model.PlatformSettings) (model.PlatformSettings, error) {
	var out model.PlatformSettings
	if err := c.put(ctx, "/api/admin/settings", settings, &out); err != nil {
		return model.PlatformSettings{}, err
	}
	return out, nil
}

// Profile

func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var out model.Profile
	if err := c.get(ctx, "/api/auth/me", nil, &out); err != nil {
		return model.Profile{}, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, profile model.Profile) (model.Profile, error) {
	var out model.Profile
	if err := c.put(ctx, "/api/auth/profile", profile, &out); err != nil {
		return model.Profile{}, err
	}
	return out, nil
}

// Dashboard overview

func (c *Client) FetchOverview(ctx context.Context) (model.Overview, error) {
	var out model.Overview
	if err := c.get(ctx, "/api/admin/dashboard", nil, &out); err != nil {
		return model.Overview{}, err
	}
	return out, nil
}
