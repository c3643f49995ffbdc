package demo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/model"
)

// Store is an in-memory data source backed by fixtures. Reads return clones
// so callers can stage edits without touching the seed data; mutations only
// land through the write methods.
type Store struct {
	mu  sync.RWMutex
	fx  Fixtures
	now func() time.Time
}

// interface guard
var _ console.DataSource = (*Store)(nil)

// NewStore builds a demo store from the given fixtures.
func NewStore(fixtures Fixtures) *Store {
	return &Store{fx: fixtures, now: time.Now}
}

// NewDefaultStore builds a demo store from the fixtures compiled into the
// binary.
func NewDefaultStore() (*Store, error) {
	fixtures, err := DefaultFixtures()
	if err != nil {
		return nil, err
	}
	return NewStore(fixtures), nil
}

func cloneSlice[T any](in []T) []T {
	return append([]T(nil), in...)
}

func cloneOrder(o model.Order) model.Order {
	out := o
	out.Items = cloneSlice(o.Items)
	if o.Courier != nil {
		courier := *o.Courier
		out.Courier = &courier
	}
	return out
}

func cloneRestaurant(r model.Restaurant) model.Restaurant {
	out := r
	out.Cuisine = cloneSlice(r.Cuisine)
	out.Hours = make(map[string]model.OpeningHours, len(r.Hours))
	for day, window := range r.Hours {
		out.Hours[day] = window
	}
	return out
}

func cloneUser(u model.User) model.User {
	out := u
	out.Addresses = cloneSlice(u.Addresses)
	return out
}

func clonePayment(p model.Payment) model.Payment {
	out := p
	if p.GatewayResponse != nil {
		out.GatewayResponse = make(map[string]any, len(p.GatewayResponse))
		for key, value := range p.GatewayResponse {
			out.GatewayResponse[key] = value
		}
	}
	return out
}

// Banners

func (s *Store) ListBanners(ctx context.Context) ([]model.Banner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.fx.Banners), nil
}

func (s *Store) CreateBanner(ctx context.Context, banner model.Banner) (model.Banner, error) {
	if err := ctx.Err(); err != nil {
		return model.Banner{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	banner.ID = uuid.NewString()
	banner.CreatedAt = s.now()
	banner.UpdatedAt = banner.CreatedAt
	s.fx.Banners = append(s.fx.Banners, banner)
	return banner, nil
}

func (s *Store) UpdateBanner(ctx context.Context, banner model.Banner) (model.Banner, error) {
	if err := ctx.Err(); err != nil {
		return model.Banner{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Banners {
		if existing.ID == banner.ID {
			banner.CreatedAt = existing.CreatedAt
			banner.UpdatedAt = s.now()
			s.fx.Banners[i] = banner
			return banner, nil
		}
	}
	return model.Banner{}, console.ErrNotFound
}

func (s *Store) DeleteBanner(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Banners {
		if existing.ID == id {
			s.fx.Banners = append(s.fx.Banners[:i], s.fx.Banners[i+1:]...)
			return nil
		}
	}
	return console.ErrNotFound
}

// Coupons

func (s *Store) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.fx.Coupons), nil
}

func (s *Store) CreateCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return model.Coupon{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	coupon.ID = uuid.NewString()
	coupon.CreatedAt = s.now()
	coupon.UpdatedAt = coupon.CreatedAt
	s.fx.Coupons = append(s.fx.Coupons, coupon)
	return coupon, nil
}

func (s *Store) UpdateCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return model.Coupon{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Coupons {
		if existing.ID == coupon.ID {
			coupon.CreatedAt = existing.CreatedAt
			coupon.UsedCount = existing.UsedCount
			coupon.UpdatedAt = s.now()
			s.fx.Coupons[i] = coupon
			return coupon, nil
		}
	}
	return model.Coupon{}, console.ErrNotFound
}

func (s *Store) DeleteCoupon(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Coupons {
		if existing.ID == id {
			s.fx.Coupons = append(s.fx.Coupons[:i], s.fx.Coupons[i+1:]...)
			return nil
		}
	}
	return console.ErrNotFound
}

// Contacts

func (s *Store) ListContacts(ctx context.Context) ([]model.ContactSubmission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.fx.Contacts), nil
}

func (s *Store) UpdateContact(ctx context.Context, contact model.ContactSubmission) (model.ContactSubmission, error) {
	if err := ctx.Err(); err != nil {
		return model.ContactSubmission{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Contacts {
		if existing.ID == contact.ID {
			contact.CreatedAt = existing.CreatedAt
			if contact.Response != "" && existing.Response == "" {
				now := s.now()
				contact.RespondedAt = &now
			}
			s.fx.Contacts[i] = contact
			return contact, nil
		}
	}
	return model.ContactSubmission{}, console.ErrNotFound
}

// Delivery partners

func (s *Store) ListPartners(ctx context.Context) ([]model.DeliveryPartner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.fx.Partners), nil
}

func (s *Store) UpdatePartnerStatus(ctx context.Context, id, status string) (model.DeliveryPartner, error) {
	if err := ctx.Err(); err != nil {
		return model.DeliveryPartner{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Partners {
		if existing.ID == id {
			s.fx.Partners[i].Status = status
			return s.fx.Partners[i], nil
		}
	}
	return model.DeliveryPartner{}, console.ErrNotFound
}

func (s *Store) ListApplications(ctx context.Context) ([]model.PartnerApplication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.fx.Applications), nil
}

func (s *Store) ApproveApplication(ctx context.Context, id string) (model.PartnerApplication, error) {
	if err := ctx.Err(); err != nil {
		return model.PartnerApplication{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, app := range s.fx.Applications {
		if app.ID != id {
			continue
		}
		now := s.now()
		s.fx.Applications[i].Status = model.ApplicationApproved
		s.fx.Applications[i].ReviewedAt = &now
		s.fx.Partners = append(s.fx.Partners, model.DeliveryPartner{
			ID:            uuid.NewString(),
			FirstName:     app.FirstName,
			LastName:      app.LastName,
			Email:         app.Email,
			Phone:         app.Phone,
			VehicleType:   app.VehicleType,
			VehicleNumber: app.VehicleNumber,
			City:          app.City,
			Status:        model.PartnerActive,
			JoinedAt:      now,
		})
		return s.fx.Applications[i], nil
	}
	return model.PartnerApplication{}, console.ErrNotFound
}

func (s *Store) RejectApplication(ctx context.Context, id, reason string) (model.PartnerApplication, error) {
	if err := ctx.Err(); err != nil {
		return model.PartnerApplication{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, app := range s.fx.Applications {
		if app.ID != id {
			continue
		}
		now := s.now()
		s.fx.Applications[i].Status = model.ApplicationRejected
		s.fx.Applications[i].RejectReason = reason
		s.fx.Applications[i].ReviewedAt = &now
		return s.fx.Applications[i], nil
	}
	return model.PartnerApplication{}, console.ErrNotFound
}

// Orders

func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.fx.Orders))
	for i, o := range s.fx.Orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (model.Order, error) {
	if err := ctx.Err(); err != nil {
		return model.Order{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.fx.Orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return model.Order{}, console.ErrNotFound
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (model.Order, error) {
	if err := ctx.Err(); err != nil {
		return model.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.fx.Orders {
		if o.ID == id {
			s.fx.Orders[i].Status = status
			s.fx.Orders[i].UpdatedAt = s.now()
			return cloneOrder(s.fx.Orders[i]), nil
		}
	}
	return model.Order{}, console.ErrNotFound
}

// Payments

func (s *Store) ListPayments(ctx context.Context, status, method string) ([]model.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Payment{}
	for _, p := range s.fx.Payments {
		if status != "" && p.Status != status {
			continue
		}
		if method != "" && p.Method != method {
			continue
		}
		out = append(out, clonePayment(p))
	}
	return out, nil
}

// Restaurants

func (s *Store) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Restaurant, len(s.fx.Restaurants))
	for i, r := range s.fx.Restaurants {
		out[i] = cloneRestaurant(r)
	}
	return out, nil
}

func (s *Store) GetRestaurant(ctx context.Context, id string) (model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return model.Restaurant{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.fx.Restaurants {
		if r.ID == id {
			return cloneRestaurant(r), nil
		}
	}
	return model.Restaurant{}, console.ErrNotFound
}

func (s *Store) UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return model.Restaurant{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Restaurants {
		if existing.ID == restaurant.ID {
			restaurant.CreatedAt = existing.CreatedAt
			restaurant.UpdatedAt = s.now()
			s.fx.Restaurants[i] = cloneRestaurant(restaurant)
			return restaurant, nil
		}
	}
	return model.Restaurant{}, console.ErrNotFound
}

// Users

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.fx.Users))
	for i, u := range s.fx.Users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.fx.Users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return model.User{}, console.ErrNotFound
}

func (s *Store) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fx.Users {
		if existing.ID == user.ID {
			user.JoinedAt = existing.JoinedAt
			s.fx.Users[i] = cloneUser(user)
			return user, nil
		}
	}
	return model.User{}, console.ErrNotFound
}

// Settings and profile

func (s *Store) GetSettings(ctx context.Context) (model.PlatformSettings, error) {
	if err := ctx.Err(); err != nil {
		return model.PlatformSettings{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fx.Settings, nil
}

func (s *Store) UpdateSettings(ctx context.Context, settings model.PlatformSettings) (model.PlatformSettings, error) {
	if err := ctx.Err(); err != nil {
		return model.PlatformSettings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fx.Settings = settings
	return settings, nil
}

func (s *Store) GetProfile(ctx context.Context) (model.Profile, error) {
	if err := ctx.Err(); err != nil {
		return model.Profile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fx.Profile, nil
}

func (s *Store) UpdateProfile(ctx context.Context, profile model.Profile) (model.Profile, error) {
	if err := ctx.Err(); err != nil {
		return model.Profile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.ID = s.fx.Profile.ID
	profile.Role = s.fx.Profile.Role
	profile.JoinedAt = s.fx.Profile.JoinedAt
	s.fx.Profile = profile
	return profile, nil
}

// Dashboard overview

// FetchOverview derives the headline numbers from the live fixture state so
// demo mutations show up on the dashboard, while the day-by-day series come
// straight from the seed file.
func (s *Store) FetchOverview(ctx context.Context) (model.Overview, error) {
	if err := ctx.Err(); err != nil {
		return model.Overview{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	overview := model.Overview{
		TotalOrders:      len(s.fx.Orders),
		TotalUsers:       len(s.fx.Users),
		TotalRestaurants: len(s.fx.Restaurants),
		OrdersByDay:      cloneSlice(s.fx.OrdersByDay),
		RevenueByDay:     cloneSlice(s.fx.RevenueByDay),
		OrdersByStatus:   map[string]int{},
	}
	for _, o := range s.fx.Orders {
		overview.OrdersByStatus[o.Status]++
		if !o.IsTerminal() {
			overview.ActiveOrders++
		}
		if o.PaymentStatus == model.PaymentPaid {
			overview.TotalRevenue += o.Total
		}
	}
	for _, p := range s.fx.Partners {
		if p.Status == model.PartnerActive {
			overview.ActivePartners++
		}
	}
	for _, c := range s.fx.Contacts {
		if c.Status == model.ContactOpen || c.Status == model.ContactInProgress {
			overview.OpenTickets++
		}
	}
	return overview, nil
}
