package console

import (
	"context"

	"github.com/feastly/admin-console/internal/badge"
	"github.com/feastly/admin-console/internal/model"
)

// CouponFilter narrows the coupon list.
type CouponFilter struct {
	Search string
	Status string // derived display status: active | inactive | expired | used_up
	Type   string
}

// CouponView decorates a coupon with its derived display fields.
type CouponView struct {
	model.Coupon
	DisplayStatus string `json:"display_status"`
	UsagePercent  int    `json:"usage_percent"`
}

// CouponCounts are the aggregates shown above the coupon grid.
type CouponCounts struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
	UsedUp  int `json:"used_up"`
}

// CouponPage is the rendered coupon list plus its aggregates.
type CouponPage struct {
	Items  []CouponView `json:"items"`
	Counts CouponCounts `json:"counts"`
}

// Coupons fetches the coupon list, derives display status per the precedence
// rules, and filters in memory.
func (s *Service) Coupons(ctx context.Context, filter CouponFilter) (CouponPage, error) {
	data, err := s.data()
	if err != nil {
		return CouponPage{}, err
	}
	all, err := data.ListCoupons(ctx)
	if err != nil {
		return CouponPage{}, err
	}

	now := s.opts.Now()
	page := CouponPage{Items: []CouponView{}}
	for _, c := range all {
		status := badge.CouponStatus(c, now)
		page.Counts.Total++
		switch status {
		case model.CouponActive:
			page.Counts.Active++
		case model.CouponExpired:
			page.Counts.Expired++
		case model.CouponUsedUp:
			page.Counts.UsedUp++
		}
		view := CouponView{
			Coupon:        c,
			DisplayStatus: status,
			UsagePercent:  badge.UsagePercent(c.UsedCount, c.UsageLimit),
		}
		if couponMatches(view, filter) {
			page.Items = append(page.Items, view)
		}
	}
	s.record(ctx, "console.coupons.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func couponMatches(c CouponView, filter CouponFilter) bool {
	if !searchMatches(filter.Search, c.Code, c.Description) {
		return false
	}
	if !enumMatches(filter.Status, c.DisplayStatus) {
		return false
	}
	return enumMatches(filter.Type, c.DiscountType)
}

// SaveCoupon validates the draft and creates or updates the coupon.
func (s *Service) SaveCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error) {
	data, err := s.data()
	if err != nil {
		return model.Coupon{}, err
	}
	if err := s.opts.Validator.Validate(DraftCoupon, coupon); err != nil {
		return model.Coupon{}, err
	}
	if coupon.ID == "" {
		return data.CreateCoupon(ctx, coupon)
	}
	return data.UpdateCoupon(ctx, coupon)
}

// DeleteCoupon removes the coupon.
func (s *Service) DeleteCoupon(ctx context.Context, id string) error {
	data, err := s.data()
	if err != nil {
		return err
	}
	return data.DeleteCoupon(ctx, id)
}
