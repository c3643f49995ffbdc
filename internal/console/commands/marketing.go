package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/feastly/admin-console/internal/model"
)

type bannerService interface {
	SaveBanner(ctx context.Context, banner model.Banner) (model.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
}

// SaveBannerCommand creates or updates a promotional banner; an empty ID
// means create.
type SaveBannerCommand struct {
	service   bannerService
	telemetry Telemetry
}

// NewSaveBannerCommand creates a command instance.
func NewSaveBannerCommand(service bannerService, telemetry Telemetry) *SaveBannerCommand {
	return &SaveBannerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.Banner] = (*SaveBannerCommand)(nil)

// Execute delegates to the console service.
func (c *SaveBannerCommand) Execute(ctx context.Context, msg model.Banner) error {
	if c.service == nil {
		return errors.New("banner command requires service")
	}
	saved, err := c.service.SaveBanner(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.banner.save", map[string]any{
		"banner_id": saved.ID,
		"placement": saved.Placement,
	})
	return nil
}

// DeleteBannerInput identifies the banner to remove.
type DeleteBannerInput struct {
	BannerID string `json:"banner_id"`
}

// DeleteBannerCommand removes a banner.
type DeleteBannerCommand struct {
	service   bannerService
	telemetry Telemetry
}

// NewDeleteBannerCommand creates a command instance.
func NewDeleteBannerCommand(service bannerService, telemetry Telemetry) *DeleteBannerCommand {
	return &DeleteBannerCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteBannerInput] = (*DeleteBannerCommand)(nil)

// Execute delegates to the console service.
func (c *DeleteBannerCommand) Execute(ctx context.Context, msg DeleteBannerInput) error {
	if c.service == nil {
		return errors.New("banner command requires service")
	}
	if err := c.service.DeleteBanner(ctx, msg.BannerID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.banner.delete", map[string]any{
		"banner_id": msg.BannerID,
	})
	return nil
}

type couponService interface {
	SaveCoupon(ctx context.Context, coupon model.Coupon) (model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

// SaveCouponCommand creates or updates a coupon; an empty ID means create.
type SaveCouponCommand struct {
	service   couponService
	telemetry Telemetry
}

// NewSaveCouponCommand creates a command instance.
func NewSaveCouponCommand(service couponService, telemetry Telemetry) *SaveCouponCommand {
	return &SaveCouponCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.Coupon] = (*SaveCouponCommand)(nil)

// Execute delegates to the console service.
func (c *SaveCouponCommand) Execute(ctx context.Context, msg model.Coupon) error {
	if c.service == nil {
		return errors.New("coupon command requires service")
	}
	saved, err := c.service.SaveCoupon(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.coupon.save", map[string]any{
		"coupon_id": saved.ID,
		"code":      saved.Code,
	})
	return nil
}

// DeleteCouponInput identifies the coupon to remove.
type DeleteCouponInput struct {
	CouponID string `json:"coupon_id"`
}

// DeleteCouponCommand removes a coupon.
type DeleteCouponCommand struct {
	service   couponService
	telemetry Telemetry
}

// NewDeleteCouponCommand creates a command instance.
func NewDeleteCouponCommand(service couponService, telemetry Telemetry) *DeleteCouponCommand {
	return &DeleteCouponCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteCouponInput] = (*DeleteCouponCommand)(nil)

// Execute delegates to the console service.
func (c *DeleteCouponCommand) Execute(ctx context.Context, msg DeleteCouponInput) error {
	if c.service == nil {
		return errors.New("coupon command requires service")
	}
	if err := c.service.DeleteCoupon(ctx, msg.CouponID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.coupon.delete", map[string]any{
		"coupon_id": msg.CouponID,
	})
	return nil
}
