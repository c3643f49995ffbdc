package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/console/commands"
	"github.com/feastly/admin-console/internal/model"
)

// Banners

func (h *Handler) ListBanners(c *fiber.Ctx) error {
	page, err := h.svc.Banners(c.UserContext(), console.BannerFilter{
		Search:    c.Query("search"),
		Placement: c.Query("placement"),
		Status:    c.Query("status"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

func (h *Handler) SaveBanner(c *fiber.Ctx) error {
	var draft model.Banner
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	draft.ID = c.Params("id", draft.ID)
	if err := h.saveBanner.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	if draft.ID == "" {
		return created(c, fiber.Map{"saved": true})
	}
	return ok(c, fiber.Map{"saved": true})
}

func (h *Handler) DeleteBanner(c *fiber.Ctx) error {
	input := commands.DeleteBannerInput{BannerID: c.Params("id")}
	if err := h.deleteBanner.Execute(c.UserContext(), input); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Coupons

func (h *Handler) ListCoupons(c *fiber.Ctx) error {
	page, err := h.svc.Coupons(c.UserContext(), console.CouponFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

func (h *Handler) SaveCoupon(c *fiber.Ctx) error {
	var draft model.Coupon
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	draft.ID = c.Params("id", draft.ID)
	if err := h.saveCoupon.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	if draft.ID == "" {
		return created(c, fiber.Map{"saved": true})
	}
	return ok(c, fiber.Map{"saved": true})
}

func (h *Handler) DeleteCoupon(c *fiber.Ctx) error {
	input := commands.DeleteCouponInput{CouponID: c.Params("id")}
	if err := h.deleteCoupon.Execute(c.UserContext(), input); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
