package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/model"
)

// Settings

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.svc.Settings(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, settings)
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	var draft model.PlatformSettings
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.updateSettings.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}

// Profile

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.svc.Profile(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, profile)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var draft model.Profile
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.updateProfile.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}

// Dashboard

func (h *Handler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.svc.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, overview)
}
