package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/model"
)

// Restaurants

func (h *Handler) ListRestaurants(c *fiber.Ctx) error {
	page, err := h.svc.Restaurants(c.UserContext(), console.RestaurantFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		City:   c.Query("city"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

func (h *Handler) GetRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.svc.Restaurant(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, restaurant)
}

func (h *Handler) UpdateRestaurant(c *fiber.Ctx) error {
	var draft model.Restaurant
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	draft.ID = c.Params("id")
	if err := h.updateRestaurant.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}

// Users

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	page, err := h.svc.Users(c.UserContext(), console.UserFilter{
		Search:     c.Query("search"),
		Role:       c.Query("role"),
		Status:     c.Query("status"),
		Membership: c.Query("membership"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.svc.User(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, user)
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var draft model.User
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	draft.ID = c.Params("id")
	if err := h.updateUser.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}
