package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/console/commands"
	"github.com/feastly/admin-console/internal/model"
)

// Contacts

func (h *Handler) ListContacts(c *fiber.Ctx) error {
	page, err := h.svc.Contacts(c.UserContext(), console.ContactFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

func (h *Handler) UpdateContact(c *fiber.Ctx) error {
	var draft model.ContactSubmission
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	draft.ID = c.Params("id")
	if err := h.respondContact.Execute(c.UserContext(), draft); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}

// Delivery partners

func (h *Handler) ListPartners(c *fiber.Ctx) error {
	page, err := h.svc.Partners(c.UserContext(), console.PartnerFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Vehicle: c.Query("vehicle"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

type partnerStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetPartnerStatus(c *fiber.Ctx) error {
	var req partnerStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	input := commands.SetPartnerStatusInput{PartnerID: c.Params("id"), Status: req.Status}
	if err := h.setPartnerStatus.Execute(c.UserContext(), input); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}

func (h *Handler) ApproveApplication(c *fiber.Ctx) error {
	input := commands.ApproveApplicationInput{ApplicationID: c.Params("id")}
	if err := h.approve.Execute(c.UserContext(), input); err != nil {
		return err
	}
	return ok(c, fiber.Map{"approved": true})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) RejectApplication(c *fiber.Ctx) error {
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	input := commands.RejectApplicationInput{ApplicationID: c.Params("id"), Reason: req.Reason}
	if err := h.reject.Execute(c.UserContext(), input); err != nil {
		return err
	}
	return ok(c, fiber.Map{"rejected": true})
}

// Orders

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	page, err := h.svc.Orders(c.UserContext(), console.OrderFilter{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	order, err := h.svc.Order(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, order)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) AdvanceOrder(c *fiber.Ctx) error {
	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	input := commands.AdvanceOrderInput{OrderID: c.Params("id"), Status: req.Status}
	if err := h.advanceOrder.Execute(c.UserContext(), input); err != nil {
		return err
	}
	return ok(c, fiber.Map{"saved": true})
}

// Payments

func (h *Handler) ListPayments(c *fiber.Ctx) error {
	page, err := h.svc.Payments(c.UserContext(), console.PaymentFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Method: c.Query("method"),
	})
	if err != nil {
		return err
	}
	return ok(c, page)
}
