package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/feastly/admin-console/internal/model"
)

// AdvanceOrderInput moves an order to its next lifecycle status.
type AdvanceOrderInput struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type orderService interface {
	AdvanceOrder(ctx context.Context, id, status string) (model.Order, error)
}

// AdvanceOrderCommand updates an order's fulfillment status.
type AdvanceOrderCommand struct {
	service   orderService
	telemetry Telemetry
}

// NewAdvanceOrderCommand creates a command instance.
func NewAdvanceOrderCommand(service orderService, telemetry Telemetry) *AdvanceOrderCommand {
	return &AdvanceOrderCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AdvanceOrderInput] = (*AdvanceOrderCommand)(nil)

// Execute delegates to the console service.
func (c *AdvanceOrderCommand) Execute(ctx context.Context, msg AdvanceOrderInput) error {
	if c.service == nil {
		return errors.New("order command requires service")
	}
	order, err := c.service.AdvanceOrder(ctx, msg.OrderID, msg.Status)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.order.advance", map[string]any{
		"order_id": order.ID,
		"status":   order.Status,
	})
	return nil
}

type contactService interface {
	UpdateContact(ctx context.Context, contact model.ContactSubmission) (model.ContactSubmission, error)
}

// RespondContactCommand saves triage changes to a support ticket: status,
// priority, assignee, and the written response.
type RespondContactCommand struct {
	service   contactService
	telemetry Telemetry
}

// NewRespondContactCommand creates a command instance.
func NewRespondContactCommand(service contactService, telemetry Telemetry) *RespondContactCommand {
	return &RespondContactCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.ContactSubmission] = (*RespondContactCommand)(nil)

// Execute delegates to the console service.
func (c *RespondContactCommand) Execute(ctx context.Context, msg model.ContactSubmission) error {
	if c.service == nil {
		return errors.New("contact command requires service")
	}
	ticket, err := c.service.UpdateContact(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.contact.update", map[string]any{
		"contact_id": ticket.ID,
		"status":     ticket.Status,
	})
	return nil
}
