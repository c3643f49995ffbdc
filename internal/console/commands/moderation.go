// Package commands wraps console mutations in transport-agnostic command
// objects so HTTP handlers and CLI tooling invoke the same code paths.
package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/feastly/admin-console/internal/model"
)

// ApproveApplicationInput identifies the courier application to approve.
type ApproveApplicationInput struct {
	ApplicationID string `json:"application_id"`
}

type applicationService interface {
	ApproveApplication(ctx context.Context, id string) (model.PartnerApplication, error)
	RejectApplication(ctx context.Context, id, reason string) (model.PartnerApplication, error)
}

// ApproveApplicationCommand promotes a pending courier application.
type ApproveApplicationCommand struct {
	service   applicationService
	telemetry Telemetry
}

// NewApproveApplicationCommand creates a command instance.
func NewApproveApplicationCommand(service applicationService, telemetry Telemetry) *ApproveApplicationCommand {
	return &ApproveApplicationCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ApproveApplicationInput] = (*ApproveApplicationCommand)(nil)

// Execute delegates to the console service.
func (c *ApproveApplicationCommand) Execute(ctx context.Context, msg ApproveApplicationInput) error {
	if c.service == nil {
		return errors.New("approve command requires service")
	}
	app, err := c.service.ApproveApplication(ctx, msg.ApplicationID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.application.approve", map[string]any{
		"application_id": app.ID,
		"city":           app.City,
	})
	return nil
}

// RejectApplicationInput carries the rejection and its mandatory reason.
type RejectApplicationInput struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason"`
}

// RejectApplicationCommand declines a pending courier application. The
// service refuses an empty reason, so every rejection is explained.
type RejectApplicationCommand struct {
	service   applicationService
	telemetry Telemetry
}

// NewRejectApplicationCommand creates a command instance.
func NewRejectApplicationCommand(service applicationService, telemetry Telemetry) *RejectApplicationCommand {
	return &RejectApplicationCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RejectApplicationInput] = (*RejectApplicationCommand)(nil)

// Execute delegates to the console service.
func (c *RejectApplicationCommand) Execute(ctx context.Context, msg RejectApplicationInput) error {
	if c.service == nil {
		return errors.New("reject command requires service")
	}
	app, err := c.service.RejectApplication(ctx, msg.ApplicationID, msg.Reason)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.application.reject", map[string]any{
		"application_id": app.ID,
	})
	return nil
}

// SetPartnerStatusInput moves an onboarded courier between statuses.
type SetPartnerStatusInput struct {
	PartnerID string `json:"partner_id"`
	Status    string `json:"status"`
}

type partnerService interface {
	SetPartnerStatus(ctx context.Context, id, status string) (model.DeliveryPartner, error)
}

// SetPartnerStatusCommand suspends, reactivates, or pauses a courier.
type SetPartnerStatusCommand struct {
	service   partnerService
	telemetry Telemetry
}

// NewSetPartnerStatusCommand creates a command instance.
func NewSetPartnerStatusCommand(service partnerService, telemetry Telemetry) *SetPartnerStatusCommand {
	return &SetPartnerStatusCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetPartnerStatusInput] = (*SetPartnerStatusCommand)(nil)

// Execute delegates to the console service.
func (c *SetPartnerStatusCommand) Execute(ctx context.Context, msg SetPartnerStatusInput) error {
	if c.service == nil {
		return errors.New("partner status command requires service")
	}
	partner, err := c.service.SetPartnerStatus(ctx, msg.PartnerID, msg.Status)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.partner.status", map[string]any{
		"partner_id": partner.ID,
		"status":     partner.Status,
	})
	return nil
}
