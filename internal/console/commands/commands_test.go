package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/feastly/admin-console/internal/model"
)

type stubTelemetry struct {
	events []string
}

func (s *stubTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.events = append(s.events, event)
}

type stubService struct {
	approveCalls int
	rejectCalls  int
	statusCalls  int
	advanceCalls int
	saveBanner   int
	deleteBanner int
	lastReason   string
	lastStatus   string
	err          error
}

func (s *stubService) ApproveApplication(_ context.Context, id string) (model.PartnerApplication, error) {
	s.approveCalls++
	return model.PartnerApplication{ID: id}, s.err
}

func (s *stubService) RejectApplication(_ context.Context, id, reason string) (model.PartnerApplication, error) {
	s.rejectCalls++
	s.lastReason = reason
	return model.PartnerApplication{ID: id}, s.err
}

func (s *stubService) SetPartnerStatus(_ context.Context, id, status string) (model.DeliveryPartner, error) {
	s.statusCalls++
	s.lastStatus = status
	return model.DeliveryPartner{ID: id, Status: status}, s.err
}

func (s *stubService) AdvanceOrder(_ context.Context, id, status string) (model.Order, error) {
	s.advanceCalls++
	s.lastStatus = status
	return model.Order{ID: id, Status: status}, s.err
}

func (s *stubService) SaveBanner(_ context.Context, banner model.Banner) (model.Banner, error) {
	s.saveBanner++
	return banner, s.err
}

func (s *stubService) DeleteBanner(_ context.Context, _ string) error {
	s.deleteBanner++
	return s.err
}

func TestApproveApplicationCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewApproveApplicationCommand(service, telemetry)

	if err := cmd.Execute(context.Background(), ApproveApplicationInput{ApplicationID: "pa-1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.approveCalls != 1 {
		t.Fatalf("expected approve call")
	}
	if len(telemetry.events) == 0 {
		t.Fatalf("expected telemetry to record events")
	}
}

func TestRejectApplicationCommandPropagatesServiceError(t *testing.T) {
	wantErr := errors.New("reject reason is required")
	service := &stubService{err: wantErr}
	telemetry := &stubTelemetry{}
	cmd := NewRejectApplicationCommand(service, telemetry)

	err := cmd.Execute(context.Background(), RejectApplicationInput{ApplicationID: "pa-1"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected service error, got %v", err)
	}
	if len(telemetry.events) != 0 {
		t.Fatalf("telemetry must not record failed commands")
	}
}

func TestRejectApplicationCommandForwardsReason(t *testing.T) {
	service := &stubService{}
	cmd := NewRejectApplicationCommand(service, nil)

	input := RejectApplicationInput{ApplicationID: "pa-1", Reason: "license expired"}
	if err := cmd.Execute(context.Background(), input); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.lastReason != "license expired" {
		t.Fatalf("expected reason to reach service, got %q", service.lastReason)
	}
}

func TestAdvanceOrderCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewAdvanceOrderCommand(service, telemetry)

	input := AdvanceOrderInput{OrderID: "o-1", Status: model.OrderConfirmed}
	if err := cmd.Execute(context.Background(), input); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.advanceCalls != 1 || service.lastStatus != model.OrderConfirmed {
		t.Fatalf("expected advance call with status, got %d/%q", service.advanceCalls, service.lastStatus)
	}
	if telemetry.events[0] != "console.order.advance" {
		t.Fatalf("unexpected telemetry event %q", telemetry.events[0])
	}
}

func TestSetPartnerStatusCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSetPartnerStatusCommand(service, nil)

	input := SetPartnerStatusInput{PartnerID: "dp-1", Status: model.PartnerSuspended}
	if err := cmd.Execute(context.Background(), input); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.statusCalls != 1 || service.lastStatus != model.PartnerSuspended {
		t.Fatalf("expected status call, got %d/%q", service.statusCalls, service.lastStatus)
	}
}

func TestBannerCommands(t *testing.T) {
	service := &stubService{}
	save := NewSaveBannerCommand(service, nil)
	remove := NewDeleteBannerCommand(service, nil)

	if err := save.Execute(context.Background(), model.Banner{Title: "Sale"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if err := remove.Execute(context.Background(), DeleteBannerInput{BannerID: "b-1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.saveBanner != 1 || service.deleteBanner != 1 {
		t.Fatalf("expected one save and one delete, got %d/%d", service.saveBanner, service.deleteBanner)
	}
}

func TestCommandsRequireService(t *testing.T) {
	if err := NewApproveApplicationCommand(nil, nil).Execute(context.Background(), ApproveApplicationInput{}); err == nil {
		t.Fatalf("expected error for missing service")
	}
	if err := NewAdvanceOrderCommand(nil, nil).Execute(context.Background(), AdvanceOrderInput{}); err == nil {
		t.Fatalf("expected error for missing service")
	}
}
