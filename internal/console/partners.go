package console

import (
	"context"
	"errors"

	"github.com/feastly/admin-console/internal/model"
)

// ErrEmptyRejectReason is returned when a rejection is submitted without a
// reason. The dialog must keep the reject handler unreachable in that case.
var ErrEmptyRejectReason = errors.New("console: reject reason is required")

// PartnerFilter narrows the delivery partner list.
type PartnerFilter struct {
	Search  string
	Status  string
	Vehicle string
}

// PartnerCounts are the aggregates shown above the partner grid.
type PartnerCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Suspended    int `json:"suspended"`
	Applications int `json:"pending_applications"`
}

// PartnerPage is the rendered partner list, pending applications, and aggregates.
type PartnerPage struct {
	Items        []model.DeliveryPartner    `json:"items"`
	Applications []model.PartnerApplication `json:"applications"`
	Counts       PartnerCounts              `json:"counts"`
}

// Partners fetches partners and pending applications and filters in memory.
func (s *Service) Partners(ctx context.Context, filter PartnerFilter) (PartnerPage, error) {
	data, err := s.data()
	if err != nil {
		return PartnerPage{}, err
	}
	all, err := data.ListPartners(ctx)
	if err != nil {
		return PartnerPage{}, err
	}
	applications, err := data.ListApplications(ctx)
	if err != nil {
		return PartnerPage{}, err
	}

	page := PartnerPage{Items: []model.DeliveryPartner{}, Applications: []model.PartnerApplication{}}
	for _, p := range all {
		page.Counts.Total++
		switch p.Status {
		case model.PartnerActive:
			page.Counts.Active++
		case model.PartnerSuspended:
			page.Counts.Suspended++
		}
		if partnerMatches(p, filter) {
			page.Items = append(page.Items, p)
		}
	}
	for _, a := range applications {
		if a.Status == model.ApplicationPending {
			page.Counts.Applications++
			page.Applications = append(page.Applications, a)
		}
	}
	s.record(ctx, "console.partners.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func partnerMatches(p model.DeliveryPartner, filter PartnerFilter) bool {
	if !searchMatches(filter.Search, p.FirstName, p.LastName, p.Email, p.Phone, p.City) {
		return false
	}
	if !enumMatches(filter.Status, p.Status) {
		return false
	}
	return enumMatches(filter.Vehicle, p.VehicleType)
}

// SetPartnerStatus changes a partner's status (activate, suspend, break).
func (s *Service) SetPartnerStatus(ctx context.Context, id, status string) (model.DeliveryPartner, error) {
	data, err := s.data()
	if err != nil {
		return model.DeliveryPartner{}, err
	}
	return data.UpdatePartnerStatus(ctx, id, status)
}

// ApproveApplication promotes a pending courier application.
func (s *Service) ApproveApplication(ctx context.Context, id string) (model.PartnerApplication, error) {
	data, err := s.data()
	if err != nil {
		return model.PartnerApplication{}, err
	}
	return data.ApproveApplication(ctx, id)
}

// RejectApplication declines a pending application. The reason is mandatory.
func (s *Service) RejectApplication(ctx context.Context, id, reason string) (model.PartnerApplication, error) {
	if reason == "" {
		return model.PartnerApplication{}, ErrEmptyRejectReason
	}
	data, err := s.data()
	if err != nil {
		return model.PartnerApplication{}, err
	}
	return data.RejectApplication(ctx, id, reason)
}
