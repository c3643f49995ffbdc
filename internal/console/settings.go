package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// Settings fetches the platform settings for the settings page.
func (s *Service) Settings(ctx context.Context) (model.PlatformSettings, error) {
	data, err := s.data()
	if err != nil {
		return model.PlatformSettings{}, err
	}
	return data.GetSettings(ctx)
}

// UpdateSettings validates and persists the settings draft.
func (s *Service) UpdateSettings(ctx context.Context, settings model.PlatformSettings) (model.PlatformSettings, error) {
	data, err := s.data()
	if err != nil {
		return model.PlatformSettings{}, err
	}
	if err := s.opts.Validator.Validate(DraftSettings, settings); err != nil {
		return model.PlatformSettings{}, err
	}
	return data.UpdateSettings(ctx, settings)
}

// Profile fetches the signed-in admin's account.
func (s *Service) Profile(ctx context.Context) (model.Profile, error) {
	data, err := s.data()
	if err != nil {
		return model.Profile{}, err
	}
	return data.GetProfile(ctx)
}

// UpdateProfile validates and persists the profile draft.
func (s *Service) UpdateProfile(ctx context.Context, profile model.Profile) (model.Profile, error) {
	data, err := s.data()
	if err != nil {
		return model.Profile{}, err
	}
	if err := s.opts.Validator.Validate(DraftProfile, profile); err != nil {
		return model.Profile{}, err
	}
	return data.UpdateProfile(ctx, profile)
}

// Overview fetches the dashboard landing aggregates.
func (s *Service) Overview(ctx context.Context) (model.Overview, error) {
	data, err := s.data()
	if err != nil {
		return model.Overview{}, err
	}
	overview, err := data.FetchOverview(ctx)
	if err != nil {
		return model.Overview{}, err
	}
	s.record(ctx, "console.overview.resolve", map[string]any{
		"total_orders": overview.TotalOrders,
	})
	return overview, nil
}
