package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/feastly/admin-console/internal/model"
)

type restaurantService interface {
	UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (model.Restaurant, error)
}

// UpdateRestaurantCommand persists edits to a partner restaurant.
type UpdateRestaurantCommand struct {
	service   restaurantService
	telemetry Telemetry
}

// NewUpdateRestaurantCommand creates a command instance.
func NewUpdateRestaurantCommand(service restaurantService, telemetry Telemetry) *UpdateRestaurantCommand {
	return &UpdateRestaurantCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.Restaurant] = (*UpdateRestaurantCommand)(nil)

// Execute delegates to the console service.
func (c *UpdateRestaurantCommand) Execute(ctx context.Context, msg model.Restaurant) error {
	if c.service == nil {
		return errors.New("restaurant command requires service")
	}
	saved, err := c.service.UpdateRestaurant(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.restaurant.update", map[string]any{
		"restaurant_id": saved.ID,
		"status":        saved.Status,
	})
	return nil
}

type userService interface {
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
}

// UpdateUserCommand persists edits to a platform account.
type UpdateUserCommand struct {
	service   userService
	telemetry Telemetry
}

// NewUpdateUserCommand creates a command instance.
func NewUpdateUserCommand(service userService, telemetry Telemetry) *UpdateUserCommand {
	return &UpdateUserCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.User] = (*UpdateUserCommand)(nil)

// Execute delegates to the console service.
func (c *UpdateUserCommand) Execute(ctx context.Context, msg model.User) error {
	if c.service == nil {
		return errors.New("user command requires service")
	}
	saved, err := c.service.UpdateUser(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.user.update", map[string]any{
		"user_id": saved.ID,
		"status":  saved.Status,
	})
	return nil
}

type settingsService interface {
	UpdateSettings(ctx context.Context, settings model.PlatformSettings) (model.PlatformSettings, error)
}

// UpdateSettingsCommand persists the global platform settings.
type UpdateSettingsCommand struct {
	service   settingsService
	telemetry Telemetry
}

// NewUpdateSettingsCommand creates a command instance.
func NewUpdateSettingsCommand(service settingsService, telemetry Telemetry) *UpdateSettingsCommand {
	return &UpdateSettingsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.PlatformSettings] = (*UpdateSettingsCommand)(nil)

// Execute delegates to the console service.
func (c *UpdateSettingsCommand) Execute(ctx context.Context, msg model.PlatformSettings) error {
	if c.service == nil {
		return errors.New("settings command requires service")
	}
	saved, err := c.service.UpdateSettings(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.settings.update", map[string]any{
		"orders_paused":    saved.OrdersPaused,
		"maintenance_mode": saved.MaintenanceMode,
	})
	return nil
}

type profileService interface {
	UpdateProfile(ctx context.Context, profile model.Profile) (model.Profile, error)
}

// UpdateProfileCommand persists the signed-in admin's profile edits.
type UpdateProfileCommand struct {
	service   profileService
	telemetry Telemetry
}

// NewUpdateProfileCommand creates a command instance.
func NewUpdateProfileCommand(service profileService, telemetry Telemetry) *UpdateProfileCommand {
	return &UpdateProfileCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[model.Profile] = (*UpdateProfileCommand)(nil)

// Execute delegates to the console service.
func (c *UpdateProfileCommand) Execute(ctx context.Context, msg model.Profile) error {
	if c.service == nil {
		return errors.New("profile command requires service")
	}
	saved, err := c.service.UpdateProfile(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "console.profile.update", map[string]any{
		"profile_id": saved.ID,
	})
	return nil
}
