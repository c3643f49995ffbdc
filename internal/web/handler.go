// Package web exposes the console over HTTP: a JSON API for the dialogs and
// tables, and server-rendered HTML pages for the browser.
package web

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/feastly/admin-console/internal/auth"
	"github.com/feastly/admin-console/internal/charts"
	"github.com/feastly/admin-console/internal/config"
	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/console/commands"
)

// Handler serves every console endpoint. Mutations go through the command
// layer so the HTTP surface and any other transport share one code path.
type Handler struct {
	svc      *console.Service
	charts   *charts.Renderer
	renderer Renderer
	cfg      *config.Config
	log      *logrus.Logger

	saveBanner       *commands.SaveBannerCommand
	deleteBanner     *commands.DeleteBannerCommand
	saveCoupon       *commands.SaveCouponCommand
	deleteCoupon     *commands.DeleteCouponCommand
	respondContact   *commands.RespondContactCommand
	advanceOrder     *commands.AdvanceOrderCommand
	setPartnerStatus *commands.SetPartnerStatusCommand
	approve          *commands.ApproveApplicationCommand
	reject           *commands.RejectApplicationCommand
	updateRestaurant *commands.UpdateRestaurantCommand
	updateUser       *commands.UpdateUserCommand
	updateSettings   *commands.UpdateSettingsCommand
	updateProfile    *commands.UpdateProfileCommand
}

// NewHandler wires the console service, chart renderer, and page templates
// into an HTTP handler set.
func NewHandler(svc *console.Service, renderer Renderer, chartRenderer *charts.Renderer, cfg *config.Config, log *logrus.Logger, telemetry commands.Telemetry) *Handler {
	return &Handler{
		svc:      svc,
		charts:   chartRenderer,
		renderer: renderer,
		cfg:      cfg,
		log:      log,

		saveBanner:       commands.NewSaveBannerCommand(svc, telemetry),
		deleteBanner:     commands.NewDeleteBannerCommand(svc, telemetry),
		saveCoupon:       commands.NewSaveCouponCommand(svc, telemetry),
		deleteCoupon:     commands.NewDeleteCouponCommand(svc, telemetry),
		respondContact:   commands.NewRespondContactCommand(svc, telemetry),
		advanceOrder:     commands.NewAdvanceOrderCommand(svc, telemetry),
		setPartnerStatus: commands.NewSetPartnerStatusCommand(svc, telemetry),
		approve:          commands.NewApproveApplicationCommand(svc, telemetry),
		reject:           commands.NewRejectApplicationCommand(svc, telemetry),
		updateRestaurant: commands.NewUpdateRestaurantCommand(svc, telemetry),
		updateUser:       commands.NewUpdateUserCommand(svc, telemetry),
		updateSettings:   commands.NewUpdateSettingsCommand(svc, telemetry),
		updateProfile:    commands.NewUpdateProfileCommand(svc, telemetry),
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login checks the configured console credential and issues a session token.
// The token is returned in the body for API clients and set as a cookie for
// the browser pages.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.cfg.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := auth.GenerateSessionToken(h.cfg.JWTSecret, req.Email, "admin", h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.log.WithField("email", req.Email).Info("console session issued")
	return ok(c, fiber.Map{"token": token})
}

// Logout drops the session cookie.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(auth.SessionCookie)
	return ok(c, fiber.Map{"logged_out": true})
}
