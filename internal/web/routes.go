package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/auth"
	"github.com/feastly/admin-console/internal/config"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, h *Handler, cfg *config.Config) {
	sessions := auth.Middleware(cfg.JWTSecret)

	// Auth
	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", h.Login)
	authGroup.Post("/logout", h.Logout)
	authGroup.Get("/me", sessions, h.GetProfile)
	authGroup.Put("/profile", sessions, h.UpdateProfile)

	// Admin JSON API
	api := app.Group("/api/admin", sessions)

	api.Get("/dashboard", h.GetOverview)

	banners := api.Group("/banners")
	banners.Get("/", h.ListBanners)
	banners.Post("/", h.SaveBanner)
	banners.Put("/:id", h.SaveBanner)
	banners.Delete("/:id", h.DeleteBanner)

	coupons := api.Group("/coupons")
	coupons.Get("/", h.ListCoupons)
	coupons.Post("/", h.SaveCoupon)
	coupons.Put("/:id", h.SaveCoupon)
	coupons.Delete("/:id", h.DeleteCoupon)

	contacts := api.Group("/contacts")
	contacts.Get("/", h.ListContacts)
	contacts.Put("/:id", h.UpdateContact)

	partners := api.Group("/delivery-partners")
	partners.Get("/", h.ListPartners)
	partners.Put("/:id/status", h.SetPartnerStatus)
	partners.Post("/applications/:id/approve", h.ApproveApplication)
	partners.Post("/applications/:id/reject", h.RejectApplication)

	orders := api.Group("/orders")
	orders.Get("/", h.ListOrders)
	orders.Get("/:id", h.GetOrder)
	orders.Put("/:id/status", h.AdvanceOrder)

	api.Get("/payments", h.ListPayments)

	restaurants := api.Group("/restaurants")
	restaurants.Get("/", h.ListRestaurants)
	restaurants.Get("/:id", h.GetRestaurant)
	restaurants.Put("/:id", h.UpdateRestaurant)

	users := api.Group("/users")
	users.Get("/", h.ListUsers)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.UpdateUser)

	settings := api.Group("/settings")
	settings.Get("/", h.GetSettings)
	settings.Put("/", h.UpdateSettings)

	// HTML pages. The session middleware is attached per route so unmatched
	// paths fall through to a plain 404 instead of a credential challenge.
	app.Get("/login", h.PageLogin)
	app.Get("/", sessions, h.PageDashboard)
	app.Get("/banners", sessions, h.PageBanners)
	app.Get("/coupons", sessions, h.PageCoupons)
	app.Get("/contacts", sessions, h.PageContacts)
	app.Get("/delivery-partners", sessions, h.PagePartners)
	app.Get("/orders", sessions, h.PageOrders)
	app.Get("/payments", sessions, h.PagePayments)
	app.Get("/restaurants", sessions, h.PageRestaurants)
	app.Get("/users", sessions, h.PageUsers)
	app.Get("/settings", sessions, h.PageSettings)
	app.Get("/profile", sessions, h.PageProfile)
}
