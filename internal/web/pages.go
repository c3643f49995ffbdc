package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feastly/admin-console/internal/badge"
	"github.com/feastly/admin-console/internal/console"
)

func (h *Handler) renderPage(c *fiber.Ctx, name string, data map[string]any) error {
	html, err := h.renderer.Render(name, data)
	if err != nil {
		return err
	}
	c.Type("html")
	return c.SendString(html)
}

// styleMap resolves badge styles for every value the page will render so
// templates stay free of lookup logic.
func (h *Handler) styleMap(domain string, values ...string) map[string]badge.Style {
	styles := make(map[string]badge.Style, len(values))
	for _, value := range values {
		if _, seen := styles[value]; seen {
			continue
		}
		styles[value] = h.svc.Badges().Style(domain, value)
	}
	return styles
}

// PageLogin renders the sign-in form.
func (h *Handler) PageLogin(c *fiber.Ctx) error {
	return h.renderPage(c, "login", map[string]any{"Title": "Sign In"})
}

// PageDashboard renders the overview landing page with server-side charts.
func (h *Handler) PageDashboard(c *fiber.Ctx) error {
	overview, err := h.svc.Overview(c.UserContext())
	if err != nil {
		return err
	}

	ordersChart, err := h.charts.OrdersByDay(overview.OrdersByDay)
	if err != nil {
		return err
	}
	revenueChart, err := h.charts.RevenueByDay(overview.RevenueByDay)
	if err != nil {
		return err
	}
	statusChart, err := h.charts.OrdersByStatus(overview.OrdersByStatus, func(status string) string {
		return h.svc.Badges().Style(badge.DomainOrderStatus, status).Label
	})
	if err != nil {
		return err
	}

	return h.renderPage(c, "dashboard", map[string]any{
		"Title":        "Dashboard",
		"Overview":     overview,
		"OrdersChart":  ordersChart,
		"RevenueChart": revenueChart,
		"StatusChart":  statusChart,
	})
}

// PageBanners renders the banner management page.
func (h *Handler) PageBanners(c *fiber.Ctx) error {
	page, err := h.svc.Banners(c.UserContext(), console.BannerFilter{
		Search:    c.Query("search"),
		Placement: c.Query("placement"),
		Status:    c.Query("status"),
	})
	if err != nil {
		return err
	}
	placements := make([]string, 0, len(page.Items))
	for _, b := range page.Items {
		placements = append(placements, b.Placement)
	}
	return h.renderPage(c, "banners", map[string]any{
		"Title":  "Banners",
		"Page":   page,
		"Styles": h.styleMap(badge.DomainBannerPlacement, placements...),
	})
}

// PageCoupons renders the coupon management page.
func (h *Handler) PageCoupons(c *fiber.Ctx) error {
	page, err := h.svc.Coupons(c.UserContext(), console.CouponFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	for _, v := range page.Items {
		statuses = append(statuses, v.DisplayStatus)
	}
	return h.renderPage(c, "coupons", map[string]any{
		"Title":  "Coupons",
		"Page":   page,
		"Styles": h.styleMap(badge.DomainCouponStatus, statuses...),
	})
}

// PageContacts renders the support ticket queue.
func (h *Handler) PageContacts(c *fiber.Ctx) error {
	page, err := h.svc.Contacts(c.UserContext(), console.ContactFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	priorities := make([]string, 0, len(page.Items))
	for _, t := range page.Items {
		statuses = append(statuses, t.Status)
		priorities = append(priorities, t.Priority)
	}
	return h.renderPage(c, "contacts", map[string]any{
		"Title":          "Contact Submissions",
		"Page":           page,
		"StatusStyles":   h.styleMap(badge.DomainContactStatus, statuses...),
		"PriorityStyles": h.styleMap(badge.DomainContactPriority, priorities...),
	})
}

// PagePartners renders couriers and pending applications.
func (h *Handler) PagePartners(c *fiber.Ctx) error {
	page, err := h.svc.Partners(c.UserContext(), console.PartnerFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Vehicle: c.Query("vehicle"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	for _, p := range page.Items {
		statuses = append(statuses, p.Status)
	}
	return h.renderPage(c, "partners", map[string]any{
		"Title":  "Delivery Partners",
		"Page":   page,
		"Styles": h.styleMap(badge.DomainPartnerStatus, statuses...),
	})
}

// PageOrders renders the order table.
func (h *Handler) PageOrders(c *fiber.Ctx) error {
	page, err := h.svc.Orders(c.UserContext(), console.OrderFilter{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	payments := make([]string, 0, len(page.Items))
	for _, o := range page.Items {
		statuses = append(statuses, o.Status)
		payments = append(payments, o.PaymentStatus)
	}
	return h.renderPage(c, "orders", map[string]any{
		"Title":         "Orders",
		"Page":          page,
		"StatusStyles":  h.styleMap(badge.DomainOrderStatus, statuses...),
		"PaymentStyles": h.styleMap(badge.DomainPaymentStatus, payments...),
	})
}

// PagePayments renders the transaction table.
func (h *Handler) PagePayments(c *fiber.Ctx) error {
	page, err := h.svc.Payments(c.UserContext(), console.PaymentFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Method: c.Query("method"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	methods := make([]string, 0, len(page.Items))
	for _, p := range page.Items {
		statuses = append(statuses, p.Status)
		methods = append(methods, p.Method)
	}
	return h.renderPage(c, "payments", map[string]any{
		"Title":        "Payments",
		"Page":         page,
		"StatusStyles": h.styleMap(badge.DomainTxnStatus, statuses...),
		"MethodStyles": h.styleMap(badge.DomainPaymentMethod, methods...),
	})
}

// PageRestaurants renders the restaurant directory.
func (h *Handler) PageRestaurants(c *fiber.Ctx) error {
	page, err := h.svc.Restaurants(c.UserContext(), console.RestaurantFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		City:   c.Query("city"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	for _, r := range page.Items {
		statuses = append(statuses, r.Status)
	}
	return h.renderPage(c, "restaurants", map[string]any{
		"Title":  "Restaurants",
		"Page":   page,
		"Styles": h.styleMap(badge.DomainRestaurantStatus, statuses...),
	})
}

// PageUsers renders the account directory.
func (h *Handler) PageUsers(c *fiber.Ctx) error {
	page, err := h.svc.Users(c.UserContext(), console.UserFilter{
		Search:     c.Query("search"),
		Role:       c.Query("role"),
		Status:     c.Query("status"),
		Membership: c.Query("membership"),
	})
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(page.Items))
	roles := make([]string, 0, len(page.Items))
	for _, u := range page.Items {
		statuses = append(statuses, u.Status)
		roles = append(roles, u.Role)
	}
	initials := make(map[string]string, len(page.Items))
	for _, u := range page.Items {
		initials[u.ID] = badge.Initials(u.FirstName, u.LastName)
	}
	return h.renderPage(c, "users", map[string]any{
		"Title":        "Users",
		"Page":         page,
		"StatusStyles": h.styleMap(badge.DomainUserStatus, statuses...),
		"RoleStyles":   h.styleMap(badge.DomainUserRole, roles...),
		"Initials":     initials,
	})
}

// PageSettings renders the platform settings form.
func (h *Handler) PageSettings(c *fiber.Ctx) error {
	settings, err := h.svc.Settings(c.UserContext())
	if err != nil {
		return err
	}
	return h.renderPage(c, "settings", map[string]any{
		"Title":    "Settings",
		"Settings": settings,
	})
}

// PageProfile renders the signed-in admin's profile form.
func (h *Handler) PageProfile(c *fiber.Ctx) error {
	profile, err := h.svc.Profile(c.UserContext())
	if err != nil {
		return err
	}
	return h.renderPage(c, "profile", map[string]any{
		"Title":    "Profile",
		"Profile":  profile,
		"Initials": badge.Initials(profile.FirstName, profile.LastName),
	})
}
