package badge

import "github.com/feastly/admin-console/internal/model"

// Domains the console renders badges for.
const (
	DomainCouponStatus      = "coupon.status"
	DomainOrderStatus       = "order.status"
	DomainPaymentStatus     = "order.payment_status"
	DomainTxnStatus         = "payment.status"
	DomainPaymentMethod     = "payment.method"
	DomainContactStatus     = "contact.status"
	DomainContactPriority   = "contact.priority"
	DomainPartnerStatus     = "partner.status"
	DomainApplicationStatus = "application.status"
	DomainRestaurantStatus  = "restaurant.status"
	DomainUserStatus        = "user.status"
	DomainUserRole          = "user.role"
	DomainMembership        = "user.membership"
	DomainBannerPlacement   = "banner.placement"
)

func (r *Registry) registerDefaults() {
	defaults := map[string]map[string]Style{
		DomainCouponStatus: {
			model.CouponActive:   {Color: "green"},
			model.CouponInactive: {Color: "gray"},
			model.CouponExpired:  {Color: "red"},
			model.CouponUsedUp:   {Label: "Used Up", Color: "orange"},
		},
		DomainOrderStatus: {
			model.OrderPending:        {Color: "yellow", Icon: "clock"},
			model.OrderConfirmed:      {Color: "blue", Icon: "check"},
			model.OrderPreparing:      {Color: "indigo", Icon: "chef-hat"},
			model.OrderReadyForPickup: {Color: "purple", Icon: "package"},
			model.OrderOutForDelivery: {Color: "cyan", Icon: "truck"},
			model.OrderDelivered:      {Color: "green", Icon: "check-circle"},
			model.OrderCancelled:      {Color: "red", Icon: "x-circle"},
		},
		DomainPaymentStatus: {
			model.PaymentPending:  {Color: "yellow"},
			model.PaymentPaid:     {Color: "green"},
			model.PaymentFailed:   {Color: "red"},
			model.PaymentRefunded: {Color: "purple"},
		},
		DomainTxnStatus: {
			model.TxnPending:   {Color: "yellow"},
			model.TxnCompleted: {Color: "green"},
			model.TxnFailed:    {Color: "red"},
			model.TxnRefunded:  {Color: "purple"},
		},
		DomainPaymentMethod: {
			model.MethodCard:   {Color: "blue", Icon: "credit-card"},
			model.MethodUPI:    {Label: "UPI", Color: "indigo", Icon: "smartphone"},
			model.MethodWallet: {Color: "purple", Icon: "wallet"},
			model.MethodCash:   {Label: "Cash on Delivery", Color: "gray", Icon: "banknote"},
		},
		DomainContactStatus: {
			model.ContactOpen:       {Color: "yellow"},
			model.ContactInProgress: {Color: "blue"},
			model.ContactResolved:   {Color: "green"},
			model.ContactClosed:     {Color: "gray"},
		},
		DomainContactPriority: {
			model.PriorityLow:    {Color: "gray"},
			model.PriorityMedium: {Color: "yellow"},
			model.PriorityHigh:   {Color: "orange"},
			model.PriorityUrgent: {Color: "red", Icon: "alert-triangle"},
		},
		DomainPartnerStatus: {
			model.PartnerActive:    {Color: "green"},
			model.PartnerInactive:  {Color: "gray"},
			model.PartnerSuspended: {Color: "red"},
			model.PartnerOnBreak:   {Color: "yellow"},
		},
		DomainApplicationStatus: {
			model.ApplicationPending:  {Color: "yellow"},
			model.ApplicationApproved: {Color: "green"},
			model.ApplicationRejected: {Color: "red"},
		},
		DomainRestaurantStatus: {
			model.RestaurantActive:    {Color: "green"},
			model.RestaurantPending:   {Color: "yellow"},
			model.RestaurantSuspended: {Color: "red"},
			model.RestaurantClosed:    {Color: "gray"},
		},
		DomainUserStatus: {
			model.UserActive:   {Color: "green"},
			model.UserInactive: {Color: "gray"},
			model.UserBanned:   {Color: "red"},
		},
		DomainUserRole: {
			model.RoleAdmin:    {Color: "purple", Icon: "shield"},
			model.RoleCustomer: {Color: "blue"},
			model.RoleOwner:    {Color: "orange", Icon: "store"},
			model.RoleSupport:  {Color: "cyan", Icon: "headphones"},
		},
		DomainMembership: {
			model.MembershipBasic:    {Color: "gray"},
			model.MembershipGold:     {Color: "yellow", Icon: "star"},
			model.MembershipPlatinum: {Color: "indigo", Icon: "crown"},
		},
		DomainBannerPlacement: {
			model.PlacementHero:    {Color: "blue"},
			model.PlacementSidebar: {Color: "purple"},
			model.PlacementFooter:  {Color: "gray"},
			model.PlacementPopup:   {Color: "orange"},
		},
	}

	for domain, values := range defaults {
		for value, style := range values {
			_ = r.Register(domain, value, style)
		}
		_ = r.RegisterFallback(domain, Style{Label: "Unknown", Color: "gray"})
	}
}
